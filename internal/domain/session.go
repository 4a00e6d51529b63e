package domain

import "time"

type Session struct {
	Login    string
	Terminal string
	Host     string
	LoginAt  time.Time
}

type TerminalState struct {
	LastAccess time.Time
	Writable   bool
}

type MailboxState struct {
	Exists  bool
	Size    int64
	ModTime time.Time
}

const (
	NoMail = "No Mail"

	mailReadLayout = "Jan 02 15:04"
)

// MailStatus renders the mailbox line. An absent or empty mailbox has no mail.
func (m MailboxState) MailStatus() string {
	if !m.Exists || m.Size == 0 {
		return NoMail
	}

	return "Mail last read " + m.ModTime.Local().Format(mailReadLayout)
}
