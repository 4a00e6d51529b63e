package ports

import (
	"context"

	"github.com/bnema/finger-cli/internal/domain"
)

type Probe interface {
	Terminal(ctx context.Context, tty string) (domain.TerminalState, error)
	Mailbox(ctx context.Context, login string) (domain.MailboxState, error)
	PersonalFile(ctx context.Context, home string, name string) (string, error)
}
