package finger

import (
	"strings"

	"github.com/bnema/finger-cli/internal/application"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/mattn/go-runewidth"
)

type RenderOptions struct {
	Format        application.Format
	PersonalFiles bool
	Color         bool
}

type column struct {
	title string
	width int
}

var shortColumns = []column{
	{title: "Login", width: 10},
	{title: "Name", width: 15},
	{title: "Idle Time", width: 15},
	{title: "Login Time", width: 15},
	{title: "Office", width: 15},
	{title: "Office Phone", width: 15},
	{title: "Tty", width: 10},
}

// Render lays reports out as finger text. The short layout prints its header
// once, above every row.
func Render(reports []domain.Report, opts RenderOptions) string {
	if len(reports) == 0 {
		return ""
	}

	s := newStyles(opts.Color)
	var b strings.Builder
	if opts.Format == application.FormatShort {
		writeShort(&b, reports, s)
	} else {
		for _, report := range reports {
			writeLong(&b, report, opts, s)
		}
	}

	return b.String()
}

func writeLong(b *strings.Builder, r domain.Report, opts RenderOptions, s styles) {
	writeLine(b,
		s.paint(s.label, "Login:"), " ", pad(s.paint(s.login, r.Login), r.Login, 30), " ",
		s.paint(s.label, "Name:"), " ", r.RealName,
	)
	writeLine(b,
		s.paint(s.label, "Directory:"), " ", pad(r.Home, r.Home, 25), " ",
		s.paint(s.label, "Shell:"), " ", r.Shell,
	)
	writeLine(b,
		s.paint(s.label, "Office:"), " ", pad(r.Office, r.Office, 28), " ",
		s.paint(s.label, "Office Phone:"), " ", pad(r.OfficePhone, r.OfficePhone, 15), " ",
		s.paint(s.label, "Home Phone:"), " ", r.HomePhone,
	)

	if r.LoggedIn {
		since := "On since " + r.LoginTime + " on " + r.Terminal
		if r.Host != "" {
			since += " from " + r.Host
		}
		writeLine(b, since)
		writeLine(b, "   ", s.paint(s.faint, r.Idle))
	} else {
		writeLine(b, s.paint(s.faint, "Never logged in."))
	}

	if r.Mail != domain.NoMail {
		writeLine(b, s.paint(s.label, "Mail:"), " ", r.Mail)
	}

	if opts.PersonalFiles {
		writeSection(b, s, "Plan:", "No Plan.", r.Plan)
		writeSection(b, s, "Project:", "No Project.", r.Project)
		writeSection(b, s, "PGP Key:", "No PGP Key.", r.PGPKey)
	}

	b.WriteString("\n")
}

func writeSection(b *strings.Builder, s styles, title string, empty string, content string) {
	content = strings.TrimRight(content, "\n")
	if strings.TrimSpace(content) == "" {
		writeLine(b, s.paint(s.faint, empty))
		return
	}

	writeLine(b, s.paint(s.label, title), " ", content)
}

func writeShort(b *strings.Builder, reports []domain.Report, s styles) {
	cells := make([]string, len(shortColumns))
	for i, col := range shortColumns {
		cells[i] = runewidth.FillRight(col.title, col.width)
	}
	writeLine(b, s.paint(s.header, strings.TrimRight(strings.Join(cells, " "), " ")))

	for _, r := range reports {
		tty := r.Terminal
		if r.WriteDeniedMarker() {
			tty += s.paint(s.warning, "*")
		}

		values := []string{r.Login, r.RealName, r.Idle, r.LoginTime, r.Office, r.OfficePhone}
		for i, value := range values {
			cells[i] = runewidth.FillRight(value, shortColumns[i].width)
		}
		cells[len(cells)-1] = tty

		writeLine(b, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

// pad widens styled to width using the display width of plain.
func pad(styled string, plain string, width int) string {
	gap := width - runewidth.StringWidth(plain)
	if gap <= 0 {
		return styled
	}

	return styled + strings.Repeat(" ", gap)
}

func writeLine(b *strings.Builder, parts ...string) {
	for _, part := range parts {
		b.WriteString(part)
	}
	b.WriteString("\n")
}
