package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/finger-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const lookupSpinnerLabel = "Looking up users..."

type (
	lookupDoneMsg struct {
		err error
	}
	lookupEntryMsg struct {
		missing bool
	}
	// lookupLogMsg is one formatted log line, printed above the spinner.
	lookupLogMsg string
)

type lookupSpinnerModel struct {
	spinner  spinner.Model
	lookup   tea.Cmd
	reported int
	missing  int
	err      error
	done     bool
}

func newLookupSpinnerModel(lookup tea.Cmd) lookupSpinnerModel {
	return lookupSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		lookup: lookup,
	}
}

func (m lookupSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.lookup)
}

func (m lookupSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case lookupEntryMsg:
		if msg.missing {
			m.missing++
		} else {
			m.reported++
		}
		return m, nil
	case lookupLogMsg:
		return m, tea.Println(string(msg))
	case lookupDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m lookupSpinnerModel) View() string {
	if m.done {
		return ""
	}

	label := lookupSpinnerLabel
	if m.reported > 0 || m.missing > 0 {
		label = fmt.Sprintf("%s %d found", label, m.reported)
		if m.missing > 0 {
			label = fmt.Sprintf("%s, %d not found", label, m.missing)
		}
	}

	return m.spinner.View() + " " + label
}

// programLog hands each log line to the program, which prints it above the
// current frame instead of over it.
type programLog struct {
	program *tea.Program
}

func (w programLog) Write(p []byte) (int, error) {
	w.program.Send(lookupLogMsg(strings.TrimRight(string(p), "\n")))
	return len(p), nil
}

// runLookupSpinner animates on output until lookup returns, counting entries
// as they are emitted. Log output from logger is routed through the program
// while it runs. Enumerating a large NSS directory through getent can take
// seconds.
func runLookupSpinner(
	ctx context.Context,
	output io.Writer,
	logger *logrus.Logger,
	lookup func(context.Context, application.EmitFunc) error,
	emit application.EmitFunc,
) error {
	var p *tea.Program
	lookupCmd := func() tea.Msg {
		err := lookup(ctx, func(entry application.Entry) error {
			if err := emit(entry); err != nil {
				return err
			}
			p.Send(lookupEntryMsg{missing: entry.Report == nil})
			return nil
		})
		return lookupDoneMsg{err: err}
	}

	p = tea.NewProgram(
		newLookupSpinnerModel(lookupCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if logger != nil {
		previous := logger.Out
		logger.SetOutput(programLog{program: p})
		defer logger.SetOutput(previous)
	}

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(lookupSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
