package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/finger-cli/internal/adapters/directory/chain"
	"github.com/bnema/finger-cli/internal/adapters/directory/getent"
	"github.com/bnema/finger-cli/internal/adapters/directory/passwd"
	fsprobe "github.com/bnema/finger-cli/internal/adapters/probe/fs"
	fingerrender "github.com/bnema/finger-cli/internal/adapters/render/finger"
	"github.com/bnema/finger-cli/internal/adapters/render/structured"
	"github.com/bnema/finger-cli/internal/adapters/sessions/utmp"
	"github.com/bnema/finger-cli/internal/application"
	"github.com/bnema/finger-cli/internal/config"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type app struct {
	service          *application.Service
	textRenderer     func([]domain.Report, fingerrender.RenderOptions) string
	structuredWriter func(io.Writer, []domain.Report, []string, structured.Options) error
	isTerminal       func(io.Writer) bool
}

func wireApp(cfg config.Config, logger *logrus.Logger) (*app, error) {
	directory, err := newAccountDirectory(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("wire account directory: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"directory": cfg.Directory.Source,
		"var_root":  cfg.Sessions.VarRoot,
		"dev_root":  cfg.Probe.DevRoot,
		"mail_root": cfg.Probe.MailRoot,
	}).Debug("wiring finger service")

	sessions := utmp.NewLog(cfg.Sessions.VarRoot)
	probe := fsprobe.NewProbe(cfg.Probe.DevRoot, cfg.Probe.MailRoot, cfg.Limits.PersonalFileBytes)

	return &app{
		service:          application.NewService(directory, sessions, probe, ports.SystemClock{}, logger),
		textRenderer:     fingerrender.Render,
		structuredWriter: structured.Write,
		isTerminal:       writerIsTerminal,
	}, nil
}

func newAccountDirectory(cfg config.Directory) (ports.AccountDirectory, error) {
	switch cfg.Source {
	case config.SourceFile:
		return passwd.NewDirectory(cfg.PasswdPath), nil
	case config.SourceGetent:
		return getent.NewDirectory(), nil
	case config.SourceAuto:
		return chain.NewGetentFirstWithFileFallback(cfg.PasswdPath)
	default:
		return nil, fmt.Errorf("unsupported directory source %q", cfg.Source)
	}
}
