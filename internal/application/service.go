package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

var personalFiles = [...]string{".plan", ".project", ".pgpkey"}

type Service struct {
	directory ports.AccountDirectory
	sessions  ports.SessionLog
	probe     ports.Probe
	clock     ports.Clock
	log       logrus.FieldLogger
}

func NewService(directory ports.AccountDirectory, sessions ports.SessionLog, probe ports.Probe, clock ports.Clock, log logrus.FieldLogger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Service{
		directory: directory,
		sessions:  sessions,
		probe:     probe,
		clock:     clock,
		log:       log,
	}
}

// Finger reports on every account the queries resolve to, or on the first
// logged-in user when no query is given. Entries are passed to emit in output order.
func (s *Service) Finger(ctx context.Context, queries []string, opts Options, emit EmitFunc) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	processed := NewProcessedSet(opts.MaxUsers)
	if len(queries) == 0 {
		return s.fingerFirstSession(ctx, processed, opts, emit)
	}

	var index NameIndex
	if opts.MatchNames {
		var err error
		index, err = BuildNameIndex(ctx, s.directory)
		if err != nil {
			return err
		}
		s.log.WithField("entries", index.Len()).Debug("built real name index")
	}

	for _, raw := range queries {
		query := truncateQuery(raw, opts.MaxQueryLength)

		candidates, err := s.Resolve(ctx, query, index, opts.MatchNames)
		if err != nil {
			return err
		}
		s.log.WithField("query", query).WithField("candidates", len(candidates)).Debug("resolved query")

		if len(candidates) == 0 {
			if !opts.MatchNames {
				return fmt.Errorf("user %q: %w", query, domain.ErrUserNotFound)
			}
			if err := emit(Entry{Missing: query}); err != nil {
				return err
			}
			continue
		}

		for _, candidate := range candidates {
			if candidate.Fuzzy {
				s.log.WithField("query", query).WithField("login", candidate.Login).Debug("matched real name")
			}
			if err := s.emitReport(ctx, candidate.Login, processed, opts, emit); err != nil {
				return err
			}
		}
	}

	s.log.WithField("users", processed.Len()).Debug("finger complete")
	return nil
}

func (s *Service) fingerFirstSession(ctx context.Context, processed *ProcessedSet, opts Options, emit EmitFunc) error {
	session, err := s.sessions.FirstActiveSession(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Debug("no active sessions")
			return nil
		}
		return fmt.Errorf("find first active session: %w", err)
	}

	return s.emitReport(ctx, session.Login, processed, opts, emit)
}

func (s *Service) emitReport(ctx context.Context, login string, processed *ProcessedSet, opts Options, emit EmitFunc) error {
	fresh, err := processed.Mark(login)
	if err != nil {
		if errors.Is(err, ErrProcessedSetFull) {
			s.log.WithField("login", login).WithField("limit", opts.MaxUsers).Warn("user limit reached, skipping")
			return nil
		}
		return err
	}
	if !fresh {
		s.log.WithField("login", login).Debug("already reported")
		return nil
	}

	report, err := s.BuildReport(ctx, login, opts)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.WithField("login", login).Warn("account disappeared before it could be reported")
			return emit(Entry{Missing: login})
		}
		return err
	}

	return emit(Entry{Report: &report})
}

// BuildReport merges every source of information about one login.
func (s *Service) BuildReport(ctx context.Context, login string, opts Options) (domain.Report, error) {
	account, err := s.directory.LookupByLogin(ctx, login)
	if err != nil {
		return domain.Report{}, fmt.Errorf("lookup account %q: %w", login, err)
	}

	info := account.Info()
	report := domain.Report{
		Login:       account.Login,
		RealName:    info.RealName,
		Office:      info.Office,
		OfficePhone: domain.FormatPhone(info.OfficePhone),
		HomePhone:   domain.FormatPhone(info.HomePhone),
		Home:        account.Home,
		Shell:       account.Shell,
		Terminal:    domain.UnknownTerminal,
		Idle:        domain.UnknownIdle,
		LoginTime:   domain.NeverLoggedIn,
	}

	session, err := s.sessions.FindSession(ctx, account.Login)
	switch {
	case err == nil:
		s.applySession(ctx, &report, session, opts)
	case errors.Is(err, domain.ErrSessionNotFound):
	case ctx.Err() != nil:
		return domain.Report{}, fmt.Errorf("find session for %q: %w", account.Login, err)
	default:
		s.log.WithError(err).WithField("login", account.Login).Debug("session log unreadable, reporting no session")
	}

	mailbox, err := s.probe.Mailbox(ctx, account.Login)
	if err != nil {
		s.log.WithError(err).WithField("login", account.Login).Debug("mailbox probe failed")
		mailbox = domain.MailboxState{}
	}
	report.Mail = mailbox.MailStatus()

	if opts.PersonalFiles {
		s.readPersonalFiles(ctx, &report, account.Home)
	}

	return report, nil
}

func (s *Service) applySession(ctx context.Context, report *domain.Report, session domain.Session, opts Options) {
	report.LoggedIn = true
	report.Host = session.Host
	report.LoginTime = domain.FormatLoginTime(session.LoginAt, opts.long())
	if session.Terminal == "" {
		return
	}
	report.Terminal = session.Terminal

	state, err := s.probe.Terminal(ctx, session.Terminal)
	if err != nil {
		s.log.WithError(err).WithField("tty", session.Terminal).Debug("terminal probe failed")
		return
	}
	report.Writable = state.Writable

	// Idle time needs both a terminal and a login time.
	if session.LoginAt.IsZero() {
		return
	}

	idle := s.clock.Now().Sub(state.LastAccess)
	if opts.long() {
		report.Idle = domain.FormatIdleLong(idle)
	} else {
		report.Idle = domain.FormatIdleShort(idle)
	}
}

func (s *Service) readPersonalFiles(ctx context.Context, report *domain.Report, home string) {
	targets := map[string]*string{
		".plan":    &report.Plan,
		".project": &report.Project,
		".pgpkey":  &report.PGPKey,
	}

	for _, name := range personalFiles {
		content, err := s.probe.PersonalFile(ctx, home, name)
		if err != nil {
			s.log.WithError(err).WithField("file", name).Debug("personal file unreadable")
			continue
		}
		*targets[name] = content
	}
}
