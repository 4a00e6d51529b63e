package utmp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/host"
)

type usersFunc func(ctx context.Context) ([]host.UserStat, error)

type Log struct {
	varRoot string
	users   usersFunc
}

var _ ports.SessionLog = (*Log)(nil)

// NewLog reads <varRoot>/run/utmp. An empty varRoot keeps the gopsutil default.
func NewLog(varRoot string) *Log {
	return &Log{varRoot: varRoot, users: host.UsersWithContext}
}

func (l *Log) FindSession(ctx context.Context, login string) (domain.Session, error) {
	sessions, err := l.sessions(ctx)
	if err != nil {
		return domain.Session{}, err
	}

	for _, session := range sessions {
		if session.Login == login {
			return session, nil
		}
	}

	return domain.Session{}, domain.ErrSessionNotFound
}

func (l *Log) FirstActiveSession(ctx context.Context) (domain.Session, error) {
	sessions, err := l.sessions(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if len(sessions) == 0 {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return sessions[0], nil
}

func (l *Log) sessions(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.varRoot != "" {
		ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{common.HostVarEnvKey: l.varRoot})
	}

	stats, err := l.users(ctx)
	if err != nil {
		// Hosts without utmp (recent systemd) have no session records at all.
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session log: %w", err)
	}

	sessions := make([]domain.Session, 0, len(stats))
	for _, stat := range stats {
		if stat.User == "" {
			continue
		}
		sessions = append(sessions, toSession(stat))
	}

	return sessions, nil
}

func toSession(stat host.UserStat) domain.Session {
	session := domain.Session{
		Login:    stat.User,
		Terminal: stat.Terminal,
		Host:     stat.Host,
	}
	if stat.Started > 0 {
		session.LoginAt = time.Unix(int64(stat.Started), 0)
	}

	return session
}
