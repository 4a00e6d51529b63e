package ports

import (
	"context"

	"github.com/bnema/finger-cli/internal/domain"
)

type SessionLog interface {
	FindSession(ctx context.Context, login string) (domain.Session, error)
	FirstActiveSession(ctx context.Context) (domain.Session, error)
}
