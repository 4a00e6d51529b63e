package ports

import (
	"context"
	"iter"

	"github.com/bnema/finger-cli/internal/domain"
)

type AccountDirectory interface {
	LookupByLogin(ctx context.Context, login string) (domain.Account, error)
	// Accounts re-reads the directory on every call. Implementations release
	// their cursor when the caller stops iterating.
	Accounts(ctx context.Context) iter.Seq2[domain.Account, error]
}
