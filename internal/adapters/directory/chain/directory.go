package chain

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/bnema/finger-cli/internal/adapters/directory/getent"
	"github.com/bnema/finger-cli/internal/adapters/directory/passwd"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
)

type Directory struct {
	primary  ports.AccountDirectory
	fallback ports.AccountDirectory
}

var _ ports.AccountDirectory = (*Directory)(nil)

var (
	errNilPrimaryDirectory  = errors.New("primary account directory is nil")
	errNilFallbackDirectory = errors.New("fallback account directory is nil")
)

func NewDirectory(primary ports.AccountDirectory, fallback ports.AccountDirectory) (*Directory, error) {
	if primary == nil {
		return nil, errNilPrimaryDirectory
	}
	if fallback == nil {
		return nil, errNilFallbackDirectory
	}

	return &Directory{primary: primary, fallback: fallback}, nil
}

// NewGetentFirstWithFileFallback asks the name service first and reads the
// passwd file when getent is missing or broken.
func NewGetentFirstWithFileFallback(passwdPath string) (*Directory, error) {
	return NewDirectory(getent.NewDirectory(), passwd.NewDirectory(passwdPath))
}

func (d *Directory) LookupByLogin(ctx context.Context, login string) (domain.Account, error) {
	account, err := d.primary.LookupByLogin(ctx, login)
	if err == nil {
		return account, nil
	}
	if shouldSkipFallback(err) {
		return domain.Account{}, err
	}

	fallbackAccount, fallbackErr := d.fallback.LookupByLogin(ctx, login)
	if fallbackErr == nil {
		return fallbackAccount, nil
	}

	return domain.Account{}, fmt.Errorf("primary directory lookup failed: %w; fallback directory lookup failed: %w", err, fallbackErr)
}

// Accounts switches to the fallback only when the primary fails before
// producing any account.
func (d *Directory) Accounts(ctx context.Context) iter.Seq2[domain.Account, error] {
	return func(yield func(domain.Account, error) bool) {
		yielded := false
		var primaryErr error

		for account, err := range d.primary.Accounts(ctx) {
			if err != nil {
				if yielded || shouldSkipFallback(err) {
					yield(domain.Account{}, err)
					return
				}
				primaryErr = err
				break
			}

			yielded = true
			if !yield(account, nil) {
				return
			}
		}

		if primaryErr == nil {
			return
		}

		for account, err := range d.fallback.Accounts(ctx) {
			if err != nil {
				yield(domain.Account{}, fmt.Errorf("primary directory enumerate failed: %w; fallback directory enumerate failed: %w", primaryErr, err))
				return
			}
			if !yield(account, nil) {
				return
			}
		}
	}
}

// A missing user is an authoritative answer from the name service.
func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrUserNotFound)
}
