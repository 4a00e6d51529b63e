package passwd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
)

const DefaultPath = "/etc/passwd"

type openFunc func(path string) (io.ReadCloser, error)

type Directory struct {
	path string
	open openFunc
}

var _ ports.AccountDirectory = (*Directory)(nil)

func NewDirectory(path string) *Directory {
	if path == "" {
		path = DefaultPath
	}

	return &Directory{path: filepath.Clean(path), open: openFile}
}

func (d *Directory) LookupByLogin(ctx context.Context, login string) (domain.Account, error) {
	for account, err := range d.Accounts(ctx) {
		if err != nil {
			return domain.Account{}, err
		}
		if account.Login == login {
			return account, nil
		}
	}

	return domain.Account{}, domain.ErrUserNotFound
}

// Accounts opens the file for each iteration and closes it when the loop ends,
// including on break.
func (d *Directory) Accounts(ctx context.Context) iter.Seq2[domain.Account, error] {
	return func(yield func(domain.Account, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(domain.Account{}, err)
			return
		}

		file, err := d.open(d.path)
		if err != nil {
			yield(domain.Account{}, fmt.Errorf("open passwd file: %w", err))
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			account, ok := ParseLine(scanner.Text())
			if !ok {
				continue
			}
			if !yield(account, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(domain.Account{}, fmt.Errorf("read passwd file: %w", err))
		}
	}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
