package getent

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os/exec"
	"strings"

	"github.com/bnema/finger-cli/internal/adapters/directory/passwd"
	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
)

var ErrUnavailable = errors.New("getent command unavailable")

// getent exits with 2 when a requested key is not in the database.
const exitKeyNotFound = 2

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

// Directory resolves accounts through the system name service switch.
type Directory struct {
	run runFunc
}

var _ ports.AccountDirectory = (*Directory)(nil)

func NewDirectory() *Directory {
	return &Directory{run: runGetentCommand}
}

func (d *Directory) LookupByLogin(ctx context.Context, login string) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	stdout, stderr, err := d.run(ctx, "passwd", login)
	if err != nil {
		if exitCode(err) == exitKeyNotFound {
			return domain.Account{}, domain.ErrUserNotFound
		}
		return domain.Account{}, formatError("passwd "+login, err, stderr)
	}

	for _, line := range strings.Split(stdout, "\n") {
		account, ok := passwd.ParseLine(line)
		if ok && account.Login == login {
			return account, nil
		}
	}

	return domain.Account{}, domain.ErrUserNotFound
}

func (d *Directory) Accounts(ctx context.Context) iter.Seq2[domain.Account, error] {
	return func(yield func(domain.Account, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(domain.Account{}, err)
			return
		}

		stdout, stderr, err := d.run(ctx, "passwd")
		if err != nil {
			yield(domain.Account{}, formatError("passwd", err, stderr))
			return
		}

		scanner := bufio.NewScanner(strings.NewReader(stdout))
		for scanner.Scan() {
			account, ok := passwd.ParseLine(scanner.Text())
			if !ok {
				continue
			}
			if !yield(account, nil) {
				return
			}
		}
	}
}

func runGetentCommand(ctx context.Context, args ...string) (string, string, error) {
	path, err := exec.LookPath("getent")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate getent command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

func formatError(query string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("getent %s: %w", query, err)
	}

	return fmt.Errorf("getent %s: %w: %s", query, err, stderr)
}
