package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/finger-cli/internal/domain"
	"github.com/bnema/finger-cli/internal/ports"
)

const (
	DefaultDevRoot  = "/dev"
	DefaultMailRoot = "/var/mail"

	// DefaultPersonalFileBytes matches a 1 KiB read buffer minus its terminator.
	DefaultPersonalFileBytes = 1023
)

var personalFileNames = map[string]struct{}{
	".plan":    {},
	".project": {},
	".pgpkey":  {},
}

// Probe reads per-user artifacts from the local filesystem.
type Probe struct {
	devRoot      string
	mailRoot     string
	maxFileBytes int64
}

var _ ports.Probe = (*Probe)(nil)

func NewProbe(devRoot string, mailRoot string, maxFileBytes int64) *Probe {
	if devRoot == "" {
		devRoot = DefaultDevRoot
	}
	if mailRoot == "" {
		mailRoot = DefaultMailRoot
	}
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultPersonalFileBytes
	}

	return &Probe{
		devRoot:      filepath.Clean(devRoot),
		mailRoot:     filepath.Clean(mailRoot),
		maxFileBytes: maxFileBytes,
	}
}

func (p *Probe) Terminal(ctx context.Context, tty string) (domain.TerminalState, error) {
	if err := ctx.Err(); err != nil {
		return domain.TerminalState{}, err
	}

	path, err := join(p.devRoot, tty, "terminal")
	if err != nil {
		return domain.TerminalState{}, err
	}

	accessed, err := lastAccess(path)
	if err != nil {
		return domain.TerminalState{}, fmt.Errorf("stat terminal %q: %w", tty, err)
	}

	return domain.TerminalState{
		LastAccess: accessed,
		Writable:   writable(path),
	}, nil
}

func (p *Probe) Mailbox(ctx context.Context, login string) (domain.MailboxState, error) {
	if err := ctx.Err(); err != nil {
		return domain.MailboxState{}, err
	}
	if strings.ContainsRune(login, filepath.Separator) {
		return domain.MailboxState{}, fmt.Errorf("invalid mailbox name %q", login)
	}

	path, err := join(p.mailRoot, login, "mailbox")
	if err != nil {
		return domain.MailboxState{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.MailboxState{}, nil
		}
		return domain.MailboxState{}, fmt.Errorf("stat mailbox %q: %w", login, err)
	}

	return domain.MailboxState{
		Exists:  true,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// PersonalFile returns at most maxFileBytes of a dotfile in home. A missing
// file reads as empty.
func (p *Probe) PersonalFile(ctx context.Context, home string, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, ok := personalFileNames[name]; !ok {
		return "", fmt.Errorf("invalid personal file %q", name)
	}
	if strings.TrimSpace(home) == "" {
		return "", nil
	}

	file, err := os.Open(filepath.Join(filepath.Clean(home), name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("open personal file %q: %w", name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, p.maxFileBytes))
	if err != nil {
		return "", fmt.Errorf("read personal file %q: %w", name, err)
	}

	return string(data), nil
}

func join(root string, name string, kind string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%s name is empty", kind)
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid %s name %q", kind, name)
	}

	return filepath.Join(root, cleaned), nil
}
