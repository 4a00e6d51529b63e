package application

import (
	"errors"
	"sync"
)

var ErrProcessedSetFull = errors.New("processed user limit reached")

// ProcessedSet remembers which logins were already reported during one run.
type ProcessedSet struct {
	mu       sync.Mutex
	capacity int
	seen     map[string]struct{}
}

func NewProcessedSet(capacity int) *ProcessedSet {
	if capacity <= 0 {
		capacity = DefaultMaxUsers
	}

	return &ProcessedSet{
		capacity: capacity,
		seen:     make(map[string]struct{}, capacity),
	}
}

// Mark records login and reports whether it was new. Check and insert happen
// under one lock so a login is reported at most once.
func (p *ProcessedSet) Mark(login string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[login]; ok {
		return false, nil
	}
	if len(p.seen) >= p.capacity {
		return false, ErrProcessedSetFull
	}

	p.seen[login] = struct{}{}
	return true, nil
}

func (p *ProcessedSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.seen)
}
