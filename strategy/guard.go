package strategy

import (
	"errors"
	"sync"

	"github.com/hupe1980/atomspace/space"
)

// ErrConcurrentAccess is returned by Guard.With when another goroutine
// already holds the guard.
var ErrConcurrentAccess = errors.New("strategy: concurrent access to guarded space")

// Guard enforces spec §5's single-writer rule over a *space.Space:
// concurrent Add/Step/Match on the same Space is undefined, so rather than
// serializing callers behind a blocking lock (which would silently paper
// over a bug at the caller), Guard rejects a second caller outright.
//
// Grounded on the teacher's ParallelAgent, inverted: ParallelAgent
// coordinates genuinely concurrent children; Guard exists to make
// concurrent access to one Space a loud, immediate error instead.
type Guard struct {
	mu sync.Mutex
	sp *space.Space
}

// NewGuard wraps sp.
func NewGuard(sp *space.Space) *Guard {
	return &Guard{sp: sp}
}

// With runs fn with exclusive access to the guarded space. If another
// goroutine is already inside a With call, it returns ErrConcurrentAccess
// immediately without blocking.
func (g *Guard) With(fn func(*space.Space) error) error {
	if !g.mu.TryLock() {
		return ErrConcurrentAccess
	}
	defer g.mu.Unlock()
	return fn(g.sp)
}
