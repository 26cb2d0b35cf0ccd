package workspace

import (
	"sync"

	"github.com/hupe1980/atomspace/space"
)

// Registry is a volatile, process-local collection of named spaces. It is
// safe for concurrent use; callers still own the single-writer discipline
// (spec §5) of any individual *space.Space they retrieve.
type Registry struct {
	mu     sync.RWMutex
	spaces map[string]*space.Space
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]*space.Space)}
}

// Get returns the named space, lazily creating an empty one if it does
// not exist yet.
func (r *Registry) Get(name string) *space.Space {
	r.mu.RLock()
	sp, ok := r.spaces[name]
	r.mu.RUnlock()
	if ok {
		return sp
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sp, ok := r.spaces[name]; ok {
		return sp
	}
	sp = space.New()
	r.spaces[name] = sp
	return sp
}

// Create forces a fresh, empty space under name, overwriting any existing
// one.
func (r *Registry) Create(name string) *space.Space {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp := space.New()
	r.spaces[name] = sp
	return sp
}

// Delete removes the named space, if present.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.spaces, name)
}

// Names returns the currently registered space names in no particular
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.spaces))
	for name := range r.spaces {
		names = append(names, name)
	}
	return names
}
