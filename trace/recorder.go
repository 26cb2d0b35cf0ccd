package trace

import (
	"errors"
	"sync"

	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/space"
)

// ErrNotFound is returned by Recorder.Entries when the requested run id has
// no recorded entries.
var ErrNotFound = errors.New("trace: run not found")

// Entry is a single before/after snapshot of one interpreter.Step call.
type Entry struct {
	Before string
	After  string
	Err    error
}

// Recorder is an append-only, in-memory log of Entry values keyed by a
// caller-supplied run id. It is safe for concurrent use.
type Recorder struct {
	mu   sync.RWMutex
	runs map[string][]Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{runs: make(map[string][]Entry)}
}

// Step runs one interpreter.Step against self/kb, recording the space's
// Render() before and after the call under runID, and returns whatever
// error Step produced.
func (r *Recorder) Step(interp *interpreter.Interpreter, runID string, self *space.Space, kb space.API) error {
	before := self.Render()
	err := interp.Step(self, kb)
	after := self.Render()

	r.mu.Lock()
	r.runs[runID] = append(r.runs[runID], Entry{Before: before, After: after, Err: err})
	r.mu.Unlock()

	return err
}

// Entries returns a copy of the recorded entries for runID, in step order.
func (r *Recorder) Entries(runID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries, ok := r.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return cp, nil
}

// Runs returns the currently recorded run ids in no particular order.
func (r *Recorder) Runs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.runs))
	for id := range r.runs {
		ids = append(ids, id)
	}
	return ids
}

// Clear discards all recorded entries for runID.
func (r *Recorder) Clear(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, runID)
}
