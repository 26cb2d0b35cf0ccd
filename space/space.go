package space

import (
	"strings"

	"github.com/hupe1980/atomspace/atom"
)

// GroundingSpaceType is the one built-in space type-tag the core defines
// (spec §3, §6). Foreign tags are rejected by every operation that requires
// a concrete "grounding" space.
const GroundingSpaceType = "GroundingSpace"

// API is the minimal contract the interpreter and matcher consume (spec §6's
// SpaceAPI). A future alternative space implementation only needs to satisfy
// this to plug into interpreter.Step and match.Match — the core itself
// provides exactly one implementation, Space.
type API interface {
	// Type reports this space's type-tag.
	Type() string
	// AddFrom merges the content of other into this space. The core
	// explicitly refuses this operation (spec §4.2).
	AddFrom(other API) error
}

// Space is an ordered, duplicate-permitting sequence of atoms. It is not a
// set: insertion order matters because the interpreter treats the tail as
// the top of a stack (spec §3, §4.2).
//
// A Space is a single-writer resource (spec §5): concurrent Add/Step/Match
// on the same Space is undefined by this package. Callers that need to
// enforce that contract across goroutines should wrap a Space in
// strategy.Guard rather than relying on an internal lock here — Space
// itself stays lock-free to match the teacher's plain in-memory store shape
// and to keep Step's pop-then-mutate sequence a single, uninterrupted
// caller-visible operation.
type Space struct {
	content []atom.Atom
}

// New constructs a Space, optionally pre-populated with atoms in order.
func New(atoms ...atom.Atom) *Space {
	s := &Space{content: make([]atom.Atom, 0, len(atoms))}
	s.content = append(s.content, atoms...)
	return s
}

// Type implements API.
func (s *Space) Type() string { return GroundingSpaceType }

// Add appends atom a to the end of the content list.
func (s *Space) Add(a atom.Atom) {
	s.content = append(s.content, a)
}

// Content exposes the ordered content as a read-only view. Callers must not
// mutate the returned slice; it aliases the Space's backing array.
func (s *Space) Content() []atom.Atom {
	return s.content
}

// Len returns the number of atoms currently held.
func (s *Space) Len() int { return len(s.content) }

// pop removes and returns the tail atom, reporting false if the space is
// empty. Used by interpreter.Step, which treats content as a LIFO stack.
func (s *Space) pop() (atom.Atom, bool) {
	n := len(s.content)
	if n == 0 {
		return nil, false
	}
	a := s.content[n-1]
	s.content = s.content[:n-1]
	return a, true
}

// Pop is the exported form of pop, used by interpreter.Step across package
// boundaries. It is not part of the public read/write API surface described
// in spec §6 (add/content/match/interpret_step) and exists only so the
// interpreter package can drive the stack without duplicating Space's
// slice-management internals.
func (s *Space) Pop() (atom.Atom, bool) { return s.pop() }

// AddFrom refuses unconditionally: the core explicitly does not implement
// heterogeneous space cooperation (spec §4.2, §7). The signature exists so
// future space types could implement it.
func (s *Space) AddFrom(other API) error {
	return NewNotImplemented("Space.AddFrom", "add_from is not implemented")
}

// Equals reports whether two spaces have the same type-tag and pairwise
// atom-equal content, in order.
func (s *Space) Equals(other *Space) bool {
	if other == nil {
		return false
	}
	if s.Type() != other.Type() {
		return false
	}
	if len(s.content) != len(other.content) {
		return false
	}
	for i := range s.content {
		if !atom.Equals(s.content[i], other.content[i]) {
			return false
		}
	}
	return true
}

// Render returns the stable "<a1, a2, ..., an>" textual form (spec §6).
func (s *Space) Render() string {
	parts := make([]string, len(s.content))
	for i, a := range s.content {
		parts[i] = atom.Render(a)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// RequireGroundingSpace validates that candidate is a *Space with the
// built-in GroundingSpaceType tag, returning a CodeInvalidArgument Error
// (tagged with op) otherwise. Shared by match.Match and interpreter.Step,
// both of which must reject foreign space types (spec §4.3, §4.4, §7).
func RequireGroundingSpace(op string, candidate API) (*Space, error) {
	if candidate == nil || candidate.Type() != GroundingSpaceType {
		return nil, NewInvalidArgument(op, "only GroundingSpace knowledge bases/spaces are supported")
	}
	s, ok := candidate.(*Space)
	if !ok {
		return nil, NewInvalidArgument(op, "only GroundingSpace knowledge bases/spaces are supported")
	}
	return s, nil
}
