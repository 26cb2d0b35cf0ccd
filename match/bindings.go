package match

import (
	"sort"
	"strings"

	"github.com/hupe1980/atomspace/atom"
)

// Bindings is a finite mapping from a Variable's name to the Atom it is
// bound to. Iteration order must be deterministic — spec §3 calls for
// "sorted by variable name" — which a Go map cannot give natively, so
// Bindings pairs a map with an on-demand sorted key slice rather than
// relying on any incidental map ordering quirk (the origin of this
// requirement, the original's std::map<VariableAtomPtr, ...> with a
// name-ordering comparator, orders by construction; Go maps do not).
type Bindings map[string]atom.Atom

// NewBindings constructs an empty Bindings map.
func NewBindings() Bindings { return make(Bindings) }

// Set records name ↦ value, overwriting any previous binding for name. This
// is also how the "last write wins" double-bind behavior (spec §4.3, a
// documented known limitation, not reconciled here) surfaces: nothing checks
// whether a second bind of the same name agrees with the first.
func (b Bindings) Set(name string, value atom.Atom) {
	b[name] = value
}

// Get returns the atom bound to name, if any.
func (b Bindings) Get(name string) (atom.Atom, bool) {
	v, ok := b[name]
	return v, ok
}

// SortedNames returns the bound variable names in ascending order, giving
// deterministic iteration over the binding set.
func (b Bindings) SortedNames() []string {
	names := make([]string, 0, len(b))
	for k := range b {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Render renders the bindings as "{$x -> A, $y -> B}" in sorted-name order,
// for diagnostics only.
func (b Bindings) Render() string {
	names := b.SortedNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "$" + n + " -> " + atom.Render(b[n])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Result is a pair of binding maps produced by MatchAtoms: substitutions to
// be applied to the pattern side (ABindings) and to the queried side
// (BBindings) respectively (spec: MatchResult).
type Result struct {
	ABindings Bindings
	BBindings Bindings
}

// NewResult constructs an empty Result with both binding maps initialized.
func NewResult() Result {
	return Result{ABindings: NewBindings(), BBindings: NewBindings()}
}
