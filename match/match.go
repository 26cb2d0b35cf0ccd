package match

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
)

// Option configures Match, following the functional-options idiom used by
// the teacher's LoopOption (and, in this module, interpreter.Option).
type Option func(*matchConfig)

type matchConfig struct {
	logger logging.Logger
}

// WithLogger sets the logger Match reports Trace/Debug diagnostics
// through. Defaults to logging.NoOpLogger. Grounded on the original C++
// GroundingSpace::match, which logs via clog::debug/clog::trace.
func WithLogger(l logging.Logger) Option {
	return func(c *matchConfig) { c.logger = l }
}

// MatchAtoms is the one-sided structural matcher (spec §4.3). It carries a
// directional asymmetry: b being a Variable is checked *before* dispatching
// on a's tag, so Variable(x) against Variable(y) records only y ↦ x in
// result.BBindings, never anything in result.ABindings. Any child failure in
// an Expression aborts the whole match; partial bindings already written into
// result are left as-is (MatchAtoms does not roll back on failure, matching
// the original's straight-line recursive implementation).
func MatchAtoms(a, b atom.Atom, result Result) bool {
	if b != nil && b.Tag() == atom.TagVariable {
		result.BBindings.Set(b.(atom.Variable).Name, a)
		return true
	}

	if a == nil {
		return b == nil
	}

	switch av := a.(type) {
	case atom.Symbol, atom.GroundedAtom:
		return atom.Equals(a, b)
	case atom.Variable:
		result.ABindings.Set(av.Name, b)
		return true
	case atom.Expression:
		if b == nil || b.Tag() != atom.TagExpression {
			return false
		}
		bv := b.(atom.Expression)
		if len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !MatchAtoms(av.Children[i], bv.Children[i], result) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ApplyBindings is the substitution function (spec §4.3): Symbols and
// Grounded atoms pass through unchanged, Variables are replaced by their
// binding when present, and Expressions are rebuilt with each child
// substituted in turn.
func ApplyBindings(a atom.Atom, bindings Bindings) atom.Atom {
	if a == nil {
		return a
	}
	switch av := a.(type) {
	case atom.Symbol, atom.GroundedAtom:
		return a
	case atom.Variable:
		if v, ok := bindings.Get(av.Name); ok {
			return v
		}
		return a
	case atom.Expression:
		children := make([]atom.Atom, len(av.Children))
		for i, c := range av.Children {
			children[i] = ApplyBindings(c, bindings)
		}
		return atom.EFromSlice(children)
	default:
		return a
	}
}

// composeBBindings resolves b_bindings through a_bindings (spec step 3):
// every v ↦ x in b_bindings is rewritten to v ↦ ApplyBindings(x, a_bindings),
// covering the case where a pattern variable matched a knowledge-base
// variable which itself got bound.
func composeBBindings(result Result) Bindings {
	composed := NewBindings()
	for _, name := range result.BBindings.SortedNames() {
		x, _ := result.BBindings.Get(name)
		composed.Set(name, ApplyBindings(x, result.ABindings))
	}
	return composed
}

// Match implements spec §4.3's top-level match: pattern must hold exactly
// one clause; every atom K in this space's content is matched against that
// clause; successful matches compose their bindings and instantiate every
// template atom, appending the result to out in order.
//
// Ordering (spec §5): results are appended in the order knowledge-base atoms
// appear in kb's content, and for each match the template atoms are
// appended in their declared order.
func Match(kb *space.Space, pattern, template space.API, out *space.Space, opts ...Option) error {
	cfg := matchConfig{logger: logging.NoOpLogger{}}
	for _, o := range opts {
		o(&cfg)
	}

	patternSpace, err := space.RequireGroundingSpace("Match", pattern)
	if err != nil {
		return err
	}
	templateSpace, err := space.RequireGroundingSpace("Match", template)
	if err != nil {
		return err
	}
	if len(patternSpace.Content()) != 1 {
		return space.NewInvalidArgument("Match", "pattern space must contain exactly one clause")
	}
	patternAtom := patternSpace.Content()[0]

	cfg.logger.Debug("match.Match: matching", "pattern", atom.Render(patternAtom), "template_size", len(templateSpace.Content()), "kb_size", kb.Len())

	matched := 0
	for _, kbAtom := range kb.Content() {
		result := NewResult()
		if !MatchAtoms(kbAtom, patternAtom, result) {
			cfg.logger.Trace("match.Match: candidate rejected", "atom", atom.Render(kbAtom))
			continue
		}
		cfg.logger.Trace("match.Match: candidate matched", "atom", atom.Render(kbAtom))
		matched++
		bBindings := composeBBindings(result)
		for _, t := range templateSpace.Content() {
			out.Add(ApplyBindings(t, bBindings))
		}
	}

	cfg.logger.Debug("match.Match: done", "matched", matched)
	return nil
}
