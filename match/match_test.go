package match_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/match"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
)

func TestMatchParentChild(t *testing.T) {
	kb := space.New(
		atom.E(atom.S("parent"), atom.S("Alice"), atom.S("Bob")),
		atom.E(atom.S("parent"), atom.S("Bob"), atom.S("Carol")),
	)
	pattern := space.New(atom.E(atom.S("parent"), atom.V("x"), atom.S("Bob")))
	template := space.New(atom.V("x"))
	out := space.New()

	err := match.Match(kb, pattern, template, out)
	assert.NoError(t, err)
	assert.Equal(t, "<Alice>", out.Render())
}

func TestMatchAsymmetry(t *testing.T) {
	kb := space.New(atom.V("y"))
	pattern := space.New(atom.V("x"))
	template := space.New(atom.V("x"))
	out := space.New()

	err := match.Match(kb, pattern, template, out)
	assert.NoError(t, err)
	assert.Equal(t, "<$y>", out.Render())
}

func TestMatchRejectsMultiClausePattern(t *testing.T) {
	kb := space.New(atom.S("A"))
	pattern := space.New(atom.S("A"), atom.S("B"))
	template := space.New(atom.S("A"))
	out := space.New()

	err := match.Match(kb, pattern, template, out)
	assert.Error(t, err)
}

func TestMatchAtomsVariableOnBChecksFirst(t *testing.T) {
	result := match.NewResult()
	ok := match.MatchAtoms(atom.V("x"), atom.V("y"), result)
	assert.True(t, ok)
	_, aHasX := result.ABindings.Get("x")
	assert.False(t, aHasX)
	yBound, ok := result.BBindings.Get("y")
	assert.True(t, ok)
	assert.True(t, atom.Equals(yBound, atom.V("x")))
}

func TestApplyBindingsIdempotentWhenNoOverlap(t *testing.T) {
	b := match.NewBindings()
	b.Set("x", atom.S("A"))
	tmpl := atom.E(atom.V("x"), atom.S("y"))

	once := match.ApplyBindings(tmpl, b)
	twice := match.ApplyBindings(once, b)
	assert.True(t, atom.Equals(once, twice))
}

func TestApplyBindingsPassthroughWhenNoVariableBound(t *testing.T) {
	b := match.NewBindings()
	b.Set("unused", atom.S("Z"))
	term := atom.E(atom.S("a"), atom.S("b"))

	assert.True(t, atom.Equals(term, match.ApplyBindings(term, b)))
}

type recordingLogger struct {
	debugCalls int
	traceCalls int
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.traceCalls++ }
func (r *recordingLogger) Debug(msg string, args ...any) { r.debugCalls++ }
func (r *recordingLogger) Info(msg string, args ...any)  {}
func (r *recordingLogger) Warn(msg string, args ...any)  {}
func (r *recordingLogger) Error(msg string, args ...any) {}

func TestMatchLogsDebugAndTracePerCandidate(t *testing.T) {
	kb := space.New(
		atom.E(atom.S("parent"), atom.S("Alice"), atom.S("Bob")),
		atom.S("unrelated"),
	)
	pattern := space.New(atom.E(atom.S("parent"), atom.V("x"), atom.S("Bob")))
	template := space.New(atom.V("x"))
	out := space.New()

	rl := &recordingLogger{}
	err := match.Match(kb, pattern, template, out, match.WithLogger(rl))
	assert.NoError(t, err)
	assert.Equal(t, "<Alice>", out.Render())

	// one Trace call per kb candidate, plus two Debug calls (start and done).
	assert.Equal(t, 2, rl.traceCalls)
	assert.Equal(t, 2, rl.debugCalls)
}

func TestMatchDoubleBoundVariableLastWriteWins(t *testing.T) {
	// Known limitation (spec §4.3): matching $x against both A and B in one
	// expression does not fail — the second binding overwrites the first.
	result := match.NewResult()
	a := atom.E(atom.V("x"), atom.V("x"))
	b := atom.E(atom.S("A"), atom.S("B"))
	ok := match.MatchAtoms(a, b, result)
	assert.True(t, ok)
	bound, _ := result.ABindings.Get("x")
	assert.True(t, atom.Equals(bound, atom.S("B")))
}
