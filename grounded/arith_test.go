package grounded_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReducesToSum(t *testing.T) {
	self := space.New(atom.E(grounded.Add, grounded.Val(2), grounded.Val(3)))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, "<5>", self.Render())
}

func TestDivByZeroPropagatesError(t *testing.T) {
	self := space.New(atom.E(grounded.Div, grounded.Val(1), grounded.Val(0)))
	it := interpreter.New()
	err := it.Step(self, space.New())
	assert.Error(t, err)
}

func TestEqOnEqualValues(t *testing.T) {
	self := space.New(atom.E(grounded.Eq, grounded.Val(2), grounded.Val(2)))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, "<true>", self.Render())
}

func TestEqOnEqualSymbols(t *testing.T) {
	self := space.New(atom.E(grounded.Eq, atom.S("foo"), atom.S("foo")))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, "<true>", self.Render())
}

func TestEqOnUnequalExpressions(t *testing.T) {
	self := space.New(atom.E(
		grounded.Eq,
		atom.E(atom.S("foo"), atom.S("1")),
		atom.E(atom.S("foo"), atom.S("2")),
	))
	it := interpreter.New()
	// The operands are Expressions, so the call is compound: one step wraps
	// it in a Simplifier, one step per operand, and one step runs Eq.
	for i := 0; i < 4; i++ {
		require.NoError(t, it.Step(self, space.New()))
	}
	assert.Equal(t, "<false>", self.Render())
}

func TestEqRejectsWrongArity(t *testing.T) {
	err := grounded.Eq.(atom.GroundedAtom).Payload.Execute(space.New(grounded.Eq, atom.S("x")), space.New())
	assert.Error(t, err)
}

func TestConsBuildsPairExpression(t *testing.T) {
	self := space.New(atom.E(grounded.Cons, atom.S("A"), atom.S("B")))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, "<(A B)>", self.Render())
}

func TestConsRejectsWrongArity(t *testing.T) {
	err := grounded.Cons.(atom.GroundedAtom).Payload.Execute(space.New(grounded.Cons, atom.S("x")), space.New())
	assert.Error(t, err)
}

func TestNotNegatesBool(t *testing.T) {
	self := space.New(atom.E(grounded.Not, grounded.Val(true)))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, "<false>", self.Render())
}

func TestNestedArithmeticAcrossSteps(t *testing.T) {
	inner := atom.E(grounded.Add, grounded.Val(1), grounded.Val(2))
	outer := atom.E(grounded.Mul, inner, grounded.Val(3))

	self := space.New(outer)
	it := interpreter.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, it.Step(self, space.New()))
	}
	assert.Equal(t, "<9>", self.Render())
}
