package interpreter_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNestedReductionScenario walks through spec §8 scenario 4 step by step:
// <(Add (Add 1 2) 3)> reduces to <6> across three interpret_step calls, with
// the second step rebuilding the Simplifier's full expression as (Add 3 3).
func TestNestedReductionScenario(t *testing.T) {
	inner := atom.E(atom.G(testAdd{}), atom.G(testInt(1)), atom.G(testInt(2)))
	outer := atom.E(atom.G(testAdd{}), inner, atom.G(testInt(3)))

	self := space.New(outer)
	kb := space.New()
	it := interpreter.New()

	// Step 1: outer is compound (inner is an Expression child), so it is
	// wrapped in a Simplifier continuation.
	require.NoError(t, it.Step(self, kb))
	require.Equal(t, 1, self.Len())
	wrapped, ok := self.Content()[0].(atom.Expression)
	require.True(t, ok)
	require.Len(t, wrapped.Children, 1)
	_, isGrounded := wrapped.Children[0].(atom.GroundedAtom)
	assert.True(t, isGrounded)

	// Step 2: reduces (Add 1 2) to 3 and rewrites full to (Add 3 3), pushing
	// a fresh Simplifier with one fewer pending sub-expression.
	require.NoError(t, it.Step(self, kb))
	require.Equal(t, 1, self.Len())

	// Step 3: full is now plain, (Add 3 3) reduces to 6.
	require.NoError(t, it.Step(self, kb))
	assert.Equal(t, "<6>", self.Render())
}

func TestNestedReductionWithTwoCompoundChildren(t *testing.T) {
	left := atom.E(atom.G(testAdd{}), atom.G(testInt(1)), atom.G(testInt(1)))
	right := atom.E(atom.G(testAdd{}), atom.G(testInt(2)), atom.G(testInt(2)))
	outer := atom.E(atom.G(testAdd{}), left, right)

	self := space.New(outer)
	kb := space.New()
	it := interpreter.New()

	for self.Len() > 0 {
		top := self.Content()[self.Len()-1]
		if _, ok := top.(atom.Expression); !ok {
			break
		}
		require.NoError(t, it.Step(self, kb))
	}

	assert.Equal(t, "<6>", self.Render())
}

func TestSimplifierRenderAndEqualsSameFull(t *testing.T) {
	expr := atom.E(atom.G(testAdd{}), atom.E(atom.G(testAdd{}), atom.G(testInt(1)), atom.G(testInt(2))), atom.G(testInt(3)))
	self := space.New(expr.(atom.Expression))
	kb := space.New()
	it := interpreter.New()

	require.NoError(t, it.Step(self, kb))
	wrapped := self.Content()[0].(atom.Expression)
	simp := wrapped.Children[0].(atom.GroundedAtom)

	assert.Contains(t, simp.Payload.Render(), "simplify")
	assert.True(t, simp.Payload.Equals(wrapped.Children[0]))
}
