package grounded_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
)

func TestValueEquals(t *testing.T) {
	a := grounded.Val(5)
	b := grounded.Val(5)
	c := grounded.Val(6)

	assert.True(t, atom.Equals(a, b))
	assert.False(t, atom.Equals(a, c))
}

func TestValueRender(t *testing.T) {
	assert.Equal(t, "5", atom.Render(grounded.Val(5)))
	assert.Equal(t, "hi", atom.Render(grounded.Val("hi")))
}

func TestValueExecuteDeclines(t *testing.T) {
	v := grounded.NewValue(5)
	err := v.Execute(space.New(), space.New())
	assert.Error(t, err)
}

func TestAsValueRejectsNonGrounded(t *testing.T) {
	_, ok := grounded.AsValue(atom.S("x"))
	assert.False(t, ok)
}
