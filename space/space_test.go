package space_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
)

func TestAddContentRender(t *testing.T) {
	s := space.New(atom.S("A"), atom.S("B"))
	assert.Equal(t, "<A, B>", s.Render())

	s.Add(atom.V("x"))
	assert.Equal(t, "<A, B, $x>", s.Render())
	assert.Len(t, s.Content(), 3)
}

func TestEquals(t *testing.T) {
	a := space.New(atom.S("A"), atom.E(atom.S("B")))
	b := space.New(atom.S("A"), atom.E(atom.S("B")))
	c := space.New(atom.S("A"))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestAddFromNotImplemented(t *testing.T) {
	a := space.New()
	b := space.New(atom.S("x"))

	err := a.AddFrom(b)
	assert.Error(t, err)
	var spaceErr *space.Error
	assert.ErrorAs(t, err, &spaceErr)
	assert.Equal(t, space.CodeNotImplemented, spaceErr.Code)
}

func TestPopEmptyIsNoOp(t *testing.T) {
	s := space.New()
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestRequireGroundingSpace(t *testing.T) {
	s := space.New(atom.S("x"))
	got, err := space.RequireGroundingSpace("Test", s)
	assert.NoError(t, err)
	assert.Same(t, s, got)

	_, err = space.RequireGroundingSpace("Test", nil)
	assert.Error(t, err)
}
