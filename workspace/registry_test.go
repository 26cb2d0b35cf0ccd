package workspace_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/workspace"
	"github.com/stretchr/testify/assert"
)

func TestGetCreatesLazily(t *testing.T) {
	r := workspace.NewRegistry()
	sp := r.Get("main")
	assert.Equal(t, "<>", sp.Render())
	assert.Contains(t, r.Names(), "main")
}

func TestGetReturnsSameSpaceOnRepeatCalls(t *testing.T) {
	r := workspace.NewRegistry()
	first := r.Get("main")
	first.Add(atom.S("A"))

	second := r.Get("main")
	assert.Equal(t, "<A>", second.Render())
}

func TestCreateOverwritesExisting(t *testing.T) {
	r := workspace.NewRegistry()
	r.Get("main").Add(atom.S("A"))

	fresh := r.Create("main")
	assert.Equal(t, "<>", fresh.Render())
	assert.Equal(t, "<>", r.Get("main").Render())
}

func TestDeleteRemovesSpace(t *testing.T) {
	r := workspace.NewRegistry()
	r.Get("main")
	r.Delete("main")
	assert.NotContains(t, r.Names(), "main")
}
