package llm_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/grounded/llm"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallReturnsRegisteredResponse(t *testing.T) {
	model := llm.NewMockModel("test-model")
	model.AddResponse("hello", "world")
	call := atom.G(llm.NewCall(model, logging.NoOpLogger{}))

	self := space.New(atom.E(call, grounded.Val("hello")))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, `<world>`, self.Render())
}

func TestCallEchoesUnregisteredPrompt(t *testing.T) {
	model := llm.NewMockModel("test-model")
	call := atom.G(llm.NewCall(model, nil))

	self := space.New(atom.E(call, grounded.Val("anything")))
	it := interpreter.New()
	require.NoError(t, it.Step(self, space.New()))
	assert.Equal(t, `<mock response to: anything>`, self.Render())
}

func TestCallRejectsNonStringPrompt(t *testing.T) {
	model := llm.NewMockModel("test-model")
	c := llm.NewCall(model, nil)
	err := c.Execute(space.New(atom.G(c), grounded.Val(5)), space.New())
	assert.Error(t, err)
}
