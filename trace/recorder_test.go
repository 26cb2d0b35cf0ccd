package trace_test

import (
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/space"
	"github.com/hupe1980/atomspace/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderStepCapturesBeforeAndAfter(t *testing.T) {
	self := space.New(atom.E(grounded.Add, grounded.Val(1), grounded.Val(2)))
	kb := space.New()
	it := interpreter.New()
	rec := trace.NewRecorder()

	err := rec.Step(it, "run-1", self, kb)
	require.NoError(t, err)

	entries, err := rec.Entries("run-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Before, "Add")
	assert.Equal(t, "<3>", entries[0].After)
	assert.NoError(t, entries[0].Err)
}

func TestRecorderAccumulatesAcrossSteps(t *testing.T) {
	self := space.New(
		atom.E(grounded.Add, grounded.Val(1), grounded.Val(2)),
		atom.E(grounded.Add, grounded.Val(3), grounded.Val(4)),
	)
	kb := space.New()
	it := interpreter.New()
	rec := trace.NewRecorder()

	require.NoError(t, rec.Step(it, "run-1", self, kb))
	require.NoError(t, rec.Step(it, "run-1", self, kb))

	entries, err := rec.Entries("run-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Contains(t, rec.Runs(), "run-1")
}

func TestRecorderEntriesUnknownRun(t *testing.T) {
	rec := trace.NewRecorder()
	_, err := rec.Entries("missing")
	assert.ErrorIs(t, err, trace.ErrNotFound)
}

func TestRecorderClear(t *testing.T) {
	self := space.New(atom.S("A"))
	kb := space.New()
	it := interpreter.New()
	rec := trace.NewRecorder()

	require.NoError(t, rec.Step(it, "run-1", self, kb))
	rec.Clear("run-1")

	_, err := rec.Entries("run-1")
	assert.ErrorIs(t, err, trace.ErrNotFound)
}
