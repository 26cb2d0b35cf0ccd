package grounded_test

import (
	"bytes"
	"testing"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncCallsWrappedFunction(t *testing.T) {
	upper := atom.G(grounded.NewFunc("Upper", "uppercase a string", []string{"S"}, func(s string) string {
		out := make([]byte, len(s))
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			out[i] = c
		}
		return string(out)
	}))

	result := space.New()
	args := space.New(upper, grounded.Val("hi"))
	require.NoError(t, upper.(atom.GroundedAtom).Payload.Execute(args, result))
	assert.Equal(t, "<HI>", result.Render())
}

func TestFuncRejectsWrongArity(t *testing.T) {
	add := grounded.Add.(atom.GroundedAtom).Payload
	err := add.Execute(space.New(grounded.Add, grounded.Val(1)), space.New())
	assert.Error(t, err)
}

func TestFuncRejectsNonGroundedOperand(t *testing.T) {
	add := grounded.Add.(atom.GroundedAtom).Payload
	err := add.Execute(space.New(grounded.Add, atom.S("x"), grounded.Val(1)), space.New())
	assert.Error(t, err)
}

func TestFuncEqualsByName(t *testing.T) {
	assert.True(t, atom.Equals(grounded.Add, grounded.Add))
	assert.False(t, atom.Equals(grounded.Add, grounded.Sub))
}

func TestFuncLogsGroundedCall(t *testing.T) {
	var buf bytes.Buffer
	rl := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "json", Output: &buf})
	double := atom.G(grounded.NewFunc("Double", "double an int", []string{"N"}, func(n int) int { return n * 2 }, grounded.WithFuncLogger(rl)))

	result := space.New()
	require.NoError(t, double.(atom.GroundedAtom).Payload.Execute(space.New(double, grounded.Val(3)), result))
	assert.Equal(t, "<6>", result.Render())

	logged := buf.String()
	assert.Contains(t, logged, `"component":"grounded"`)
	assert.Contains(t, logged, `"grounded_name":"Double"`)
}
