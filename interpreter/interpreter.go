package interpreter

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
)

// Interpreter drives single-step reduction (spec §4.4) over a Space. It
// carries no state of its own beyond configuration — every Step call is
// self-contained, taking the working space and knowledge base as arguments,
// the way the teacher's Engine takes a session ID rather than holding one.
type Interpreter struct {
	logger logging.Logger
}

// Option configures an Interpreter, following the functional-options idiom
// used throughout the teacher (agent.LoopOption).
type Option func(*Interpreter)

// WithLogger sets the logger used for Trace/Debug diagnostics. Defaults to
// logging.NoOpLogger.
func WithLogger(l logging.Logger) Option {
	return func(it *Interpreter) { it.logger = l }
}

// New constructs an Interpreter.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{logger: logging.NoOpLogger{}}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Step implements spec §4.4: pop the tail atom of self; if it is not an
// Expression, drop it silently; if it is a plain Expression, try to
// interpret it directly; otherwise defer it behind a Simplifier
// continuation pushed back onto self. kb is validated (must be a
// GroundingSpace) but never read — spec §4.4 leaves the knowledge base
// parameter forward-compatible for the matching integration that a future
// interpret_step revision (out of scope here) would add.
func (it *Interpreter) Step(self *space.Space, kb space.API) error {
	if self == nil {
		return space.NewInvalidArgument("Step", "self space must not be nil")
	}
	if _, err := space.RequireGroundingSpace("Step", kb); err != nil {
		return err
	}

	a, ok := self.Pop()
	if !ok {
		it.logger.Trace("interpret_step: space is empty, nothing to do")
		return nil
	}
	it.logger.Debug("interpret_step: atom on top: %s", atom.Render(a))

	expr, ok := a.(atom.Expression)
	if !ok {
		return nil
	}

	if atom.IsPlain(expr) {
		it.logger.Trace("interpret_step: handle plain expression")
		_, err := handlePlain(expr, self)
		return err
	}

	it.logger.Trace("interpret_step: prepare to simplify expression")
	self.Add(atom.E(atom.G(newSimplifier(expr))))
	return nil
}

// handlePlain is the interpreter's single reduction rule (spec §4.4/§4.5):
// an Expression is interpretable only if its first child is a Grounded
// atom and no child is a Variable. It appends the Grounded payload's
// Execute output to result and reports whether it ran. Anything else —
// empty expression, non-Grounded operator, any Variable child — is
// declined so the caller can decide how to handle the unevaluated atom.
func handlePlain(expr atom.Expression, result atom.ExecSpace) (bool, error) {
	if len(expr.Children) == 0 {
		return false, nil
	}
	op := expr.Children[0]
	if op == nil || op.Tag() != atom.TagGrounded {
		return false, nil
	}
	for _, c := range expr.Children {
		if c != nil && c.Tag() == atom.TagVariable {
			return false, nil
		}
	}

	g := op.(atom.GroundedAtom)
	args := space.New(expr.Children...)
	if err := g.Payload.Execute(args, result); err != nil {
		return false, err
	}
	return true, nil
}
