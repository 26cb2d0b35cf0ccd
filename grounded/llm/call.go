package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
)

// Call is the Grounded operator that invokes a Model synchronously (spec
// §5: grounded payloads run to completion on the caller's thread). Its
// sole operand is a grounded Value holding a string prompt; its result is
// a grounded.Val holding the completion string.
//
// Grounded on the teacher's LogLLMCall/engine.Engine invocation pattern:
// every call is tagged with a uuid correlation id and its latency and
// success are logged at Info/Error (not Trace/Debug — unlike the kernel's
// own Step/Match, a Call is host-layered I/O, so it is allowed to log
// failures directly, per SPEC_FULL's ambient-logging note).
type Call struct {
	model  Model
	logger logging.Logger
}

// NewCall constructs a Call bound to model, optionally logging via logger
// (defaults to logging.NoOpLogger).
func NewCall(model Model, logger logging.Logger) *Call {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Call{model: model, logger: logger}
}

// Execute implements atom.Grounded.
func (c *Call) Execute(args, result atom.ExecSpace) error {
	content := args.Content()
	if len(content) != 2 {
		return space.NewInvalidArgument("llm.Call", "expected exactly one prompt argument")
	}
	promptVal, ok := grounded.AsValue(content[1])
	if !ok {
		return space.NewInvalidArgument("llm.Call", "prompt argument must be a grounded value")
	}
	prompt, ok := promptVal.Interface().(string)
	if !ok {
		return space.NewInvalidArgument("llm.Call", "prompt argument must be a string")
	}

	callID := uuid.NewString()
	start := time.Now()

	out, err := c.model.Generate(context.Background(), prompt)
	dur := time.Since(start)

	if kl, ok := c.logger.(*logging.KernelLogger); ok {
		kl.WithComponent("llm").WithRun(c.model.Info().Name, callID).LogLLMCall(c.model.Info().Name, len(out), dur, err == nil, err)
	} else if err != nil {
		c.logger.Error(fmt.Sprintf("llm call %s failed", callID), "error", err.Error())
	} else {
		c.logger.Info(fmt.Sprintf("llm call %s completed", callID), "model", c.model.Info().Name, "duration", dur)
	}
	if err != nil {
		return err
	}

	result.Add(grounded.Val(out))
	return nil
}

// Equals reports whether other is a Call bound to a Model with the same
// Info — Models have no natural value equality, so identity is reduced to
// the metadata they themselves expose.
func (c *Call) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	oc, ok := ga.Payload.(*Call)
	return ok && oc.model.Info() == c.model.Info()
}

// Render renders as "(llm-call <provider>/<model>)".
func (c *Call) Render() string {
	info := c.model.Info()
	return fmt.Sprintf("(llm-call %s/%s)", info.Provider, info.Name)
}
