package strategy

import (
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
)

// Option configures RunToFixpoint, following the functional-options idiom
// used by the teacher's LoopOption.
type Option func(*runConfig)

type runConfig struct {
	maxSteps int
	logger   logging.Logger
}

// WithMaxSteps bounds the number of interpret_step invocations. Defaults to
// 100, the same ceiling the teacher's LoopAgent defaults to.
func WithMaxSteps(n int) Option {
	return func(c *runConfig) { c.maxSteps = n }
}

// WithLogger sets the logger RunToFixpoint reports progress through.
func WithLogger(l logging.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// RunToFixpoint repeatedly invokes it.Step(self, kb) until self's content
// holds no Expression atoms (spec §4.4's terminal condition — "the space
// contains only non-Expression atoms") or maxSteps is reached, whichever
// comes first. It returns the number of steps actually taken and whether a
// stable state was reached.
func RunToFixpoint(it *interpreter.Interpreter, self *space.Space, kb space.API, opts ...Option) (int, bool, error) {
	cfg := runConfig{maxSteps: 100, logger: logging.NoOpLogger{}}
	for _, o := range opts {
		o(&cfg)
	}

	start := time.Now()
	steps := 0
	for ; steps < cfg.maxSteps; steps++ {
		if stable(self) {
			break
		}
		if err := it.Step(self, kb); err != nil {
			cfg.logger.Debug("strategy.RunToFixpoint: step failed", "step", steps, "error", err.Error())
			return steps, false, err
		}
	}

	stabilized := stable(self)
	if kl, ok := cfg.logger.(*logging.KernelLogger); ok {
		kl.WithComponent("strategy").WithRun("self", uuid.NewString()).LogRun("self", steps, time.Since(start), stabilized, nil)
	} else {
		cfg.logger.Debug("strategy.RunToFixpoint: done", "steps", steps, "stabilized", stabilized)
	}
	return steps, stabilized, nil
}

// stable reports whether self holds no Expression atoms — every remaining
// atom has already reduced to a value the interpreter would simply
// discard.
func stable(self *space.Space) bool {
	for _, a := range self.Content() {
		if a != nil && a.Tag() == atom.TagExpression {
			return false
		}
	}
	return true
}
