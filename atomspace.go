// Package atomspace provides a high-level facade over the evaluation
// kernel (space, match, interpreter) and its supporting packages
// (grounded, strategy, rewrite, workspace, trace), enabling quick
// construction of a working atomspace without wiring every package by
// hand. Most applications interact with this package by:
//  1. Creating an AtomSpace via New() (optionally overriding the default
//     logger or the preloaded grounded atom library)
//  2. Obtaining named spaces via Workspace()
//  3. Driving reduction with Step or RunToFixpoint
//
// The facade delegates the actual algorithms to the underlying packages;
// it exists for setup and usage ergonomics, the way the teacher's
// top-level package wraps engine.Engine.
package atomspace

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/rewrite"
	"github.com/hupe1980/atomspace/space"
	"github.com/hupe1980/atomspace/strategy"
	"github.com/hupe1980/atomspace/workspace"
)

// Options configures an AtomSpace.
type Options struct {
	// Logger receives Trace/Debug diagnostics from the interpreter and
	// matcher. Defaults to logging.NoOpLogger.
	Logger logging.Logger

	// Prelude lists Grounded atoms that seed the shared knowledge base
	// (see KnowledgeBase) when New runs. Named spaces returned by
	// Workspace() start empty. Defaults to DefaultPrelude().
	Prelude []atom.Atom

	// MaxSteps bounds RunToFixpoint's iteration count. Defaults to 100,
	// mirroring strategy.RunToFixpoint's own default.
	MaxSteps int
}

// DefaultPrelude is the grounded atom library bound into a new
// AtomSpace's knowledge base unless Options.Prelude overrides it.
func DefaultPrelude() []atom.Atom {
	return []atom.Atom{grounded.Add, grounded.Sub, grounded.Mul, grounded.Div, grounded.Eq, grounded.Not, grounded.Cons}
}

// AtomSpace is the facade aggregating a named space registry, a
// preloaded knowledge base, and an interpreter configured against the
// same logger.
type AtomSpace struct {
	opts   Options
	interp *interpreter.Interpreter
	reg    *workspace.Registry
	kb     *space.Space
	guards map[string]*strategy.Guard
}

// New creates an AtomSpace with optional overrides. Any unset option is
// initialized with its documented default.
func New(optFns ...func(o *Options)) *AtomSpace {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Prelude:  DefaultPrelude(),
		MaxSteps: 100,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &AtomSpace{
		opts:   opts,
		interp: interpreter.New(interpreter.WithLogger(opts.Logger)),
		reg:    workspace.NewRegistry(),
		kb:     space.New(opts.Prelude...),
		guards: make(map[string]*strategy.Guard),
	}
}

// Workspace returns the named space, lazily creating an empty one on
// first access.
func (m *AtomSpace) Workspace(name string) *space.Space {
	return m.reg.Get(name)
}

// KnowledgeBase returns the shared knowledge base space, preloaded with
// Options.Prelude.
func (m *AtomSpace) KnowledgeBase() *space.Space {
	return m.kb
}

// Guard returns the strategy.Guard serializing access to the named
// space, creating one on first access.
func (m *AtomSpace) Guard(name string) *strategy.Guard {
	if g, ok := m.guards[name]; ok {
		return g
	}
	g := strategy.NewGuard(m.Workspace(name))
	m.guards[name] = g
	return g
}

// Step runs a single interpreter.Step against the named space using this
// AtomSpace's knowledge base.
func (m *AtomSpace) Step(name string) error {
	return m.interp.Step(m.Workspace(name), m.kb)
}

// RunToFixpoint runs strategy.RunToFixpoint against the named space,
// bounded by Options.MaxSteps.
func (m *AtomSpace) RunToFixpoint(name string) (steps int, stabilized bool, err error) {
	return strategy.RunToFixpoint(m.interp, m.Workspace(name), m.kb, strategy.WithMaxSteps(m.opts.MaxSteps))
}

// RuleSet returns a fresh, empty rewrite.RuleSet configured with this
// AtomSpace's logger, ready to have rules Add-ed and Applied against any
// of its spaces.
func (m *AtomSpace) RuleSet() *rewrite.RuleSet {
	return rewrite.New(rewrite.WithLogger(m.opts.Logger))
}
