package conformance

import (
	"fmt"

	"github.com/hupe1980/atomspace/interpreter"
	"github.com/hupe1980/atomspace/match"
	"github.com/hupe1980/atomspace/space"
)

// Invocation is what Run feeds the kernel: an initial space, the knowledge
// base it steps against, and how many interpreter.Step calls to perform
// before rendering the result. Naming follows the teacher's
// evaluation.Invocation, renamed from "what the model was asked" to "what
// the kernel was asked to reduce".
type Invocation struct {
	Self  *space.Space
	KB    *space.Space
	Steps int
}

// MatchInvocation is the match.Match counterpart of Invocation: a knowledge
// base plus a one-clause pattern space and a template space.
type MatchInvocation struct {
	KB       *space.Space
	Pattern  *space.Space
	Template *space.Space
}

// Result is what Run produces: the final space's Render() and any error
// encountered along the way. Naming follows the teacher's evaluation.Result.
type Result struct {
	Rendered string
	Err      error
}

// Scenario is one named, self-contained conformance case. Exactly one of
// Invocation or MatchInvocation is populated.
type Scenario struct {
	Name       string
	Invocation *Invocation
	Match      *MatchInvocation
	Want       string
}

// Run executes s against a fresh interpreter.Interpreter (for
// Scenario.Invocation cases) or match.Match (for Scenario.Match cases) and
// returns the rendered result.
func Run(s Scenario) Result {
	switch {
	case s.Invocation != nil:
		return runStep(s.Invocation)
	case s.Match != nil:
		return runMatch(s.Match)
	default:
		return Result{Err: fmt.Errorf("conformance: scenario %q has no invocation", s.Name)}
	}
}

func runStep(inv *Invocation) Result {
	it := interpreter.New()
	for i := 0; i < inv.Steps; i++ {
		if err := it.Step(inv.Self, inv.KB); err != nil {
			return Result{Rendered: inv.Self.Render(), Err: err}
		}
	}
	return Result{Rendered: inv.Self.Render()}
}

func runMatch(mi *MatchInvocation) Result {
	out := space.New()
	if err := match.Match(mi.KB, mi.Pattern, mi.Template, out); err != nil {
		return Result{Rendered: out.Render(), Err: err}
	}
	return Result{Rendered: out.Render()}
}

// Scenarios returns the six worked examples.
func Scenarios() []Scenario {
	return []Scenario{
		scenarioIdentityOnValues(),
		scenarioPlainGroundedReduction(),
		scenarioNonInterpretablePlainExpression(),
		scenarioNestedReduction(),
		scenarioMatching(),
		scenarioMatcherAsymmetry(),
	}
}
