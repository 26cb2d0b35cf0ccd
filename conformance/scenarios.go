package conformance

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/grounded"
	"github.com/hupe1980/atomspace/space"
)

// scenarioIdentityOnValues is spec scenario 1: popping a non-Expression tail
// atom is a silent discard.
func scenarioIdentityOnValues() Scenario {
	return Scenario{
		Name: "identity on values",
		Invocation: &Invocation{
			Self:  space.New(atom.S("A"), atom.S("B")),
			KB:    space.New(),
			Steps: 1,
		},
		Want: "<A>",
	}
}

// scenarioPlainGroundedReduction is spec scenario 2: a plain Expression
// whose operator is Grounded reduces directly to its Execute output.
func scenarioPlainGroundedReduction() Scenario {
	return Scenario{
		Name: "plain grounded reduction",
		Invocation: &Invocation{
			Self:  space.New(atom.E(grounded.Add, grounded.Val(2), grounded.Val(3))),
			KB:    space.New(),
			Steps: 1,
		},
		Want: "<5>",
	}
}

// scenarioNonInterpretablePlainExpression is spec scenario 3: a plain
// Expression whose operator is a Symbol (not Grounded) is dropped.
func scenarioNonInterpretablePlainExpression() Scenario {
	return Scenario{
		Name: "non-interpretable plain expression",
		Invocation: &Invocation{
			Self:  space.New(atom.E(atom.S("foo"), atom.S("1"), atom.S("2"))),
			KB:    space.New(),
			Steps: 1,
		},
		Want: "<>",
	}
}

// scenarioNestedReduction is spec scenario 4: a compound expression is
// reduced bottom-up across three steps via a Simplifier continuation.
func scenarioNestedReduction() Scenario {
	return Scenario{
		Name: "nested reduction",
		Invocation: &Invocation{
			Self: space.New(atom.E(
				grounded.Add,
				atom.E(grounded.Add, grounded.Val(1), grounded.Val(2)),
				grounded.Val(3),
			)),
			KB:    space.New(),
			Steps: 3,
		},
		Want: "<6>",
	}
}

// scenarioMatching is spec scenario 5: matching a KB clause against a
// single-variable pattern and substituting into a template.
func scenarioMatching() Scenario {
	return Scenario{
		Name: "matching",
		Match: &MatchInvocation{
			KB: space.New(
				atom.E(atom.S("parent"), atom.S("Alice"), atom.S("Bob")),
				atom.E(atom.S("parent"), atom.S("Bob"), atom.S("Carol")),
			),
			Pattern:  space.New(atom.E(atom.S("parent"), atom.V("x"), atom.S("Bob"))),
			Template: space.New(atom.V("x")),
		},
		Want: "<Alice>",
	}
}

// scenarioMatcherAsymmetry is spec scenario 6: a KB atom that is itself a
// Variable binds into the pattern's variable, and substitution carries that
// binding into the template verbatim.
func scenarioMatcherAsymmetry() Scenario {
	return Scenario{
		Name: "matcher asymmetry",
		Match: &MatchInvocation{
			KB:       space.New(atom.V("y")),
			Pattern:  space.New(atom.V("x")),
			Template: space.New(atom.V("x")),
		},
		Want: "<$y>",
	}
}
