package grounded

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/space"
)

// Add, Sub, Mul, Div are the built-in integer arithmetic operators from
// spec §8 scenario 2 ("let Add be a Grounded atom implementing integer
// addition"). Div returns an error (propagated unchanged per spec §7's
// UserError policy) on division by zero rather than panicking.
var (
	Add = atom.G(NewFunc("Add", "Add two integers", []string{"A", "B"}, func(a, b int) int { return a + b }))
	Sub = atom.G(NewFunc("Sub", "Subtract two integers", []string{"A", "B"}, func(a, b int) int { return a - b }))
	Mul = atom.G(NewFunc("Mul", "Multiply two integers", []string{"A", "B"}, func(a, b int) int { return a * b }))
	Div = atom.G(NewFunc("Div", "Divide two integers", []string{"A", "B"}, func(a, b int) (int, error) {
		if b == 0 {
			return 0, errDivideByZero{}
		}
		return a / b, nil
	}))
)

type errDivideByZero struct{}

func (errDivideByZero) Error() string { return "grounded: division by zero" }

// Not is the built-in boolean negation operator.
var Not = atom.G(NewFunc("Not", "Boolean negation", []string{"A"}, func(a bool) bool { return !a }))

// eqOp implements Eq directly against the raw operand atoms rather than
// going through Func/AsValue, since structural equality (spec §8's
// invariant "equals(a, a) is true") must hold for Symbols and Expressions,
// not only Grounded Values.
type eqOp struct{}

// Eq is the built-in structural equality operator: it compares its two
// operand atoms with atom.Equals and returns a bool Value, whether the
// operands are themselves Values, Symbols, Variables, or Expressions.
var Eq = atom.G(eqOp{})

func (eqOp) Execute(args, result atom.ExecSpace) error {
	content := args.Content()
	if len(content) != 3 {
		return space.NewInvalidArgument("Eq", "expected exactly 2 arguments")
	}
	result.Add(Val(atom.Equals(content[1], content[2])))
	return nil
}

func (eqOp) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	_, ok = ga.Payload.(eqOp)
	return ok
}

func (eqOp) Render() string { return "Eq" }

// consOp implements Cons directly against the raw operand atoms: it pairs
// two atoms into a two-child Expression, the kernel's native list-building
// block, rather than wrapping an Atom inside a Value (which would render
// as a Go struct, not the kernel's structural text form).
type consOp struct{}

// Cons is the built-in pair constructor: `(Cons a b)` reduces to the
// Expression `(a b)`.
var Cons = atom.G(consOp{})

func (consOp) Execute(args, result atom.ExecSpace) error {
	content := args.Content()
	if len(content) != 3 {
		return space.NewInvalidArgument("Cons", "expected exactly 2 arguments")
	}
	result.Add(atom.E(content[1], content[2]))
	return nil
}

func (consOp) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	_, ok = ga.Payload.(consOp)
	return ok
}

func (consOp) Render() string { return "Cons" }
