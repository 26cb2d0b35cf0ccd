package interpreter

import (
	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/space"
)

// simplifier is the Grounded continuation that drives reduction of a
// non-plain Expression one sub-expression at a time (spec §4.5).
//
// Grounded on original_source/cpp/hyperon/GroundingSpace.cpp's
// ExpressionSimplifier, which records a stack of SubExpression{expr,
// parent, index} triples and mutates the shared parent's child slot in
// place on each step. This type instead addresses each pending
// sub-expression by a root-relative path ([]int) and rebuilds full
// immutably on every reduction (spec §9's redesign note) — subs still pops
// in exactly the same order the C++ parse() pushed them in, so the
// externally observable reduction sequence is unchanged.
type simplifier struct {
	full atom.Expression
	subs [][]int
}

// newSimplifier builds the initial continuation for expr, pre-computing
// every sub-expression's path via the same depth-first, left-to-right
// traversal as the original's parse(): the root path ([]int{}) first, then
// for each child that is itself an Expression, its path before moving to
// the next sibling.
func newSimplifier(expr atom.Expression) *simplifier {
	s := &simplifier{full: expr}
	s.parse(expr, nil)
	return s
}

func (s *simplifier) parse(expr atom.Expression, path []int) {
	p := make([]int, len(path))
	copy(p, path)
	s.subs = append(s.subs, p)

	for i, c := range expr.Children {
		ce, ok := c.(atom.Expression)
		if !ok {
			continue
		}
		childPath := make([]int, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = i
		s.parse(ce, childPath)
	}
}

// atPath walks root by path, returning the addressed atom.
func atPath(root atom.Atom, path []int) atom.Atom {
	cur := root
	for _, idx := range path {
		cur = cur.(atom.Expression).Children[idx]
	}
	return cur
}

// replaceAtPath returns a copy of root with the atom at path replaced by
// replacement. Every Expression along the path is rebuilt; siblings are
// shared, not copied, so this is cheap relative to the tree depth, not its
// breadth.
func replaceAtPath(root atom.Atom, path []int, replacement atom.Atom) atom.Atom {
	if len(path) == 0 {
		return replacement
	}
	expr := root.(atom.Expression)
	children := make([]atom.Atom, len(expr.Children))
	copy(children, expr.Children)
	if len(path) == 1 {
		children[path[0]] = replacement
	} else {
		children[path[0]] = replaceAtPath(children[path[0]], path[1:], replacement)
	}
	return atom.EFromSlice(children)
}

// Equals compares two simplifiers by their full expression, matching the
// original's dynamic_cast-and-compare.
func (s *simplifier) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	os, ok := ga.Payload.(*simplifier)
	if !ok {
		return false
	}
	return atom.Equals(s.full, os.full)
}

// Render matches the original's "(simplify <expr>)" diagnostic form.
func (s *simplifier) Render() string {
	return "(simplify " + atom.Render(s.full) + ")"
}

// Execute advances the continuation by exactly one sub-expression (spec
// §4.5). args is unused — like the original, a simplifier ignores its own
// argument space and works entirely off its captured full/subs state.
func (s *simplifier) Execute(args, result atom.ExecSpace) error {
	top := s.subs[len(s.subs)-1]

	if len(top) == 0 {
		handled, err := handlePlain(s.full, result)
		if err != nil {
			return err
		}
		if !handled {
			result.Add(s.full)
		}
		return nil
	}

	sub, ok := atPath(s.full, top).(atom.Expression)
	if !ok {
		return space.NewLogicError("Simplifier.Execute", "sub-expression path no longer addresses an Expression")
	}

	tmp := space.New()
	handled, err := handlePlain(sub, tmp)
	if err != nil {
		return err
	}
	if !handled {
		tmp.Add(sub)
	}
	if tmp.Len() != 1 {
		return space.NewNotImplemented("Simplifier.Execute", "result size is not equal to 1")
	}

	newFull := replaceAtPath(s.full, top, tmp.Content()[0])
	next := &simplifier{full: newFull.(atom.Expression), subs: s.subs[:len(s.subs)-1]}
	result.Add(atom.E(atom.G(next)))
	return nil
}
