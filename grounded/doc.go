// Package grounded is the standard library of Grounded atoms (spec §D.1):
// host-supplied values and operators that implement atom.Grounded so they
// can sit inside an Expression and be executed by interpreter.Step.
//
// Value[T] wraps an arbitrary comparable Go value as a Grounded atom,
// standing in for the original C++'s ValueAtom<T> template — Go generics
// make this a single type instead of a template instantiated per T.
//
// Func wraps a plain Go function as a Grounded operator, grounded on the
// teacher's tool.FunctionTool: reflection builds a parameter schema via
// internal/util.CreateSchema, and internal/util.ValidateParameters checks
// extracted arguments against it before the wrapped function runs.
package grounded
