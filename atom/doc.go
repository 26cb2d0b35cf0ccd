// Package atom implements the tagged term algebra at the heart of the
// atomspace kernel: Symbol, Variable, Expression and Grounded values, plus
// structural equality and diagnostic rendering.
//
// Atoms are immutable, shared, and acyclic by construction — an Expression's
// children must exist before the Expression does, so there is no cycle to
// collect. All other kernel packages (space, match, interpreter) are built
// on top of the four variants defined here.
package atom
