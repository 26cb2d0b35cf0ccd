// Package space implements the Space container: an ordered, duplicate
// permitting sequence of atoms that serves simultaneously as a knowledge
// base and — when used by the interpreter package — as a LIFO reduction
// stack.
//
// Grounded on the teacher's core/session.go (a named, mutex-guarded ordered
// container) and memory/in_memory.go (the simplest in-memory store shape in
// the corpus).
package space
