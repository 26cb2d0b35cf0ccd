// Package interpreter implements the single-step reducer (spec §4.4): Step
// pops the tail atom of a space and either executes it, defers it behind a
// Simplifier continuation, or discards it.
//
// Grounded on original_source/cpp/hyperon/GroundingSpace.cpp's
// interpret_step / handle_plain_expression / ExpressionSimplifier for
// semantics, and on the teacher's engine/engine.go for package shape
// (a small orchestrator type with a Step-like entry point and structured
// trace/debug logging). The Simplifier here is value-semantic — each
// reduction produces a fresh continuation with a freshly rebuilt parent
// Expression, per spec §9's redesign note — rather than mutating a shared
// child slice in place.
package interpreter
