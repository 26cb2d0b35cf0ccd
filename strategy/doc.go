// Package strategy provides host-level driving loops around a single
// interpreter.Step call, plus a concurrency guard over a space.Space.
//
// RunToFixpoint is grounded on the teacher's agent.LoopAgent (bounded
// iteration with a configurable cap): spec §4.4 defines one interpret_step
// at a time and leaves "when to stop calling it" to the caller, the same
// way LoopAgent leaves "when to stop re-invoking the child" to its own
// maxIters/predicate configuration.
//
// Guard is grounded on the teacher's agent.ParallelAgent, inverted: where
// ParallelAgent exists to run things concurrently, Guard exists to enforce
// spec §5's single-writer rule by rejecting concurrent access to a Space
// instead of coordinating it.
package strategy
