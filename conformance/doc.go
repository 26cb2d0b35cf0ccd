// Package conformance runs named, data-driven scenarios against the
// interpreter and matcher, grounded on the teacher's evaluation.Invocation/
// evaluation.Result shape (renamed here from judging LLM output to judging
// kernel reduction output). Scenario captures the six worked examples as
// ordinary Go values rather than a prose table, so conformance_test.go can
// iterate them as subtests.
package conformance
