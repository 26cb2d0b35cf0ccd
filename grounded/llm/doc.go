// Package llm wires a large-language-model call into the kernel as a
// single Grounded operator: Call takes a Model and a prompt ValueAtom and
// returns a grounded Value holding the model's completion string.
//
// Trimmed down from the teacher's model package: the original Request
// carried a whole multi-turn, multi-role core.Content transcript plus tool
// definitions, sized for an agent loop. The kernel has no notion of
// conversational roles, and a Grounded atom's own contract (spec §9) is
// already the interpreter's tool-call mechanism, so Model.Generate here is
// single-turn: one prompt string in, one completion string out.
package llm
