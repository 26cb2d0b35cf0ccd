// Package match implements the one-sided structural matcher and the
// substitution routine that powers rewriting (spec §4.3).
//
// Grounded directly on original_source/cpp/hyperon/GroundingSpace.cpp's
// match_atoms / apply_match_to_atom / apply_a_to_b_bindings / match, which
// resolve the ambiguities spec §9 leaves open (variable-vs-variable
// ordering, double-bound variables). Error and interface style is grounded
// on the teacher's tool.Tool package.
package match
