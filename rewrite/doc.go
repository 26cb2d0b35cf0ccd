// Package rewrite chains multiple match.Match rules into an ordered
// RuleSet, grounded on the teacher's flow.BaseFlow processor chain
// (AddRequestProcessor/AddResponseProcessor): rules are registered in
// order and applied in that same order, each appending its own matches to
// a shared output space, the way BaseFlow appends each processor's
// contribution to a single in-flight request.
package rewrite
