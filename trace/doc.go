// Package trace records before/after snapshots of interpreter.Step calls,
// grounded on the teacher's artifact.InMemoryStore: a mutex-guarded nested
// map keyed by run id, with copy-on-write Put and copy-on-read Get. The
// kernel itself never rolls back a step; a Recorder gives a caller an
// external, optional place to keep render strings for inspection or replay.
package trace
