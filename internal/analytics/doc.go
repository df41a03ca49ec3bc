// Package analytics derives cycle statistics and symptom patterns from a user's daily logs.
//
// Every function here is a pure computation over a caller-supplied slice: nothing is
// persisted, the input is never mutated, and results are identical for identical input,
// so the functions are safe to call from concurrent requests.
package analytics
