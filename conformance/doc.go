// Package conformance runs per-algorithm conformance suites against a
// cryptography provider.
//
// The suites are declared in a fixed-order table (see Suites); each suite
// checks one algorithm family against known-answer vectors, independent
// oracle implementations, or algebraic properties (round-trip, agreement,
// tamper rejection). RunAll executes the table sequentially against the
// process-wide current provider, or against an explicit override for the
// duration of a named group:
//
//	provider.Register(software.New())
//	report, err := conformance.RunAll(conformance.WithProvider(software.New()))
//
// Algorithms a provider does not claim in its capability set are recorded
// as skipped rather than failed, so partial providers can still be
// checked for the algorithms they do implement.
//
// Test vectors are embedded in the wrapped hexadecimal format decoded by
// package hexutil, so they can be compared against published listings
// byte for byte.
package conformance
