// Package cryptography is the root of a pluggable cryptography provider
// conformance harness.
//
// The module is organized into three layers:
//
//   - [github.com/stevenspiel/cryptography/provider] defines the provider
//     abstraction: algorithm identifiers, per-family interfaces and the
//     process-wide provider registry.
//   - [github.com/stevenspiel/cryptography/provider/software] is the
//     built-in pure-Go reference provider covering the full declared
//     algorithm set.
//   - [github.com/stevenspiel/cryptography/conformance] runs the declared
//     per-algorithm conformance suites against whichever provider is
//     selected, checking known-answer vectors, independent oracles and
//     algebraic properties.
//
// [github.com/stevenspiel/cryptography/hexutil] converts between byte
// sequences and the wrapped hexadecimal text format used by the embedded
// test vectors.
//
// A typical run registers a provider and executes the table:
//
//	provider.Register(software.New())
//	report, err := conformance.RunAll(conformance.WithProvider(software.New()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if report.Failed() {
//	    log.Fatal(report.Summary())
//	}
//
// The cmd/conformance tool wraps the same flow in a command line
// interface.
package cryptography
