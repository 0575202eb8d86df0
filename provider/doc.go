// Package provider defines the pluggable cryptography provider abstraction
// that the conformance harness exercises.
//
// A Provider is a named capability set over algorithm families: AEADs,
// block and stream ciphers, hashes, key exchange, signatures, key
// derivation and message authentication. Concrete implementations register
// themselves with the process-wide registry; the conformance suites then
// run against whichever provider is current.
//
// # Registration and selection
//
// Providers register once, typically from an init function or explicitly
// at startup:
//
//	provider.Register(software.New())
//	if err := provider.Install("software"); err != nil {
//	    log.Fatal(err)
//	}
//
// The current provider is shared mutable state intended for sequential
// test harness use. It is guarded against concurrent reads, but test
// groups that need a different provider should use Swap, which returns a
// restore function, rather than mutating the selection mid-run:
//
//	restore := provider.Swap(other)
//	defer restore()
//
// # Capability discovery
//
// Not every provider implements every declared algorithm. Constructors
// return ErrUnsupported for algorithms outside the provider's capability
// set, and Algorithms reports the full set up front so harnesses can plan
// coverage before running.
package provider
