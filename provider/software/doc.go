// Package software implements the reference software cryptography
// provider.
//
// It covers every declared algorithm using pure-Go implementations: the
// standard library for AES modes, SHA-2, ECDSA, RSA, ECDH, Ed25519 and
// HMAC; golang.org/x/crypto for ChaCha20 variants, the NaCl secretbox
// construction, BLAKE2, SHA-3, X25519 and the key derivation functions;
// github.com/jacobsa/crypto/siv for AES-SIV; and github.com/rfjakob/eme
// for the EME wide-block mode.
//
// The conformance harness runs against this provider by default. Register
// it once at startup:
//
//	provider.Register(software.New())
package software
