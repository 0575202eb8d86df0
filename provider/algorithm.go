package provider

// Algorithm identifies a single cryptographic algorithm, including any
// fixed parameters (key size, underlying hash) that distinguish it from
// its siblings.
type Algorithm string

// Authenticated encryption with associated data.
const (
	AES256GCM         Algorithm = "AES-256-GCM"
	AESSIV            Algorithm = "AES-SIV"
	ChaCha20Poly1305  Algorithm = "CHACHA20-POLY1305"
	XChaCha20Poly1305 Algorithm = "XCHACHA20-POLY1305"
	XSalsa20Poly1305  Algorithm = "XSALSA20-POLY1305"
)

// Block cipher modes over whole messages.
const (
	AES256CTR Algorithm = "AES-256-CTR"
	AES256CBC Algorithm = "AES-256-CBC"
	EMEAES256 Algorithm = "EME-AES-256"
)

// Stream ciphers.
const (
	ChaCha20 Algorithm = "CHACHA20"
)

// Hash functions.
const (
	SHA256     Algorithm = "SHA-256"
	SHA512     Algorithm = "SHA-512"
	SHA3256    Algorithm = "SHA3-256"
	BLAKE2b256 Algorithm = "BLAKE2B-256"
	BLAKE2s256 Algorithm = "BLAKE2S-256"
)

// Key exchange.
const (
	X25519    Algorithm = "X25519"
	ECDHP256  Algorithm = "ECDH-P256"
)

// Digital signatures.
const (
	Ed25519         Algorithm = "ED25519"
	ECDSAP256       Algorithm = "ECDSA-P256"
	RSAPSSSHA256    Algorithm = "RSA-PSS-SHA256"
	RSAPKCS1SHA256  Algorithm = "RSA-PKCS1V15-SHA256"
)

// Key derivation.
const (
	HKDFSHA256   Algorithm = "HKDF-SHA256"
	PBKDF2SHA256 Algorithm = "PBKDF2-SHA256"
	Argon2id     Algorithm = "ARGON2ID"
)

// Message authentication.
const (
	HMACSHA256 Algorithm = "HMAC-SHA256"
	HMACSHA512 Algorithm = "HMAC-SHA512"
)

// Fixed derivation parameters shared between providers and conformance
// oracles. Password-based KDFs are parameterized; every provider must use
// these values so independently produced outputs are comparable.
const (
	// PBKDF2Iterations is the iteration count for PBKDF2-SHA256.
	PBKDF2Iterations = 4096
	// Argon2Time is the pass count for Argon2id.
	Argon2Time = 1
	// Argon2Memory is the Argon2id memory cost in KiB.
	Argon2Memory = 8 * 1024
	// Argon2Threads is the Argon2id lane count.
	Argon2Threads = 4
)

// Family groups algorithms by the interface they are reached through.
type Family string

// Declared algorithm families.
const (
	FamilyAEAD         Family = "aead"
	FamilyBlockCipher  Family = "block-cipher"
	FamilyStreamCipher Family = "stream-cipher"
	FamilyHash         Family = "hash"
	FamilyKeyExchange  Family = "key-exchange"
	FamilySignature    Family = "signature"
	FamilyKDF          Family = "kdf"
	FamilyMAC          Family = "mac"
)

// families maps every declared algorithm to its family.
var families = map[Algorithm]Family{
	AES256GCM:         FamilyAEAD,
	AESSIV:            FamilyAEAD,
	ChaCha20Poly1305:  FamilyAEAD,
	XChaCha20Poly1305: FamilyAEAD,
	XSalsa20Poly1305:  FamilyAEAD,
	AES256CTR:         FamilyBlockCipher,
	AES256CBC:         FamilyBlockCipher,
	EMEAES256:         FamilyBlockCipher,
	ChaCha20:          FamilyStreamCipher,
	SHA256:            FamilyHash,
	SHA512:            FamilyHash,
	SHA3256:           FamilyHash,
	BLAKE2b256:        FamilyHash,
	BLAKE2s256:        FamilyHash,
	X25519:            FamilyKeyExchange,
	ECDHP256:          FamilyKeyExchange,
	Ed25519:           FamilySignature,
	ECDSAP256:         FamilySignature,
	RSAPSSSHA256:      FamilySignature,
	RSAPKCS1SHA256:    FamilySignature,
	HKDFSHA256:        FamilyKDF,
	PBKDF2SHA256:      FamilyKDF,
	Argon2id:          FamilyKDF,
	HMACSHA256:        FamilyMAC,
	HMACSHA512:        FamilyMAC,
}

// FamilyOf returns the family an algorithm belongs to, or the empty Family
// for an unknown algorithm.
func FamilyOf(alg Algorithm) Family {
	return families[alg]
}

// Known reports whether alg is one of the declared algorithm identifiers.
func Known(alg Algorithm) bool {
	_, ok := families[alg]
	return ok
}
