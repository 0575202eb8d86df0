package provider

import (
	"errors"
	"hash"
)

// Sentinel errors returned by providers.
var (
	// ErrUnsupported is returned by a constructor when the provider does not
	// implement the requested algorithm.
	ErrUnsupported = errors.New("algorithm not supported by provider")
	// ErrVerification is returned when a signature or authentication tag
	// does not verify.
	ErrVerification = errors.New("verification failed")
	// ErrAuthentication is returned when AEAD decryption fails to
	// authenticate the ciphertext.
	ErrAuthentication = errors.New("message authentication failed")
)

// AEAD performs authenticated encryption with associated data under a
// fixed key.
type AEAD interface {
	// NonceSize returns the length of nonces accepted by Seal and Open.
	NonceSize() int
	// Overhead returns the difference between ciphertext and plaintext
	// lengths.
	Overhead() int
	// Seal encrypts and authenticates plaintext, authenticating
	// additionalData alongside it.
	Seal(nonce, plaintext, additionalData []byte) ([]byte, error)
	// Open decrypts and verifies ciphertext. It returns ErrAuthentication
	// (possibly wrapped) when the ciphertext or additional data has been
	// tampered with.
	Open(nonce, ciphertext, additionalData []byte) ([]byte, error)
}

// BlockCipher encrypts whole messages under a block cipher mode. The IV
// interpretation is mode-specific: a counter block for CTR, an
// initialization vector for CBC, a tweak for wide-block modes.
type BlockCipher interface {
	// BlockSize returns the underlying cipher's block size in bytes.
	BlockSize() int
	// IVSize returns the length of IVs accepted by Encrypt and Decrypt.
	IVSize() int
	// Encrypt encrypts plaintext under iv.
	Encrypt(iv, plaintext []byte) ([]byte, error)
	// Decrypt inverts Encrypt.
	Decrypt(iv, ciphertext []byte) ([]byte, error)
}

// StreamCipher applies a keystream to a message. Applying the same key and
// nonce twice restores the original input.
type StreamCipher interface {
	// NonceSize returns the length of nonces accepted by XORKeyStream.
	NonceSize() int
	// XORKeyStream returns src XORed with the keystream for nonce.
	XORKeyStream(nonce, src []byte) ([]byte, error)
}

// Hash is a cryptographic hash function.
type Hash interface {
	// Size returns the digest length in bytes.
	Size() int
	// New returns a fresh streaming hash state.
	New() hash.Hash
	// Sum returns the digest of data.
	Sum(data []byte) []byte
}

// KeyExchange is a Diffie-Hellman style key agreement over opaque
// byte-encoded keys.
type KeyExchange interface {
	// GenerateKeyPair returns a fresh public/private key pair.
	GenerateKeyPair() (pub, priv []byte, err error)
	// SharedSecret combines a local private key with a peer public key.
	// Both sides of an exchange derive the same secret.
	SharedSecret(priv, peerPub []byte) ([]byte, error)
}

// Signer produces and verifies digital signatures over byte-encoded keys.
// Key encodings are algorithm-specific and documented by the provider.
type Signer interface {
	// GenerateKey returns a fresh public/private key pair.
	GenerateKey() (pub, priv []byte, err error)
	// Sign signs message with priv.
	Sign(priv, message []byte) ([]byte, error)
	// Verify checks sig over message against pub. It returns
	// ErrVerification (possibly wrapped) for a well-formed but invalid
	// signature.
	Verify(pub, message, sig []byte) error
}

// KDF derives key material from an input secret. The info parameter is
// context binding for extract-and-expand KDFs and is ignored by
// password-based ones, whose cost parameters are fixed by the
// PBKDF2Iterations and Argon2 constants.
type KDF interface {
	// Derive returns length bytes of derived key material.
	Derive(secret, salt, info []byte, length int) ([]byte, error)
}

// MAC computes and verifies message authentication tags.
type MAC interface {
	// Size returns the tag length in bytes.
	Size() int
	// Tag computes the authentication tag for message under key.
	Tag(key, message []byte) ([]byte, error)
	// Verify checks tag in constant time. It returns ErrVerification
	// (possibly wrapped) on mismatch.
	Verify(key, message, tag []byte) error
}

// Provider is a concrete implementation of one or more algorithm
// families. Constructors return ErrUnsupported for algorithms outside the
// provider's capability set.
type Provider interface {
	// Name returns the provider's registry name.
	Name() string
	// Algorithms returns every algorithm the provider implements.
	Algorithms() []Algorithm

	// AEAD returns an AEAD instance keyed with key.
	AEAD(alg Algorithm, key []byte) (AEAD, error)
	// BlockCipher returns a block cipher mode instance keyed with key.
	BlockCipher(alg Algorithm, key []byte) (BlockCipher, error)
	// StreamCipher returns a stream cipher instance keyed with key.
	StreamCipher(alg Algorithm, key []byte) (StreamCipher, error)
	// Hash returns the named hash function.
	Hash(alg Algorithm) (Hash, error)
	// KeyExchange returns the named key agreement scheme.
	KeyExchange(alg Algorithm) (KeyExchange, error)
	// Signer returns the named signature scheme.
	Signer(alg Algorithm) (Signer, error)
	// KDF returns the named key derivation function.
	KDF(alg Algorithm) (KDF, error)
	// MAC returns the named message authentication scheme.
	MAC(alg Algorithm) (MAC, error)
}

// Supports reports whether p claims alg in its capability set.
func Supports(p Provider, alg Algorithm) bool {
	for _, a := range p.Algorithms() {
		if a == alg {
			return true
		}
	}
	return false
}
