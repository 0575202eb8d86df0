package software

import (
	"fmt"

	"github.com/stevenspiel/cryptography/provider"
)

// ProviderName is the name the software provider registers under.
const ProviderName = "software"

// Provider is the built-in pure-Go provider. The zero value is not
// usable; call New.
type Provider struct{}

// New returns the software provider.
func New() *Provider {
	return &Provider{}
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return ProviderName }

// Algorithms implements provider.Provider. The software provider covers
// the full declared algorithm set.
func (p *Provider) Algorithms() []provider.Algorithm {
	return []provider.Algorithm{
		provider.AES256GCM,
		provider.AESSIV,
		provider.ChaCha20Poly1305,
		provider.XChaCha20Poly1305,
		provider.XSalsa20Poly1305,
		provider.AES256CTR,
		provider.AES256CBC,
		provider.EMEAES256,
		provider.ChaCha20,
		provider.SHA256,
		provider.SHA512,
		provider.SHA3256,
		provider.BLAKE2b256,
		provider.BLAKE2s256,
		provider.X25519,
		provider.ECDHP256,
		provider.Ed25519,
		provider.ECDSAP256,
		provider.RSAPSSSHA256,
		provider.RSAPKCS1SHA256,
		provider.HKDFSHA256,
		provider.PBKDF2SHA256,
		provider.Argon2id,
		provider.HMACSHA256,
		provider.HMACSHA512,
	}
}

// AEAD implements provider.Provider.
func (p *Provider) AEAD(alg provider.Algorithm, key []byte) (provider.AEAD, error) {
	switch alg {
	case provider.AES256GCM:
		return newGCM(key)
	case provider.AESSIV:
		return newSIV(key)
	case provider.ChaCha20Poly1305:
		return newChaChaPoly(key)
	case provider.XChaCha20Poly1305:
		return newXChaChaPoly(key)
	case provider.XSalsa20Poly1305:
		return newSecretbox(key)
	}
	return nil, unsupported(alg)
}

// BlockCipher implements provider.Provider.
func (p *Provider) BlockCipher(alg provider.Algorithm, key []byte) (provider.BlockCipher, error) {
	switch alg {
	case provider.AES256CTR:
		return newCTR(key)
	case provider.AES256CBC:
		return newCBC(key)
	case provider.EMEAES256:
		return newEME(key)
	}
	return nil, unsupported(alg)
}

// StreamCipher implements provider.Provider.
func (p *Provider) StreamCipher(alg provider.Algorithm, key []byte) (provider.StreamCipher, error) {
	switch alg {
	case provider.ChaCha20:
		return newChaCha20(key)
	}
	return nil, unsupported(alg)
}

// Hash implements provider.Provider.
func (p *Provider) Hash(alg provider.Algorithm) (provider.Hash, error) {
	if h, ok := hashes[alg]; ok {
		return h, nil
	}
	return nil, unsupported(alg)
}

// KeyExchange implements provider.Provider.
func (p *Provider) KeyExchange(alg provider.Algorithm) (provider.KeyExchange, error) {
	switch alg {
	case provider.X25519:
		return x25519KX{}, nil
	case provider.ECDHP256:
		return ecdhKX{}, nil
	}
	return nil, unsupported(alg)
}

// Signer implements provider.Provider.
func (p *Provider) Signer(alg provider.Algorithm) (provider.Signer, error) {
	switch alg {
	case provider.Ed25519:
		return ed25519Signer{}, nil
	case provider.ECDSAP256:
		return ecdsaSigner{}, nil
	case provider.RSAPSSSHA256:
		return rsaSigner{pss: true}, nil
	case provider.RSAPKCS1SHA256:
		return rsaSigner{pss: false}, nil
	}
	return nil, unsupported(alg)
}

// KDF implements provider.Provider.
func (p *Provider) KDF(alg provider.Algorithm) (provider.KDF, error) {
	switch alg {
	case provider.HKDFSHA256:
		return hkdfKDF{}, nil
	case provider.PBKDF2SHA256:
		return pbkdf2KDF{}, nil
	case provider.Argon2id:
		return argon2KDF{}, nil
	}
	return nil, unsupported(alg)
}

// MAC implements provider.Provider.
func (p *Provider) MAC(alg provider.Algorithm) (provider.MAC, error) {
	switch alg {
	case provider.HMACSHA256:
		return hmacMAC{hashAlg: provider.SHA256}, nil
	case provider.HMACSHA512:
		return hmacMAC{hashAlg: provider.SHA512}, nil
	}
	return nil, unsupported(alg)
}

func unsupported(alg provider.Algorithm) error {
	return fmt.Errorf("software: %s: %w", alg, provider.ErrUnsupported)
}

func checkKeySize(alg provider.Algorithm, key []byte, want int) error {
	if len(key) != want {
		return fmt.Errorf("software: %s: key must be %d bytes, got %d", alg, want, len(key))
	}
	return nil
}
