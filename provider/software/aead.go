package software

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/jacobsa/crypto/siv"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/stevenspiel/cryptography/provider"
)

// stdAEAD adapts a cipher.AEAD to the provider interface.
type stdAEAD struct {
	aead cipher.AEAD
}

func (a stdAEAD) NonceSize() int { return a.aead.NonceSize() }
func (a stdAEAD) Overhead() int  { return a.aead.Overhead() }

func (a stdAEAD) Seal(nonce, plaintext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("software: nonce must be %d bytes, got %d", a.aead.NonceSize(), len(nonce))
	}
	return a.aead.Seal(nil, nonce, plaintext, additionalData), nil
}

func (a stdAEAD) Open(nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("software: nonce must be %d bytes, got %d", a.aead.NonceSize(), len(nonce))
	}
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("software: %w", provider.ErrAuthentication)
	}
	return plaintext, nil
}

func newGCM(key []byte) (provider.AEAD, error) {
	if err := checkKeySize(provider.AES256GCM, key, 32); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("software: aes: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("software: gcm: %w", err)
	}
	return stdAEAD{aead: aead}, nil
}

func newChaChaPoly(key []byte) (provider.AEAD, error) {
	if err := checkKeySize(provider.ChaCha20Poly1305, key, chacha20poly1305.KeySize); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("software: chacha20poly1305: %w", err)
	}
	return stdAEAD{aead: aead}, nil
}

func newXChaChaPoly(key []byte) (provider.AEAD, error) {
	if err := checkKeySize(provider.XChaCha20Poly1305, key, chacha20poly1305.KeySize); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("software: xchacha20poly1305: %w", err)
	}
	return stdAEAD{aead: aead}, nil
}

// sivAEAD is the deterministic AES-SIV construction (RFC 5297). The
// synthetic IV doubles as the authentication tag and is prepended to the
// ciphertext, so no external nonce is consumed.
type sivAEAD struct {
	key []byte
}

func newSIV(key []byte) (provider.AEAD, error) {
	if err := checkKeySize(provider.AESSIV, key, 32); err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return sivAEAD{key: k}, nil
}

func (a sivAEAD) NonceSize() int { return 0 }
func (a sivAEAD) Overhead() int  { return 16 }

func (a sivAEAD) Seal(nonce, plaintext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 0 {
		return nil, fmt.Errorf("software: aes-siv is deterministic and takes no nonce")
	}
	var associated [][]byte
	if additionalData != nil {
		associated = [][]byte{additionalData}
	}
	out, err := siv.Encrypt(nil, a.key, plaintext, associated)
	if err != nil {
		return nil, fmt.Errorf("software: siv encrypt: %w", err)
	}
	return out, nil
}

func (a sivAEAD) Open(nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 0 {
		return nil, fmt.Errorf("software: aes-siv is deterministic and takes no nonce")
	}
	var associated [][]byte
	if additionalData != nil {
		associated = [][]byte{additionalData}
	}
	plaintext, err := siv.Decrypt(a.key, ciphertext, associated)
	if err != nil {
		return nil, fmt.Errorf("software: %w", provider.ErrAuthentication)
	}
	return plaintext, nil
}

// secretboxAEAD is the NaCl secretbox construction. Additional data is
// not part of the construction and must be empty.
type secretboxAEAD struct {
	key [32]byte
}

func newSecretbox(key []byte) (provider.AEAD, error) {
	if err := checkKeySize(provider.XSalsa20Poly1305, key, 32); err != nil {
		return nil, err
	}
	var k [32]byte
	copy(k[:], key)
	return &secretboxAEAD{key: k}, nil
}

func (a *secretboxAEAD) NonceSize() int { return 24 }
func (a *secretboxAEAD) Overhead() int  { return secretbox.Overhead }

func (a *secretboxAEAD) Seal(nonce, plaintext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 24 {
		return nil, fmt.Errorf("software: nonce must be 24 bytes, got %d", len(nonce))
	}
	if len(additionalData) != 0 {
		return nil, fmt.Errorf("software: xsalsa20-poly1305 does not authenticate additional data")
	}
	var n [24]byte
	copy(n[:], nonce)
	return secretbox.Seal(nil, plaintext, &n, &a.key), nil
}

func (a *secretboxAEAD) Open(nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != 24 {
		return nil, fmt.Errorf("software: nonce must be 24 bytes, got %d", len(nonce))
	}
	if len(additionalData) != 0 {
		return nil, fmt.Errorf("software: xsalsa20-poly1305 does not authenticate additional data")
	}
	var n [24]byte
	copy(n[:], nonce)
	plaintext, ok := secretbox.Open(nil, ciphertext, &n, &a.key)
	if !ok {
		return nil, fmt.Errorf("software: %w", provider.ErrAuthentication)
	}
	return plaintext, nil
}
