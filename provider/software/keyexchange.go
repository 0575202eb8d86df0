package software

import (
	"crypto/ecdh"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// x25519KX is X25519 key agreement. Keys are 32 raw bytes.
type x25519KX struct{}

func (x25519KX) GenerateKeyPair() (pub, priv []byte, err error) {
	priv = make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(priv); err != nil {
		return nil, nil, fmt.Errorf("software: x25519: %w", err)
	}
	pub, err = curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("software: x25519: %w", err)
	}
	return pub, priv, nil
}

func (x25519KX) SharedSecret(priv, peerPub []byte) ([]byte, error) {
	secret, err := curve25519.X25519(priv, peerPub)
	if err != nil {
		return nil, fmt.Errorf("software: x25519: %w", err)
	}
	return secret, nil
}

// ecdhKX is ECDH over NIST P-256. Private keys are the fixed-length
// scalar encoding, public keys the uncompressed point encoding, both as
// produced by crypto/ecdh.
type ecdhKX struct{}

func (ecdhKX) GenerateKeyPair() (pub, priv []byte, err error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("software: ecdh-p256: %w", err)
	}
	return key.PublicKey().Bytes(), key.Bytes(), nil
}

func (ecdhKX) SharedSecret(priv, peerPub []byte) ([]byte, error) {
	key, err := ecdh.P256().NewPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("software: ecdh-p256: private key: %w", err)
	}
	peer, err := ecdh.P256().NewPublicKey(peerPub)
	if err != nil {
		return nil, fmt.Errorf("software: ecdh-p256: public key: %w", err)
	}
	secret, err := key.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("software: ecdh-p256: %w", err)
	}
	return secret, nil
}
