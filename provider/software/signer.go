package software

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"math/big"

	"github.com/stevenspiel/cryptography/provider"
)

// ed25519Signer is Ed25519. Private keys are the 32-byte RFC 8032 seed,
// public keys the 32-byte point encoding.
type ed25519Signer struct{}

func (ed25519Signer) GenerateKey() (pub, priv []byte, err error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("software: ed25519: %w", err)
	}
	return public, private.Seed(), nil
}

func (ed25519Signer) Sign(priv, message []byte) ([]byte, error) {
	if len(priv) != ed25519.SeedSize {
		return nil, fmt.Errorf("software: ed25519: private key must be %d bytes, got %d", ed25519.SeedSize, len(priv))
	}
	key := ed25519.NewKeyFromSeed(priv)
	return ed25519.Sign(key, message), nil
}

func (ed25519Signer) Verify(pub, message, sig []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("software: ed25519: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), message, sig) {
		return fmt.Errorf("software: ed25519: %w", provider.ErrVerification)
	}
	return nil
}

// ecdsaSigner is ECDSA over P-256 with SHA-256 and ASN.1 DER signatures.
// Private keys are the 32-byte big-endian scalar, public keys the
// 65-byte uncompressed point encoding.
type ecdsaSigner struct{}

const p256Size = 32

func (ecdsaSigner) GenerateKey() (pub, priv []byte, err error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("software: ecdsa-p256: %w", err)
	}
	priv = make([]byte, p256Size)
	key.D.FillBytes(priv)
	return marshalP256Point(key.X, key.Y), priv, nil
}

func (ecdsaSigner) Sign(priv, message []byte) ([]byte, error) {
	key, err := unmarshalP256PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(message)
	sig, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("software: ecdsa-p256: %w", err)
	}
	return sig, nil
}

func (ecdsaSigner) Verify(pub, message, sig []byte) error {
	key, err := unmarshalP256PublicKey(pub)
	if err != nil {
		return err
	}
	digest := sha256.Sum256(message)
	if !ecdsa.VerifyASN1(key, digest[:], sig) {
		return fmt.Errorf("software: ecdsa-p256: %w", provider.ErrVerification)
	}
	return nil
}

func marshalP256Point(x, y *big.Int) []byte {
	out := make([]byte, 1+2*p256Size)
	out[0] = 4 // uncompressed point
	x.FillBytes(out[1 : 1+p256Size])
	y.FillBytes(out[1+p256Size:])
	return out
}

func unmarshalP256PublicKey(pub []byte) (*ecdsa.PublicKey, error) {
	if len(pub) != 1+2*p256Size || pub[0] != 4 {
		return nil, fmt.Errorf("software: ecdsa-p256: public key must be a %d-byte uncompressed point", 1+2*p256Size)
	}
	x := new(big.Int).SetBytes(pub[1 : 1+p256Size])
	y := new(big.Int).SetBytes(pub[1+p256Size:])
	if !elliptic.P256().IsOnCurve(x, y) {
		return nil, fmt.Errorf("software: ecdsa-p256: public key point is not on the curve")
	}
	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

func unmarshalP256PrivateKey(priv []byte) (*ecdsa.PrivateKey, error) {
	if len(priv) != p256Size {
		return nil, fmt.Errorf("software: ecdsa-p256: private key must be %d bytes, got %d", p256Size, len(priv))
	}
	d := new(big.Int).SetBytes(priv)
	if d.Sign() == 0 || d.Cmp(elliptic.P256().Params().N) >= 0 {
		return nil, fmt.Errorf("software: ecdsa-p256: private key scalar out of range")
	}
	key := new(ecdsa.PrivateKey)
	key.Curve = elliptic.P256()
	key.D = d
	key.X, key.Y = elliptic.P256().ScalarBaseMult(priv)
	return key, nil
}

// rsaSigner is RSA-2048 with SHA-256, in either PSS or PKCS#1 v1.5 mode.
// Keys use the PKCS#1 DER encodings.
type rsaSigner struct {
	pss bool
}

const rsaKeyBits = 2048

func (s rsaSigner) GenerateKey() (pub, priv []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("software: rsa: %w", err)
	}
	return x509.MarshalPKCS1PublicKey(&key.PublicKey), x509.MarshalPKCS1PrivateKey(key), nil
}

func (s rsaSigner) Sign(priv, message []byte) ([]byte, error) {
	key, err := x509.ParsePKCS1PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("software: rsa: private key: %w", err)
	}
	digest := sha256.Sum256(message)
	if s.pss {
		sig, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, digest[:], nil)
		if err != nil {
			return nil, fmt.Errorf("software: rsa-pss: %w", err)
		}
		return sig, nil
	}
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("software: rsa-pkcs1v15: %w", err)
	}
	return sig, nil
}

func (s rsaSigner) Verify(pub, message, sig []byte) error {
	key, err := x509.ParsePKCS1PublicKey(pub)
	if err != nil {
		return fmt.Errorf("software: rsa: public key: %w", err)
	}
	digest := sha256.Sum256(message)
	if s.pss {
		if err := rsa.VerifyPSS(key, crypto.SHA256, digest[:], sig, nil); err != nil {
			return fmt.Errorf("software: rsa-pss: %w", provider.ErrVerification)
		}
		return nil
	}
	if err := rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], sig); err != nil {
		return fmt.Errorf("software: rsa-pkcs1v15: %w", provider.ErrVerification)
	}
	return nil
}
