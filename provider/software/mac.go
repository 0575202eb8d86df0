package software

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/stevenspiel/cryptography/provider"
)

// hmacMAC is HMAC over SHA-256 or SHA-512.
type hmacMAC struct {
	hashAlg provider.Algorithm
}

func (m hmacMAC) ctor() func() hash.Hash {
	if m.hashAlg == provider.SHA512 {
		return sha512.New
	}
	return sha256.New
}

func (m hmacMAC) Size() int {
	if m.hashAlg == provider.SHA512 {
		return sha512.Size
	}
	return sha256.Size
}

func (m hmacMAC) Tag(key, message []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("software: hmac: empty key")
	}
	mac := hmac.New(m.ctor(), key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

func (m hmacMAC) Verify(key, message, tag []byte) error {
	want, err := m.Tag(key, message)
	if err != nil {
		return err
	}
	if !hmac.Equal(want, tag) {
		return fmt.Errorf("software: hmac: %w", provider.ErrVerification)
	}
	return nil
}
