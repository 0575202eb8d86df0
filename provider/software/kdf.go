package software

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/stevenspiel/cryptography/provider"
)

// hkdfKDF is HKDF-SHA256 (RFC 5869) extract-and-expand.
type hkdfKDF struct{}

func (hkdfKDF) Derive(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > 255*sha256.Size {
		return nil, fmt.Errorf("software: hkdf-sha256: invalid output length %d", length)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("software: hkdf-sha256: %w", err)
	}
	return out, nil
}

// pbkdf2KDF is PBKDF2-HMAC-SHA256 at the fixed provider iteration count.
// The info parameter is not part of the construction and must be empty.
type pbkdf2KDF struct{}

func (pbkdf2KDF) Derive(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("software: pbkdf2-sha256: invalid output length %d", length)
	}
	if len(info) != 0 {
		return nil, fmt.Errorf("software: pbkdf2-sha256: info is not supported")
	}
	return pbkdf2.Key(secret, salt, provider.PBKDF2Iterations, length, sha256.New), nil
}

// argon2KDF is Argon2id at the fixed provider cost parameters. The info
// parameter is not part of the construction and must be empty.
type argon2KDF struct{}

func (argon2KDF) Derive(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 || int64(length) > math.MaxUint32 {
		return nil, fmt.Errorf("software: argon2id: invalid output length %d", length)
	}
	if len(info) != 0 {
		return nil, fmt.Errorf("software: argon2id: info is not supported")
	}
	out := argon2.IDKey(secret, salt, provider.Argon2Time, provider.Argon2Memory, provider.Argon2Threads, uint32(length))
	return out, nil
}
