package software

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/stevenspiel/cryptography/provider"
)

// hashFunc implements provider.Hash over a hash.Hash constructor.
type hashFunc struct {
	size int
	ctor func() hash.Hash
}

func (h hashFunc) Size() int      { return h.size }
func (h hashFunc) New() hash.Hash { return h.ctor() }

func (h hashFunc) Sum(data []byte) []byte {
	s := h.ctor()
	s.Write(data)
	return s.Sum(nil)
}

var hashes = map[provider.Algorithm]provider.Hash{
	provider.SHA256:  hashFunc{size: sha256.Size, ctor: sha256.New},
	provider.SHA512:  hashFunc{size: sha512.Size, ctor: sha512.New},
	provider.SHA3256: hashFunc{size: 32, ctor: sha3.New256},
	provider.BLAKE2b256: hashFunc{size: blake2b.Size256, ctor: func() hash.Hash {
		h, _ := blake2b.New256(nil) // only fails with a key longer than 64 bytes
		return h
	}},
	provider.BLAKE2s256: hashFunc{size: blake2s.Size, ctor: func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	}},
}
