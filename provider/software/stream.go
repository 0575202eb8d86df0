package software

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/stevenspiel/cryptography/provider"
)

// chacha20Cipher is the ChaCha20 stream cipher with a 12-byte nonce and
// zero initial counter.
type chacha20Cipher struct {
	key []byte
}

func newChaCha20(key []byte) (provider.StreamCipher, error) {
	if err := checkKeySize(provider.ChaCha20, key, chacha20.KeySize); err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return chacha20Cipher{key: k}, nil
}

func (c chacha20Cipher) NonceSize() int { return chacha20.NonceSize }

func (c chacha20Cipher) XORKeyStream(nonce, src []byte) ([]byte, error) {
	stream, err := chacha20.NewUnauthenticatedCipher(c.key, nonce)
	if err != nil {
		return nil, fmt.Errorf("software: chacha20: %w", err)
	}
	out := make([]byte, len(src))
	stream.XORKeyStream(out, src)
	return out, nil
}
