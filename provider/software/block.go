package software

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/rfjakob/eme"

	"github.com/stevenspiel/cryptography/provider"
)

func newAESBlock(alg provider.Algorithm, key []byte) (cipher.Block, error) {
	if err := checkKeySize(alg, key, 32); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("software: aes: %w", err)
	}
	return block, nil
}

// ctrCipher runs AES-256 in counter mode. The IV is the initial counter
// block; encryption and decryption are the same keystream XOR.
type ctrCipher struct {
	block cipher.Block
}

func newCTR(key []byte) (provider.BlockCipher, error) {
	block, err := newAESBlock(provider.AES256CTR, key)
	if err != nil {
		return nil, err
	}
	return ctrCipher{block: block}, nil
}

func (c ctrCipher) BlockSize() int { return aes.BlockSize }
func (c ctrCipher) IVSize() int    { return aes.BlockSize }

func (c ctrCipher) Encrypt(iv, plaintext []byte) ([]byte, error) {
	return c.xor(iv, plaintext)
}

func (c ctrCipher) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	return c.xor(iv, ciphertext)
}

func (c ctrCipher) xor(iv, src []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("software: ctr: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	out := make([]byte, len(src))
	cipher.NewCTR(c.block, iv).XORKeyStream(out, src)
	return out, nil
}

// cbcCipher runs AES-256 in CBC mode with PKCS#7 padding, so plaintexts
// of any length round-trip.
type cbcCipher struct {
	block cipher.Block
}

func newCBC(key []byte) (provider.BlockCipher, error) {
	block, err := newAESBlock(provider.AES256CBC, key)
	if err != nil {
		return nil, err
	}
	return cbcCipher{block: block}, nil
}

func (c cbcCipher) BlockSize() int { return aes.BlockSize }
func (c cbcCipher) IVSize() int    { return aes.BlockSize }

func (c cbcCipher) Encrypt(iv, plaintext []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("software: cbc: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, padded)
	return out, nil
}

func (c cbcCipher) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("software: cbc: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("software: cbc: ciphertext length %d is not a positive multiple of %d", len(ciphertext), aes.BlockSize)
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(padded, ciphertext)
	return pkcs7Unpad(padded, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("software: cbc: invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("software: cbc: invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("software: cbc: invalid padding")
		}
	}
	return data[:len(data)-n], nil
}

// emeCipher is the EME wide-block mode over AES-256: a length-preserving
// tweakable cipher where every ciphertext bit depends on every plaintext
// bit. Inputs must be a whole number of AES blocks, between 1 and 128.
type emeCipher struct {
	eme *eme.EMECipher
}

func newEME(key []byte) (provider.BlockCipher, error) {
	block, err := newAESBlock(provider.EMEAES256, key)
	if err != nil {
		return nil, err
	}
	return emeCipher{eme: eme.New(block)}, nil
}

func (c emeCipher) BlockSize() int { return aes.BlockSize }
func (c emeCipher) IVSize() int    { return aes.BlockSize }

func (c emeCipher) Encrypt(tweak, plaintext []byte) ([]byte, error) {
	if err := c.check(tweak, plaintext); err != nil {
		return nil, err
	}
	return c.eme.Encrypt(tweak, plaintext), nil
}

func (c emeCipher) Decrypt(tweak, ciphertext []byte) ([]byte, error) {
	if err := c.check(tweak, ciphertext); err != nil {
		return nil, err
	}
	return c.eme.Decrypt(tweak, ciphertext), nil
}

func (c emeCipher) check(tweak, data []byte) error {
	if len(tweak) != aes.BlockSize {
		return fmt.Errorf("software: eme: tweak must be %d bytes, got %d", aes.BlockSize, len(tweak))
	}
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return fmt.Errorf("software: eme: data length %d is not a positive multiple of %d", len(data), aes.BlockSize)
	}
	if len(data) > 128*aes.BlockSize {
		return fmt.Errorf("software: eme: data length %d exceeds %d blocks", len(data), 128)
	}
	return nil
}
