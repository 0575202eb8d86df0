package conformance

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// sp800Key is the AES-256 key shared by the NIST SP 800-38A examples.
var sp800Key = hexutil.MustDecode(`
	60 3d eb 10 15 ca 71 be 2b 73 ae f0 85 7d 77 81
	1f 35 2c 07 3b 61 08 d7 2d 98 10 a3 09 14 df f4`)

// sp800Block1 is the first plaintext block of the SP 800-38A examples.
var sp800Block1 = hexutil.MustDecode("6b c1 be e2 2e 40 9f 96 e9 3d 7e 11 73 93 17 2a")

// runBlockCipherSuite checks the AES modes against the SP 800-38A
// examples where they apply and round-trip/tweak properties otherwise.
func runBlockCipherSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		alg := alg

		switch alg {
		case provider.AES256CTR:
			r.Case(fmt.Sprintf("%s/sp800-38a-f5.5", alg), func() error {
				bc, err := r.Provider().BlockCipher(alg, sp800Key)
				if err != nil {
					return err
				}
				counter := hexutil.MustDecode("f0 f1 f2 f3 f4 f5 f6 f7 f8 f9 fa fb fc fd fe ff")
				want := hexutil.MustDecode("60 1e c3 13 77 57 89 a5 b7 a7 f5 04 bb f3 d2 28")
				got, err := bc.Encrypt(counter, sp800Block1)
				if err != nil {
					return err
				}
				if !bytes.Equal(got, want) {
					return fmt.Errorf("ciphertext = %x, want %x", got, want)
				}
				return nil
			})

		case provider.AES256CBC:
			r.Case(fmt.Sprintf("%s/sp800-38a-f2.5", alg), func() error {
				bc, err := r.Provider().BlockCipher(alg, sp800Key)
				if err != nil {
					return err
				}
				iv := hexutil.MustDecode("00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f")
				wantFirst := hexutil.MustDecode("f5 8c 4c 04 d6 e5 f1 ba 77 9e ab fb 5f 7b fb d6")
				got, err := bc.Encrypt(iv, sp800Block1)
				if err != nil {
					return err
				}
				if len(got) < 16 || !bytes.Equal(got[:16], wantFirst) {
					return fmt.Errorf("first block = %x, want %x", got, wantFirst)
				}
				return nil
			})

		case provider.EMEAES256:
			r.Case(fmt.Sprintf("%s/length-preserving", alg), func() error {
				bc, err := r.Provider().BlockCipher(alg, testKey(32))
				if err != nil {
					return err
				}
				tweak := testKey(bc.IVSize())
				plaintext := bytes.Repeat([]byte{0x42}, 48)
				ciphertext, err := bc.Encrypt(tweak, plaintext)
				if err != nil {
					return err
				}
				if len(ciphertext) != len(plaintext) {
					return fmt.Errorf("wide-block mode changed the length: %d -> %d", len(plaintext), len(ciphertext))
				}
				return nil
			})
			r.Case(fmt.Sprintf("%s/tweak-sensitivity", alg), func() error {
				bc, err := r.Provider().BlockCipher(alg, testKey(32))
				if err != nil {
					return err
				}
				plaintext := bytes.Repeat([]byte{0x17}, 32)
				t1 := make([]byte, bc.IVSize())
				t2 := make([]byte, bc.IVSize())
				t2[0] = 1
				c1, err := bc.Encrypt(t1, plaintext)
				if err != nil {
					return err
				}
				c2, err := bc.Encrypt(t2, plaintext)
				if err != nil {
					return err
				}
				if bytes.Equal(c1, c2) {
					return fmt.Errorf("different tweaks produced identical ciphertexts")
				}
				return nil
			})
		}

		r.Case(fmt.Sprintf("%s/round-trip", alg), func() error {
			bc, err := r.Provider().BlockCipher(alg, testKey(32))
			if err != nil {
				return err
			}
			iv := testKey(bc.IVSize())
			plaintext := bytes.Repeat([]byte{0xa5}, 4*bc.BlockSize())

			ciphertext, err := bc.Encrypt(iv, plaintext)
			if err != nil {
				return err
			}
			if bytes.Contains(ciphertext, plaintext[:bc.BlockSize()]) {
				return fmt.Errorf("ciphertext leaks a plaintext block")
			}
			got, err := bc.Decrypt(iv, ciphertext)
			if err != nil {
				return err
			}
			if !bytes.Equal(got, plaintext) {
				return fmt.Errorf("round trip = %x, want %x", got, plaintext)
			}
			return nil
		})
	}
}

// runStreamCipherSuite checks the keystream against an independent
// oracle implementation and the XOR involution property.
func runStreamCipherSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		alg := alg

		if alg == provider.ChaCha20 {
			r.Case(fmt.Sprintf("%s/oracle", alg), func() error {
				key := testKey(chacha20.KeySize)
				nonce := testKey(chacha20.NonceSize)
				src := make([]byte, 135) // deliberately not a block multiple

				sc, err := r.Provider().StreamCipher(alg, key)
				if err != nil {
					return err
				}
				got, err := sc.XORKeyStream(nonce, src)
				if err != nil {
					return err
				}

				oracle, err := chacha20.NewUnauthenticatedCipher(key, nonce)
				if err != nil {
					return err
				}
				want := make([]byte, len(src))
				oracle.XORKeyStream(want, src)
				if !bytes.Equal(got, want) {
					return fmt.Errorf("keystream = %x, oracle = %x", got, want)
				}
				return nil
			})
		}

		r.Case(fmt.Sprintf("%s/involution", alg), func() error {
			sc, err := r.Provider().StreamCipher(alg, testKey(32))
			if err != nil {
				return err
			}
			nonce := testKey(sc.NonceSize())
			msg := []byte("applying the keystream twice restores the message")

			ct, err := sc.XORKeyStream(nonce, msg)
			if err != nil {
				return err
			}
			if bytes.Equal(ct, msg) {
				return fmt.Errorf("keystream left the message unchanged")
			}
			back, err := sc.XORKeyStream(nonce, ct)
			if err != nil {
				return err
			}
			if !bytes.Equal(back, msg) {
				return fmt.Errorf("involution = %x, want %x", back, msg)
			}
			return nil
		})

		r.Case(fmt.Sprintf("%s/nonce-sensitivity", alg), func() error {
			sc, err := r.Provider().StreamCipher(alg, testKey(32))
			if err != nil {
				return err
			}
			msg := make([]byte, 64)
			n1 := make([]byte, sc.NonceSize())
			n2 := make([]byte, sc.NonceSize())
			n2[0] = 1

			k1, err := sc.XORKeyStream(n1, msg)
			if err != nil {
				return err
			}
			k2, err := sc.XORKeyStream(n2, msg)
			if err != nil {
				return err
			}
			if bytes.Equal(k1, k2) {
				return fmt.Errorf("different nonces produced identical keystreams")
			}
			return nil
		})
	}
}
