package conformance

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// aeadVector is a known-answer seal result. The ciphertext includes the
// authentication tag in the algorithm's native placement.
type aeadVector struct {
	name       string
	key        []byte
	nonce      []byte
	plaintext  []byte
	additional []byte
	ciphertext []byte
}

var aeadVectors = map[provider.Algorithm][]aeadVector{
	provider.AES256GCM: {
		{
			// NIST GCM spec test case 13: zero key, zero IV, empty plaintext.
			name:       "nist-13-empty",
			key:        make([]byte, 32),
			nonce:      make([]byte, 12),
			ciphertext: hexutil.MustDecode("53 0f 8a fb c7 45 36 b9 a9 63 b4 f1 c4 cb 73 8b"),
		},
		{
			// NIST GCM spec test case 14: zero key, zero IV, one zero block.
			name:      "nist-14-one-block",
			key:       make([]byte, 32),
			nonce:     make([]byte, 12),
			plaintext: make([]byte, 16),
			ciphertext: hexutil.MustDecode(`
				ce a7 40 3d 4d 60 6b 6e 07 4e c5 d3 ba f3 9d 18
				d0 d1 c8 a7 99 99 6b f0 26 5b 98 b5 d4 8a b9 19`),
		},
	},
	provider.ChaCha20Poly1305: {
		{
			// RFC 8439 section 2.8.2.
			name: "rfc8439",
			key: hexutil.MustDecode(`
				80 81 82 83 84 85 86 87 88 89 8a 8b 8c 8d 8e 8f
				90 91 92 93 94 95 96 97 98 99 9a 9b 9c 9d 9e 9f`),
			nonce:      hexutil.MustDecode("07 00 00 00 40 41 42 43 44 45 46 47"),
			plaintext:  []byte("Ladies and Gentlemen of the class of '99: If I could offer you only one tip for the future, sunscreen would be it."),
			additional: hexutil.MustDecode("50 51 52 53 c0 c1 c2 c3 c4 c5 c6 c7"),
			ciphertext: hexutil.MustDecode(`
				d3 1a 8d 34 64 8e 60 db 7b 86 af bc 53 ef 7e c2
				a4 ad ed 51 29 6e 08 fe a9 e2 b5 a7 36 ee 62 d6
				3d be a4 5e 8c a9 67 12 82 fa fb 69 da 92 72 8b
				1a 71 de 0a 9e 06 0b 29 05 d6 a5 b6 7e cd 3b 36
				92 dd bd 7f 2d 77 8b 8c 98 03 ae e3 28 09 1b 58
				fa b3 24 e4 fa d6 75 94 55 85 80 8b 48 31 d7 bc
				3f f4 de f0 8e 4b 7a 9d e5 76 d2 65 86 ce c6 4b
				61 16 1a e1 0b 59 4f 09 e2 6a 7e 90 2e cb d0 60
				06 91`),
		},
	},
	provider.AESSIV: {
		{
			// RFC 5297 appendix A.1. AES-SIV is deterministic; the synthetic
			// IV leads the ciphertext and no nonce is consumed.
			name: "rfc5297-a1",
			key: hexutil.MustDecode(`
				ff fe fd fc fb fa f9 f8 f7 f6 f5 f4 f3 f2 f1 f0
				f0 f1 f2 f3 f4 f5 f6 f7 f8 f9 fa fb fc fd fe ff`),
			plaintext:  hexutil.MustDecode("11 22 33 44 55 66 77 88 99 aa bb cc dd ee"),
			additional: hexutil.MustDecode("10 11 12 13 14 15 16 17 18 19 1a 1b 1c 1d 1e 1f 20 21 22 23 24 25 26 27"),
			ciphertext: hexutil.MustDecode(`
				85 63 2d 07 c6 e8 f3 7f 95 0a cd 32 0a 2e cc 93
				40 c0 2b 96 90 c4 dc 04 da ef 7f 6a fe 5c`),
		},
	},
}

// runAEADSuite checks known answers where published vectors exist and
// seal/open round-trips with tamper rejection for every declared AEAD.
func runAEADSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		alg := alg

		for _, v := range aeadVectors[alg] {
			v := v
			r.Case(fmt.Sprintf("%s/%s", alg, v.name), func() error {
				aead, err := r.Provider().AEAD(alg, v.key)
				if err != nil {
					return err
				}
				got, err := aead.Seal(v.nonce, v.plaintext, v.additional)
				if err != nil {
					return err
				}
				if !bytes.Equal(got, v.ciphertext) {
					return fmt.Errorf("ciphertext = %x, want %x", got, v.ciphertext)
				}
				back, err := aead.Open(v.nonce, v.ciphertext, v.additional)
				if err != nil {
					return err
				}
				if !bytes.Equal(back, v.plaintext) {
					return fmt.Errorf("plaintext = %x, want %x", back, v.plaintext)
				}
				return nil
			})
		}

		r.Case(fmt.Sprintf("%s/round-trip", alg), func() error {
			key := testKey(32)
			aead, err := r.Provider().AEAD(alg, key)
			if err != nil {
				return err
			}
			nonce := testKey(aead.NonceSize())
			plaintext := []byte("aead round trip payload")
			var additional []byte
			if alg != provider.XSalsa20Poly1305 {
				additional = []byte("bound context")
			}

			ciphertext, err := aead.Seal(nonce, plaintext, additional)
			if err != nil {
				return err
			}
			if len(ciphertext) != len(plaintext)+aead.Overhead() {
				return fmt.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext)+aead.Overhead())
			}
			got, err := aead.Open(nonce, ciphertext, additional)
			if err != nil {
				return err
			}
			if !bytes.Equal(got, plaintext) {
				return fmt.Errorf("round trip = %x, want %x", got, plaintext)
			}
			return nil
		})

		r.Case(fmt.Sprintf("%s/tamper-rejected", alg), func() error {
			key := testKey(32)
			aead, err := r.Provider().AEAD(alg, key)
			if err != nil {
				return err
			}
			nonce := testKey(aead.NonceSize())
			ciphertext, err := aead.Seal(nonce, []byte("authenticated payload"), nil)
			if err != nil {
				return err
			}

			for i := 0; i < len(ciphertext); i += 7 {
				tampered := make([]byte, len(ciphertext))
				copy(tampered, ciphertext)
				tampered[i] ^= 0x01
				if _, err := aead.Open(nonce, tampered, nil); err == nil {
					return fmt.Errorf("bit flip at byte %d went undetected", i)
				} else if !errors.Is(err, provider.ErrAuthentication) {
					return fmt.Errorf("bit flip at byte %d: err = %v, want ErrAuthentication", i, err)
				}
			}
			if _, err := aead.Open(nonce, ciphertext[:aead.Overhead()-1], nil); err == nil {
				return fmt.Errorf("truncated ciphertext went undetected")
			}
			return nil
		})

		// Deterministic SIV aside, sealing under a different nonce must
		// change the ciphertext.
		if alg != provider.AESSIV {
			r.Case(fmt.Sprintf("%s/nonce-sensitivity", alg), func() error {
				key := testKey(32)
				aead, err := r.Provider().AEAD(alg, key)
				if err != nil {
					return err
				}
				plaintext := []byte("same plaintext twice")
				n1 := make([]byte, aead.NonceSize())
				n2 := make([]byte, aead.NonceSize())
				n2[0] = 1

				c1, err := aead.Seal(n1, plaintext, nil)
				if err != nil {
					return err
				}
				c2, err := aead.Seal(n2, plaintext, nil)
				if err != nil {
					return err
				}
				if bytes.Equal(c1, c2) {
					return fmt.Errorf("different nonces produced identical ciphertexts")
				}
				if _, err := aead.Open(n2, c1, nil); err == nil {
					return fmt.Errorf("ciphertext opened under the wrong nonce")
				}
				return nil
			})
		}
	}
}

// testKey returns n deterministic non-zero bytes for property cases.
func testKey(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 3)
	}
	return out
}
