package conformance

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// hkdfVector is an RFC 5869 appendix A SHA-256 case.
type hkdfVector struct {
	name   string
	ikm    []byte
	salt   []byte
	info   []byte
	length int
	okm    []byte
}

var hkdfVectors = []hkdfVector{
	{
		name:   "rfc5869-a1",
		ikm:    bytes.Repeat([]byte{0x0b}, 22),
		salt:   hexutil.MustDecode("00 01 02 03 04 05 06 07 08 09 0a 0b 0c"),
		info:   hexutil.MustDecode("f0 f1 f2 f3 f4 f5 f6 f7 f8 f9"),
		length: 42,
		okm: hexutil.MustDecode(`
			3c b2 5f 25 fa ac d5 7a 90 43 4f 64 d0 36 2f 2a
			2d 2d 0a 90 cf 1a 5a 4c 5d b0 2d 56 ec c4 c5 bf
			34 00 72 08 d5 b8 87 18 58 65`),
	},
}

// runKDFSuite checks HKDF against RFC 5869 vectors and checks the
// password-based KDFs against independent oracle implementations at the
// fixed provider cost parameters, plus determinism and salt sensitivity.
func runKDFSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		kdf, err := r.Provider().KDF(alg)
		if err != nil {
			r.Case(string(alg), func() error { return err })
			continue
		}
		alg := alg

		switch alg {
		case provider.HKDFSHA256:
			for _, v := range hkdfVectors {
				v := v
				r.Case(fmt.Sprintf("%s/%s", alg, v.name), func() error {
					got, err := kdf.Derive(v.ikm, v.salt, v.info, v.length)
					if err != nil {
						return err
					}
					if !bytes.Equal(got, v.okm) {
						return fmt.Errorf("okm = %x, want %x", got, v.okm)
					}
					return nil
				})
			}
			r.Case(fmt.Sprintf("%s/info-binding", alg), func() error {
				secret := []byte("input keying material")
				salt := []byte("salt")
				a, err := kdf.Derive(secret, salt, []byte("context a"), 32)
				if err != nil {
					return err
				}
				b, err := kdf.Derive(secret, salt, []byte("context b"), 32)
				if err != nil {
					return err
				}
				if bytes.Equal(a, b) {
					return fmt.Errorf("different info produced identical output")
				}
				return nil
			})

		case provider.PBKDF2SHA256:
			r.Case(fmt.Sprintf("%s/oracle", alg), func() error {
				password := []byte("password")
				salt := []byte("NaCl")
				got, err := kdf.Derive(password, salt, nil, 32)
				if err != nil {
					return err
				}
				want := pbkdf2.Key(password, salt, provider.PBKDF2Iterations, 32, sha256.New)
				if !bytes.Equal(got, want) {
					return fmt.Errorf("derived = %x, oracle = %x", got, want)
				}
				return nil
			})

		case provider.Argon2id:
			r.Case(fmt.Sprintf("%s/oracle", alg), func() error {
				password := []byte("password")
				salt := []byte("somesalt")
				got, err := kdf.Derive(password, salt, nil, 32)
				if err != nil {
					return err
				}
				want := argon2.IDKey(password, salt, provider.Argon2Time, provider.Argon2Memory, provider.Argon2Threads, 32)
				if !bytes.Equal(got, want) {
					return fmt.Errorf("derived = %x, oracle = %x", got, want)
				}
				return nil
			})
		}

		r.Case(fmt.Sprintf("%s/deterministic", alg), func() error {
			secret := []byte("secret input")
			salt := []byte("fixed salt")
			a, err := kdf.Derive(secret, salt, nil, 32)
			if err != nil {
				return err
			}
			if len(a) != 32 {
				return fmt.Errorf("derived %d bytes, want 32", len(a))
			}
			b, err := kdf.Derive(secret, salt, nil, 32)
			if err != nil {
				return err
			}
			if !bytes.Equal(a, b) {
				return fmt.Errorf("derivation is not deterministic")
			}
			c, err := kdf.Derive(secret, []byte("other salt"), nil, 32)
			if err != nil {
				return err
			}
			if bytes.Equal(a, c) {
				return fmt.Errorf("salt does not affect the output")
			}
			return nil
		})
	}
}
