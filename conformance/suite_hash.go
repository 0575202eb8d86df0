package conformance

import (
	"bytes"
	"fmt"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// hashVector is a known-answer digest for a short ASCII message.
type hashVector struct {
	message string
	digest  []byte
}

// Published short-message digests for each declared hash.
var hashVectors = map[provider.Algorithm][]hashVector{
	provider.SHA256: {
		{"", hexutil.MustDecode(`
			e3 b0 c4 42 98 fc 1c 14 9a fb f4 c8 99 6f b9 24
			27 ae 41 e4 64 9b 93 4c a4 95 99 1b 78 52 b8 55`)},
		{"abc", hexutil.MustDecode(`
			ba 78 16 bf 8f 01 cf ea 41 41 40 de 5d ae 22 23
			b0 03 61 a3 96 17 7a 9c b4 10 ff 61 f2 00 15 ad`)},
	},
	provider.SHA512: {
		{"abc", hexutil.MustDecode(`
			dd af 35 a1 93 61 7a ba cc 41 73 49 ae 20 41 31
			12 e6 fa 4e 89 a9 7e a2 0a 9e ee e6 4b 55 d3 9a
			21 92 99 2a 27 4f c1 a8 36 ba 3c 23 a3 fe eb bd
			45 4d 44 23 64 3c e8 0e 2a 9a c9 4f a5 4c a4 9f`)},
	},
	provider.SHA3256: {
		{"", hexutil.MustDecode(`
			a7 ff c6 f8 bf 1e d7 66 51 c1 47 56 a0 61 d6 62
			f5 80 ff 4d e4 3b 49 fa 82 d8 0a 4b 80 f8 43 4a`)},
		{"abc", hexutil.MustDecode(`
			3a 98 5d a7 4f e2 25 b2 04 5c 17 2d 6b d3 90 bd
			85 5f 08 6e 3e 9d 52 5b 46 bf e2 45 11 43 15 32`)},
	},
	provider.BLAKE2b256: {
		{"abc", hexutil.MustDecode(`
			bd dd 81 3c 63 42 39 72 31 71 ef 3f ee 98 57 9b
			94 96 4e 3b b1 cb 3e 42 72 62 c8 c0 68 d5 23 19`)},
	},
	provider.BLAKE2s256: {
		{"abc", hexutil.MustDecode(`
			50 8c 5e 8c 32 7c 14 e2 e1 a7 2b a3 4e eb 45 2f
			37 45 8b 20 9e d6 3a 29 4d 99 9b 4c 86 67 59 82`)},
	},
}

// runHashSuite checks each declared hash against its published digests
// and verifies the streaming state agrees with the one-shot form.
func runHashSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		h, err := r.Provider().Hash(alg)
		if err != nil {
			r.Case(string(alg), func() error { return err })
			continue
		}

		for _, v := range hashVectors[alg] {
			v := v
			r.Case(fmt.Sprintf("%s/digest/%q", alg, v.message), func() error {
				got := h.Sum([]byte(v.message))
				if !bytes.Equal(got, v.digest) {
					return fmt.Errorf("digest = %x, want %x", got, v.digest)
				}
				if h.Size() != len(v.digest) {
					return fmt.Errorf("Size() = %d, want %d", h.Size(), len(v.digest))
				}
				return nil
			})
		}

		r.Case(fmt.Sprintf("%s/streaming", alg), func() error {
			message := []byte("the streaming state must match the one-shot digest")
			want := h.Sum(message)

			s := h.New()
			half := len(message) / 2
			s.Write(message[:half])
			s.Write(message[half:])
			if got := s.Sum(nil); !bytes.Equal(got, want) {
				return fmt.Errorf("streaming digest = %x, one-shot = %x", got, want)
			}
			return nil
		})

		r.Case(fmt.Sprintf("%s/distinct-inputs", alg), func() error {
			if bytes.Equal(h.Sum([]byte("a")), h.Sum([]byte("b"))) {
				return fmt.Errorf("distinct inputs hashed to the same digest")
			}
			return nil
		})
	}
}
