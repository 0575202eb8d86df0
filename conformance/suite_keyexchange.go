package conformance

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/flynn/noise"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// runKeyExchangeSuite checks key agreement: both sides derive the same
// secret, X25519 matches its RFC 7748 function vector, and the provider
// agrees with the Noise protocol library's independent DH25519.
func runKeyExchangeSuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		alg := alg
		kx, err := r.Provider().KeyExchange(alg)
		if err != nil {
			r.Case(string(alg), func() error { return err })
			continue
		}

		r.Case(fmt.Sprintf("%s/agreement", alg), func() error {
			alicePub, alicePriv, err := kx.GenerateKeyPair()
			if err != nil {
				return err
			}
			bobPub, bobPriv, err := kx.GenerateKeyPair()
			if err != nil {
				return err
			}
			if bytes.Equal(alicePub, bobPub) {
				return fmt.Errorf("two generated key pairs share a public key")
			}

			s1, err := kx.SharedSecret(alicePriv, bobPub)
			if err != nil {
				return err
			}
			s2, err := kx.SharedSecret(bobPriv, alicePub)
			if err != nil {
				return err
			}
			if !bytes.Equal(s1, s2) {
				return fmt.Errorf("shared secrets disagree: %x vs %x", s1, s2)
			}
			if len(s1) == 0 {
				return fmt.Errorf("empty shared secret")
			}
			return nil
		})

		if alg != provider.X25519 {
			continue
		}

		r.Case(fmt.Sprintf("%s/rfc7748-5.2", alg), func() error {
			scalar := hexutil.MustDecode(`
				a5 46 e3 6b f0 52 7c 9d 3b 16 15 4b 82 46 5e dd
				62 14 4c 0a c1 fc 5a 18 50 6a 22 44 ba 44 9a c4`)
			point := hexutil.MustDecode(`
				e6 db 68 67 58 30 30 db 35 94 c1 a4 24 b1 5f 7c
				72 66 24 ec 26 b3 35 3b 10 a9 03 a6 d0 ab 1c 4c`)
			want := hexutil.MustDecode(`
				c3 da 55 37 9d e9 c6 90 8e 94 ea 4d f2 8d 08 4f
				32 ec cf 03 49 1c 71 f7 54 b4 07 55 77 a2 85 52`)

			got, err := kx.SharedSecret(scalar, point)
			if err != nil {
				return err
			}
			if !bytes.Equal(got, want) {
				return fmt.Errorf("shared secret = %x, want %x", got, want)
			}
			return nil
		})

		r.Case(fmt.Sprintf("%s/noise-oracle", alg), func() error {
			// The Noise library ships its own X25519; the provider must
			// interoperate with keys and secrets it produces.
			noiseKey, err := noise.DH25519.GenerateKeypair(rand.Reader)
			if err != nil {
				return err
			}
			provPub, provPriv, err := kx.GenerateKeyPair()
			if err != nil {
				return err
			}

			fromProvider, err := kx.SharedSecret(provPriv, noiseKey.Public)
			if err != nil {
				return err
			}
			fromNoise, err := noise.DH25519.DH(noiseKey.Private, provPub)
			if err != nil {
				return err
			}
			if !bytes.Equal(fromProvider, fromNoise) {
				return fmt.Errorf("provider and noise disagree: %x vs %x", fromProvider, fromNoise)
			}
			return nil
		})
	}
}
