package conformance

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

// signRoundTrip runs the common sign/verify/tamper checks for one
// signature algorithm.
func signRoundTrip(r *Runner, alg provider.Algorithm) {
	r.Case(fmt.Sprintf("%s/round-trip", alg), func() error {
		signer, err := r.Provider().Signer(alg)
		if err != nil {
			return err
		}
		pub, priv, err := signer.GenerateKey()
		if err != nil {
			return err
		}
		message := []byte("conformance signing payload")

		sig, err := signer.Sign(priv, message)
		if err != nil {
			return err
		}
		if err := signer.Verify(pub, message, sig); err != nil {
			return fmt.Errorf("fresh signature rejected: %w", err)
		}

		if err := signer.Verify(pub, []byte("a different message"), sig); err == nil {
			return fmt.Errorf("signature verified over a different message")
		} else if !errors.Is(err, provider.ErrVerification) {
			return fmt.Errorf("tampered message: err = %v, want ErrVerification", err)
		}

		otherPub, _, err := signer.GenerateKey()
		if err != nil {
			return err
		}
		if err := signer.Verify(otherPub, message, sig); err == nil {
			return fmt.Errorf("signature verified under an unrelated key")
		}
		return nil
	})
}

// runECDSASuite exercises ECDSA P-256. The table invokes it from two
// positions; the cases are self-contained so the repeat is harmless.
func runECDSASuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		signRoundTrip(r, alg)

		alg := alg
		r.Case(fmt.Sprintf("%s/malformed-keys", alg), func() error {
			signer, err := r.Provider().Signer(alg)
			if err != nil {
				return err
			}
			if _, err := signer.Sign([]byte("short"), []byte("msg")); err == nil {
				return fmt.Errorf("signing accepted a malformed private key")
			}
			if err := signer.Verify([]byte("short"), []byte("msg"), []byte("sig")); err == nil {
				return fmt.Errorf("verification accepted a malformed public key")
			}
			return nil
		})

		r.Case(fmt.Sprintf("%s/signatures-vary", alg), func() error {
			// ECDSA signatures are randomized; two signatures over the
			// same message must differ yet both verify.
			signer, err := r.Provider().Signer(alg)
			if err != nil {
				return err
			}
			pub, priv, err := signer.GenerateKey()
			if err != nil {
				return err
			}
			message := []byte("same message signed twice")
			s1, err := signer.Sign(priv, message)
			if err != nil {
				return err
			}
			s2, err := signer.Sign(priv, message)
			if err != nil {
				return err
			}
			if bytes.Equal(s1, s2) {
				return fmt.Errorf("randomized scheme produced identical signatures")
			}
			if err := signer.Verify(pub, message, s1); err != nil {
				return err
			}
			return signer.Verify(pub, message, s2)
		})
	}
}

// runEd25519Suite checks Ed25519 against its RFC 8032 vector plus the
// common round-trip cases.
func runEd25519Suite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		signRoundTrip(r, alg)

		alg := alg
		r.Case(fmt.Sprintf("%s/rfc8032-test1", alg), func() error {
			signer, err := r.Provider().Signer(alg)
			if err != nil {
				return err
			}
			seed := hexutil.MustDecode(`
				9d 61 b1 9d ef fd 5a 60 ba 84 4a f4 92 ec 2c c4
				44 49 c5 69 7b 32 69 19 70 3b ac 03 1c ae 7f 60`)
			pub := hexutil.MustDecode(`
				d7 5a 98 01 82 b1 0a b7 d5 4b fe d3 c9 64 07 3a
				0e e1 72 f3 da a6 23 25 af 02 1a 68 f7 07 51 1a`)
			wantSig := hexutil.MustDecode(`
				e5 56 43 00 c3 60 ac 72 90 86 e2 cc 80 6e 82 8a
				84 87 7f 1e b8 e5 d9 74 d8 73 e0 65 22 49 01 55
				5f b8 82 15 90 a3 3b ac c6 1e 39 70 1c f9 b4 6b
				d2 5b f5 f0 59 5b be 24 65 51 41 43 8e 7a 10 0b`)

			sig, err := signer.Sign(seed, nil)
			if err != nil {
				return err
			}
			if !bytes.Equal(sig, wantSig) {
				return fmt.Errorf("signature = %x, want %x", sig, wantSig)
			}
			return signer.Verify(pub, nil, sig)
		})
	}
}

// runRSASuite checks both RSA padding modes and that signatures from one
// mode do not verify under the other.
func runRSASuite(r *Runner) {
	for _, alg := range r.Algorithms() {
		if r.SkipUnsupported(alg) {
			continue
		}
		signRoundTrip(r, alg)
	}

	if !r.Supports(provider.RSAPSSSHA256) || !r.Supports(provider.RSAPKCS1SHA256) {
		return
	}
	r.Case("rsa/padding-modes-are-distinct", func() error {
		pss, err := r.Provider().Signer(provider.RSAPSSSHA256)
		if err != nil {
			return err
		}
		pkcs1, err := r.Provider().Signer(provider.RSAPKCS1SHA256)
		if err != nil {
			return err
		}
		// Both modes share the PKCS#1 key encoding, so one key pair can
		// serve both signers.
		pub, priv, err := pss.GenerateKey()
		if err != nil {
			return err
		}
		message := []byte("padding mode separation")

		pssSig, err := pss.Sign(priv, message)
		if err != nil {
			return err
		}
		if err := pkcs1.Verify(pub, message, pssSig); err == nil {
			return fmt.Errorf("PSS signature verified as PKCS#1 v1.5")
		}

		pkcs1Sig, err := pkcs1.Sign(priv, message)
		if err != nil {
			return err
		}
		if err := pss.Verify(pub, message, pkcs1Sig); err == nil {
			return fmt.Errorf("PKCS#1 v1.5 signature verified as PSS")
		}
		return nil
	})
}
