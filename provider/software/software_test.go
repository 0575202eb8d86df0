package software

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stevenspiel/cryptography/hexutil"
	"github.com/stevenspiel/cryptography/provider"
)

func TestAlgorithmsAreDeclared(t *testing.T) {
	p := New()
	if p.Name() != ProviderName {
		t.Errorf("Name() = %q, want %q", p.Name(), ProviderName)
	}
	for _, alg := range p.Algorithms() {
		if !provider.Known(alg) {
			t.Errorf("Algorithms() contains unknown algorithm %q", alg)
		}
	}
}

func TestUnsupportedAlgorithms(t *testing.T) {
	p := New()
	bogus := provider.Algorithm("NO-SUCH-ALG")
	key := make([]byte, 32)

	if _, err := p.AEAD(bogus, key); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("AEAD(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.BlockCipher(bogus, key); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("BlockCipher(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.StreamCipher(bogus, key); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("StreamCipher(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.Hash(bogus); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("Hash(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.KeyExchange(bogus); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("KeyExchange(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.Signer(bogus); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("Signer(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.KDF(bogus); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("KDF(bogus) err = %v, want ErrUnsupported", err)
	}
	if _, err := p.MAC(bogus); !errors.Is(err, provider.ErrUnsupported) {
		t.Errorf("MAC(bogus) err = %v, want ErrUnsupported", err)
	}
}

func TestAEADRoundTrip(t *testing.T) {
	p := New()
	plaintext := []byte("attack at dawn")
	ad := []byte("header")

	cases := []struct {
		alg        provider.Algorithm
		keySize    int
		supportsAD bool
	}{
		{provider.AES256GCM, 32, true},
		{provider.AESSIV, 32, true},
		{provider.ChaCha20Poly1305, 32, true},
		{provider.XChaCha20Poly1305, 32, true},
		{provider.XSalsa20Poly1305, 32, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.alg), func(t *testing.T) {
			key := make([]byte, tc.keySize)
			for i := range key {
				key[i] = byte(i + 1)
			}
			aead, err := p.AEAD(tc.alg, key)
			if err != nil {
				t.Fatalf("AEAD(%s) error: %v", tc.alg, err)
			}

			nonce := make([]byte, aead.NonceSize())
			for i := range nonce {
				nonce[i] = byte(i)
			}
			var aad []byte
			if tc.supportsAD {
				aad = ad
			}

			ciphertext, err := aead.Seal(nonce, plaintext, aad)
			if err != nil {
				t.Fatalf("Seal() error: %v", err)
			}
			if len(ciphertext) != len(plaintext)+aead.Overhead() {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext)+aead.Overhead())
			}

			got, err := aead.Open(nonce, ciphertext, aad)
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			if !bytes.Equal(got, plaintext) {
				t.Errorf("Open() = %x, want %x", got, plaintext)
			}

			// Any bit flip must fail authentication.
			tampered := make([]byte, len(ciphertext))
			copy(tampered, ciphertext)
			tampered[0] ^= 0x01
			if _, err := aead.Open(nonce, tampered, aad); !errors.Is(err, provider.ErrAuthentication) {
				t.Errorf("Open(tampered) err = %v, want ErrAuthentication", err)
			}
		})
	}
}

func TestAEADBadKeySize(t *testing.T) {
	p := New()
	for _, alg := range []provider.Algorithm{
		provider.AES256GCM,
		provider.AESSIV,
		provider.ChaCha20Poly1305,
		provider.XChaCha20Poly1305,
		provider.XSalsa20Poly1305,
	} {
		if _, err := p.AEAD(alg, make([]byte, 16)); err == nil {
			t.Errorf("AEAD(%s, short key) expected error", alg)
		}
	}
}

func TestSIVKnownAnswer(t *testing.T) {
	// RFC 5297 appendix A.1, deterministic authenticated encryption.
	key := hexutil.MustDecode(`
		ff fe fd fc fb fa f9 f8 f7 f6 f5 f4 f3 f2 f1 f0
		f0 f1 f2 f3 f4 f5 f6 f7 f8 f9 fa fb fc fd fe ff`)
	ad := hexutil.MustDecode("10 11 12 13 14 15 16 17 18 19 1a 1b 1c 1d 1e 1f 20 21 22 23 24 25 26 27")
	plaintext := hexutil.MustDecode("11 22 33 44 55 66 77 88 99 aa bb cc dd ee")
	want := hexutil.MustDecode(`
		85 63 2d 07 c6 e8 f3 7f 95 0a cd 32 0a 2e cc 93
		40 c0 2b 96 90 c4 dc 04 da ef 7f 6a fe 5c`)

	aead, err := New().AEAD(provider.AESSIV, key)
	if err != nil {
		t.Fatalf("AEAD(AES-SIV) error: %v", err)
	}
	got, err := aead.Seal(nil, plaintext, ad)
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Seal() = %x, want %x", got, want)
	}

	back, err := aead.Open(nil, want, ad)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Errorf("Open() = %x, want %x", back, plaintext)
	}
}

func TestBlockCipherRoundTrip(t *testing.T) {
	p := New()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 3)
	}

	cases := []struct {
		alg       provider.Algorithm
		plaintext []byte
	}{
		{provider.AES256CTR, []byte("any length works in counter mode")},
		{provider.AES256CBC, []byte("cbc pads to the block boundary")},
		{provider.EMEAES256, bytes.Repeat([]byte{0x5a}, 64)},
	}
	for _, tc := range cases {
		t.Run(string(tc.alg), func(t *testing.T) {
			bc, err := p.BlockCipher(tc.alg, key)
			if err != nil {
				t.Fatalf("BlockCipher(%s) error: %v", tc.alg, err)
			}
			iv := make([]byte, bc.IVSize())
			for i := range iv {
				iv[i] = byte(i + 7)
			}

			ciphertext, err := bc.Encrypt(iv, tc.plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}
			if bytes.Contains(ciphertext, tc.plaintext) {
				t.Error("ciphertext contains the plaintext")
			}

			got, err := bc.Decrypt(iv, ciphertext)
			if err != nil {
				t.Fatalf("Decrypt() error: %v", err)
			}
			if !bytes.Equal(got, tc.plaintext) {
				t.Errorf("Decrypt() = %x, want %x", got, tc.plaintext)
			}
		})
	}
}

func TestCTRKnownAnswer(t *testing.T) {
	// NIST SP 800-38A F.5.5, AES-256-CTR, first block.
	key := hexutil.MustDecode(`
		60 3d eb 10 15 ca 71 be 2b 73 ae f0 85 7d 77 81
		1f 35 2c 07 3b 61 08 d7 2d 98 10 a3 09 14 df f4`)
	counter := hexutil.MustDecode("f0 f1 f2 f3 f4 f5 f6 f7 f8 f9 fa fb fc fd fe ff")
	plaintext := hexutil.MustDecode("6b c1 be e2 2e 40 9f 96 e9 3d 7e 11 73 93 17 2a")
	want := hexutil.MustDecode("60 1e c3 13 77 57 89 a5 b7 a7 f5 04 bb f3 d2 28")

	bc, err := New().BlockCipher(provider.AES256CTR, key)
	if err != nil {
		t.Fatalf("BlockCipher(AES-256-CTR) error: %v", err)
	}
	got, err := bc.Encrypt(counter, plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encrypt() = %x, want %x", got, want)
	}
}

func TestCBCKnownAnswer(t *testing.T) {
	// NIST SP 800-38A F.2.5, AES-256-CBC, first block. Padding appends a
	// second block, so only the first is compared.
	key := hexutil.MustDecode(`
		60 3d eb 10 15 ca 71 be 2b 73 ae f0 85 7d 77 81
		1f 35 2c 07 3b 61 08 d7 2d 98 10 a3 09 14 df f4`)
	iv := hexutil.MustDecode("00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f")
	plaintext := hexutil.MustDecode("6b c1 be e2 2e 40 9f 96 e9 3d 7e 11 73 93 17 2a")
	wantFirst := hexutil.MustDecode("f5 8c 4c 04 d6 e5 f1 ba 77 9e ab fb 5f 7b fb d6")

	bc, err := New().BlockCipher(provider.AES256CBC, key)
	if err != nil {
		t.Fatalf("BlockCipher(AES-256-CBC) error: %v", err)
	}
	got, err := bc.Encrypt(iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if len(got) != 32 {
		t.Fatalf("ciphertext length = %d, want 32", len(got))
	}
	if !bytes.Equal(got[:16], wantFirst) {
		t.Errorf("first block = %x, want %x", got[:16], wantFirst)
	}
}

func TestCBCRejectsBadPadding(t *testing.T) {
	key := make([]byte, 32)
	bc, err := New().BlockCipher(provider.AES256CBC, key)
	if err != nil {
		t.Fatalf("BlockCipher(AES-256-CBC) error: %v", err)
	}
	iv := make([]byte, 16)
	if _, err := bc.Decrypt(iv, make([]byte, 16)); err == nil {
		t.Error("Decrypt(garbage) expected padding error")
	}
	if _, err := bc.Decrypt(iv, make([]byte, 15)); err == nil {
		t.Error("Decrypt(partial block) expected length error")
	}
}

func TestEMERejectsPartialBlocks(t *testing.T) {
	key := make([]byte, 32)
	bc, err := New().BlockCipher(provider.EMEAES256, key)
	if err != nil {
		t.Fatalf("BlockCipher(EME-AES-256) error: %v", err)
	}
	tweak := make([]byte, 16)
	if _, err := bc.Encrypt(tweak, make([]byte, 15)); err == nil {
		t.Error("Encrypt(15 bytes) expected error")
	}
	if _, err := bc.Encrypt(tweak, nil); err == nil {
		t.Error("Encrypt(empty) expected error")
	}
	if _, err := bc.Encrypt(tweak, make([]byte, 129*16)); err == nil {
		t.Error("Encrypt(129 blocks) expected error")
	}
	if _, err := bc.Encrypt(make([]byte, 8), make([]byte, 16)); err == nil {
		t.Error("Encrypt(short tweak) expected error")
	}
}

func TestStreamCipherInvolution(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(255 - i)
	}
	sc, err := New().StreamCipher(provider.ChaCha20, key)
	if err != nil {
		t.Fatalf("StreamCipher(CHACHA20) error: %v", err)
	}
	nonce := make([]byte, sc.NonceSize())
	msg := []byte("the keystream is its own inverse")

	ct, err := sc.XORKeyStream(nonce, msg)
	if err != nil {
		t.Fatalf("XORKeyStream() error: %v", err)
	}
	if bytes.Equal(ct, msg) {
		t.Error("keystream left the message unchanged")
	}
	back, err := sc.XORKeyStream(nonce, ct)
	if err != nil {
		t.Fatalf("XORKeyStream() error: %v", err)
	}
	if !bytes.Equal(back, msg) {
		t.Errorf("double XOR = %x, want %x", back, msg)
	}

	if _, err := sc.XORKeyStream(make([]byte, 3), msg); err == nil {
		t.Error("XORKeyStream(short nonce) expected error")
	}
}

func TestHashKnownAnswers(t *testing.T) {
	cases := []struct {
		alg  provider.Algorithm
		in   string
		want string
	}{
		{provider.SHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{provider.SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{provider.SHA512, "abc",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{provider.SHA3256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{provider.BLAKE2b256, "abc", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{provider.BLAKE2s256, "abc", "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
	}
	p := New()
	for _, tc := range cases {
		t.Run(string(tc.alg)+"/"+tc.in, func(t *testing.T) {
			h, err := p.Hash(tc.alg)
			if err != nil {
				t.Fatalf("Hash(%s) error: %v", tc.alg, err)
			}
			want := hexutil.MustDecode(tc.want)
			if got := h.Sum([]byte(tc.in)); !bytes.Equal(got, want) {
				t.Errorf("Sum(%q) = %x, want %x", tc.in, got, want)
			}
			if h.Size() != len(want) {
				t.Errorf("Size() = %d, want %d", h.Size(), len(want))
			}

			// The streaming state must agree with the one-shot digest.
			s := h.New()
			for _, c := range []byte(tc.in) {
				s.Write([]byte{c})
			}
			if got := s.Sum(nil); !bytes.Equal(got, want) {
				t.Errorf("streaming Sum = %x, want %x", got, want)
			}
		})
	}
}

func TestX25519KnownAnswer(t *testing.T) {
	// RFC 7748 section 5.2, first test vector for the X25519 function.
	scalar := hexutil.MustDecode("a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	point := hexutil.MustDecode("e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := hexutil.MustDecode("c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	kx, err := New().KeyExchange(provider.X25519)
	if err != nil {
		t.Fatalf("KeyExchange(X25519) error: %v", err)
	}
	got, err := kx.SharedSecret(scalar, point)
	if err != nil {
		t.Fatalf("SharedSecret() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("SharedSecret() = %x, want %x", got, want)
	}
}

func TestKeyExchangeAgreement(t *testing.T) {
	p := New()
	for _, alg := range []provider.Algorithm{provider.X25519, provider.ECDHP256} {
		t.Run(string(alg), func(t *testing.T) {
			kx, err := p.KeyExchange(alg)
			if err != nil {
				t.Fatalf("KeyExchange(%s) error: %v", alg, err)
			}
			alicePub, alicePriv, err := kx.GenerateKeyPair()
			if err != nil {
				t.Fatalf("GenerateKeyPair() error: %v", err)
			}
			bobPub, bobPriv, err := kx.GenerateKeyPair()
			if err != nil {
				t.Fatalf("GenerateKeyPair() error: %v", err)
			}
			if bytes.Equal(alicePub, bobPub) {
				t.Fatal("two generated key pairs share a public key")
			}

			s1, err := kx.SharedSecret(alicePriv, bobPub)
			if err != nil {
				t.Fatalf("SharedSecret() error: %v", err)
			}
			s2, err := kx.SharedSecret(bobPriv, alicePub)
			if err != nil {
				t.Fatalf("SharedSecret() error: %v", err)
			}
			if !bytes.Equal(s1, s2) {
				t.Errorf("shared secrets disagree: %x vs %x", s1, s2)
			}
		})
	}
}

func TestEd25519KnownAnswer(t *testing.T) {
	// RFC 8032 section 7.1, test 1: empty message.
	seed := hexutil.MustDecode("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	pub := hexutil.MustDecode("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	wantSig := hexutil.MustDecode(`
		e5 56 43 00 c3 60 ac 72 90 86 e2 cc 80 6e 82 8a
		84 87 7f 1e b8 e5 d9 74 d8 73 e0 65 22 49 01 55
		5f b8 82 15 90 a3 3b ac c6 1e 39 70 1c f9 b4 6b
		d2 5b f5 f0 59 5b be 24 65 51 41 43 8e 7a 10 0b`)

	signer, err := New().Signer(provider.Ed25519)
	if err != nil {
		t.Fatalf("Signer(ED25519) error: %v", err)
	}
	sig, err := signer.Sign(seed, nil)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	if !bytes.Equal(sig, wantSig) {
		t.Errorf("Sign() = %x, want %x", sig, wantSig)
	}
	if err := signer.Verify(pub, nil, sig); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
}

func TestSignerRoundTrip(t *testing.T) {
	p := New()
	message := []byte("signed payload")

	algs := []provider.Algorithm{
		provider.Ed25519,
		provider.ECDSAP256,
		provider.RSAPSSSHA256,
		provider.RSAPKCS1SHA256,
	}
	for _, alg := range algs {
		t.Run(string(alg), func(t *testing.T) {
			if testing.Short() && (alg == provider.RSAPSSSHA256 || alg == provider.RSAPKCS1SHA256) {
				t.Skip("skipping RSA key generation in short mode")
			}
			signer, err := p.Signer(alg)
			if err != nil {
				t.Fatalf("Signer(%s) error: %v", alg, err)
			}
			pub, priv, err := signer.GenerateKey()
			if err != nil {
				t.Fatalf("GenerateKey() error: %v", err)
			}
			sig, err := signer.Sign(priv, message)
			if err != nil {
				t.Fatalf("Sign() error: %v", err)
			}
			if err := signer.Verify(pub, message, sig); err != nil {
				t.Errorf("Verify() error: %v", err)
			}

			// A modified message must not verify.
			if err := signer.Verify(pub, []byte("tampered payload"), sig); !errors.Is(err, provider.ErrVerification) {
				t.Errorf("Verify(tampered) err = %v, want ErrVerification", err)
			}
		})
	}
}

func TestKDFDeterminism(t *testing.T) {
	p := New()
	secret := []byte("input keying material")
	salt := []byte("salt value")

	for _, alg := range []provider.Algorithm{provider.HKDFSHA256, provider.PBKDF2SHA256, provider.Argon2id} {
		t.Run(string(alg), func(t *testing.T) {
			kdf, err := p.KDF(alg)
			if err != nil {
				t.Fatalf("KDF(%s) error: %v", alg, err)
			}
			var info []byte
			if alg == provider.HKDFSHA256 {
				info = []byte("context")
			}

			a, err := kdf.Derive(secret, salt, info, 32)
			if err != nil {
				t.Fatalf("Derive() error: %v", err)
			}
			if len(a) != 32 {
				t.Fatalf("Derive() returned %d bytes, want 32", len(a))
			}
			b, err := kdf.Derive(secret, salt, info, 32)
			if err != nil {
				t.Fatalf("Derive() error: %v", err)
			}
			if !bytes.Equal(a, b) {
				t.Error("Derive() is not deterministic")
			}

			c, err := kdf.Derive(secret, []byte("different salt"), info, 32)
			if err != nil {
				t.Fatalf("Derive() error: %v", err)
			}
			if bytes.Equal(a, c) {
				t.Error("Derive() ignored the salt")
			}

			if _, err := kdf.Derive(secret, salt, info, 0); err == nil {
				t.Error("Derive(length 0) expected error")
			}
		})
	}
}

func TestHKDFKnownAnswer(t *testing.T) {
	// RFC 5869 appendix A.1.
	ikm := hexutil.MustDecode("0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b 0b")
	salt := hexutil.MustDecode("00 01 02 03 04 05 06 07 08 09 0a 0b 0c")
	info := hexutil.MustDecode("f0 f1 f2 f3 f4 f5 f6 f7 f8 f9")
	want := hexutil.MustDecode(`
		3c b2 5f 25 fa ac d5 7a 90 43 4f 64 d0 36 2f 2a
		2d 2d 0a 90 cf 1a 5a 4c 5d b0 2d 56 ec c4 c5 bf
		34 00 72 08 d5 b8 87 18 58 65`)

	kdf, err := New().KDF(provider.HKDFSHA256)
	if err != nil {
		t.Fatalf("KDF(HKDF-SHA256) error: %v", err)
	}
	got, err := kdf.Derive(ikm, salt, info, 42)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Derive() = %x, want %x", got, want)
	}
}

func TestHMACKnownAnswers(t *testing.T) {
	// RFC 4231 test case 1.
	key := bytes.Repeat([]byte{0x0b}, 20)
	message := []byte("Hi There")

	cases := []struct {
		alg  provider.Algorithm
		want string
	}{
		{provider.HMACSHA256, "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"},
		{provider.HMACSHA512,
			"87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
				"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854"},
	}
	p := New()
	for _, tc := range cases {
		t.Run(string(tc.alg), func(t *testing.T) {
			mac, err := p.MAC(tc.alg)
			if err != nil {
				t.Fatalf("MAC(%s) error: %v", tc.alg, err)
			}
			want := hexutil.MustDecode(tc.want)
			got, err := mac.Tag(key, message)
			if err != nil {
				t.Fatalf("Tag() error: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Tag() = %x, want %x", got, want)
			}
			if err := mac.Verify(key, message, want); err != nil {
				t.Errorf("Verify() error: %v", err)
			}

			bad := make([]byte, len(want))
			copy(bad, want)
			bad[0] ^= 0x01
			if err := mac.Verify(key, message, bad); !errors.Is(err, provider.ErrVerification) {
				t.Errorf("Verify(bad tag) err = %v, want ErrVerification", err)
			}
		})
	}
}
