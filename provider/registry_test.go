package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a minimal Provider for registry tests. Every constructor
// reports ErrUnsupported.
type stubProvider struct {
	name string
	algs []Algorithm
}

func (s *stubProvider) Name() string            { return s.name }
func (s *stubProvider) Algorithms() []Algorithm { return s.algs }

func (s *stubProvider) AEAD(Algorithm, []byte) (AEAD, error)               { return nil, ErrUnsupported }
func (s *stubProvider) BlockCipher(Algorithm, []byte) (BlockCipher, error) { return nil, ErrUnsupported }
func (s *stubProvider) StreamCipher(Algorithm, []byte) (StreamCipher, error) {
	return nil, ErrUnsupported
}
func (s *stubProvider) Hash(Algorithm) (Hash, error)               { return nil, ErrUnsupported }
func (s *stubProvider) KeyExchange(Algorithm) (KeyExchange, error) { return nil, ErrUnsupported }
func (s *stubProvider) Signer(Algorithm) (Signer, error)           { return nil, ErrUnsupported }
func (s *stubProvider) KDF(Algorithm) (KDF, error)                 { return nil, ErrUnsupported }
func (s *stubProvider) MAC(Algorithm) (MAC, error)                 { return nil, ErrUnsupported }

func TestRegisterAndGet(t *testing.T) {
	p := &stubProvider{name: "registry-test-a"}
	require.NoError(t, Register(p))

	got, err := Get("registry-test-a")
	require.NoError(t, err)
	assert.Same(t, p, got)

	// Re-registering the same provider is idempotent.
	assert.NoError(t, Register(p))

	// A different provider under the same name is rejected.
	err = Register(&stubProvider{name: "registry-test-a"})
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	assert.Error(t, Register(nil))
	assert.Error(t, Register(&stubProvider{name: ""}))
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("registry-test-no-such-provider")
	assert.Error(t, err)
}

func TestNamesSorted(t *testing.T) {
	require.NoError(t, Register(&stubProvider{name: "registry-test-zz"}))
	require.NoError(t, Register(&stubProvider{name: "registry-test-mm"}))

	names := Names()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "registry-test-zz")
	assert.Contains(t, names, "registry-test-mm")
}

func TestInstallAndCurrent(t *testing.T) {
	p := &stubProvider{name: "registry-test-install"}
	require.NoError(t, Register(p))

	prev := Current()
	defer Swap(prev)()

	require.NoError(t, Install("registry-test-install"))
	assert.Same(t, p, Current())

	assert.Error(t, Install("registry-test-missing"))
	// A failed install leaves the selection untouched.
	assert.Same(t, p, Current())
}

func TestSwapRestores(t *testing.T) {
	a := &stubProvider{name: "registry-test-swap-a"}
	b := &stubProvider{name: "registry-test-swap-b"}

	restoreA := Swap(a)
	assert.Same(t, a, Current())

	restoreB := Swap(b)
	assert.Same(t, b, Current())

	restoreB()
	assert.Same(t, a, Current())
	restoreA()
}

func TestSupports(t *testing.T) {
	p := &stubProvider{name: "registry-test-supports", algs: []Algorithm{SHA256, Ed25519}}
	assert.True(t, Supports(p, SHA256))
	assert.True(t, Supports(p, Ed25519))
	assert.False(t, Supports(p, AES256GCM))
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want Family
	}{
		{AES256GCM, FamilyAEAD},
		{AESSIV, FamilyAEAD},
		{AES256CTR, FamilyBlockCipher},
		{EMEAES256, FamilyBlockCipher},
		{ChaCha20, FamilyStreamCipher},
		{SHA3256, FamilyHash},
		{X25519, FamilyKeyExchange},
		{ECDSAP256, FamilySignature},
		{HKDFSHA256, FamilyKDF},
		{HMACSHA512, FamilyMAC},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FamilyOf(tt.alg), "algorithm %s", tt.alg)
	}

	assert.False(t, Known(Algorithm("NO-SUCH-ALG")))
	assert.Equal(t, Family(""), FamilyOf(Algorithm("NO-SUCH-ALG")))
}
