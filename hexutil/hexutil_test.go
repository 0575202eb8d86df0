package hexutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"single byte", []byte{0x00}, "00"},
		{"two bytes", []byte{0x00, 0xff}, "00 ff"},
		{"fifteen bytes stay on one line", bytes.Repeat([]byte{0xab}, 15),
			"ab ab ab ab ab ab ab ab ab ab ab ab ab ab ab"},
		{"sixteen bytes stay on one line", bytes.Repeat([]byte{0xab}, 16),
			"ab ab ab ab ab ab ab ab ab ab ab ab ab ab ab ab"},
		{"seventeenth byte wraps", append(bytes.Repeat([]byte{0xab}, 16), 0xcd),
			"ab ab ab ab ab ab ab ab ab ab ab ab ab ab ab ab\ncd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncodeSequential(t *testing.T) {
	// 17 sequential bytes: exactly one newline, after the 16th byte pair.
	src := make([]byte, 17)
	for i := range src {
		src[i] = byte(i)
	}
	got := Encode(src)
	want := "00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n10"
	assert.Equal(t, want, got)
	assert.Equal(t, 1, bytes.Count([]byte(got), []byte{'\n'}))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"plain pair", "00ff", []byte{0x00, 0xff}},
		{"space separated", "00 ff", []byte{0x00, 0xff}},
		{"colon separated", "de:ad:be:ef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"newline separated", "de\nad", []byte{0xde, 0xad}},
		{"mixed separators", "de ad:be\nef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"uppercase accepted", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"leading and trailing whitespace", "  ab cd\n", []byte{0xab, 0xcd}},
		{"only separators", " :\n", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"odd length", "abc"},
		{"odd after stripping", "ab c"},
		{"single digit", "f"},
		{"invalid digit", "zz"},
		{"invalid digit mid input", "ab cd eg"},
		{"unsupported separator", "ab-cd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.Error(t, err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "error should be a *FormatError")
			assert.Equal(t, tt.in, fe.Input)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xff},
		{0x00, 0x01, 0x02},
		bytes.Repeat([]byte{0x5a}, 16),
		bytes.Repeat([]byte{0xa5}, 17),
		bytes.Repeat([]byte{0x42}, 100),
	}
	for _, in := range inputs {
		got, err := Decode(Encode(in))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(in, got), "round trip mismatch for %d bytes", len(in))
	}
}

func TestDecodeSeparatorInsensitive(t *testing.T) {
	// Decorating valid hex with extra separators at byte boundaries must not
	// change the decoded value.
	plain := "000102030405"
	want, err := Decode(plain)
	require.NoError(t, err)

	decorated := []string{
		"00 01 02 03 04 05",
		"00:01:02:03:04:05",
		"0001\n0203\n0405",
		" 00  01\t02 \r\n03:04::05 ",
	}
	for _, d := range decorated {
		got, err := Decode(d)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", d)
	}
}

func TestMustDecodePanics(t *testing.T) {
	assert.Panics(t, func() { MustDecode("xyz") })
	assert.Equal(t, []byte{0xab}, MustDecode("ab"))
}
