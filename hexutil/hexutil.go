package hexutil

import (
	"fmt"
	"strings"
)

// bytesPerLine is the number of byte pairs emitted before a line break.
const bytesPerLine = 16

const hexDigits = "0123456789abcdef"

// FormatError describes malformed hexadecimal input passed to Decode.
// It carries the offending input and the byte offset of the problem so
// callers can report exactly what failed to parse.
type FormatError struct {
	Input  string // the input as given, separators included
	Offset int    // offset into the separator-stripped digits, -1 for length errors
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("invalid hex input %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid hex input %q at digit %d: %s", e.Input, e.Offset, e.Reason)
}

// Encode renders src in the wrapped test-vector format: two lowercase hex
// digits per byte, a space between bytes, and a newline after every 16th
// byte. An empty input produces an empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(src) * 3)
	for i, c := range src {
		if i > 0 {
			if i%bytesPerLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

// Decode parses hexadecimal text into the byte sequence it represents.
// Space, colon, newline, tab and carriage-return characters are ignored
// wherever they appear. Decode returns a *FormatError if the remaining
// digit count is odd or any character is not a hex digit.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)

	var hi byte
	haveHi := false
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', ':', '\n', '\t', '\r':
			continue
		}
		v, ok := fromHexChar(c)
		if !ok {
			return nil, &FormatError{Input: s, Offset: digits, Reason: fmt.Sprintf("character %q is not a hex digit", c)}
		}
		if haveHi {
			out = append(out, hi<<4|v)
			haveHi = false
		} else {
			hi = v
			haveHi = true
		}
		digits++
	}
	if haveHi {
		return nil, &FormatError{Input: s, Offset: -1, Reason: fmt.Sprintf("odd number of hex digits (%d)", digits)}
	}
	return out, nil
}

// MustDecode is Decode for hard-coded vectors; it panics on malformed input.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
