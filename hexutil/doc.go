// Package hexutil converts between byte sequences and the human-readable
// hexadecimal text format used by the conformance test vectors.
//
// The format renders each byte as two lowercase hex digits. Consecutive
// bytes are separated by a single space, except every 16th byte, which is
// followed by a newline instead. This matches the layout of published
// test-vector listings, so vectors can be pasted verbatim:
//
//	00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f
//	10
//
// The decoder is tolerant: it accepts space, colon, newline, tab and
// carriage-return separators anywhere in the input, so colon-separated
// fingerprints and wrapped vector listings decode the same way.
package hexutil
