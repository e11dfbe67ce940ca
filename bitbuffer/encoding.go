package bitbuffer

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoding selects a string representation of a Buffer.
type Encoding uint8

const (
	// Binary is a string of '0' and '1' characters, most-significant bit first.
	Binary Encoding = iota
	// Hex is a string of hex nybbles, most-significant nybble first.
	Hex
)

const hexDigits = "0123456789abcdef"

// ParseEncoding returns the encoding named by name (case-insensitive).
// An empty name selects Binary.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "binary", "bin":
		return Binary, nil
	case "hex":
		return Hex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// IsEncoding reports whether name is a supported encoding.
func IsEncoding(name string) bool {
	_, err := ParseEncoding(name)
	return err == nil
}

func (e Encoding) String() string {
	switch e {
	case Binary:
		return "binary"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// FromString decodes s according to enc.
func FromString(s string, enc Encoding, opts ...Option) (*Buffer, error) {
	switch enc {
	case Binary:
		return FromBinaryString(s, opts...)
	case Hex:
		return FromHexString(s, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}
}

// FromBinaryString decodes a string of '0' and '1' characters. The last
// character becomes bit 0.
func FromBinaryString(s string, opts ...Option) (*Buffer, error) {
	b := New(len(s), opts...)
	for pos, c := range s {
		switch c {
		case '0':
		case '1':
			b.UncheckedSet(len(s)-1-pos, true)
		default:
			return nil, InvalidCharacterError{Char: c, Pos: pos}
		}
	}
	return b, nil
}

// FromHexString decodes a string of hex nybbles, most-significant first.
// An odd-length string is treated as if it had a leading '0'.
func FromHexString(s string, opts ...Option) (*Buffer, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}

	b := New(len(s)*4, opts...)
	numBytes := len(s) / 2
	for i := 0; i < numBytes; i++ {
		pair := s[2*i : 2*i+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return nil, InvalidHexError{Pair: pair}
		}
		// The leftmost pair is the most-significant byte.
		b.storage[numBytes-1-i] = byte(v)
	}
	return b, nil
}

// Encode returns the string representation of b in enc.
func (b *Buffer) Encode(enc Encoding) (string, error) {
	switch enc {
	case Binary:
		return b.BinaryString(), nil
	case Hex:
		return b.HexString(), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}
}

// BinaryString returns the bits as '0' and '1' characters, highest index first.
func (b *Buffer) BinaryString() string {
	out := make([]byte, b.length)
	for i := 0; i < b.length; i++ {
		c := byte('0')
		if b.UncheckedGet(i) {
			c = '1'
		}
		out[b.length-1-i] = c
	}
	return string(out)
}

// HexString returns the bits as lowercase hex nybbles, highest first. A
// trailing partial nybble is padded with zero bits.
func (b *Buffer) HexString() string {
	n := (b.length + 3) / 4
	out := make([]byte, n)
	for nyb := 0; nyb < n; nyb++ {
		var v byte
		for k := 0; k < 4; k++ {
			i := nyb*4 + k
			if i < b.length && b.UncheckedGet(i) {
				v |= 1 << k
			}
		}
		out[n-1-nyb] = hexDigits[v]
	}
	return string(out)
}

// String implements fmt.Stringer using the Binary encoding.
func (b *Buffer) String() string {
	return b.BinaryString()
}
