package bitbuffer

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange          = errors.New("out of range")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrUnsupportedFormat   = errors.New("unsupported numeric format")
	ErrStorageTooSmall     = errors.New("storage too small")
)

// RangeError is returned when a bit range falls outside of a buffer.
// It matches ErrOutOfRange.
type RangeError struct {
	Op    string
	Start int
	End   int
	Len   int
}

func (err RangeError) Error() string {
	return fmt.Sprintf("%v: range [%d, %d) out of bounds for length %d", err.Op, err.Start, err.End, err.Len)
}

func (err RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvalidHexError names a pair of characters that is not a hex byte.
// It matches ErrInvalidFormat.
type InvalidHexError struct {
	Pair string
}

func (err InvalidHexError) Error() string {
	return fmt.Sprintf("%q is not a valid hex value", err.Pair)
}

func (err InvalidHexError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// InvalidCharacterError is returned for a binary string holding anything
// other than '0' and '1'. It matches ErrInvalidFormat.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (err InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid binary digit %q at position %d", err.Char, err.Pos)
}

func (err InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidFormat
}
