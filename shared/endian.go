package shared

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/funvibe/funbit/pkg/funbit"
)

// Endian is a byte order for multi-byte values.
type Endian uint8

const (
	UnknownEndian Endian = iota
	BigEndian
	LittleEndian
)

var hostEndian = nativeEndian(funbit.GetNativeEndianness())

func nativeEndian(name string) Endian {
	if name == "big" {
		return BigEndian
	}
	return LittleEndian
}

// HostEndian returns the native byte order of the executing platform.
func HostEndian() Endian {
	return hostEndian
}

// ParseEndian parses a byte order name. Accepted names are "BE", "big",
// "LE", "little" and "host" (case-insensitive).
func ParseEndian(name string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "be", "big", "big-endian", "bigendian":
		return BigEndian, nil
	case "le", "little", "little-endian", "littleendian":
		return LittleEndian, nil
	case "host", "native":
		return HostEndian(), nil
	default:
		return UnknownEndian, fmt.Errorf("%w: %q", ErrUnknownEndian, name)
	}
}

// Swap returns the opposite byte order. UnknownEndian is returned unchanged.
func (e Endian) Swap() Endian {
	switch e {
	case BigEndian:
		return LittleEndian
	case LittleEndian:
		return BigEndian
	default:
		return e
	}
}

// ByteOrder returns the encoding/binary byte order, or nil for UnknownEndian.
func (e Endian) ByteOrder() binary.ByteOrder {
	switch e {
	case BigEndian:
		return binary.BigEndian
	case LittleEndian:
		return binary.LittleEndian
	default:
		return nil
	}
}

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "BE"
	case LittleEndian:
		return "LE"
	default:
		return "unknown"
	}
}

func (e Endian) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Endian) UnmarshalText(text []byte) error {
	v, err := ParseEndian(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
