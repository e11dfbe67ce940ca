package bitbuffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spacemeshos/bitbuf/shared"
)

// Kind is the numeric interpretation applied by Read.
type Kind uint8

const (
	// InvalidKind is the zero Kind. Read rejects it.
	InvalidKind Kind = iota
	// Uint is an unsigned integer of 8, 16, 32 or 64 bits.
	Uint
	// Int is a two's complement integer of 8, 16, 32 or 64 bits.
	Int
	// Float is an IEEE 754 single.
	Float
	// Double is an IEEE 754 double.
	Double
)

// ParseKind parses "uint", "int", "float" or "double" (case-insensitive).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uint":
		return Uint, nil
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "double":
		return Double, nil
	default:
		return InvalidKind, fmt.Errorf("%w: kind %q", ErrUnsupportedFormat, name)
	}
}

func (k Kind) String() string {
	switch k {
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "invalid"
	}
}

// Value is a decoded number.
type Value struct {
	kind  Kind
	width int
	raw   uint64
}

// Kind returns the kind the value was decoded as.
func (v Value) Kind() Kind {
	return v.kind
}

// Width returns the width of the decoded type, in bits.
func (v Value) Width() int {
	return v.width
}

// Uint64 returns the raw bits of the value.
func (v Value) Uint64() uint64 {
	return v.raw
}

// Int64 returns the value interpreted as a two's complement integer of its width.
func (v Value) Int64() int64 {
	if v.width <= 0 || v.width >= 64 {
		return int64(v.raw)
	}
	shift := 64 - v.width
	return int64(v.raw<<shift) >> shift
}

// Float64 returns the value as a float64, converting integers.
func (v Value) Float64() float64 {
	switch v.kind {
	case Float:
		return float64(math.Float32frombits(uint32(v.raw)))
	case Double:
		return math.Float64frombits(v.raw)
	case Int:
		return float64(v.Int64())
	default:
		return float64(v.raw)
	}
}

func (v Value) String() string {
	switch v.kind {
	case Uint:
		return strconv.FormatUint(v.raw, 10)
	case Int:
		return strconv.FormatInt(v.Int64(), 10)
	case Float:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	default:
		return ""
	}
}

// Read decodes a number of kind and typeWidth bits in the given byte order,
// from readWidth bits of b starting at offset.
//
// Float forces a typeWidth of 32 and Double of 64; 8-bit reads ignore
// endian. A readWidth of zero, or one larger than typeWidth, reads typeWidth
// bits. When fewer bits are read into an Int, the value is sign-extended from
// its most-significant read bit.
//
// The bits are assumed to be laid out in the buffer's host byte order, so on
// a little-endian host the requested byte order is swapped before decoding.
func (b *Buffer) Read(kind Kind, typeWidth int, endian shared.Endian, offset, readWidth int) (Value, error) {
	switch kind {
	case Float:
		typeWidth = 32
	case Double:
		typeWidth = 64
	case Uint, Int:
		switch typeWidth {
		case 8, 16, 32, 64:
		default:
			return Value{}, fmt.Errorf("%w: %v%d", ErrUnsupportedFormat, kind, typeWidth)
		}
	default:
		return Value{}, fmt.Errorf("%w: kind %v", ErrUnsupportedFormat, kind)
	}
	if typeWidth == 8 {
		endian = shared.BigEndian
	}
	if endian != shared.BigEndian && endian != shared.LittleEndian {
		return Value{}, fmt.Errorf("%w: %v%d with byte order %v", ErrUnsupportedFormat, kind, typeWidth, endian)
	}

	if readWidth <= 0 || readWidth > typeWidth {
		readWidth = typeWidth
	}
	if offset < 0 || offset > b.length-readWidth {
		return Value{}, RangeError{Op: "read", Start: offset, End: offset + readWidth, Len: b.length}
	}

	order := endian
	if b.host == shared.LittleEndian {
		order = endian.Swap()
	}

	scratch := New(typeWidth)
	if kind == Int && readWidth < typeWidth && b.UncheckedGet(offset+readWidth-1) {
		for i := range scratch.storage {
			scratch.storage[i] = 0xff
		}
	}
	if _, err := b.CopyTo(scratch, 0, offset, offset+readWidth); err != nil {
		return Value{}, err
	}

	return Value{
		kind:  kind,
		width: typeWidth,
		raw:   decodeRaw(scratch.storage, typeWidth, order.ByteOrder()),
	}, nil
}

func decodeRaw(p []byte, width int, order binary.ByteOrder) uint64 {
	switch width {
	case 8:
		return uint64(p[0])
	case 16:
		return uint64(order.Uint16(p))
	case 32:
		return uint64(order.Uint32(p))
	default:
		return order.Uint64(p)
	}
}
