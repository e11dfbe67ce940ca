package bitbuffer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf/shared"
)

// Buffer is a fixed-length sequence of bits packed LSB-first into bytes.
type Buffer struct {
	storage  []byte
	length   int
	startBit int
	borrowed bool

	logger *zap.Logger
	host   shared.Endian
}

func newBuffer(opts []Option) *Buffer {
	b := &Buffer{
		logger: zap.NewNop(),
		host:   shared.HostEndian(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New returns a zero-filled Buffer of bitCount bits.
// A negative bitCount is treated as 0.
func New(bitCount int, opts ...Option) *Buffer {
	if bitCount < 0 {
		bitCount = 0
	}
	b := newBuffer(opts)
	b.storage = make([]byte, shared.NumBytes(bitCount))
	b.length = bitCount
	return b
}

// Wrap returns a Buffer of bitCount bits which borrows storage instead of
// allocating. Writes through the Buffer are visible in storage and vice versa,
// until a shift has to grow the storage; from then on the Buffer owns a copy.
func Wrap(bitCount int, storage []byte, opts ...Option) (*Buffer, error) {
	if bitCount < 0 {
		bitCount = 0
	}
	if need := shared.NumBytes(bitCount); len(storage) < need {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, given: %d", ErrStorageTooSmall, bitCount, need, len(storage))
	}
	b := newBuffer(opts)
	b.storage = storage
	b.length = bitCount
	b.borrowed = true
	return b, nil
}

// FromBools returns a Buffer where bit i is set when bits[i] is true.
func FromBools(bits []bool, opts ...Option) *Buffer {
	b := New(len(bits), opts...)
	for i, bit := range bits {
		b.UncheckedSet(i, bit)
	}
	return b
}

// Len returns the number of bits in the buffer.
func (b *Buffer) Len() int {
	return b.length
}

// Borrowed reports whether the buffer still aliases storage given to Wrap.
func (b *Buffer) Borrowed() bool {
	return b.borrowed
}

// HostEndian returns the byte order used to compensate numeric reads.
func (b *Buffer) HostEndian() shared.Endian {
	return b.host
}

// Bytes returns the backing storage. The slice is shared with the buffer,
// and may hold bits outside of the buffer's window.
func (b *Buffer) Bytes() []byte {
	return b.storage
}

// locate translates a logical bit index into a storage byte index and mask.
func (b *Buffer) locate(i int) (int, byte) {
	abs := i + b.startBit
	return abs >> 3, 1 << (abs & 7)
}

// UncheckedGet returns bit i without checking it is inside the buffer.
// Indices outside of [0, Len()) read neighbouring storage bits, or panic
// if they fall outside the storage.
func (b *Buffer) UncheckedGet(i int) bool {
	idx, mask := b.locate(i)
	return b.storage[idx]&mask != 0
}

// UncheckedSet sets bit i without checking it is inside the buffer.
func (b *Buffer) UncheckedSet(i int, v bool) {
	idx, mask := b.locate(i)
	if v {
		b.storage[idx] |= mask
	} else {
		b.storage[idx] &^= mask
	}
}

// UncheckedToggle flips bit i without checking it is inside the buffer.
func (b *Buffer) UncheckedToggle(i int) {
	idx, mask := b.locate(i)
	b.storage[idx] ^= mask
}

func (b *Buffer) checkIndex(op string, i int) error {
	if i < 0 || i >= b.length {
		return RangeError{Op: op, Start: i, End: i + 1, Len: b.length}
	}
	return nil
}

// Get returns bit i.
func (b *Buffer) Get(i int) (bool, error) {
	if err := b.checkIndex("get", i); err != nil {
		return false, err
	}
	return b.UncheckedGet(i), nil
}

// Set sets bit i to v.
func (b *Buffer) Set(i int, v bool) error {
	if err := b.checkIndex("set", i); err != nil {
		return err
	}
	b.UncheckedSet(i, v)
	return nil
}

// Toggle flips bit i.
func (b *Buffer) Toggle(i int) error {
	if err := b.checkIndex("toggle", i); err != nil {
		return err
	}
	b.UncheckedToggle(i)
	return nil
}

// ToBitArray returns the bits as a sequence of 0/1 values, in index order,
// or from the highest index down when reverse is set.
func (b *Buffer) ToBitArray(reverse bool) []uint8 {
	bits := make([]uint8, b.length)
	for i := 0; i < b.length; i++ {
		var bit uint8
		if b.UncheckedGet(i) {
			bit = 1
		}
		if reverse {
			bits[b.length-1-i] = bit
		} else {
			bits[i] = bit
		}
	}
	return bits
}

// Equal reports whether both buffers hold the same bit sequence.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.length != other.length {
		return false
	}
	for i := 0; i < b.length; i++ {
		if b.UncheckedGet(i) != other.UncheckedGet(i) {
			return false
		}
	}
	return true
}

// derive returns a new, exclusively owned buffer carrying b's options.
func (b *Buffer) derive(bitCount int) *Buffer {
	return New(bitCount, WithLogger(b.logger), WithHostEndian(b.host))
}
