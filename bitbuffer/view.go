package bitbuffer

import (
	"fmt"

	"github.com/spacemeshos/bitbuf/shared"
)

// CopyTo copies bits [srcStart, srcEnd) of b into dst, starting at dstStart,
// and returns the number of bits copied.
func (b *Buffer) CopyTo(dst *Buffer, dstStart, srcStart, srcEnd int) (int, error) {
	if srcStart < 0 || srcEnd > b.length || srcStart > srcEnd {
		return 0, RangeError{Op: "copy: read source", Start: srcStart, End: srcEnd, Len: b.length}
	}
	n := srcEnd - srcStart
	if dstStart < 0 || dstStart > dst.length-n {
		return 0, RangeError{Op: "copy: write destination", Start: dstStart, End: dstStart + n, Len: dst.length}
	}

	// Copying within the same buffer towards higher indices must run backwards.
	if dst == b && dstStart > srcStart {
		for i := n - 1; i >= 0; i-- {
			dst.UncheckedSet(dstStart+i, b.UncheckedGet(srcStart+i))
		}
		return n, nil
	}

	for i := 0; i < n; i++ {
		dst.UncheckedSet(dstStart+i, b.UncheckedGet(srcStart+i))
	}
	return n, nil
}

// Copy copies all of b into dst, starting at bit 0 of dst.
func (b *Buffer) Copy(dst *Buffer) (int, error) {
	return b.CopyTo(dst, 0, 0, b.length)
}

// Subbuffer returns a new buffer holding bits [begin, end) of b.
// Negative begin or end count back from the end of b.
// An empty buffer is returned when end <= begin.
func (b *Buffer) Subbuffer(begin, end int) (*Buffer, error) {
	if begin < 0 {
		begin += b.length
	}
	if end < 0 {
		end += b.length
	}

	if end <= begin {
		return b.derive(0), nil
	}
	if begin < 0 || end > b.length {
		return nil, fmt.Errorf("subbuffer: %w", RangeError{Op: "read source", Start: begin, End: end, Len: b.length})
	}
	size := end - begin

	sub := b.derive(size)
	if _, err := b.CopyTo(sub, 0, begin, end); err != nil {
		return nil, fmt.Errorf("subbuffer: %w", err)
	}
	return sub, nil
}

// SubbufferFrom returns a new buffer holding bits [begin, Len()) of b.
func (b *Buffer) SubbufferFrom(begin int) (*Buffer, error) {
	return b.Subbuffer(begin, b.length)
}

// AlignedBytes returns a copy of the buffer's bits, with logical bit 0 at
// the LS bit of the first byte. Bits past Len() in the last byte are zero.
func (b *Buffer) AlignedBytes() []byte {
	size := shared.NumBytes(b.length)
	out := make([]byte, size)
	if size == 0 {
		return out
	}

	if b.startBit%8 == 0 {
		first := b.startBit >> 3
		copy(out, b.storage[first:first+size])
	} else {
		for i := 0; i < b.length; i++ {
			if b.UncheckedGet(i) {
				out[i>>3] |= 1 << (i & 7)
			}
		}
	}

	if rem := b.length % 8; rem != 0 {
		out[size-1] &= 1<<rem - 1
	}
	return out
}
