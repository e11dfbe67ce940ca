package bitbuffer

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuf/shared"
)

// ShiftRight shifts the bits of b towards index 0 by n positions: after the
// call bit i holds what bit i+n held before. The n low bits are dropped and
// the n newly exposed high bits are zero. A negative n shifts left.
// It returns b.
func (b *Buffer) ShiftRight(n int) *Buffer {
	if n < 0 {
		return b.ShiftLeft(-n)
	}
	if n == 0 {
		return b
	}

	// Mask the bits that are shifted out.
	b.clearBits(b.startBit, b.startBit+min(n, b.length))

	b.startBit += n

	// Grow when the window was pushed past the end of the storage.
	endByte := shared.NumBytes(b.startBit + b.length)
	if endByte > len(b.storage) {
		startByte := b.startBit >> 3
		grown := make([]byte, endByte-startByte)
		if startByte < len(b.storage) {
			copy(grown, b.storage[startByte:])
		}
		b.replaceStorage(grown, "right")
		b.startBit -= 8 * startByte
	}

	b.clearBits(b.startBit+max(b.length-n, 0), b.startBit+b.length)
	return b
}

// ShiftLeft shifts the bits of b away from index 0 by n positions: after the
// call bit i holds what bit i-n held before. The n high bits are dropped and
// the n newly exposed low bits are zero. A negative n shifts right.
// It returns b.
func (b *Buffer) ShiftLeft(n int) *Buffer {
	if n < 0 {
		return b.ShiftRight(-n)
	}
	if n == 0 {
		return b
	}

	// Mask the bits that are shifted out.
	end := b.startBit + b.length
	b.clearBits(end-min(n, b.length), end)

	b.startBit -= n

	// Grow when the window was pushed before the start of the storage.
	if b.startBit < 0 {
		newBytes := shared.NumBytes(-b.startBit)
		grown := make([]byte, newBytes+len(b.storage))
		copy(grown[newBytes:], b.storage)
		b.replaceStorage(grown, "left")
		b.startBit += 8 * newBytes
	}

	b.clearBits(b.startBit, b.startBit+min(n, b.length))
	return b
}

// clearBits zeroes the storage bits [from, to), given as absolute positions.
func (b *Buffer) clearBits(from, to int) {
	for ; from < to && from&7 != 0; from++ {
		b.storage[from>>3] &^= 1 << (from & 7)
	}
	for ; from+8 <= to; from += 8 {
		b.storage[from>>3] = 0
	}
	for ; from < to; from++ {
		b.storage[from>>3] &^= 1 << (from & 7)
	}
}

func (b *Buffer) replaceStorage(storage []byte, direction string) {
	b.logger.Debug("bitbuffer storage grown",
		zap.String("direction", direction),
		zap.Int("bits", b.length),
		zap.Int("old_bytes", len(b.storage)),
		zap.Int("new_bytes", len(storage)),
	)
	if b.borrowed {
		b.logger.Warn("bitbuffer no longer aliases borrowed storage", zap.Int("bytes", len(b.storage)))
		b.borrowed = false
	}
	b.storage = storage
}
