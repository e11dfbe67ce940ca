package bitbuffer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spacemeshos/bitbuf/bitbuffer"
	"github.com/spacemeshos/bitbuf/shared"
)

func TestNew_ZeroFilled(t *testing.T) {
	req := require.New(t)

	for n := 0; n < 70; n++ {
		b := bitbuffer.New(n)
		req.Equal(n, b.Len())
		req.Len(b.Bytes(), shared.NumBytes(n))
		for i := 0; i < n; i++ {
			bit, err := b.Get(i)
			req.NoError(err)
			req.False(bit)
		}
	}

	req.Equal(0, bitbuffer.New(-5).Len())
}

func TestSetGetToggle(t *testing.T) {
	req := require.New(t)

	b := bitbuffer.New(19)
	for i := 0; i < b.Len(); i++ {
		req.NoError(b.Set(i, true))
		bit, err := b.Get(i)
		req.NoError(err)
		req.True(bit)

		req.NoError(b.Set(i, false))
		bit, err = b.Get(i)
		req.NoError(err)
		req.False(bit)
	}

	for i := 0; i < b.Len(); i += 3 {
		req.NoError(b.Set(i, true))
	}
	before := b.String()
	for i := 0; i < b.Len(); i++ {
		req.NoError(b.Toggle(i))
		req.NoError(b.Toggle(i))
	}
	req.Equal(before, b.String())

	req.NoError(b.Toggle(1))
	bit, err := b.Get(1)
	req.NoError(err)
	req.True(bit)
}

func TestCheckedAccessors_OutOfRange(t *testing.T) {
	req := require.New(t)

	b := bitbuffer.New(10)

	_, err := b.Get(10)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
	var rangeErr bitbuffer.RangeError
	req.ErrorAs(err, &rangeErr)
	req.Equal("get", rangeErr.Op)
	req.Equal(10, rangeErr.Len)

	req.ErrorIs(b.Set(-1, true), bitbuffer.ErrOutOfRange)
	req.ErrorIs(b.Toggle(10), bitbuffer.ErrOutOfRange)
	req.Equal("0000000000", b.String())
}

func TestUncheckedAccessors(t *testing.T) {
	req := require.New(t)

	b := bitbuffer.New(4)

	// Bits past the end of the buffer, but inside its storage.
	b.UncheckedSet(6, true)
	req.True(b.UncheckedGet(6))
	req.Equal(byte(0x40), b.Bytes()[0])
	b.UncheckedToggle(6)
	req.Equal(byte(0x00), b.Bytes()[0])
	req.Equal("0000", b.String())

	req.Panics(func() { b.UncheckedGet(8) })
}

func TestFromBools(t *testing.T) {
	req := require.New(t)

	b := bitbuffer.FromBools([]bool{true, false, true, true})
	req.Equal(4, b.Len())
	req.Equal("1101", b.String())
	req.Equal([]uint8{1, 0, 1, 1}, b.ToBitArray(false))
	req.Equal([]uint8{1, 1, 0, 1}, b.ToBitArray(true))

	req.Equal(0, bitbuffer.FromBools(nil).Len())
}

func TestWrap_Borrows(t *testing.T) {
	req := require.New(t)

	storage := []byte{0x00, 0x00}
	b, err := bitbuffer.Wrap(16, storage)
	req.NoError(err)
	req.True(b.Borrowed())

	req.NoError(b.Set(0, true))
	req.Equal(byte(0x01), storage[0])

	storage[1] = 0x80
	bit, err := b.Get(15)
	req.NoError(err)
	req.True(bit)

	_, err = bitbuffer.Wrap(17, storage)
	req.ErrorIs(err, bitbuffer.ErrStorageTooSmall)

	_, err = bitbuffer.Wrap(math.MaxInt, storage)
	req.ErrorIs(err, bitbuffer.ErrStorageTooSmall)

	// A narrower window over the same storage is fine.
	b, err = bitbuffer.Wrap(3, storage)
	req.NoError(err)
	req.Equal("001", b.String())
}

func TestWrap_GrowthDetaches(t *testing.T) {
	req := require.New(t)

	core, logs := observer.New(zapcore.DebugLevel)
	storage := []byte{0xff}
	b, err := bitbuffer.Wrap(8, storage, bitbuffer.WithLogger(zap.New(core)))
	req.NoError(err)

	b.ShiftLeft(3)
	req.False(b.Borrowed())
	req.Equal("11111000", b.String())

	// The vacated high bits were masked before the storage was replaced.
	req.Equal(byte(0x1f), storage[0])

	req.NoError(b.Set(0, true))
	req.Equal(byte(0x1f), storage[0])

	req.Equal(1, logs.FilterMessage("bitbuffer storage grown").Len())
	req.Equal(1, logs.FilterMessage("bitbuffer no longer aliases borrowed storage").Len())
}

func TestEqual(t *testing.T) {
	req := require.New(t)

	a, err := bitbuffer.FromBinaryString("10110")
	req.NoError(err)
	b, err := bitbuffer.FromBinaryString("10110")
	req.NoError(err)
	req.True(a.Equal(b))

	// Storage bits outside of the window are ignored.
	c, err := bitbuffer.Wrap(5, []byte{0xf6})
	req.NoError(err)
	req.True(a.Equal(c))

	req.NoError(b.Toggle(0))
	req.False(a.Equal(b))

	req.False(a.Equal(nil))
	req.False(a.Equal(bitbuffer.New(4)))
}
