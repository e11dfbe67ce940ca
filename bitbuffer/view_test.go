package bitbuffer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf/bitbuffer"
)

func TestCopyTo(t *testing.T) {
	req := require.New(t)

	src, err := bitbuffer.FromBinaryString("1111")
	req.NoError(err)
	dst := bitbuffer.New(8)

	n, err := src.CopyTo(dst, 2, 0, src.Len())
	req.NoError(err)
	req.Equal(4, n)
	req.Equal("00111100", dst.String())

	n, err = src.CopyTo(dst, 0, 1, 1)
	req.NoError(err)
	req.Zero(n)
}

func TestCopyTo_OutOfRange(t *testing.T) {
	req := require.New(t)

	src := bitbuffer.New(8)
	dst := bitbuffer.New(4)

	_, err := src.CopyTo(dst, 0, 0, 9)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
	var rangeErr bitbuffer.RangeError
	req.ErrorAs(err, &rangeErr)
	req.Equal("copy: read source", rangeErr.Op)

	_, err = src.CopyTo(dst, 1, 0, 4)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
	req.ErrorAs(err, &rangeErr)
	req.Equal("copy: write destination", rangeErr.Op)

	_, err = src.CopyTo(dst, -1, 0, 2)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)

	_, err = src.CopyTo(dst, 0, 3, 2)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
}

func TestCopyTo_HugeDestinationStart(t *testing.T) {
	req := require.New(t)

	src := bitbuffer.New(8)
	dst := bitbuffer.New(8)

	_, err := src.CopyTo(dst, math.MaxInt, 0, 1)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)

	_, err = src.CopyTo(dst, math.MaxInt-7, 0, 8)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)

	_, err = src.Subbuffer(0, math.MaxInt)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
}

func TestCopyTo_Overlapping(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("00001101")
	req.NoError(err)
	_, err = b.CopyTo(b, 2, 0, 4)
	req.NoError(err)
	req.Equal("00110101", b.String())

	b, err = bitbuffer.FromBinaryString("10110000")
	req.NoError(err)
	_, err = b.CopyTo(b, 2, 4, 8)
	req.NoError(err)
	req.Equal("10101100", b.String())
}

func TestCopy(t *testing.T) {
	req := require.New(t)

	src, err := bitbuffer.FromBinaryString("101")
	req.NoError(err)
	dst := bitbuffer.New(5)
	n, err := src.Copy(dst)
	req.NoError(err)
	req.Equal(3, n)
	req.Equal("00101", dst.String())

	_, err = dst.Copy(src)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
}

func TestSubbuffer(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("1011001110")
	req.NoError(err)

	sub, err := b.Subbuffer(2, 8)
	req.NoError(err)
	req.Equal(6, sub.Len())
	req.Equal("110011", sub.String())

	sub, err = b.Subbuffer(2, -2)
	req.NoError(err)
	req.Equal("110011", sub.String())

	sub, err = b.Subbuffer(-4, 10)
	req.NoError(err)
	req.Equal("1011", sub.String())

	sub, err = b.Subbuffer(5, 5)
	req.NoError(err)
	req.Zero(sub.Len())

	sub, err = b.Subbuffer(7, 3)
	req.NoError(err)
	req.Zero(sub.Len())

	_, err = b.Subbuffer(8, 12)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)

	_, err = b.Subbuffer(-20, 3)
	req.ErrorIs(err, bitbuffer.ErrOutOfRange)
}

func TestSubbufferFrom_Independent(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("1011001110")
	req.NoError(err)

	sub, err := b.SubbufferFrom(-4)
	req.NoError(err)
	req.Equal(4, sub.Len())
	req.Equal("1011", sub.String())
	req.False(sub.Borrowed())

	req.NoError(sub.Toggle(0))
	req.NoError(sub.Toggle(3))
	req.Equal("0010", sub.String())
	req.Equal("1011001110", b.String())

	req.NoError(b.Set(6, false))
	req.Equal("0010", sub.String())
}

func TestSubbuffer_CarriesOptions(t *testing.T) {
	req := require.New(t)

	b := bitbuffer.New(16, bitbuffer.WithHostEndian(otherEndian()))
	sub, err := b.Subbuffer(0, 8)
	req.NoError(err)
	req.Equal(b.HostEndian(), sub.HostEndian())
}

func TestAlignedBytes(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("101100111000")
	req.NoError(err)
	req.Equal([]byte{0x38, 0x0b}, b.AlignedBytes())

	// Unaligned window.
	b.ShiftRight(3)
	req.Equal("000101100111", b.String())
	req.Equal([]byte{0x67, 0x01}, b.AlignedBytes())

	// Storage bits past the window are masked.
	storage := []byte{0xff, 0xff}
	w, err := bitbuffer.Wrap(12, storage)
	req.NoError(err)
	req.Equal([]byte{0xff, 0x0f}, w.AlignedBytes())
	req.Equal([]byte{0xff, 0xff}, storage)

	req.Empty(bitbuffer.New(0).AlignedBytes())
}
