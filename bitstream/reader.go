package bitstream

import (
	"errors"
	"io"

	"github.com/spacemeshos/bitbuf/bitbuffer"
)

// Reader reads bits from an io.Reader.
type Reader struct {
	stream    io.Reader
	pending   [1]byte
	alignment uint8
}

// NewReader returns a new instance of Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		stream:    r,
		alignment: 8,
	}
}

// ReadBuffer reads the next numBits from the stream into a new buffer,
// regardless of the alignment. It returns io.EOF when no bit could be read,
// and io.ErrUnexpectedEOF when the stream ends part way.
func (r *Reader) ReadBuffer(numBits int, opts ...bitbuffer.Option) (*bitbuffer.Buffer, error) {
	b := bitbuffer.New(numBits, opts...)
	data := b.Bytes()

	var read int
	for ; read+8 <= numBits; read += 8 {
		byt, err := r.ReadByte()
		if err != nil {
			return nil, unexpected(err, read)
		}
		data[read/8] = byt
	}

	for ; read < numBits; read++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, unexpected(err, read)
		}
		b.UncheckedSet(read, bool(bit))
	}

	return b, nil
}

func unexpected(err error, read int) error {
	if read > 0 && errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadByte reads the next single byte from the stream, regardless of the alignment.
// If the byte is split, the LSB pattern is followed in bit-groups.
func (r *Reader) ReadByte() (byte, error) {
	if r.alignment == 8 {
		if _, err := io.ReadFull(r.stream, r.pending[:]); err != nil {
			r.pending[0] = 0
			return 0, err
		}
		return r.pending[0], nil
	}

	// The stream is not aligned.
	// Use the current byte LS bits, combined with the next byte LS bits as MS bits.
	current := r.pending[0]
	if _, err := io.ReadFull(r.stream, r.pending[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}

	current |= r.pending[0] << (8 - r.alignment)

	// Remove the used LS bits from the next pending byte.
	r.pending[0] >>= r.alignment

	return current, nil
}

// ReadBit reads the next single bit from the stream, LSB first.
func (r *Reader) ReadBit() (Bit, error) {
	if r.alignment == 8 {
		if _, err := io.ReadFull(r.stream, r.pending[:]); err != nil {
			return Zero, err
		}
		r.alignment = 0
	}
	r.alignment++

	lsb := Bit(r.pending[0]&1 == 1)
	r.pending[0] >>= 1

	return lsb, nil
}
