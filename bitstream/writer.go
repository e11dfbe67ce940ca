package bitstream

import (
	"io"

	"github.com/spacemeshos/bitbuf/bitbuffer"
)

// Writer writes bits to an io.Writer.
type Writer struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
}

// NewWriter returns a new instance of Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// WriteBuffer writes all bits of b to the stream, bit 0 first, regardless of
// the alignment. A trailing partial byte stays pending until the next write
// or Flush.
func (w *Writer) WriteBuffer(b *bitbuffer.Buffer) error {
	data := b.AlignedBytes()
	full := b.Len() / 8

	if w.alignment == 0 {
		if err := w.write(data[:full]); err != nil {
			return err
		}
	} else {
		for _, byt := range data[:full] {
			if err := w.WriteByte(byt); err != nil {
				return err
			}
		}
	}

	for i := full * 8; i < b.Len(); i++ {
		if err := w.WriteBit(Bit(b.UncheckedGet(i))); err != nil {
			return err
		}
	}

	return nil
}

// WriteByte writes a single byte to the stream, regardless of the alignment.
// If the byte is to be split due to alignment, the LSB pattern is followed in bit-groups.
func (w *Writer) WriteByte(byt byte) error {
	// Fill the pending byte MS bits with LS bits.
	w.pending[0] |= byt << w.alignment

	if err := w.write(w.pending[:]); err != nil {
		return err
	}

	// Fill the new pending byte LS bits with MS bits.
	w.pending[0] = byt >> (8 - w.alignment)

	return nil
}

// WriteBit writes a single bit to the stream, LSB first.
func (w *Writer) WriteBit(bit Bit) error {
	if bit {
		w.pending[0] |= 1 << w.alignment
	}

	w.alignment++

	if w.alignment == 8 {
		if err := w.write(w.pending[:]); err != nil {
			return err
		}
		w.pending[0] = 0
		w.alignment = 0
	}

	return nil
}

// Flush flushes the currently pending byte to the stream by filling it with pad.
func (w *Writer) Flush(pad Bit) error {
	for w.alignment != 0 {
		if err := w.WriteBit(pad); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) write(p []byte) error {
	n, err := w.stream.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
