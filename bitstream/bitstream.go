// Package bitstream wraps io.Writer and io.Reader to allow bit-granularity
// access to a stream, following the LSB pattern, where least-significant bits
// are written/read first. It is the wire form of a bitbuffer.Buffer.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
