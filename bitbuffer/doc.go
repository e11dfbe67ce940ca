// Package bitbuffer provides a fixed-length, bit-addressable buffer.
//
// Bits are packed into bytes following the LSB pattern: bit i of a byte is
// its i-th least-significant bit, and logical bit 0 of a Buffer is the
// lowest bit of its window into the backing storage. The window is offset
// by a start bit, which makes shifting an O(1) metadata update unless the
// window leaves the backing storage, in which case the storage grows.
//
// Multi-byte numeric decoding compensates for the byte order of the host
// the bits were laid out on. The host byte order defaults to the executing
// platform and can be pinned per buffer with WithHostEndian, which makes
// decoding platform independent.
//
// A Buffer is not safe for concurrent use.
package bitbuffer
