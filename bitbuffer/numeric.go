package bitbuffer

import "github.com/spacemeshos/bitbuf/shared"

// ReadUint8 reads an unsigned 8-bit integer from width bits starting at offset.
// A width of 0 reads all 8 bits.
func (b *Buffer) ReadUint8(offset, width int) (uint8, error) {
	v, err := b.Read(Uint, 8, shared.BigEndian, offset, width)
	return uint8(v.Uint64()), err
}

// ReadUint16BE reads a big-endian unsigned 16-bit integer from width bits starting at offset.
// A width of 0 reads all 16 bits.
func (b *Buffer) ReadUint16BE(offset, width int) (uint16, error) {
	v, err := b.Read(Uint, 16, shared.BigEndian, offset, width)
	return uint16(v.Uint64()), err
}

// ReadUint16LE reads a little-endian unsigned 16-bit integer from width bits starting at offset.
// A width of 0 reads all 16 bits.
func (b *Buffer) ReadUint16LE(offset, width int) (uint16, error) {
	v, err := b.Read(Uint, 16, shared.LittleEndian, offset, width)
	return uint16(v.Uint64()), err
}

// ReadUint32BE reads a big-endian unsigned 32-bit integer from width bits starting at offset.
// A width of 0 reads all 32 bits.
func (b *Buffer) ReadUint32BE(offset, width int) (uint32, error) {
	v, err := b.Read(Uint, 32, shared.BigEndian, offset, width)
	return uint32(v.Uint64()), err
}

// ReadUint32LE reads a little-endian unsigned 32-bit integer from width bits starting at offset.
// A width of 0 reads all 32 bits.
func (b *Buffer) ReadUint32LE(offset, width int) (uint32, error) {
	v, err := b.Read(Uint, 32, shared.LittleEndian, offset, width)
	return uint32(v.Uint64()), err
}

// ReadUint64BE reads a big-endian unsigned 64-bit integer from width bits starting at offset.
// A width of 0 reads all 64 bits.
func (b *Buffer) ReadUint64BE(offset, width int) (uint64, error) {
	v, err := b.Read(Uint, 64, shared.BigEndian, offset, width)
	return v.Uint64(), err
}

// ReadUint64LE reads a little-endian unsigned 64-bit integer from width bits starting at offset.
// A width of 0 reads all 64 bits.
func (b *Buffer) ReadUint64LE(offset, width int) (uint64, error) {
	v, err := b.Read(Uint, 64, shared.LittleEndian, offset, width)
	return v.Uint64(), err
}

// ReadInt8 reads a signed 8-bit integer from width bits starting at offset.
// A width below 8 is sign-extended; 0 reads all 8 bits.
func (b *Buffer) ReadInt8(offset, width int) (int8, error) {
	v, err := b.Read(Int, 8, shared.BigEndian, offset, width)
	return int8(v.Int64()), err
}

// ReadInt16BE reads a big-endian signed 16-bit integer from width bits starting at offset.
// A width below 16 is sign-extended; 0 reads all 16 bits.
func (b *Buffer) ReadInt16BE(offset, width int) (int16, error) {
	v, err := b.Read(Int, 16, shared.BigEndian, offset, width)
	return int16(v.Int64()), err
}

// ReadInt16LE reads a little-endian signed 16-bit integer from width bits starting at offset.
// A width below 16 is sign-extended; 0 reads all 16 bits.
func (b *Buffer) ReadInt16LE(offset, width int) (int16, error) {
	v, err := b.Read(Int, 16, shared.LittleEndian, offset, width)
	return int16(v.Int64()), err
}

// ReadInt32BE reads a big-endian signed 32-bit integer from width bits starting at offset.
// A width below 32 is sign-extended; 0 reads all 32 bits.
func (b *Buffer) ReadInt32BE(offset, width int) (int32, error) {
	v, err := b.Read(Int, 32, shared.BigEndian, offset, width)
	return int32(v.Int64()), err
}

// ReadInt32LE reads a little-endian signed 32-bit integer from width bits starting at offset.
// A width below 32 is sign-extended; 0 reads all 32 bits.
func (b *Buffer) ReadInt32LE(offset, width int) (int32, error) {
	v, err := b.Read(Int, 32, shared.LittleEndian, offset, width)
	return int32(v.Int64()), err
}

// ReadInt64BE reads a big-endian signed 64-bit integer from width bits starting at offset.
// A width below 64 is sign-extended; 0 reads all 64 bits.
func (b *Buffer) ReadInt64BE(offset, width int) (int64, error) {
	v, err := b.Read(Int, 64, shared.BigEndian, offset, width)
	return v.Int64(), err
}

// ReadInt64LE reads a little-endian signed 64-bit integer from width bits starting at offset.
// A width below 64 is sign-extended; 0 reads all 64 bits.
func (b *Buffer) ReadInt64LE(offset, width int) (int64, error) {
	v, err := b.Read(Int, 64, shared.LittleEndian, offset, width)
	return v.Int64(), err
}

// ReadFloat32BE reads a big-endian float32 starting at offset.
func (b *Buffer) ReadFloat32BE(offset int) (float32, error) {
	v, err := b.Read(Float, 32, shared.BigEndian, offset, 0)
	return float32(v.Float64()), err
}

// ReadFloat32LE reads a little-endian float32 starting at offset.
func (b *Buffer) ReadFloat32LE(offset int) (float32, error) {
	v, err := b.Read(Float, 32, shared.LittleEndian, offset, 0)
	return float32(v.Float64()), err
}

// ReadFloat64BE reads a big-endian float64 starting at offset.
func (b *Buffer) ReadFloat64BE(offset int) (float64, error) {
	v, err := b.Read(Double, 64, shared.BigEndian, offset, 0)
	return v.Float64(), err
}

// ReadFloat64LE reads a little-endian float64 starting at offset.
func (b *Buffer) ReadFloat64LE(offset int) (float64, error) {
	v, err := b.Read(Double, 64, shared.LittleEndian, offset, 0)
	return v.Float64(), err
}
