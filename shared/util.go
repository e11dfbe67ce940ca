package shared

// NumBytes returns the number of bytes needed to hold numBits bits.
func NumBytes(numBits int) int {
	if numBits <= 0 {
		return 0
	}
	n := numBits / BitsPerByte
	if numBits%BitsPerByte != 0 {
		n++
	}
	return n
}

// NumBits returns the number of bits required to represent x.
func NumBits(x uint64) int {
	n := 0
	for x > 0 {
		n++
		x >>= 1
	}
	return n
}
