package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumBytes(t *testing.T) {
	r := require.New(t)

	r.Equal(0, NumBytes(-3))
	r.Equal(0, NumBytes(0))
	r.Equal(1, NumBytes(1))
	r.Equal(1, NumBytes(8))
	r.Equal(2, NumBytes(9))
	r.Equal(8, NumBytes(64))
	r.Equal(math.MaxInt/8+1, NumBytes(math.MaxInt))
}

func TestNumBits(t *testing.T) {
	r := require.New(t)

	r.Equal(0, NumBits(0))
	r.Equal(1, NumBits(1))
	r.Equal(2, NumBits(2))
	r.Equal(2, NumBits(3))
	r.Equal(8, NumBits(255))
	r.Equal(9, NumBits(256))
	r.Equal(64, NumBits(1<<63))
}
