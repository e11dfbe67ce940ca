package bitbuffer_test

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuf/bitbuffer"
)

func TestParseEncoding(t *testing.T) {
	req := require.New(t)

	for name, want := range map[string]bitbuffer.Encoding{
		"":       bitbuffer.Binary,
		"binary": bitbuffer.Binary,
		"BIN":    bitbuffer.Binary,
		"hex":    bitbuffer.Hex,
		" Hex ":  bitbuffer.Hex,
	} {
		enc, err := bitbuffer.ParseEncoding(name)
		req.NoError(err, name)
		req.Equal(want, enc)
		req.True(bitbuffer.IsEncoding(name))
	}

	_, err := bitbuffer.ParseEncoding("base64")
	req.ErrorIs(err, bitbuffer.ErrUnsupportedEncoding)
	req.False(bitbuffer.IsEncoding("base64"))

	req.Equal("hex", bitbuffer.Hex.String())
	req.Equal("Encoding(9)", bitbuffer.Encoding(9).String())
}

func TestFromHexString(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromHexString("1A")
	req.NoError(err)
	req.Equal(8, b.Len())
	req.Equal([]byte{0x1a}, b.Bytes())
	req.Equal("00011010", b.String())

	short, err := bitbuffer.FromHexString("A")
	req.NoError(err)
	padded, err := bitbuffer.FromHexString("0A")
	req.NoError(err)
	req.Equal(8, short.Len())
	req.True(short.Equal(padded))

	b, err = bitbuffer.FromHexString("1a2B")
	req.NoError(err)
	req.Equal([]byte{0x2b, 0x1a}, b.Bytes())
	req.Equal("1a2b", b.HexString())

	b, err = bitbuffer.FromHexString("abc")
	req.NoError(err)
	req.Equal(16, b.Len())
	req.Equal("0abc", b.HexString())

	b, err = bitbuffer.FromHexString("")
	req.NoError(err)
	req.Zero(b.Len())
	req.Empty(b.HexString())
}

func TestFromHexString_Invalid(t *testing.T) {
	req := require.New(t)

	for _, s := range []string{"1G", "zz00", "0x1f", "+1"} {
		_, err := bitbuffer.FromHexString(s)
		req.ErrorIs(err, bitbuffer.ErrInvalidFormat, s)
	}

	_, err := bitbuffer.FromHexString("001G")
	var hexErr bitbuffer.InvalidHexError
	req.ErrorAs(err, &hexErr)
	req.Equal("1G", hexErr.Pair)
}

func TestFromBinaryString(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("110")
	req.NoError(err)
	req.Equal(3, b.Len())
	req.Equal([]uint8{0, 1, 1}, b.ToBitArray(false))

	_, err = bitbuffer.FromBinaryString("10a1")
	req.ErrorIs(err, bitbuffer.ErrInvalidFormat)
	var charErr bitbuffer.InvalidCharacterError
	req.ErrorAs(err, &charErr)
	req.Equal('a', charErr.Char)
	req.Equal(2, charErr.Pos)
}

func TestBinaryString_RoundTrip(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(3))

	for n := 0; n <= 40; n++ {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(byte('0' + rng.Intn(2)))
		}
		s := sb.String()

		b, err := bitbuffer.FromString(s, bitbuffer.Binary)
		req.NoError(err)
		req.Equal(n, b.Len())
		req.Equal(s, b.BinaryString())
		req.Equal(s, fmt.Sprint(b))

		out, err := b.Encode(bitbuffer.Binary)
		req.NoError(err)
		req.Equal(s, out)
	}
}

func TestHexString_RoundTrip(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(4))

	for n := 0; n <= 16; n++ {
		data := make([]byte, n)
		rng.Read(data)
		s := hex.EncodeToString(data)

		b, err := bitbuffer.FromString(strings.ToUpper(s), bitbuffer.Hex)
		req.NoError(err)
		req.Equal(8*n, b.Len())

		out, err := b.Encode(bitbuffer.Hex)
		req.NoError(err)
		req.Equal(s, out)
	}
}

func TestHexString_PartialNybble(t *testing.T) {
	req := require.New(t)

	b, err := bitbuffer.FromBinaryString("10111")
	req.NoError(err)
	req.Equal("17", b.HexString())

	b, err = bitbuffer.FromBinaryString("1")
	req.NoError(err)
	req.Equal("1", b.HexString())
}

func TestEncoding_Unsupported(t *testing.T) {
	req := require.New(t)

	_, err := bitbuffer.FromString("1", bitbuffer.Encoding(9))
	req.ErrorIs(err, bitbuffer.ErrUnsupportedEncoding)

	_, err = bitbuffer.New(4).Encode(bitbuffer.Encoding(9))
	req.ErrorIs(err, bitbuffer.ErrUnsupportedEncoding)
}
