package genome

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressString(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Compress(&buf, []byte(s)))
	return buf.Bytes()
}

func TestCompressACTG(t *testing.T) {
	out := compressString(t, "ACTG")
	// header=4, payload 00 01 10 11
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x04, 0x1b}, out)

	seq, err := Expand(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "ACTG", string(seq))
}

func TestCompressEmpty(t *testing.T) {
	out := compressString(t, "")
	require.Equal(t, []byte{0, 0, 0, 0}, out)

	seq, err := Expand(bytes.NewReader(out))
	require.NoError(t, err)
	require.Empty(t, seq)
}

func TestCompressPadsWithZeros(t *testing.T) {
	out := compressString(t, "ACG")
	// 00 01 11 + 00 padding
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x03, 0x1c}, out)
}

func TestCompressLowercase(t *testing.T) {
	out := compressString(t, "acTg")
	require.Equal(t, compressString(t, "ACTG"), out)

	seq, err := Expand(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "ACTG", string(seq))
}

func TestCompressInvalidSymbol(t *testing.T) {
	var buf bytes.Buffer
	err := Compress(&buf, []byte("AXZ"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSymbol))

	var symErr *InvalidSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, byte('X'), symErr.Char)
	assert.Equal(t, 1, symErr.Pos)

	// nothing is written for an invalid sequence
	assert.Zero(t, buf.Len())
}

func TestCompressRejectsNewline(t *testing.T) {
	var buf bytes.Buffer
	err := Compress(&buf, []byte("ACTG\n"))

	var symErr *InvalidSymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, byte('\n'), symErr.Char)
	assert.Equal(t, 4, symErr.Pos)
}

func TestExpandTruncatedPayload(t *testing.T) {
	// N=10 needs 20 payload bits, only 8 given
	_, err := Expand(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x0a, 0xff}))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTruncatedInput))
}

func TestExpandTruncatedHeader(t *testing.T) {
	for _, data := range [][]byte{nil, {0x00}, {0x00, 0x00, 0x01}} {
		_, err := Expand(bytes.NewReader(data))
		require.True(t, errors.Is(err, ErrTruncatedInput), "input %x", data)
	}
}

func TestExpandNoZeroFill(t *testing.T) {
	// header says 3 symbols and there is no payload at all
	seq, err := Expand(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x03}))
	require.True(t, errors.Is(err, ErrTruncatedInput))
	require.Nil(t, seq)
}

func TestExpandIgnoresTrailingBytes(t *testing.T) {
	out := append(compressString(t, "ACTG"), 0xff, 0xff)
	seq, err := Expand(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "ACTG", string(seq))
}

func TestExpandHugeHeader(t *testing.T) {
	// 2^32-1 declared, 1 byte present
	_, err := Expand(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0x00}))
	require.True(t, errors.Is(err, ErrTruncatedInput))
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	alphabet := []byte("ACTGactg")

	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 63, 64, 65, 1000, 4097} {
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = alphabet[rnd.Intn(len(alphabet))]
		}

		var buf bytes.Buffer
		require.NoError(t, Compress(&buf, seq))
		require.Equal(t, CompressedSize(n), buf.Len(), "n=%d", n)

		got, err := Expand(&buf)
		require.NoError(t, err)
		require.Equal(t, strings.ToUpper(string(seq)), string(got), "n=%d", n)
	}
}

func TestCompressedSize(t *testing.T) {
	cases := map[int]int{0: 4, 1: 5, 4: 5, 5: 6, 8: 6, 9: 7, 100: 29}
	for n, size := range cases {
		assert.Equal(t, size, CompressedSize(n), "n=%d", n)
	}
}

func TestReadHeader(t *testing.T) {
	n, err := ReadHeader(bytes.NewReader(compressString(t, "GATTACA")))
	require.NoError(t, err)
	require.Equal(t, uint32(7), n)
}

func BenchmarkCompress(b *testing.B) {
	seq := bytes.Repeat([]byte("ACTG"), 1<<18) // 1M
	var buf bytes.Buffer
	b.SetBytes(int64(len(seq)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := Compress(&buf, seq); err != nil {
			b.Fatal(err)
		}
	}
}
