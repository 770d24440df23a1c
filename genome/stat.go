package genome

import (
	"bytes"
	"fmt"
)

// Stat describes a compressed stream without expanding it.
type Stat struct {
	Symbols         uint32  `json:"symbols"`
	PayloadBits     uint64  `json:"payload_bits"`
	PaddingBits     int     `json:"padding_bits"`
	CompressedBytes int     `json:"compressed_bytes"`
	TrailingBytes   int     `json:"trailing_bytes"`
	OriginalBytes   uint64  `json:"original_bytes"`
	Ratio           float64 `json:"ratio"`
}

// Inspect reads the header of data and checks that the declared payload is
// present. Bytes after the padded payload are counted in TrailingBytes.
func Inspect(data []byte) (Stat, error) {
	n, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		return Stat{}, err
	}

	need := uint64(headerBits) + codeBits*uint64(n)
	needBytes := (need + 7) / 8
	if uint64(len(data)) < needBytes {
		return Stat{}, fmt.Errorf("%w: header declares %d symbols (%d bytes), got %d bytes", ErrTruncatedInput, n, needBytes, len(data))
	}

	st := Stat{
		Symbols:         n,
		PayloadBits:     codeBits * uint64(n),
		PaddingBits:     int(needBytes*8 - need),
		CompressedBytes: int(needBytes),
		TrailingBytes:   len(data) - int(needBytes),
		OriginalBytes:   uint64(n),
	}
	if st.OriginalBytes > 0 {
		st.Ratio = float64(st.CompressedBytes) / float64(st.OriginalBytes)
	}
	return st, nil
}
