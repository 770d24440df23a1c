package genome

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"
)

const (
	headerBits = 32
	codeBits   = 2

	//解码时最多预分配这么多，剩下的边读边扩容，免得伪造的 header 吃掉内存
	maxPrealloc = 1 << 20
)

// CompressedSize returns the number of bytes Compress writes for n symbols.
func CompressedSize(n int) int {
	return (headerBits + codeBits*n + 7) / 8
}

// Validate returns an *InvalidSymbolError for the first byte of seq outside the
// alphabet.
func Validate(seq []byte) error {
	for i, b := range seq {
		if !Valid(b) {
			return &InvalidSymbolError{Char: b, Pos: i}
		}
	}
	return nil
}

// Compress writes seq to w as a 32-bit symbol count followed by one 2-bit code
// per symbol, MSB first, zero padded to a whole byte.
//
// seq is validated before anything is written, so on error w receives nothing.
func Compress(w io.Writer, seq []byte) (err error) {
	if err := Validate(seq); err != nil {
		return err
	}
	if uint64(len(seq)) > math.MaxUint32 {
		return ErrSequenceTooLong
	}

	bw := bitio.NewWriter(w)
	defer func() {
		//Close 会补零写出最后一个字节
		if cerr := bw.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("flush: %w", cerr)
		}
	}()

	if err = bw.WriteBits(uint64(len(seq)), headerBits); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, b := range seq {
		if err = bw.WriteBits(uint64(nt2code[b]), codeBits); err != nil {
			return fmt.Errorf("write symbol %d: %w", i, err)
		}
	}
	return nil
}

// Expand reads a stream produced by Compress and returns the uppercase symbols.
// Bits after the declared payload are ignored. A stream that ends early fails
// with ErrTruncatedInput and no partial sequence.
func Expand(r io.Reader) ([]byte, error) {
	br := bitio.NewReader(r)

	n, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	prealloc := n
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	seq := make([]byte, 0, prealloc)

	for i := uint32(0); i < n; i++ {
		c, err := br.ReadBits(codeBits)
		if err != nil {
			if isEOF(err) {
				return nil, fmt.Errorf("%w: header declares %d symbols, stream ends at %d", ErrTruncatedInput, n, i)
			}
			return nil, fmt.Errorf("read symbol %d: %w", i, err)
		}
		seq = append(seq, DecodeSymbol(Code(c)))
	}
	return seq, nil
}

// ReadHeader returns the symbol count declared at the start of r.
func ReadHeader(r io.Reader) (uint32, error) {
	return readHeader(bitio.NewReader(r))
}

func readHeader(br *bitio.Reader) (uint32, error) {
	n, err := br.ReadBits(headerBits)
	if err != nil {
		if isEOF(err) {
			return 0, fmt.Errorf("%w: missing %d-bit header", ErrTruncatedInput, headerBits)
		}
		return 0, fmt.Errorf("read header: %w", err)
	}
	return uint32(n), nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
