package encoders

import (
	"GenomeCompressor/genome"
	"bytes"
)

// EncoderTwoBit 直接输出 genome 的比特流
type EncoderTwoBit struct {
}

func (e *EncoderTwoBit) Name() string {
	return "twobit"
}

func (e *EncoderTwoBit) Encode(seq []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(genome.CompressedSize(len(seq)))
	if err := genome.Compress(&buf, seq); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *EncoderTwoBit) Decode(data []byte) ([]byte, error) {
	return genome.Expand(bytes.NewReader(data))
}

func (e *EncoderTwoBit) Unwrap(data []byte) ([]byte, error) {
	return data, nil
}
