package encoders

import (
	"GenomeCompressor/genome"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
)

var pngMagic = []byte("\x89PNG")

const (
	pngMinSide = 10
	pngDepth   = 3 //RGB，不用 Alpha
)

// EncoderPNG 把 twobit 比特流存成一张正方形 RGB 图片
// 格式：4 字节小端长度 + 比特流 + 补零
type EncoderPNG struct {
}

func (e *EncoderPNG) Name() string {
	return "png"
}

func (e *EncoderPNG) Decode(data []byte) ([]byte, error) {
	stream, err := e.Unwrap(data)
	if err != nil {
		return nil, err
	}
	return genome.Expand(bytes.NewReader(stream))
}

// Unwrap 取出图片里的 twobit 比特流
func (e *EncoderPNG) Unwrap(_data []byte) ([]byte, error) {
	if !bytes.HasPrefix(_data, pngMagic) {
		return nil, errors.New("not a png image")
	}
	img, err := png.Decode(bytes.NewReader(_data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	rect := img.Bounds()
	rgba := image.NewRGBA(rect)
	draw.Draw(rgba, rect, img, rect.Min, draw.Src)
	data := make([]byte, 0, len(rgba.Pix)/4*pngDepth)
	//no Alpha
	for i := 0; i < len(rgba.Pix)/4; i++ {
		data = append(data, rgba.Pix[i*4:i*4+pngDepth]...)
	}

	//read length
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: image too small", genome.ErrTruncatedInput)
	}
	l := binary.LittleEndian.Uint32(data[:4])
	if uint64(l) > uint64(len(data)-4) {
		return nil, fmt.Errorf("%w: image holds %d bytes, length says %d", genome.ErrTruncatedInput, len(data)-4, l)
	}
	return data[4 : 4+l], nil
}

func (e *EncoderPNG) Encode(seq []byte) ([]byte, error) {
	stream, err := (&EncoderTwoBit{}).Encode(seq)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	//分辨率
	side := int(math.Ceil(math.Sqrt(float64(len(stream)+4) / float64(pngDepth))))
	if side < pngMinSide {
		side = pngMinSide
	}
	total := side * side * pngDepth
	buf.Grow(total)

	//写入长度
	buf2 := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf2, uint32(len(stream)))
	buf.Write(buf2)

	//写入数据
	buf.Write(stream)

	//填充
	if buflen := buf.Len(); buflen < total {
		buf.Write(bytes.Repeat([]byte{0}, total-buflen))
	}

	var pngbuf bytes.Buffer
	if err := png.Encode(&pngbuf, &RGB{Bytes: buf.Bytes(), Side: side}); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return pngbuf.Bytes(), nil
}

type RGB struct {
	Bytes []byte
	Side  int
}

func (p *RGB) At(x, y int) color.Color {
	offset := x + (y * p.Side)
	offset *= pngDepth
	return color.RGBA{
		R: p.Bytes[offset],
		G: p.Bytes[offset+1],
		B: p.Bytes[offset+2],
		A: 255,
	}
}

func (p *RGB) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Side, p.Side)
}

func (p *RGB) ColorModel() color.Model {
	return color.RGBAModel
}
