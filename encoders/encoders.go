package encoders

import (
	"bytes"
	"fmt"
	"strings"
)

// Encoder 把碱基序列装进某种容器格式
type Encoder interface {
	Name() string
	Decode(data []byte) ([]byte, error)
	Encode(seq []byte) ([]byte, error)
	Unwrap(data []byte) ([]byte, error) //容器 -> twobit 比特流
}

var _encoders = []Encoder{
	&EncoderTwoBit{},
	&EncoderPNG{},
}

func Names() []string {
	names := make([]string, len(_encoders))
	for i, e := range _encoders {
		names[i] = e.Name()
	}
	return names
}

func ByName(name string) (Encoder, error) {
	for _, e := range _encoders {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown encoder %q, must be one of: %s", name, strings.Join(Names(), ", "))
}

// Detect 按文件头判断容器格式，不认识的都当 twobit
func Detect(data []byte) Encoder {
	if bytes.HasPrefix(data, pngMagic) {
		return &EncoderPNG{}
	}
	return &EncoderTwoBit{}
}
