package main

import (
	"GenomeCompressor/encoders"
	"GenomeCompressor/genome"
	"fmt"
	"io"

	"github.com/hokaccha/go-prettyjson"
)

type statJSON struct {
	File    string `json:"file"`
	Encoder string `json:"encoder"`
	genome.Stat
}

func HandlerStat(w io.Writer, input string, noColor bool) error {
	data, err := readInput(input, false)
	if err != nil {
		return err
	}

	e := encoders.Detect(data)
	stream, err := e.Unwrap(data)
	if err != nil {
		return err
	}
	st, err := genome.Inspect(stream)
	if err != nil {
		return err
	}

	v := &statJSON{File: input, Encoder: e.Name(), Stat: st}
	if isStdio(input) {
		v.File = "-"
	}

	f := prettyjson.NewFormatter()
	f.DisabledColor = noColor
	b, err := f.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
