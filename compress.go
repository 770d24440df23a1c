package main

import (
	"GenomeCompressor/encoders"
	"bytes"
	"time"
)

type compressOptions struct {
	Input    string
	Output   string
	Encoder  string
	Trim     bool
	Progress bool
}

func HandlerCompress(opt compressOptions) error {
	e, err := encoders.ByName(opt.Encoder)
	if err != nil {
		return err
	}

	time_start := time.Now()
	seq, err := readInput(opt.Input, opt.Progress)
	if err != nil {
		return err
	}
	if opt.Trim {
		//echo 之类的会带换行
		seq = bytes.TrimRight(seq, "\r\n")
	}
	colorLogger.Debugln("读取", len(seq), "个碱基，编码器", e.Name())

	data, err := e.Encode(seq)
	if err != nil {
		return err
	}
	if err = writeOutput(opt.Output, data); err != nil {
		return err
	}

	seconds := time.Now().Sub(time_start).Seconds()
	colorLogger.Println("<fg=black;bg=green>压缩完成：</>", displayName(opt.Input), "->", displayName(opt.Output),
		"碱基数", len(seq), "大小", ConvertFileSize(int64(len(seq)), 2), "->", ConvertFileSize(int64(len(data)), 2),
		"用时", seconds, "秒")
	return nil
}
