package main

import (
	"GenomeCompressor/encoders"
	"time"
)

type expandOptions struct {
	Input    string
	Output   string
	Progress bool
}

func HandlerExpand(opt expandOptions) error {
	time_start := time.Now()
	data, err := readInput(opt.Input, opt.Progress)
	if err != nil {
		return err
	}

	//twobit 和 png 都认
	e := encoders.Detect(data)
	colorLogger.Debugln("检测到格式", e.Name(), "大小", len(data))

	seq, err := e.Decode(data)
	if err != nil {
		return err
	}
	if err = writeOutput(opt.Output, seq); err != nil {
		return err
	}

	seconds := time.Now().Sub(time_start).Seconds()
	colorLogger.Println("<fg=black;bg=green>解压完成：</>", displayName(opt.Input), "->", displayName(opt.Output),
		"碱基数", len(seq), "用时", seconds, "秒")
	return nil
}
