package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gookit/color"
	"github.com/mattn/go-colorable"
)

const defaultEncoder = "twobit"

var _debug bool
var _config *Config

//颜色支持，stdout 要输出数据，日志都写 stderr

type colorLogger_t struct {
	prefix func() string
	out    io.Writer
}

var colorLogger = &colorLogger_t{
	prefix: func() string { return "[" + FormatTime(time.Now().Unix()) + "]" },
	out:    colorable.NewColorableStderr(),
}

func (p *colorLogger_t) Println(a ...interface{}) {
	header := interface{}(p.prefix())
	b := append([]interface{}{header}, a...)
	color.Fprintln(p.out, b...)
}

func (p *colorLogger_t) Printf(f string, a ...interface{}) {
	color.Fprintf(p.out, p.prefix()+" "+f, a...)
}

func (p *colorLogger_t) Debugln(a ...interface{}) {
	if _debug {
		p.Println(append([]interface{}{"<gray>[debug]</>"}, a...)...)
	}
}

//"" 和 "-" 都是标准输入输出
func isStdio(path string) bool {
	return path == "" || path == "-"
}

// readInput 读完整个输入，文件输入可以显示进度条
func readInput(path string, progress bool) ([]byte, error) {
	if isStdio(path) {
		colorLogger.Debugln("从标准输入读取")
		return io.ReadAll(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !progress {
		return io.ReadAll(f)
	}

	fs, err := f.Stat()
	if err != nil {
		return nil, err
	}
	bar := pb.New64(fs.Size()).SetTemplate(pb.Full).SetWriter(os.Stderr).Set(pb.Bytes, true).Start()
	defer bar.Finish()
	return io.ReadAll(bar.NewProxyReader(f))
}

// writeOutput 写到同目录的临时文件，成功后 rename，失败不会留下半截文件
func writeOutput(path string, data []byte) (err error) {
	if isStdio(path) {
		_, err = os.Stdout.Write(data)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return
	}
	if err = tmp.Sync(); err != nil {
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return
	}
	err = os.Rename(tmpPath, path)
	return
}

func displayName(path string) string {
	if isStdio(path) {
		return "<stdin/stdout>"
	}
	return "<yellow>" + filepath.Base(path) + "</>"
}

const (
	// B byte
	B = (int64)(1 << (10 * iota))
	// KB kilobyte
	KB
	// MB megabyte
	MB
	// GB gigabyte
	GB
	// TB terabyte
	TB
	// PB petabyte
	PB
)

// ConvertFileSize 文件大小格式化输出
func ConvertFileSize(size int64, precision ...int) string {
	pint := "6"
	if len(precision) == 1 {
		pint = fmt.Sprint(precision[0])
	}
	if size < 0 {
		return "0B"
	}
	if size < KB {
		return fmt.Sprintf("%dB", size)
	}
	if size < MB {
		return fmt.Sprintf("%."+pint+"fKB", float64(size)/float64(KB))
	}
	if size < GB {
		return fmt.Sprintf("%."+pint+"fMB", float64(size)/float64(MB))
	}
	if size < TB {
		return fmt.Sprintf("%."+pint+"fGB", float64(size)/float64(GB))
	}
	if size < PB {
		return fmt.Sprintf("%."+pint+"fTB", float64(size)/float64(TB))
	}
	return fmt.Sprintf("%."+pint+"fPB", float64(size)/float64(PB))
}

// FormatTime 将 Unix 时间戳, 转换为字符串
func FormatTime(t int64) string {
	tt := time.Unix(t, 0).Local()
	year, mon, day := tt.Date()
	hour, min, sec := tt.Clock()
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d", year, mon, day, hour, min, sec)
}
