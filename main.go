package main

import (
	"GenomeCompressor/encoders"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"
	yaml "gopkg.in/yaml.v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		colorLogger.Println("<fg=black;bg=red>失败：</>", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	flag_input := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "输入文件，默认标准输入",
	}
	flag_output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "输出文件，默认标准输出",
	}
	flag_progress := &cli.BoolFlag{
		Name:    "progress",
		Aliases: []string{"p"},
		Usage:   "读取文件时显示进度条",
	}
	flag_encoder := &cli.StringFlag{
		Name:    "encoder",
		Aliases: []string{"e"},
		Usage:   "输出格式，必须为以下之一： " + strings.Join(encoders.Names(), ", "),
	}

	return &cli.App{
		Name:    "genome2bit",
		Usage:   "用 2 bit 编码压缩/解压 ACTG 基因序列",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "debug",
			}, &cli.BoolFlag{
				Name:  "no-color",
				Usage: "关闭颜色",
			}, &cli.StringFlag{
				Name:  "config",
				Usage: "配置文件路径，默认 ~/.genome2bit/config",
			}},
		Before: func(c *cli.Context) error {
			_debug = c.Bool("debug")
			cfg, err := ReadConfig(c.String("config"))
			if err != nil {
				return err
			}
			_config = &cfg
			if c.Bool("no-color") || _config.NoColor {
				color.Enable = false
			}
			return nil
		},
		//兼容原来的 - / + 用法，其他参数都是用法错误
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				colorLogger.Println("<fg=black;bg=red>未知命令：</>", c.Args().First())
			}
			cli.ShowAppHelpAndExit(c, 1)
			return nil
		},
		Commands: []*cli.Command{
			&cli.Command{
				Name:    "compress",
				Aliases: []string{"c", "-"},
				Usage:   "压缩 ACTG 序列",
				Flags: []cli.Flag{
					flag_input,
					flag_output,
					flag_encoder,
					flag_progress,
					&cli.BoolFlag{
						Name:  "trim",
						Usage: "去掉输入末尾的换行",
						Value: true,
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						cli.ShowCommandHelpAndExit(c, "compress", 1)
					}
					opt := compressOptions{
						Input:    c.String("input"),
						Output:   c.String("output"),
						Encoder:  _config.EncoderName(),
						Trim:     !_config.NoTrim,
						Progress: _config.Progress,
					}
					if c.IsSet("encoder") {
						opt.Encoder = c.String("encoder")
					}
					if c.IsSet("trim") {
						opt.Trim = c.Bool("trim")
					}
					if c.IsSet("progress") {
						opt.Progress = c.Bool("progress")
					}
					return HandlerCompress(opt)
				},
			}, &cli.Command{
				Name:    "expand",
				Aliases: []string{"x", "+"},
				Usage:   "解压，twobit 和 png 格式自动识别",
				Flags: []cli.Flag{
					flag_input,
					flag_output,
					flag_progress,
				},
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						cli.ShowCommandHelpAndExit(c, "expand", 1)
					}
					opt := expandOptions{
						Input:    c.String("input"),
						Output:   c.String("output"),
						Progress: _config.Progress,
					}
					if c.IsSet("progress") {
						opt.Progress = c.Bool("progress")
					}
					return HandlerExpand(opt)
				},
			}, &cli.Command{
				Name:      "stat",
				Aliases:   []string{"s"},
				Usage:     "查看压缩文件信息",
				ArgsUsage: "[文件]",
				Action: func(c *cli.Context) error {
					if c.NArg() > 1 {
						cli.ShowCommandHelpAndExit(c, "stat", 1)
					}
					return HandlerStat(os.Stdout, c.Args().First(), !color.Enable)
				},
			}, &cli.Command{
				Name:  "config",
				Usage: "查看配置，带参数时修改配置",
				Flags: []cli.Flag{
					flag_encoder,
					flag_progress,
					&cli.BoolFlag{
						Name:  "no-trim",
						Usage: "压缩时默认不去掉末尾换行",
					},
				},
				Action: func(c *cli.Context) error {
					return HandlerConfig(c, _config)
				},
			},
		},
	}
}

func HandlerConfig(c *cli.Context, cfg *Config) error {
	changed := false
	if c.IsSet("encoder") {
		if _, err := encoders.ByName(c.String("encoder")); err != nil {
			return err
		}
		cfg.Encoder = c.String("encoder")
		changed = true
	}
	if c.IsSet("progress") {
		cfg.Progress = c.Bool("progress")
		changed = true
	}
	if c.IsSet("no-trim") {
		cfg.NoTrim = c.Bool("no-trim")
		changed = true
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
		changed = true
	}

	if changed {
		if err := cfg.Write(); err != nil {
			return err
		}
		colorLogger.Println("设置成功", cfg.configPath)
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, string(b))
	return nil
}
