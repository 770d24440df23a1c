package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

// ~/.genome2bit/config 保存默认参数，命令行参数优先

type Config struct {
	Encoder  string `yaml:"encoder,omitempty"`
	Progress bool   `yaml:"progress"`
	NoTrim   bool   `yaml:"no-trim"`
	NoColor  bool   `yaml:"no-color"`

	configPath string `yaml:"-"`
}

func (c *Config) EncoderName() string {
	if c == nil || c.Encoder == "" {
		return defaultEncoder
	}
	return c.Encoder
}

// Write 先写临时文件再 rename，写一半失败不会弄坏原来的配置
func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig 加载不到也没事，返回默认配置
func ReadConfig(cfgPath string) (c Config, err error) {
	if cfgPath == "" {
		if cfgPath, err = getDefaultConfigPath(); err != nil {
			return Config{}, err
		}
	}

	file, err := os.Open(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: cfgPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	//空文件
	if err = yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config %s: %w", cfgPath, err)
	}
	c.configPath = cfgPath
	return c, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".genome2bit", "config"), nil
}
