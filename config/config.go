package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config 配置信息
type Config struct {
	App       *App             `json:"app" yaml:"app"`
	Database  *Database        `json:"database" yaml:"database"`
	Redis     *Redis           `json:"redis" yaml:"redis"`
	Oss       *OssConfig       `json:"oss" yaml:"oss"`
	Generator *GeneratorConfig `json:"generator" yaml:"generator"`
	Loader    *LoaderConfig    `json:"loader" yaml:"loader"`
	Metrics   *Metrics         `json:"metrics" yaml:"metrics"`
}

// Metrics 批处理结束后把指标写入 textfile，供 node_exporter 采集
type Metrics struct {
	Textfile string `json:"textfile" yaml:"textfile"`
}

func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 读取并解析配置文件，缺省的配置段会补上默认值
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	conf := Config{Generator: defaultGenerator()}
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}
	conf.applyDefaults()
	if err := conf.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &conf, nil
}

// Default 不依赖配置文件的默认配置，本地 sqlite
func Default() *Config {
	conf := &Config{}
	conf.applyDefaults()
	return conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Driver == DriverSQLite && c.Database.Path == "" {
		c.Database.Path = "pinseed.db"
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Generator == nil {
		c.Generator = defaultGenerator()
	}
	c.Generator.applyDefaults()
	if c.Loader == nil {
		c.Loader = &LoaderConfig{}
	}
	c.Loader.applyDefaults()
	if c.Metrics == nil {
		c.Metrics = &Metrics{}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
