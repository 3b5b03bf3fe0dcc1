package config

import (
	"fmt"
	"math"
)

// GeneratorConfig 合成数据生成参数
type GeneratorConfig struct {
	Seed         uint64  `json:"seed" yaml:"seed"`
	Users        int     `json:"users" yaml:"users"`
	Interactions int     `json:"interactions" yaml:"interactions"`
	Queries      int     `json:"queries" yaml:"queries"`
	AvgBoards    float64 `json:"avg_boards" yaml:"avg_boards"`
	AvgPins      float64 `json:"avg_pins" yaml:"avg_pins"`
	OutputDir    string  `json:"output_dir" yaml:"output_dir"`
	Mode         string  `json:"mode" yaml:"mode"`
	// ProgressEvery 每生成多少行打印一次进度
	ProgressEvery int `json:"progress_every" yaml:"progress_every"`
}

// defaultGenerator 解析前预置的默认值，配置里显式写 0 会覆盖它
func defaultGenerator() *GeneratorConfig {
	return &GeneratorConfig{
		Seed:         42,
		Users:        2000,
		Interactions: 10000,
		Queries:      5000,
		AvgBoards:    3,
		AvgPins:      8,
	}
}

func (g *GeneratorConfig) applyDefaults() {
	if g.OutputDir == "" {
		g.OutputDir = "data/raw"
	}
	if g.Mode == "" {
		g.Mode = "reduced_size_for_speed"
	}
	if g.ProgressEvery == 0 {
		g.ProgressEvery = 500
	}
}

// Validate 数量与均值都不能为负
func (g *GeneratorConfig) Validate() error {
	counts := []struct {
		name string
		v    int
	}{{"users", g.Users}, {"interactions", g.Interactions}, {"queries", g.Queries}}
	for _, c := range counts {
		if c.v < 0 {
			return fmt.Errorf("%w: generator.%s must be >= 0, got %d", ErrInvalidConfig, c.name, c.v)
		}
	}
	means := []struct {
		name string
		v    float64
	}{{"avg_boards", g.AvgBoards}, {"avg_pins", g.AvgPins}}
	for _, m := range means {
		if !(m.v >= 0) || math.IsInf(m.v, 1) {
			return fmt.Errorf("%w: generator.%s must be >= 0, got %v", ErrInvalidConfig, m.name, m.v)
		}
	}
	return nil
}

func ProvideGeneratorConfig(cfg *Config) *GeneratorConfig {
	return cfg.Generator
}
