package main

import (
	"Pinseed/config"
	"Pinseed/pkg/log"
	"Pinseed/pkg/metrics"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	var cfg *config.Config
	cliApp := &cli.App{
		Name:  "pinseed",
		Usage: "generate and load synthetic pinterest-style datasets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file",
				Value: fmt.Sprintf("configs/config.%s.yaml", env),
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = loadConfig(c)
			if err != nil {
				return err
			}
			log.SetDebug(cfg.Debug())
			return nil
		},
		After: func(c *cli.Context) error {
			if cfg == nil {
				return nil
			}
			if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				log.L.Warn("write metrics textfile failed", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
			}
			return nil
		},
		Commands: []*cli.Command{
			generateCommand(&cfg),
			loadCommand(&cfg),
			migrateCommand(&cfg),
			profilesCommand(&cfg),
			statsCommand(&cfg),
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Error("pinseed failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig 未显式指定 --config 且默认文件不存在时使用内置默认配置
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	cfg, err := config.Load(path)
	if err != nil && !c.IsSet("config") && errors.Is(err, fs.ErrNotExist) {
		log.L.Info("config file not found, using defaults", zap.String("path", path))
		return config.Default(), nil
	}
	return cfg, err
}
