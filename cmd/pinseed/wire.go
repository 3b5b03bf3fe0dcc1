//go:build wireinject
// +build wireinject

package main

import (
	"Pinseed/config"
	"Pinseed/dao"
	"Pinseed/pkg/client"
	"Pinseed/pkg/database"
	"Pinseed/pkg/oss"
	"Pinseed/service"

	"github.com/google/wire"
)

func InitGenerator(cfg *config.Config) *GenerateApp {
	wire.Build(
		config.ProvideOssConfig,
		oss.NewBucket,
		wire.Bind(new(oss.Uploader), new(*oss.Bucket)),
		service.ProviderSet,
		wire.Struct(new(GenerateApp), "*"),
	)
	return nil
}

func InitApp(cfg *config.Config) (*App, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideLoaderConfig,
		dao.ProviderSet,
		service.ProviderSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
