package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(LoadService), "*"),
	wire.Bind(new(ILoadService), new(*LoadService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(PublishService), "*"),
	wire.Bind(new(IPublishService), new(*PublishService)),

	wire.Struct(new(GenerateService), "*"),
	wire.Bind(new(IGenerateService), new(*GenerateService)),
)
