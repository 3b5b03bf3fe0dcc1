package main

import (
	"Pinseed/config"
	"Pinseed/service"

	"gorm.io/gorm"
)

// GenerateApp 生成数据不需要连接数据库
type GenerateApp struct {
	Config          *config.Config
	GenerateService service.IGenerateService
}

type App struct {
	Config         *config.Config
	DB             *gorm.DB
	LoadService    service.ILoadService
	ProfileService service.IProfileService
	StatsService   service.IStatsService
}
