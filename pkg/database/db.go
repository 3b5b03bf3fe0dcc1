package database

import (
	"Pinseed/config"
	"Pinseed/models"
	"Pinseed/pkg/log"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	dsn := conf.Database.Dsn()
	switch conf.Database.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		if file := strings.SplitN(dsn, "?", 2)[0]; file != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
				return nil, err
			}
		}
		// sqlite 默认不校验外键，需要在每个连接上打开
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Database.Driver)
	}

	logLevel := logger.Warn
	if conf.Debug() {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
		return nil, err
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

// Migrate 同步全部表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
