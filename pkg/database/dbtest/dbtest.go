package dbtest

import (
	"Pinseed/config"
	"Pinseed/pkg/database"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New 在临时目录下建一个已迁移的 sqlite 库
func New(t testing.TB) *gorm.DB {
	t.Helper()
	conf := config.Default()
	conf.Database.Path = filepath.Join(t.TempDir(), "pinseed.db")

	db, err := database.NewDB(conf)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
