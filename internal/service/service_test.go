package service

import (
	"path/filepath"
	"testing"
	"time"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.AccessKey{},
		&model.Lesson{},
		&model.UserProgress{},
		&model.SiteConfig{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			CookieName: "encanto_session",
			MaxAge:     30 * 24 * time.Hour,
		},
		Admin: config.AdminConfig{
			BootstrapKey: "admin2020",
		},
	}
}
