package database

import (
	"path/filepath"
	"testing"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	return db
}

func TestSeedBootstrapKeyCreatesRow(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedBootstrapKey(db, "admin2020"))

	var row model.AccessKey
	require.NoError(t, db.Where("`key` = ?", "admin2020").First(&row).Error)
	require.True(t, row.IsAdmin)
	require.True(t, row.IsActive)
}

func TestSeedBootstrapKeyIdempotent(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedBootstrapKey(db, "admin2020"))
	require.NoError(t, SeedBootstrapKey(db, "admin2020"))

	var count int64
	require.NoError(t, db.Model(&model.AccessKey{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSeedBootstrapKeyRepromotesTamperedRow(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedBootstrapKey(db, "admin2020"))
	require.NoError(t, db.Model(&model.AccessKey{}).
		Where("`key` = ?", "admin2020").
		Updates(map[string]interface{}{"is_admin": false, "is_active": false}).Error)

	require.NoError(t, SeedBootstrapKey(db, "admin2020"))

	var row model.AccessKey
	require.NoError(t, db.Where("`key` = ?", "admin2020").First(&row).Error)
	require.True(t, row.IsAdmin)
	require.True(t, row.IsActive)
}

func TestSeedBootstrapKeyEmpty(t *testing.T) {
	db := initTestDB(t)
	require.Error(t, SeedBootstrapKey(db, ""))
}
