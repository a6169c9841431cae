package repository

import (
	"errors"
	"time"

	"encanto_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigRepository struct {
	DB *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) *SiteConfigRepository {
	return &SiteConfigRepository{DB: db}
}

// Get returns the stored value for key, or ("", false) when unset.
func (r *SiteConfigRepository) Get(key string) (string, bool, error) {
	var entry model.SiteConfig
	err := r.DB.Where("config_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.ConfigValue, true, nil
}

func (r *SiteConfigRepository) Set(key, value string) error {
	row := &model.SiteConfig{
		ConfigKey:   key,
		ConfigValue: value,
		UpdatedAt:   time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"config_value": value,
			"updated_at":   time.Now(),
		}),
	}).Create(row).Error
}
