package model

import (
	"time"
)

// SiteConfig is a small key/value setting store. Known keys are the player
// overlay image URL and the overlay display duration.
type SiteConfig struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConfigKey   string    `gorm:"size:100;uniqueIndex;not null" json:"config_key"`
	ConfigValue string    `gorm:"type:text" json:"config_value"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	ConfigOverlayImageURL   = "overlay_image_url"
	ConfigOverlayDurationMs = "overlay_duration_ms"
)

func (SiteConfig) TableName() string {
	return "site_config"
}
