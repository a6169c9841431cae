package model

import (
	"time"
)

// Lesson holds the metadata for one video lesson. The video itself lives on
// the embedding provider; VideoID is the provider reference.
type Lesson struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	VideoID        string    `gorm:"size:100;not null" json:"video_id"`
	CoverImage     string    `gorm:"size:500" json:"cover_image"`
	SealDifficulty string    `gorm:"size:50" json:"seal_difficulty"`
	SealTimeValue  string    `gorm:"size:50" json:"seal_time_value"`
	SealTimeColor  string    `gorm:"size:20" json:"seal_time_color"`
	Description    string    `gorm:"type:text" json:"description"`
	Materials      string    `gorm:"type:text" json:"materials"`
	Steps          string    `gorm:"type:text" json:"steps"`
	OrderNum       int       `gorm:"not null;index" json:"order_num"`
	Points         int       `gorm:"default:10" json:"points"`
	MinWatchTime   int       `gorm:"default:10" json:"min_watch_time"` // minutes
	CreatedAt      time.Time `json:"created_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}
