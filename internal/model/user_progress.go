package model

import (
	"time"
)

// UserProgress is the per-(key, lesson) record tracking watch time,
// completion, favorite flag and notes. One row per pair, upserted in place.
type UserProgress struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserKey          string     `gorm:"size:64;not null;uniqueIndex:idx_user_lesson,priority:1;index" json:"user_key"`
	LessonID         uint       `gorm:"not null;uniqueIndex:idx_user_lesson,priority:2" json:"lesson_id"`
	Completed        bool       `gorm:"default:false" json:"completed"`
	Favorited        bool       `gorm:"default:false" json:"favorited"`
	Notes            string     `gorm:"type:text" json:"notes"`
	WatchTimeSeconds int        `gorm:"default:0" json:"watch_time_seconds"`
	PointsEarned     int        `gorm:"default:0" json:"points_earned"`
	LastViewed       time.Time  `json:"last_viewed"`
	CompletedAt      *time.Time `json:"completed_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
