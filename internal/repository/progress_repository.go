package repository

import (
	"errors"
	"time"

	"encanto_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Get(userKey string, lessonID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_key = ? AND lesson_id = ?", userKey, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpsertWatchTime overwrites the stored seconds with the caller's cumulative
// value and refreshes last_viewed. A stale tab sending a smaller value will
// regress the stored time; callers are expected to send non-decreasing values.
func (r *ProgressRepository) UpsertWatchTime(userKey string, lessonID uint, seconds int) error {
	now := time.Now()
	row := &model.UserProgress{
		UserKey:          userKey,
		LessonID:         lessonID,
		WatchTimeSeconds: seconds,
		LastViewed:       now,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_key"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"watch_time_seconds": seconds,
			"last_viewed":        now,
		}),
	}).Create(row).Error
}

func (r *ProgressRepository) MarkCompleted(userKey string, lessonID uint, pointsEarned int) error {
	now := time.Now()
	return r.DB.Model(&model.UserProgress{}).
		Where("user_key = ? AND lesson_id = ?", userKey, lessonID).
		Updates(map[string]interface{}{
			"completed":     true,
			"points_earned": pointsEarned,
			"completed_at":  now,
		}).Error
}

// ToggleFavorite flips the flag in a single UPDATE; when no row exists yet the
// pair is created already favorited. A concurrent first toggle is resolved by
// the unique index: the losing insert falls back to the flip.
func (r *ProgressRepository) ToggleFavorite(userKey string, lessonID uint) error {
	flip := func() *gorm.DB {
		return r.DB.Model(&model.UserProgress{}).
			Where("user_key = ? AND lesson_id = ?", userKey, lessonID).
			Update("favorited", gorm.Expr("NOT favorited"))
	}

	res := flip()
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := &model.UserProgress{
		UserKey:    userKey,
		LessonID:   lessonID,
		Favorited:  true,
		LastViewed: time.Now(),
	}
	err := r.DB.Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return flip().Error
	}
	return err
}

func (r *ProgressRepository) UpsertNotes(userKey string, lessonID uint, notes string) error {
	row := &model.UserProgress{
		UserKey:    userKey,
		LessonID:   lessonID,
		Notes:      notes,
		LastViewed: time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_key"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"notes": notes,
		}),
	}).Create(row).Error
}

func (r *ProgressRepository) SumPoints(userKey string) (int, error) {
	var total int
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_key = ?", userKey).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ProgressRepository) RecentLessonIDs(userKey string, limit int) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_key = ?", userKey).
		Order("last_viewed DESC").
		Limit(limit).
		Pluck("lesson_id", &ids).Error
	return ids, err
}

func (r *ProgressRepository) FavoriteLessonIDs(userKey string) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_key = ? AND favorited = ?", userKey, true).
		Order("last_viewed DESC").
		Pluck("lesson_id", &ids).Error
	return ids, err
}
