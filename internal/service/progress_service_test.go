package service

import (
	"testing"

	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(t *testing.T) (*ProgressService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProgressService(repository.NewProgressRepository(db), repository.NewLessonRepository(db)), db
}

func createLesson(t *testing.T, db *gorm.DB, lesson *model.Lesson) *model.Lesson {
	t.Helper()
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  string
	}{
		{0, LevelApprentice},
		{50, LevelApprentice},
		{51, LevelIntermediate},
		{150, LevelIntermediate},
		{151, LevelMaster},
		{999, LevelMaster},
	}
	for _, tc := range cases {
		require.Equal(t, tc.level, LevelForPoints(tc.points), "points=%d", tc.points)
	}
}

func TestUpdateWatchTimeUpsert(t *testing.T) {
	svc, _ := newProgressService(t)

	require.NoError(t, svc.UpdateWatchTime("alice", 1, 120))
	require.NoError(t, svc.UpdateWatchTime("alice", 1, 300))

	progress, err := svc.LessonProgress("alice", 1)
	require.NoError(t, err)
	require.NotNil(t, progress)
	require.Equal(t, 300, progress.WatchTimeSeconds)
	require.False(t, progress.Completed)
}

func TestMarkCompletedRequiresView(t *testing.T) {
	svc, db := newProgressService(t)
	lesson := createLesson(t, db, &model.Lesson{Title: "Intro", VideoID: "v1", MinWatchTime: 10, Points: 25})

	err := svc.MarkCompleted("alice", lesson)
	require.ErrorIs(t, err, util.ErrProgressNotFound)
}

func TestMarkCompletedAwardsPoints(t *testing.T) {
	svc, db := newProgressService(t)
	lesson := createLesson(t, db, &model.Lesson{Title: "Intro", VideoID: "v1", MinWatchTime: 10, Points: 25})

	// 5 minutes watched, 10 required: completed but no points.
	require.NoError(t, svc.UpdateWatchTime("alice", lesson.ID, 300))
	require.NoError(t, svc.MarkCompleted("alice", lesson))

	progress, err := svc.LessonProgress("alice", lesson.ID)
	require.NoError(t, err)
	require.True(t, progress.Completed)
	require.Equal(t, 0, progress.PointsEarned)
	require.NotNil(t, progress.CompletedAt)

	// Keep watching past the threshold, complete again: award recomputed.
	require.NoError(t, svc.UpdateWatchTime("alice", lesson.ID, 600))
	require.NoError(t, svc.MarkCompleted("alice", lesson))

	progress, err = svc.LessonProgress("alice", lesson.ID)
	require.NoError(t, err)
	require.Equal(t, 25, progress.PointsEarned)

	total, err := svc.TotalPoints("alice")
	require.NoError(t, err)
	require.Equal(t, 25, total)
}

func TestToggleFavorite(t *testing.T) {
	svc, _ := newProgressService(t)

	// First toggle on an untouched lesson creates the row already favorited.
	require.NoError(t, svc.ToggleFavorite("alice", 7))
	progress, err := svc.LessonProgress("alice", 7)
	require.NoError(t, err)
	require.True(t, progress.Favorited)

	require.NoError(t, svc.ToggleFavorite("alice", 7))
	progress, err = svc.LessonProgress("alice", 7)
	require.NoError(t, err)
	require.False(t, progress.Favorited)

	require.NoError(t, svc.ToggleFavorite("alice", 7))
	progress, err = svc.LessonProgress("alice", 7)
	require.NoError(t, err)
	require.True(t, progress.Favorited)
}

func TestSaveNotes(t *testing.T) {
	svc, _ := newProgressService(t)

	require.NoError(t, svc.SaveNotes("alice", 3, "first draft"))
	require.NoError(t, svc.SaveNotes("alice", 3, "revised"))

	progress, err := svc.LessonProgress("alice", 3)
	require.NoError(t, err)
	require.Equal(t, "revised", progress.Notes)
}

func TestLessonProgressNeverTouched(t *testing.T) {
	svc, _ := newProgressService(t)

	progress, err := svc.LessonProgress("alice", 42)
	require.NoError(t, err)
	require.Nil(t, progress)
}

func TestGetDashboard(t *testing.T) {
	svc, db := newProgressService(t)

	l1 := createLesson(t, db, &model.Lesson{Title: "One", VideoID: "v1", OrderNum: 1, MinWatchTime: 1, Points: 30})
	l2 := createLesson(t, db, &model.Lesson{Title: "Two", VideoID: "v2", OrderNum: 2, MinWatchTime: 1, Points: 40})
	l3 := createLesson(t, db, &model.Lesson{Title: "Three", VideoID: "v3", OrderNum: 3})

	require.NoError(t, svc.UpdateWatchTime("alice", l1.ID, 120))
	require.NoError(t, svc.MarkCompleted("alice", l1))
	require.NoError(t, svc.UpdateWatchTime("alice", l2.ID, 120))
	require.NoError(t, svc.MarkCompleted("alice", l2))
	require.NoError(t, svc.ToggleFavorite("alice", l3.ID))

	dashboard, err := svc.GetDashboard("alice")
	require.NoError(t, err)
	require.Equal(t, 70, dashboard.TotalPoints)
	require.Equal(t, LevelIntermediate, dashboard.Level)

	require.Len(t, dashboard.Favorites, 1)
	require.Equal(t, l3.ID, dashboard.Favorites[0].ID)
	require.Len(t, dashboard.Recent, 3)
}

func TestGetDashboardSkipsDeletedLessons(t *testing.T) {
	svc, db := newProgressService(t)

	lesson := createLesson(t, db, &model.Lesson{Title: "Gone", VideoID: "v1"})
	require.NoError(t, svc.ToggleFavorite("alice", lesson.ID))
	require.NoError(t, db.Delete(&model.Lesson{}, lesson.ID).Error)

	dashboard, err := svc.GetDashboard("alice")
	require.NoError(t, err)
	require.Empty(t, dashboard.Favorites)
	require.Empty(t, dashboard.Recent)
}

func TestGetDashboardEmptyUser(t *testing.T) {
	svc, _ := newProgressService(t)

	dashboard, err := svc.GetDashboard("nobody")
	require.NoError(t, err)
	require.Equal(t, 0, dashboard.TotalPoints)
	require.Equal(t, LevelApprentice, dashboard.Level)
	require.Empty(t, dashboard.Favorites)
	require.Empty(t, dashboard.Recent)
}
