package service

import (
	"errors"

	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"gorm.io/gorm"
)

const recentLessonLimit = 5

// Level labels derived from total accrued points. Thresholds are inclusive
// lower bounds covering all non-negative totals.
const (
	LevelApprentice   = "Apprentice"
	LevelIntermediate = "Intermediate"
	LevelMaster       = "Master"

	masterThreshold       = 151
	intermediateThreshold = 51
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
	}
}

func (s *ProgressService) UpdateWatchTime(userKey string, lessonID uint, seconds int) error {
	return s.ProgressRepo.UpsertWatchTime(userKey, lessonID, seconds)
}

// MarkCompleted awards the lesson's points only when the accumulated watch
// time meets the lesson's minimum. A lesson must have been viewed at least
// once before it can be completed. Repeating the call recomputes the award
// from the current watch time.
func (s *ProgressService) MarkCompleted(userKey string, lesson *model.Lesson) error {
	progress, err := s.ProgressRepo.Get(userKey, lesson.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrProgressNotFound
	}
	if err != nil {
		return err
	}

	watchMinutes := progress.WatchTimeSeconds / 60
	points := 0
	if watchMinutes >= lesson.MinWatchTime {
		points = lesson.Points
	}

	return s.ProgressRepo.MarkCompleted(userKey, lesson.ID, points)
}

func (s *ProgressService) ToggleFavorite(userKey string, lessonID uint) error {
	return s.ProgressRepo.ToggleFavorite(userKey, lessonID)
}

func (s *ProgressService) SaveNotes(userKey string, lessonID uint, notes string) error {
	return s.ProgressRepo.UpsertNotes(userKey, lessonID, notes)
}

// LessonProgress returns the progress row for one lesson, or nil when the
// user never touched it.
func (s *ProgressService) LessonProgress(userKey string, lessonID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.Get(userKey, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) TotalPoints(userKey string) (int, error) {
	return s.ProgressRepo.SumPoints(userKey)
}

func LevelForPoints(points int) string {
	switch {
	case points >= masterThreshold:
		return LevelMaster
	case points >= intermediateThreshold:
		return LevelIntermediate
	default:
		return LevelApprentice
	}
}

// Dashboard is the aggregate payload for the user's home view.
type Dashboard struct {
	TotalPoints int            `json:"totalPoints"`
	Level       string         `json:"level"`
	Favorites   []model.Lesson `json:"favorites"`
	Recent      []model.Lesson `json:"recent"`
}

func (s *ProgressService) GetDashboard(userKey string) (*Dashboard, error) {
	totalPoints, err := s.TotalPoints(userKey)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := s.ProgressRepo.FavoriteLessonIDs(userKey)
	if err != nil {
		return nil, err
	}
	recentIDs, err := s.ProgressRepo.RecentLessonIDs(userKey, recentLessonLimit)
	if err != nil {
		return nil, err
	}

	favorites, err := s.resolveLessons(favoriteIDs)
	if err != nil {
		return nil, err
	}
	recent, err := s.resolveLessons(recentIDs)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalPoints: totalPoints,
		Level:       LevelForPoints(totalPoints),
		Favorites:   favorites,
		Recent:      recent,
	}, nil
}

// resolveLessons fetches the lessons for ids, keeping the given order and
// silently skipping ids whose lesson has been deleted.
func (s *ProgressService) resolveLessons(ids []uint) ([]model.Lesson, error) {
	lessons, err := s.LessonRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]model.Lesson, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson
	}

	ordered := make([]model.Lesson, 0, len(ids))
	for _, id := range ids {
		if lesson, ok := byID[id]; ok {
			ordered = append(ordered, lesson)
		}
	}
	return ordered, nil
}
