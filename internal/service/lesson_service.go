package service

import (
	"errors"

	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"gorm.io/gorm"
)

const (
	defaultLessonPoints       = 10
	defaultLessonMinWatchTime = 10
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository) *LessonService {
	return &LessonService{LessonRepo: lessonRepo}
}

func (s *LessonService) List() ([]model.Lesson, error) {
	return s.LessonRepo.GetAll()
}

func (s *LessonService) Get(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Create(lesson *model.Lesson) error {
	if lesson.Points == 0 {
		lesson.Points = defaultLessonPoints
	}
	if lesson.MinWatchTime == 0 {
		lesson.MinWatchTime = defaultLessonMinWatchTime
	}
	return s.LessonRepo.Create(lesson)
}

func (s *LessonService) Update(id uint, updates map[string]interface{}) error {
	return s.LessonRepo.Update(id, updates)
}

func (s *LessonService) Delete(id uint) error {
	return s.LessonRepo.Delete(id)
}
