package repository

import (
	"encanto_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// GetAll returns every lesson in display order. order_num ties are allowed,
// the ordering is a hint only.
func (r *LessonRepository) GetAll() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Order("order_num ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) FindByIDs(ids []uint) ([]model.Lesson, error) {
	if len(ids) == 0 {
		return []model.Lesson{}, nil
	}
	var lessons []model.Lesson
	err := r.DB.Where("id IN ?", ids).Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

// Update applies a partial patch; only the columns present in updates change.
func (r *LessonRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Lesson{}).Where("id = ?", id).Updates(updates).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}
