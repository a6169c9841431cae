package repository

import (
	"encanto_backend/internal/model"

	"gorm.io/gorm"
)

type AccessKeyRepository struct {
	DB *gorm.DB
}

func NewAccessKeyRepository(db *gorm.DB) *AccessKeyRepository {
	return &AccessKeyRepository{DB: db}
}

func (r *AccessKeyRepository) FindByKey(key string) (*model.AccessKey, error) {
	var accessKey model.AccessKey
	err := r.DB.Where("`key` = ?", key).First(&accessKey).Error
	if err != nil {
		return nil, err
	}
	return &accessKey, nil
}

func (r *AccessKeyRepository) FindByID(id uint) (*model.AccessKey, error) {
	var accessKey model.AccessKey
	err := r.DB.First(&accessKey, id).Error
	if err != nil {
		return nil, err
	}
	return &accessKey, nil
}

func (r *AccessKeyRepository) GetAll() ([]model.AccessKey, error) {
	var keys []model.AccessKey
	err := r.DB.Order("created_at DESC").Find(&keys).Error
	return keys, err
}

func (r *AccessKeyRepository) Create(accessKey *model.AccessKey) error {
	return r.DB.Create(accessKey).Error
}

func (r *AccessKeyRepository) ToggleActive(id uint) error {
	return r.DB.Model(&model.AccessKey{}).
		Where("id = ?", id).
		Update("is_active", gorm.Expr("NOT is_active")).Error
}

func (r *AccessKeyRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AccessKey{}, id).Error
}
