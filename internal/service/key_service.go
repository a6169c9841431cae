package service

import (
	"errors"
	"strings"
	"time"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"gorm.io/gorm"
)

type KeyService struct {
	KeyRepo *repository.AccessKeyRepository
	Cfg     *config.Config
}

func NewKeyService(keyRepo *repository.AccessKeyRepository, cfg *config.Config) *KeyService {
	return &KeyService{
		KeyRepo: keyRepo,
		Cfg:     cfg,
	}
}

// FindByKey resolves an access key. The env-provided admin key is consulted
// first and never touches the database, so an operator can always get in even
// with an empty or broken key table. Returns (nil, nil) when no key matches.
func (s *KeyService) FindByKey(key string) (*model.AccessKey, error) {
	if s.Cfg.Admin.EnvKey != "" && key == s.Cfg.Admin.EnvKey {
		return &model.AccessKey{
			ID:        0,
			Key:       s.Cfg.Admin.EnvKey,
			OwnerName: "Administrador (Sistema)",
			IsAdmin:   true,
			IsActive:  true,
			CreatedAt: time.Now(),
		}, nil
	}

	accessKey, err := s.KeyRepo.FindByKey(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accessKey, nil
}

func (s *KeyService) List() ([]model.AccessKey, error) {
	return s.KeyRepo.GetAll()
}

func (s *KeyService) Create(key, ownerName string, isAdmin bool) (*model.AccessKey, error) {
	accessKey := &model.AccessKey{
		Key:       strings.TrimSpace(key),
		OwnerName: ownerName,
		IsAdmin:   isAdmin,
		IsActive:  true,
	}

	err := s.KeyRepo.Create(accessKey)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, util.ErrKeyExists
	}
	if err != nil {
		return nil, err
	}
	return accessKey, nil
}

// ToggleActive flips any key, the bootstrap admin key included; only deletion
// is refused. A deactivated bootstrap key is re-activated at next startup by
// the seeding step, and the env admin key keeps working meanwhile.
func (s *KeyService) ToggleActive(id uint) error {
	return s.KeyRepo.ToggleActive(id)
}

// Delete refuses to remove the bootstrap admin key, whatever its row id is.
func (s *KeyService) Delete(id uint) error {
	accessKey, err := s.KeyRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if accessKey.Key == s.Cfg.Admin.BootstrapKey {
		return util.ErrProtectedKey
	}

	return s.KeyRepo.Delete(id)
}

func (s *KeyService) GenerateRandomKey() string {
	return util.GenerateRandomKey()
}
