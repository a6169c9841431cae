package service

import (
	"strconv"

	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
)

const defaultOverlayDurationMs = 1500

// OverlaySettings is the player-overlay pair read by every client on load.
type OverlaySettings struct {
	ImageURL   string `json:"imageUrl"`
	DurationMs int    `json:"durationMs"`
}

type SiteConfigService struct {
	ConfigRepo *repository.SiteConfigRepository
}

func NewSiteConfigService(configRepo *repository.SiteConfigRepository) *SiteConfigService {
	return &SiteConfigService{ConfigRepo: configRepo}
}

func (s *SiteConfigService) GetOverlaySettings() (*OverlaySettings, error) {
	imageURL, _, err := s.ConfigRepo.Get(model.ConfigOverlayImageURL)
	if err != nil {
		return nil, err
	}

	durationMs := defaultOverlayDurationMs
	if raw, ok, err := s.ConfigRepo.Get(model.ConfigOverlayDurationMs); err != nil {
		return nil, err
	} else if ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			durationMs = parsed
		}
	}

	return &OverlaySettings{
		ImageURL:   imageURL,
		DurationMs: durationMs,
	}, nil
}

func (s *SiteConfigService) SetOverlaySettings(imageURL string, durationMs int) error {
	if err := s.ConfigRepo.Set(model.ConfigOverlayImageURL, imageURL); err != nil {
		return err
	}
	return s.ConfigRepo.Set(model.ConfigOverlayDurationMs, strconv.Itoa(durationMs))
}
