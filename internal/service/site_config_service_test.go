package service

import (
	"testing"

	"encanto_backend/internal/repository"

	"github.com/stretchr/testify/require"
)

func newSiteConfigService(t *testing.T) *SiteConfigService {
	t.Helper()
	return NewSiteConfigService(repository.NewSiteConfigRepository(newTestDB(t)))
}

func TestOverlayDefaults(t *testing.T) {
	svc := newSiteConfigService(t)

	settings, err := svc.GetOverlaySettings()
	require.NoError(t, err)
	require.Equal(t, "", settings.ImageURL)
	require.Equal(t, 1500, settings.DurationMs)
}

func TestOverlayRoundTrip(t *testing.T) {
	svc := newSiteConfigService(t)

	require.NoError(t, svc.SetOverlaySettings("/uploads/overlay.png", 2500))

	settings, err := svc.GetOverlaySettings()
	require.NoError(t, err)
	require.Equal(t, "/uploads/overlay.png", settings.ImageURL)
	require.Equal(t, 2500, settings.DurationMs)
}

func TestOverlayOverwrite(t *testing.T) {
	svc := newSiteConfigService(t)

	require.NoError(t, svc.SetOverlaySettings("/uploads/a.png", 1000))
	require.NoError(t, svc.SetOverlaySettings("", 0))

	settings, err := svc.GetOverlaySettings()
	require.NoError(t, err)
	require.Equal(t, "", settings.ImageURL)
	require.Equal(t, 0, settings.DurationMs)
}
