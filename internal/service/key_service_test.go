package service

import (
	"strings"
	"testing"

	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newKeyService(t *testing.T) (*KeyService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewKeyService(repository.NewAccessKeyRepository(db), newTestConfig()), db
}

func TestGenerateRandomKey(t *testing.T) {
	svc, _ := newKeyService(t)

	for i := 0; i < 50; i++ {
		key := svc.GenerateRandomKey()
		require.GreaterOrEqual(t, len(key), 10)
		require.LessOrEqual(t, len(key), 16)
		for _, r := range key {
			require.True(t, strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", r), "unexpected char %q in %q", r, key)
		}
	}
}

func TestFindByKeyUnknown(t *testing.T) {
	svc, _ := newKeyService(t)

	accessKey, err := svc.FindByKey("no-such-key")
	require.NoError(t, err)
	require.Nil(t, accessKey)
}

func TestFindByKeyEnvOverride(t *testing.T) {
	svc, _ := newKeyService(t)
	svc.Cfg.Admin.EnvKey = "operator-master-key"

	// Resolves without any matching database row.
	accessKey, err := svc.FindByKey("operator-master-key")
	require.NoError(t, err)
	require.NotNil(t, accessKey)
	require.True(t, accessKey.IsAdmin)
	require.True(t, accessKey.IsActive)
	require.Equal(t, uint(0), accessKey.ID)
}

func TestCreateTrimsAndPersists(t *testing.T) {
	svc, _ := newKeyService(t)

	accessKey, err := svc.Create("  turma2026  ", "Turma de Agosto", false)
	require.NoError(t, err)
	require.Equal(t, "turma2026", accessKey.Key)
	require.True(t, accessKey.IsActive)

	found, err := svc.FindByKey("turma2026")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "Turma de Agosto", found.OwnerName)
}

func TestCreateDuplicateKey(t *testing.T) {
	svc, _ := newKeyService(t)

	_, err := svc.Create("turma2026", "First", false)
	require.NoError(t, err)

	_, err = svc.Create("turma2026", "Second", false)
	require.ErrorIs(t, err, util.ErrKeyExists)
}

func TestToggleActive(t *testing.T) {
	svc, _ := newKeyService(t)

	accessKey, err := svc.Create("turma2026", "Turma", false)
	require.NoError(t, err)

	require.NoError(t, svc.ToggleActive(accessKey.ID))
	found, err := svc.FindByKey("turma2026")
	require.NoError(t, err)
	require.False(t, found.IsActive)

	require.NoError(t, svc.ToggleActive(accessKey.ID))
	found, err = svc.FindByKey("turma2026")
	require.NoError(t, err)
	require.True(t, found.IsActive)
}

func TestDeleteKey(t *testing.T) {
	svc, _ := newKeyService(t)

	accessKey, err := svc.Create("turma2026", "Turma", false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(accessKey.ID))
	found, err := svc.FindByKey("turma2026")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	svc, _ := newKeyService(t)
	require.NoError(t, svc.Delete(9999))
}

func TestDeleteBootstrapKeyRefused(t *testing.T) {
	svc, db := newKeyService(t)

	bootstrap := &model.AccessKey{
		Key:       svc.Cfg.Admin.BootstrapKey,
		OwnerName: "Administrador",
		IsAdmin:   true,
		IsActive:  true,
	}
	require.NoError(t, db.Create(bootstrap).Error)

	err := svc.Delete(bootstrap.ID)
	require.ErrorIs(t, err, util.ErrProtectedKey)

	// The row must survive the attempt.
	found, err := svc.FindByKey(svc.Cfg.Admin.BootstrapKey)
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newKeyService(t)

	_, err := svc.Create("older", "A", false)
	require.NoError(t, err)
	_, err = svc.Create("newer", "B", true)
	require.NoError(t, err)

	keys, err := svc.List()
	require.NoError(t, err)
	require.Len(t, keys, 2)
}
