package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"encanto_backend/internal/repository"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	cfg := newTestConfig()
	keyService := NewKeyService(repository.NewAccessKeyRepository(db), cfg)
	return NewAuthService(keyService, cfg), db
}

func testContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestLoginUnknownKey(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("no-such-key")
	require.ErrorIs(t, err, util.ErrInvalidKey)
}

func TestLoginDeactivatedKey(t *testing.T) {
	svc, _ := newAuthService(t)

	accessKey, err := svc.KeyService.Create("turma2026", "Turma", false)
	require.NoError(t, err)
	require.NoError(t, svc.KeyService.ToggleActive(accessKey.ID))

	_, err = svc.Login("turma2026")
	require.ErrorIs(t, err, util.ErrInvalidKey)
}

func TestSessionRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.KeyService.Create("turma2026", "Turma", false)
	require.NoError(t, err)

	c, w := testContext(t)
	require.NoError(t, svc.CreateSession(c, "turma2026", false))
	cookie := sessionCookie(t, w, svc.Cfg.Session.CookieName)
	require.True(t, cookie.HttpOnly)

	c, _ = testContext(t, cookie)
	claims, err := svc.GetSession(c)
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.Equal(t, "turma2026", claims.Key)
	require.False(t, claims.IsAdmin)
}

func TestSessionRevokedWhenKeyDeactivated(t *testing.T) {
	svc, _ := newAuthService(t)

	accessKey, err := svc.KeyService.Create("turma2026", "Turma", false)
	require.NoError(t, err)

	c, w := testContext(t)
	require.NoError(t, svc.CreateSession(c, "turma2026", false))
	cookie := sessionCookie(t, w, svc.Cfg.Session.CookieName)

	require.NoError(t, svc.KeyService.ToggleActive(accessKey.ID))

	c, w = testContext(t, cookie)
	claims, err := svc.GetSession(c)
	require.NoError(t, err)
	require.Nil(t, claims)

	// The dead cookie is cleared on the spot.
	cleared := sessionCookie(t, w, svc.Cfg.Session.CookieName)
	require.Equal(t, "", cleared.Value)
	require.Equal(t, -1, cleared.MaxAge)
}

func TestSessionMissingCookie(t *testing.T) {
	svc, _ := newAuthService(t)

	c, _ := testContext(t)
	claims, err := svc.GetSession(c)
	require.NoError(t, err)
	require.Nil(t, claims)
}

func TestSessionTamperedCookie(t *testing.T) {
	svc, _ := newAuthService(t)

	c, _ := testContext(t, &http.Cookie{Name: svc.Cfg.Session.CookieName, Value: "not-a-token"})
	claims, err := svc.GetSession(c)
	require.NoError(t, err)
	require.Nil(t, claims)
}

func TestSessionSurvivesForEnvAdminKey(t *testing.T) {
	svc, _ := newAuthService(t)
	svc.Cfg.Admin.EnvKey = "operator-master-key"

	c, w := testContext(t)
	require.NoError(t, svc.CreateSession(c, "operator-master-key", true))
	cookie := sessionCookie(t, w, svc.Cfg.Session.CookieName)

	c, _ = testContext(t, cookie)
	claims, err := svc.GetSession(c)
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.True(t, claims.IsAdmin)
}
