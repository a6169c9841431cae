package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AccessKey{}, &model.UserProgress{}))

	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret:     "test-secret",
			CookieName: "encanto_session",
			MaxAge:     time.Hour,
		},
	}
	keyService := service.NewKeyService(repository.NewAccessKeyRepository(db), cfg)
	authService := service.NewAuthService(keyService, cfg)

	router := gin.New()
	authGroup := router.Group("/api")
	authGroup.Use(SessionMiddleware(authService))
	authGroup.GET("/me", func(c *gin.Context) {
		session := GetSessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"key": session.Key})
	})

	admin := router.Group("/api/admin")
	admin.Use(SessionMiddleware(authService), AdminMiddleware())
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, authService
}

func loginCookie(t *testing.T, authService *service.AuthService, key string, isAdmin bool) *http.Cookie {
	t.Helper()

	_, err := authService.KeyService.Create(key, "Test", isAdmin)
	require.NoError(t, err)

	token, err := util.GenerateSessionToken(key, isAdmin, authService.Cfg.Session.Secret, authService.Cfg.Session.MaxAge)
	require.NoError(t, err)
	return &http.Cookie{Name: authService.Cfg.Session.CookieName, Value: token}
}

func TestSessionMiddlewareNoCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionMiddlewarePassesSession(t *testing.T) {
	router, authService := newTestRouter(t)
	cookie := loginCookie(t, authService, "turma2026", false)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "turma2026")
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	router, authService := newTestRouter(t)
	cookie := loginCookie(t, authService, "turma2026", false)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	router, authService := newTestRouter(t)
	cookie := loginCookie(t, authService, "chef2026", true)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
