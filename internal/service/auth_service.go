package service

import (
	"net/http"

	"encanto_backend/internal/config"
	"encanto_backend/internal/model"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthService owns the session cookie lifecycle. There is no server-side
// session table: the cookie carries a signed {key, isAdmin} pair and the key
// row is re-checked on every request, so deactivating a key revokes all of
// its sessions immediately.
type AuthService struct {
	KeyService *KeyService
	Cfg        *config.Config
}

func NewAuthService(keyService *KeyService, cfg *config.Config) *AuthService {
	return &AuthService{
		KeyService: keyService,
		Cfg:        cfg,
	}
}

// Login validates a raw key string and returns the matching access key.
func (s *AuthService) Login(key string) (*model.AccessKey, error) {
	accessKey, err := s.KeyService.FindByKey(key)
	if err != nil {
		return nil, err
	}
	if accessKey == nil || !accessKey.IsActive {
		return nil, util.ErrInvalidKey
	}
	return accessKey, nil
}

func (s *AuthService) CreateSession(c *gin.Context, key string, isAdmin bool) error {
	token, err := util.GenerateSessionToken(key, isAdmin, s.Cfg.Session.Secret, s.Cfg.Session.MaxAge)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		s.Cfg.Session.CookieName,
		token,
		int(s.Cfg.Session.MaxAge.Seconds()),
		"/",
		"",
		s.Cfg.Server.Mode == "release",
		true,
	)
	return nil
}

// GetSession resolves the current request's session. A missing or corrupt
// cookie is "no session", not an error. A session whose key no longer exists
// or was deactivated is cleared on the spot (lazy revocation).
func (s *AuthService) GetSession(c *gin.Context) (*util.SessionClaims, error) {
	cookie, err := c.Cookie(s.Cfg.Session.CookieName)
	if err != nil {
		return nil, nil
	}

	claims, err := util.ParseSessionToken(cookie, s.Cfg.Session.Secret)
	if err != nil {
		return nil, nil
	}

	accessKey, err := s.KeyService.FindByKey(claims.Key)
	if err != nil {
		return nil, err
	}
	if accessKey == nil || !accessKey.IsActive {
		s.ClearSession(c)
		return nil, nil
	}

	return claims, nil
}

func (s *AuthService) ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		s.Cfg.Session.CookieName,
		"",
		-1,
		"/",
		"",
		s.Cfg.Server.Mode == "release",
		true,
	)
}
