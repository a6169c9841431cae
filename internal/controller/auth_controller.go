package controller

import (
	"errors"
	"strings"

	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// LoginRequest carries the access key submitted by the client.
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// Login godoc
// @Summary Redeem an access key
// @Description Validates the key and issues the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "access key"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "key is required")
		return
	}

	accessKey, err := c.AuthService.Login(strings.TrimSpace(req.Key))
	if err != nil {
		if errors.Is(err, util.ErrInvalidKey) {
			util.Unauthorized(ctx, "Invalid or deactivated key")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := c.AuthService.CreateSession(ctx, accessKey.Key, accessKey.IsAdmin); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	redirectURL := "/aulas"
	if accessKey.IsAdmin {
		redirectURL = "/admin"
	}

	util.Success(ctx, gin.H{
		"redirectUrl": redirectURL,
		"isAdmin":     accessKey.IsAdmin,
	})
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.AuthService.ClearSession(ctx)
	util.Success(ctx, nil)
}
