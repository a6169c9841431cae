package controller

import (
	"errors"
	"strings"

	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminKeyController struct {
	KeyService *service.KeyService
}

func NewAdminKeyController(keyService *service.KeyService) *AdminKeyController {
	return &AdminKeyController{KeyService: keyService}
}

// CreateKeyRequest either names the key or asks for a generated one.
type CreateKeyRequest struct {
	Key       string `json:"key"`
	OwnerName string `json:"ownerName"`
	Random    bool   `json:"random"`
}

type KeyIDRequest struct {
	ID uint `json:"id" binding:"required"`
}

// List godoc
// @Summary List access keys, newest first
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/keys [get]
func (c *AdminKeyController) List(ctx *gin.Context) {
	keys, err := c.KeyService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, keys)
}

// Create godoc
// @Summary Create an access key
// @Description With random=true the key value is generated server-side
// @Tags admin
// @Accept json
// @Produce json
// @Param body body CreateKeyRequest true "key or random flag"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/keys [post]
func (c *AdminKeyController) Create(ctx *gin.Context) {
	var req CreateKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var key string
	switch {
	case req.Random:
		key = c.KeyService.GenerateRandomKey()
	case strings.TrimSpace(req.Key) != "":
		key = req.Key
	default:
		util.BadRequest(ctx, "key or random flag is required")
		return
	}

	accessKey, err := c.KeyService.Create(key, req.OwnerName, false)
	if err != nil {
		if errors.Is(err, util.ErrKeyExists) {
			util.Conflict(ctx, "access key already exists")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, accessKey)
}

// Toggle godoc
// @Summary Flip a key's active flag
// @Tags admin
// @Accept json
// @Produce json
// @Param body body KeyIDRequest true "key id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/keys [patch]
func (c *AdminKeyController) Toggle(ctx *gin.Context) {
	var req KeyIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "id is required")
		return
	}

	if err := c.KeyService.ToggleActive(req.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete an access key
// @Description The bootstrap admin key is refused
// @Tags admin
// @Accept json
// @Produce json
// @Param body body KeyIDRequest true "key id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/keys [delete]
func (c *AdminKeyController) Delete(ctx *gin.Context) {
	var req KeyIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "id is required")
		return
	}

	if err := c.KeyService.Delete(req.ID); err != nil {
		if errors.Is(err, util.ErrProtectedKey) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
