package controller

import (
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SiteConfigController struct {
	ConfigService *service.SiteConfigService
}

func NewSiteConfigController(configService *service.SiteConfigService) *SiteConfigController {
	return &SiteConfigController{ConfigService: configService}
}

type OverlayRequest struct {
	ImageURL   string `json:"imageUrl"`
	DurationMs *int   `json:"durationMs" binding:"required"`
}

// GetOverlay godoc
// @Summary Player overlay settings
// @Tags config
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/config/overlay [get]
func (c *SiteConfigController) GetOverlay(ctx *gin.Context) {
	settings, err := c.ConfigService.GetOverlaySettings()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// UpdateOverlay godoc
// @Summary Write player overlay settings
// @Tags admin
// @Accept json
// @Produce json
// @Param body body OverlayRequest true "overlay settings"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/config/overlay [post]
func (c *SiteConfigController) UpdateOverlay(ctx *gin.Context) {
	var req OverlayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "durationMs is required")
		return
	}

	if *req.DurationMs < 0 {
		util.BadRequest(ctx, "durationMs must be >= 0")
		return
	}

	if err := c.ConfigService.SetOverlaySettings(req.ImageURL, *req.DurationMs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
