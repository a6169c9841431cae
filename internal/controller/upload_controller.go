package controller

import (
	"path/filepath"
	"strings"

	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

var allowedCoverExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// UploadCover godoc
// @Summary Upload a lesson cover image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param cover formData file true "cover image"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/upload/cover [post]
func (c *UploadController) UploadCover(ctx *gin.Context) {
	file, err := ctx.FormFile("cover")
	if err != nil {
		util.BadRequest(ctx, "cover file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCoverExtensions[ext] {
		util.BadRequest(ctx, "unsupported file type")
		return
	}

	url, err := c.StorageService.UploadCover(ctx.Request.Context(), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}
