package controller

import (
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// List godoc
// @Summary List lessons in display order
// @Tags lessons
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	lessons, err := c.LessonService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}
