package controller

import (
	"errors"
	"strconv"

	"encanto_backend/internal/model"
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminLessonController struct {
	LessonService *service.LessonService
}

func NewAdminLessonController(lessonService *service.LessonService) *AdminLessonController {
	return &AdminLessonController{LessonService: lessonService}
}

type CreateLessonRequest struct {
	Title          string `json:"title" binding:"required"`
	VideoID        string `json:"video_id" binding:"required"`
	CoverImage     string `json:"cover_image"`
	SealDifficulty string `json:"seal_difficulty"`
	SealTimeValue  string `json:"seal_time_value"`
	SealTimeColor  string `json:"seal_time_color"`
	Description    string `json:"description"`
	Materials      string `json:"materials"`
	Steps          string `json:"steps"`
	OrderNum       int    `json:"order_num" binding:"required"`
	Points         int    `json:"points"`
	MinWatchTime   int    `json:"min_watch_time"`
}

type UpdateLessonRequest struct {
	ID             uint    `json:"id" binding:"required"`
	Title          *string `json:"title"`
	VideoID        *string `json:"video_id"`
	CoverImage     *string `json:"cover_image"`
	SealDifficulty *string `json:"seal_difficulty"`
	SealTimeValue  *string `json:"seal_time_value"`
	SealTimeColor  *string `json:"seal_time_color"`
	Description    *string `json:"description"`
	Materials      *string `json:"materials"`
	Steps          *string `json:"steps"`
	OrderNum       *int    `json:"order_num"`
	Points         *int    `json:"points"`
	MinWatchTime   *int    `json:"min_watch_time"`
}

type DeleteLessonRequest struct {
	ID uint `json:"id" binding:"required"`
}

// Get godoc
// @Summary List lessons, or fetch one with ?id=
// @Tags admin
// @Produce json
// @Param id query int false "lesson id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/lessons [get]
func (c *AdminLessonController) Get(ctx *gin.Context) {
	idParam := ctx.Query("id")
	if idParam != "" {
		id, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid id")
			return
		}

		lesson, err := c.LessonService.Get(uint(id))
		if err != nil {
			if errors.Is(err, util.ErrLessonNotFound) {
				util.NotFound(ctx, "lesson not found")
			} else {
				util.LogInternalError(ctx, err)
			}
			return
		}
		util.Success(ctx, lesson)
		return
	}

	lessons, err := c.LessonService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// Create godoc
// @Summary Create a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Param body body CreateLessonRequest true "lesson fields"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/lessons [post]
func (c *AdminLessonController) Create(ctx *gin.Context) {
	var req CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "title, video_id and order_num are required")
		return
	}

	lesson := &model.Lesson{
		Title:          req.Title,
		VideoID:        req.VideoID,
		CoverImage:     req.CoverImage,
		SealDifficulty: req.SealDifficulty,
		SealTimeValue:  req.SealTimeValue,
		SealTimeColor:  req.SealTimeColor,
		Description:    req.Description,
		Materials:      req.Materials,
		Steps:          req.Steps,
		OrderNum:       req.OrderNum,
		Points:         req.Points,
		MinWatchTime:   req.MinWatchTime,
	}

	if err := c.LessonService.Create(lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// Update godoc
// @Summary Patch a lesson; only the provided fields change
// @Tags admin
// @Accept json
// @Produce json
// @Param body body UpdateLessonRequest true "fields to change"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/lessons [patch]
func (c *AdminLessonController) Update(ctx *gin.Context) {
	var req UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "id is required")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.VideoID != nil {
		updates["video_id"] = *req.VideoID
	}
	if req.CoverImage != nil {
		updates["cover_image"] = *req.CoverImage
	}
	if req.SealDifficulty != nil {
		updates["seal_difficulty"] = *req.SealDifficulty
	}
	if req.SealTimeValue != nil {
		updates["seal_time_value"] = *req.SealTimeValue
	}
	if req.SealTimeColor != nil {
		updates["seal_time_color"] = *req.SealTimeColor
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Materials != nil {
		updates["materials"] = *req.Materials
	}
	if req.Steps != nil {
		updates["steps"] = *req.Steps
	}
	if req.OrderNum != nil {
		updates["order_num"] = *req.OrderNum
	}
	if req.Points != nil {
		updates["points"] = *req.Points
	}
	if req.MinWatchTime != nil {
		updates["min_watch_time"] = *req.MinWatchTime
	}

	if err := c.LessonService.Update(req.ID, updates); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Param body body DeleteLessonRequest true "lesson id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/lessons [delete]
func (c *AdminLessonController) Delete(ctx *gin.Context) {
	var req DeleteLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "id is required")
		return
	}

	if err := c.LessonService.Delete(req.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
