package controller

import (
	"errors"
	"strconv"

	"encanto_backend/internal/middleware"
	"encanto_backend/internal/service"
	"encanto_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	LessonService   *service.LessonService
}

func NewProgressController(progressService *service.ProgressService, lessonService *service.LessonService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		LessonService:   lessonService,
	}
}

// ProgressAction discriminates the progress mutation variants.
type ProgressAction string

const (
	ActionUpdateWatchTime ProgressAction = "updateWatchTime"
	ActionMarkCompleted   ProgressAction = "markCompleted"
	ActionToggleFavorite  ProgressAction = "toggleFavorite"
	ActionSaveNotes       ProgressAction = "saveNotes"
)

// ProgressRequest is the tagged update request; Action selects the variant
// and the optional fields belong to it.
type ProgressRequest struct {
	LessonID         uint           `json:"lessonId" binding:"required"`
	Action           ProgressAction `json:"action" binding:"required"`
	WatchTimeSeconds *int           `json:"watchTimeSeconds"`
	Notes            *string        `json:"notes"`
}

// Get godoc
// @Summary Lesson progress or dashboard
// @Description With lessonId returns that lesson's progress plus totals; without it returns the dashboard payload
// @Tags progress
// @Produce json
// @Param lessonId query int false "lesson id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	session := middleware.GetSessionFromContext(ctx)

	lessonIDParam := ctx.Query("lessonId")
	if lessonIDParam == "" {
		dashboard, err := c.ProgressService.GetDashboard(session.Key)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, dashboard)
		return
	}

	lessonID, err := strconv.ParseUint(lessonIDParam, 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lessonId")
		return
	}

	progress, err := c.ProgressService.LessonProgress(session.Key, uint(lessonID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	totalPoints, err := c.ProgressService.TotalPoints(session.Key)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"progress":    progress,
		"totalPoints": totalPoints,
		"level":       service.LevelForPoints(totalPoints),
	})
}

// Update godoc
// @Summary Apply a progress action
// @Description Dispatches updateWatchTime, markCompleted, toggleFavorite or saveNotes for the session's key
// @Tags progress
// @Accept json
// @Produce json
// @Param body body ProgressRequest true "progress action"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) Update(ctx *gin.Context) {
	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session := middleware.GetSessionFromContext(ctx)

	switch req.Action {
	case ActionUpdateWatchTime:
		c.handleUpdateWatchTime(ctx, session.Key, &req)
	case ActionMarkCompleted:
		c.handleMarkCompleted(ctx, session.Key, &req)
	case ActionToggleFavorite:
		c.handleToggleFavorite(ctx, session.Key, &req)
	case ActionSaveNotes:
		c.handleSaveNotes(ctx, session.Key, &req)
	default:
		util.BadRequest(ctx, "unknown action")
	}
}

func (c *ProgressController) handleUpdateWatchTime(ctx *gin.Context, userKey string, req *ProgressRequest) {
	if req.WatchTimeSeconds == nil {
		util.BadRequest(ctx, "watchTimeSeconds is required")
		return
	}

	if err := c.ProgressService.UpdateWatchTime(userKey, req.LessonID, *req.WatchTimeSeconds); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ProgressController) handleMarkCompleted(ctx *gin.Context, userKey string, req *ProgressRequest) {
	lesson, err := c.LessonService.Get(req.LessonID)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, "lesson not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := c.ProgressService.MarkCompleted(userKey, lesson); err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx, "progress not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

func (c *ProgressController) handleToggleFavorite(ctx *gin.Context, userKey string, req *ProgressRequest) {
	if err := c.ProgressService.ToggleFavorite(userKey, req.LessonID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ProgressController) handleSaveNotes(ctx *gin.Context, userKey string, req *ProgressRequest) {
	if req.Notes == nil {
		util.BadRequest(ctx, "notes is required")
		return
	}

	if err := c.ProgressService.SaveNotes(userKey, req.LessonID, *req.Notes); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
