package app

import (
	"encanto_backend/docs"
	"encanto_backend/internal/middleware"
	"encanto_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: login, lesson catalogue and the overlay pair the player
	// reads before any session exists.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/logout", c.auth.Logout)
		public.GET("/lessons", c.lesson.List)
		public.GET("/config/overlay", c.siteConfig.GetOverlay)
	}

	// Authenticated routes: every request re-validates the key behind the
	// session cookie.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.SessionMiddleware(a.services.auth))
	{
		authGroup.GET("/progress", c.progress.Get)
		authGroup.POST("/progress", c.progress.Update)
	}

	// Admin routes.
	admin := router.Group("/api/admin")
	admin.Use(middleware.SessionMiddleware(a.services.auth), middleware.AdminMiddleware())
	{
		admin.GET("/lessons", c.adminLesson.Get)
		admin.POST("/lessons", c.adminLesson.Create)
		admin.PATCH("/lessons", c.adminLesson.Update)
		admin.DELETE("/lessons", c.adminLesson.Delete)

		admin.GET("/keys", c.adminKey.List)
		admin.POST("/keys", c.adminKey.Create)
		admin.PATCH("/keys", c.adminKey.Toggle)
		admin.DELETE("/keys", c.adminKey.Delete)

		admin.POST("/config/overlay", c.siteConfig.UpdateOverlay)
		admin.POST("/upload/cover", c.upload.UploadCover)
	}
}
