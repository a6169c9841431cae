package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"encanto_backend/internal/config"
	"encanto_backend/internal/controller"
	"encanto_backend/internal/repository"
	"encanto_backend/internal/service"
	"encanto_backend/pkg/database"
	"encanto_backend/pkg/logger"
	"encanto_backend/pkg/monitoring"
	"encanto_backend/pkg/security"
	"encanto_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	key        *repository.AccessKeyRepository
	lesson     *repository.LessonRepository
	progress   *repository.ProgressRepository
	siteConfig *repository.SiteConfigRepository
}

type services struct {
	auth       *service.AuthService
	key        *service.KeyService
	lesson     *service.LessonService
	progress   *service.ProgressService
	siteConfig *service.SiteConfigService
	storage    *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	lesson      *controller.LessonController
	progress    *controller.ProgressController
	adminLesson *controller.AdminLessonController
	adminKey    *controller.AdminKeyController
	siteConfig  *controller.SiteConfigController
	upload      *controller.UploadController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in the hot-reloadable parts of a freshly read config.
// Server, database and storage settings require a restart.
func (a *App) ApplyConfig(newCfg *config.Config) {
	a.Config.Admin = newCfg.Admin
	a.Config.Session = newCfg.Session
	a.Config.RateLimit = newCfg.RateLimit

	for _, callback := range a.configCallbacks {
		callback(newCfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		key:        repository.NewAccessKeyRepository(db),
		lesson:     repository.NewLessonRepository(db),
		progress:   repository.NewProgressRepository(db),
		siteConfig: repository.NewSiteConfigRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.key = service.NewKeyService(repos.key, cfg)
	s.auth = service.NewAuthService(s.key, cfg)
	s.lesson = service.NewLessonService(repos.lesson)
	s.progress = service.NewProgressService(repos.progress, repos.lesson)
	s.siteConfig = service.NewSiteConfigService(repos.siteConfig)
	s.storage = service.NewStorageService(cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		lesson:      controller.NewLessonController(s.lesson),
		progress:    controller.NewProgressController(s.progress, s.lesson),
		adminLesson: controller.NewAdminLessonController(s.lesson),
		adminKey:    controller.NewAdminKeyController(s.key),
		siteConfig:  controller.NewSiteConfigController(s.siteConfig),
		upload:      controller.NewUploadController(s.storage),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if err := database.SeedBootstrapKey(db, cfg.Admin.BootstrapKey); err != nil {
		logger.Log.Fatal("Failed to seed bootstrap admin key", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("encanto-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
