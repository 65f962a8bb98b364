package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hansols27/QWER-Back-end/database"
	"github.com/hansols27/QWER-Back-end/internal/config"
	"github.com/hansols27/QWER-Back-end/internal/handlers"
	"github.com/hansols27/QWER-Back-end/internal/imageprocessor"
	"github.com/hansols27/QWER-Back-end/internal/logger"
	"github.com/hansols27/QWER-Back-end/internal/middleware"
	"github.com/hansols27/QWER-Back-end/internal/repositories"
	"github.com/hansols27/QWER-Back-end/internal/routes"
	"github.com/hansols27/QWER-Back-end/internal/services"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Closing database", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter wires storage, services, handlers and middleware into a
// ready-to-serve gin engine. Split out from Run so tests can stand up
// the full router against an injected database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	albumRepo := repositories.NewAlbumRepository()
	galleryRepo := repositories.NewGalleryRepository()
	memberRepo := repositories.NewMemberRepository()
	settingsRepo := repositories.NewSettingsRepository()
	videoRepo := repositories.NewVideoRepository()
	noticeRepo := repositories.NewNoticeRepository()
	scheduleRepo := repositories.NewScheduleRepository()

	proc := imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxDimension)
	limits := services.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &services.ServiceContainer{
		AlbumService:    services.NewAlbumService(albumRepo, storageInstance, proc, limits),
		GalleryService:  services.NewGalleryService(galleryRepo, storageInstance, proc, limits),
		MemberService:   services.NewMemberService(memberRepo, storageInstance, proc, limits),
		SettingsService: services.NewSettingsService(settingsRepo, storageInstance, proc, limits),
		VideoService:    services.NewVideoService(videoRepo),
		NoticeService:   services.NewNoticeService(noticeRepo),
		ScheduleService: services.NewScheduleService(scheduleRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AlbumHandler:    handlers.NewAlbumHandler(baseHandler, sc.AlbumService),
		GalleryHandler:  handlers.NewGalleryHandler(baseHandler, sc.GalleryService),
		MemberHandler:   handlers.NewMemberHandler(baseHandler, sc.MemberService),
		SettingsHandler: handlers.NewSettingsHandler(baseHandler, sc.SettingsService),
		VideoHandler:    handlers.NewVideoHandler(baseHandler, sc.VideoService),
		NoticeHandler:   handlers.NewNoticeHandler(baseHandler, sc.NoticeService),
		ScheduleHandler: handlers.NewScheduleHandler(baseHandler, sc.ScheduleService),
	}

	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		appHandlers.FileHandler = handlers.NewFileHandler(baseHandler, local)
	}

	return appHandlers
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
