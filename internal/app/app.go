package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/database"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/metrics"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App - собранное приложение: БД, хранилище, сервисы
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Storage  storage.Storage
	Metrics  *metrics.Metrics
	Services *services.ServiceContainer

	uploadsDir string
}

// Bootstrap загружает конфиг, логгер и все зависимости
func Bootstrap(ctx context.Context) (*App, error) {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return New(ctx, cfg, db)
}

// New собирает приложение поверх готового соединения
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) (*App, error) {
	a := &App{Config: cfg, DB: db}

	if cfg.Metrics.Enabled {
		m, err := metrics.New(cfg.Metrics.Namespace, nil)
		if err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
		a.Metrics = m
	} else {
		logger.Debug("Metrics disabled")
	}

	store, err := storage.NewStorage(ctx, storage.Config{
		Type:         cfg.Storage.Type,
		BasePath:     cfg.Storage.BasePath,
		BaseURL:      cfg.Storage.BaseURL,
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		AccessKey:    cfg.Storage.AccessKey,
		SecretKey:    cfg.Storage.SecretKey,
		Endpoint:     cfg.Storage.Endpoint,
		UsePathStyle: cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		a.uploadsDir = local.Root()
	}
	if a.Metrics != nil {
		store = storage.WithObserver(store, a.Metrics)
	}
	a.Storage = store
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	a.Services = services.NewServiceContainer(cfg, store)
	return a, nil
}

// Prepare - миграция (по флагу), профиль и первый администратор
func (a *App) Prepare(ctx context.Context, migrate bool) error {
	if migrate {
		if err := database.AutoMigrate(a.DB); err != nil {
			return err
		}
	}

	db := a.DB.WithContext(ctx)
	if err := a.Services.ProfileService.EnsureProfile(ctx, db); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	if err := seedFirstAdmin(ctx, db, a); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}
	return nil
}

// Router - gin с middleware и всеми маршрутами
func (a *App) Router() *gin.Engine {
	if !a.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	requireAuth := middleware.AuthMiddleware(a.Services.TokenManager)
	appHandlers := handlers.NewAppHandlers(a.Services, requireAuth, a.Config.Upload.MaxSize)

	ginRouter := initializeGinRouter(a)
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Options{
		UploadsDir: a.uploadsDir,
		Metrics:    a.Metrics,
	})
	return ginRouter
}

func initializeGinRouter(a *App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(a.Config.CORS.AllowedOrigins))
	if a.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(a.Metrics))
	}
	router.Use(middleware.DBMiddleware(a.DB))
	return router
}

// Serve слушает до SIGINT/SIGTERM и корректно завершает запросы
func (a *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// Close закрывает пул соединений
func (a *App) Close() {
	sqlDB, err := a.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		logger.WithError(err).Warn("Failed to close database connection")
	}
}
