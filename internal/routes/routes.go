package routes

import (
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Options - необязательные части роутера
type Options struct {
	// UploadsDir раздается как /uploads. Пусто для s3: файлы отдает бакет.
	UploadsDir string
	// Metrics == nil - /metrics не регистрируется
	Metrics *metrics.Metrics
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, opts Options) {
	appHandlers.HealthHandler.RegisterRoutes(&ginRouter.RouterGroup)

	api := ginRouter.Group("/api")
	appHandlers.RegisterAPI(api)

	if opts.UploadsDir != "" {
		ginRouter.Static("/uploads", opts.UploadsDir)
		logger.Info("Serving local uploads", "route", "/uploads", "dir", opts.UploadsDir)
	}

	if opts.Metrics != nil {
		ginRouter.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
		logger.Info("Metrics route /metrics registered")
	}
}
