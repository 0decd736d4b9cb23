package main

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/config"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/handler"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/middleware"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/ml"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/model"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/pkg/logger"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/service"
	"github.com/VanshWAGH-CS/Finance-Hub-Deloyed/templates"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	artifactFiles := map[string]string{
		string(model.KindHouse): cfg.Models.HouseArtifact,
		string(model.KindLoan):  cfg.Models.LoanArtifact,
	}

	// Optionally refresh artifacts from object storage before loading.
	// Sync failures are not fatal, the local copies keep serving.
	if cfg.Artifacts.Enabled {
		syncArtifacts(cfg, artifactFiles)
	}

	// Load models. A missing artifact leaves that model offline but the
	// rest of the site keeps serving.
	registry := ml.NewRegistry(cfg.Models.Dir, artifactFiles)

	// Initialize prediction store with config
	service.InitPredictionStore(&cfg.Store)
	store := service.GetPredictionStore()

	predictSvc := service.NewPredictService(registry, newPredictionCache(cfg), store)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(registry)
	predictHandler := handler.NewPredictHandler(predictSvc)
	calculatorHandler := handler.NewCalculatorHandler()
	reportHandler := handler.NewReportHandler(store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(cacheControlMiddleware())               // Cache control
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	router.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	// Pages
	router.GET("/", pageHandler.Landing)
	router.GET("/house", pageHandler.House)
	router.GET("/loan", pageHandler.Loan)
	router.GET("/privacy", pageHandler.Privacy)
	router.GET("/terms", pageHandler.Terms)
	router.GET("/disclaimer", pageHandler.Disclaimer)

	// Predictions and reports
	router.POST("/predict-house", predictHandler.PredictHouse)
	router.POST("/predict-loan", predictHandler.PredictLoan)
	router.GET("/report/:id", reportHandler.Download)

	// Affordability calculator
	router.GET("/calculator", calculatorHandler.Show)
	router.POST("/calculator", calculatorHandler.Compute)

	// Health check endpoint
	router.GET("/health", pageHandler.Health)

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// syncArtifacts pulls the configured artifact files from object storage
func syncArtifacts(cfg *config.Config, artifactFiles map[string]string) {
	artifactSvc, err := service.NewArtifactService(&cfg.Artifacts)
	if err != nil {
		slog.Warn("artifact sync unavailable", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	files := make([]string, 0, len(artifactFiles))
	for _, file := range artifactFiles {
		files = append(files, file)
	}
	if err := artifactSvc.SyncModels(ctx, cfg.Models.Dir, files); err != nil {
		slog.Warn("artifact sync failed, serving local copies", "error", err)
	}
}

// newPredictionCache selects redis when configured, otherwise an
// in-process cache
func newPredictionCache(cfg *config.Config) service.PredictionCache {
	if !cfg.Cache.Enabled {
		return service.NewMemoryCache()
	}

	cache := service.NewRedisCache(&cfg.Cache)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		slog.Warn("redis unreachable, using in-process cache", "addr", cfg.Cache.RedisAddr, "error", err)
		return service.NewMemoryCache()
	}

	slog.Info("prediction cache connected", "addr", cfg.Cache.RedisAddr)
	return cache
}

// cacheControlMiddleware keeps analysis responses out of shared caches
func cacheControlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Predictions and reports carry per-request results
		if c.Request.Method == http.MethodPost ||
			strings.HasPrefix(path, "/predict") ||
			strings.HasPrefix(path, "/report") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
			return
		}

		// Form and compliance pages may be cached briefly
		c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
		c.Next()
	}
}
