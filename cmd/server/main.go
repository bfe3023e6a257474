package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/artifacts"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/config"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/handlers"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/history"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/middleware"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/observability"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/pipeline"
	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/services"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load model artifacts once; they are shared read-only for the process
	// lifetime and a missing artifact is fatal unless fallback is enabled.
	arts, err := artifacts.Load(cfg.Model)
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	if arts.Fallback {
		log.Printf("no trained classifier found, running with heuristic fallback")
	} else {
		log.Printf("model artifacts loaded from %s", cfg.Model.Dir)
	}

	metrics := observability.NewMetrics()

	cache := services.NewCacheService(cfg.Redis)
	defer cache.Close()

	histories := history.NewManager(cfg.History.Limit)
	pipe := pipeline.New(arts, metrics)

	predictionHandler := handlers.NewPredictionHandler(pipe, histories, cache, metrics)
	historyHandler := handlers.NewHistoryHandler(histories, cache)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Traffic Severity Prediction API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.EnsureSession())
	{
		api.POST("/predictions", predictionHandler.Predict)
		api.GET("/severity-classes", handlers.GetSeverityClasses)
		api.GET("/history", historyHandler.GetHistory)
		api.GET("/history/stats", historyHandler.GetStats)
		api.GET("/history/export", historyHandler.ExportCSV)
	}

	router.GET("/ws/predictions", handlers.LivePredictions(cache))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
