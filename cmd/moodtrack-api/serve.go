package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/moodtrack/backend/internal/analytics"
	"github.com/moodtrack/backend/internal/config"
	"github.com/moodtrack/backend/internal/handlers"
	"github.com/moodtrack/backend/internal/logger"
	"github.com/moodtrack/backend/internal/middleware"
	"github.com/moodtrack/backend/internal/repository"
	"github.com/moodtrack/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize logging
	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting moodtrack API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path),
	)

	// Initialize storage
	moodRepo, err := repository.NewSQLiteMoodRepository(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer moodRepo.Close()

	// Initialize analytics engine
	engine := analytics.New(analytics.Config{
		UTCOffsetHours: cfg.Analytics.UTCOffsetHours,
	})

	// Initialize services
	moodService := service.NewMoodService(moodRepo, engine)
	analyticsService := service.NewAnalyticsService(moodRepo, engine)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	api.Use(middleware.UserResolution())
	{
		// Mood entry routes
		api.GET("/moods", moodHandler.GetMoods)
		api.POST("/moods", moodHandler.CreateMood)
		api.GET("/moods/:id", moodHandler.GetMood)
		api.PUT("/moods/:id", moodHandler.UpdateMood)
		api.DELETE("/moods/:id", moodHandler.DeleteMood)

		// Analytics routes
		api.GET("/analytics/summary", analyticsHandler.GetSummary)
		api.GET("/analytics/weekly", analyticsHandler.GetWeeklyPatterns)
		api.GET("/analytics/monthly", analyticsHandler.GetMonthlyTrend)
		api.GET("/analytics/daily", analyticsHandler.GetDailyPattern)
		api.GET("/analytics/hourly", analyticsHandler.GetHourlyAverages)
		api.GET("/analytics/weekly-by-month", analyticsHandler.GetWeeklyByMonth)
		api.GET("/analytics/monthly-by-year", analyticsHandler.GetMonthlyByYear)
		api.GET("/analytics/streaks", analyticsHandler.GetStreaks)
		api.GET("/analytics/correlations", analyticsHandler.GetCorrelations)
		api.GET("/analytics/comparative", analyticsHandler.GetComparative)
		api.GET("/analytics/insights", analyticsHandler.GetInsights)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
