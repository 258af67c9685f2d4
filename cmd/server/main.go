package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"greenscore-api/internal/config"
	"greenscore-api/internal/handlers"
	"greenscore-api/internal/logging"
	"greenscore-api/internal/middleware"
	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics()

	classifierService := services.NewClassifierService()
	scoringService := services.NewScoringService()
	insightService := services.NewInsightService()
	incentiveService := services.NewIncentiveService()
	generator := services.NewTransactionGenerator()

	transactionRepo := repositories.NewTransactionRepository()
	userRepo := repositories.NewUserRepository(generator, cfg.Generator.UserCount)
	metrics.RecordGauge("generated_users", float64(userRepo.Count()), nil)

	healthHandler := handlers.NewHealthCheckHandler()
	scoreHandler := handlers.NewScoreHandler(transactionRepo, scoringService, metrics)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	insightHandler := handlers.NewInsightHandler(transactionRepo, scoringService, insightService, metrics)
	incentiveHandler := handlers.NewIncentiveHandler(transactionRepo, scoringService, incentiveService, metrics)
	classifyHandler := handlers.NewClassifyHandler(classifierService, metrics)
	categoryHandler := handlers.NewCategoryHandler(transactionRepo)
	userHandler := handlers.NewUserHandler(userRepo, scoringService, insightService, incentiveService, metrics)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/", healthHandler.APIInfo)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/score", scoreHandler.GetScore)
	api.GET("/esg-breakdown", scoreHandler.GetESGBreakdown)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.GET("/insights", insightHandler.GetInsights)
	api.GET("/incentives", incentiveHandler.GetIncentives)
	api.GET("/incentives/comparison", incentiveHandler.GetComparison)
	api.POST("/classify", classifyHandler.Classify)
	api.POST("/classify/batch", classifyHandler.ClassifyBatch)
	api.GET("/categories", categoryHandler.GetCategories)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/users/:id/transactions", userHandler.GetUserTransactions)
	api.GET("/users/:id/score", userHandler.GetUserScore)
	api.GET("/users/:id/insights", userHandler.GetUserInsights)
	api.GET("/users/:id/incentives", userHandler.GetUserIncentives)
	api.GET("/users/:id/improvements", userHandler.GetUserImprovements)

	demoTransactions := 0
	for _, user := range userRepo.GetAll() {
		demoTransactions += generator.TransactionCount(user.ID)
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("starting server",
		"addr", addr,
		"environment", cfg.Server.Environment,
		"demo_users", userRepo.Count(),
		"demo_transactions", demoTransactions,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
