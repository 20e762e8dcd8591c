// Package main is the entry point for the Fin Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fin-ledger/backend/config"
	"github.com/fin-ledger/backend/internal/application/usecase/auth"
	"github.com/fin-ledger/backend/internal/application/usecase/category"
	"github.com/fin-ledger/backend/internal/application/usecase/statistics"
	"github.com/fin-ledger/backend/internal/application/usecase/transaction"
	"github.com/fin-ledger/backend/internal/infra/db"
	"github.com/fin-ledger/backend/internal/infra/server/router"
	"github.com/fin-ledger/backend/internal/integration/adapters"
	"github.com/fin-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/fin-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/fin-ledger/backend/internal/integration/persistence"
	"github.com/fin-ledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Fin Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		// Seed the default category set on first start
		if err := persistence.SeedCategories(context.Background(), database.DB()); err != nil {
			slog.Error("Failed to seed default categories", "error", err)
			os.Exit(1)
		}

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var categoryController *controller.CategoryController
	var transactionController *controller.TransactionController
	var statisticsController *controller.StatisticsController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		categoryRepo := persistence.NewCategoryRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenExpiry,
			cfg.JWT.RefreshTokenExpiry,
			tokenRepo,
		)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

		// Create category use cases
		listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
		createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
		checkCategoryUseCase := category.NewCheckCategoryUseCase(categoryRepo)

		// Create transaction use cases
		createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
		listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

		// Create statistics use case
		getSummaryUseCase := statistics.NewGetSummaryUseCase(transactionRepo)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
		)
		categoryController = controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
			checkCategoryUseCase,
		)
		transactionController = controller.NewTransactionController(
			createTransactionUseCase,
			listTransactionsUseCase,
		)
		statisticsController = controller.NewStatisticsController(getSummaryUseCase)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Ledger systems initialized successfully")
	} else {
		slog.Warn("Ledger systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		statisticsController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
