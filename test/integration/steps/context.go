// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/fin-ledger/backend/internal/application/usecase/auth"
	"github.com/fin-ledger/backend/internal/application/usecase/category"
	"github.com/fin-ledger/backend/internal/application/usecase/statistics"
	"github.com/fin-ledger/backend/internal/application/usecase/transaction"
	"github.com/fin-ledger/backend/internal/infra/server/router"
	"github.com/fin-ledger/backend/internal/integration/adapters"
	"github.com/fin-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/fin-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/fin-ledger/backend/internal/integration/persistence"
	"github.com/fin-ledger/backend/internal/integration/persistence/model"
	"github.com/fin-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	client       *http.Client
	db           *mock.Db
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	accessToken      string
	refreshToken     string
	prevRefreshToken string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers hooks and all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.db != nil {
				_ = tc.db.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerFixtureSteps(ctx)
}

// newTestContext wires the full application against a fresh in-memory store
// and exposes it through an httptest server.
func newTestContext() (*TestContext, error) {
	db, err := mock.NewDb([]any{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	})
	if err != nil {
		return nil, err
	}

	userRepo := persistence.NewUserRepository(db.DbConn)
	tokenRepo := persistence.NewTokenRepository(db.DbConn)
	categoryRepo := persistence.NewCategoryRepository(db.DbConn)
	transactionRepo := persistence.NewTransactionRepository(db.DbConn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
	)
	categoryController := controller.NewCategoryController(
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewCheckCategoryUseCase(categoryRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
	)
	statisticsController := controller.NewStatisticsController(
		statistics.NewGetSummaryUseCase(transactionRepo),
	)
	healthController := controller.NewHealthController(func() bool { return true })

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		statisticsController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)
	engine := r.Setup("test")

	return &TestContext{
		server:         httptest.NewServer(engine),
		client:         &http.Client{Timeout: 10 * time.Second},
		db:             db,
		requestHeaders: make(map[string]string),
	}, nil
}
