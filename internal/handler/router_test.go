//go:build unit

package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/infra/metrics"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/queries"
	commandsmock "car-rental/tests/mock/commands"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubRoles map[int64]string

func (s stubRoles) RoleNameByUserID(_ context.Context, userID int64) (string, error) {
	return s[userID], nil
}

type routerFixture struct {
	engine   *gin.Engine
	jwt      *jwt.Service
	userQ    *queriesmock.MockUserQueries
	carQ     *queriesmock.MockCarQueries
	txQ      *queriesmock.MockTransactionQueries
	roleCmds *commandsmock.MockRoleCommands
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig()

	f := &routerFixture{
		engine:   gin.New(),
		jwt:      jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration),
		userQ:    queriesmock.NewMockUserQueries(ctrl),
		carQ:     queriesmock.NewMockCarQueries(ctrl),
		txQ:      queriesmock.NewMockTransactionQueries(ctrl),
		roleCmds: commandsmock.NewMockRoleCommands(ctrl),
	}

	registry := metrics.NewRegistry()
	metrics.NewMetrics(registry).ObserveConfirmation("confirmed")

	authorizer := usecase.NewAuthorizer(stubRoles{1: "admin", 2: "customer"})
	handler.NewRouter(f.engine, cfg, registry,
		handler.Handlers{
			Auth:        api.NewAuthHandler(commandsmock.NewMockAuthCommands(ctrl), cfg),
			Role:        api.NewRoleHandler(f.roleCmds, queriesmock.NewMockRoleQueries(ctrl)),
			User:        api.NewUserHandler(commandsmock.NewMockUserCommands(ctrl), f.userQ),
			Car:         api.NewCarHandler(commandsmock.NewMockCarCommands(ctrl), f.carQ),
			Booking:     api.NewBookingHandler(commandsmock.NewMockBookingCommands(ctrl), queriesmock.NewMockBookingQueries(ctrl)),
			Transaction: api.NewTransactionHandler(commandsmock.NewMockTransactionCommands(ctrl), f.txQ),
		},
		handler.Middlewares{
			Logger:      middleware.NewLogger(cfg.Log),
			Auth:        middleware.NewAuthMiddleware(usecase.NewTokenValidator(f.jwt), authorizer),
			RateLimiter: middleware.NewRateLimiter(cfg.RateLimit),
		},
	)
	return f
}

func (f *routerFixture) token(t *testing.T, userID int64) string {
	t.Helper()
	tok, err := f.jwt.GenerateToken(jwt.UserData{ID: userID, Username: "u", Email: "u@x.com", RoleID: 1})
	require.NoError(t, err)
	return tok
}

func (f *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `car_rental_booking_confirmations_total{outcome="confirmed"} 1`)
}

func TestRouter_AdminPathsRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/admin/api/v1/create/role"},
		{http.MethodGet, "/admin/api/v1/get/roles"},
		{http.MethodGet, "/admin/v1/get/users"},
		{http.MethodPut, "/admin/v1/update/user"},
		{http.MethodGet, "/admin/api/v1/get/cars"},
		{http.MethodPost, "/admin/api/v1/create/booking"},
		{http.MethodPost, "/admin/api/v1/create/transaction"},
		{http.MethodGet, "/admin/api/v1/get/transactions"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := f.do(tc.method, tc.path, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	rec := f.do(http.MethodGet, "/admin/api/v1/get/cars", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestRouter_CallerFlowsIntoHandlers(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("admin lists users on the /admin/v1 path", func(t *testing.T) {
		f.userQ.EXPECT().List(gomock.Any(), usecase.Caller{UserID: 1, IsAdmin: true}).
			Return([]queries.UserView{}, nil).Times(1)
		rec := f.do(http.MethodGet, "/admin/v1/get/users", f.token(t, 1))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer is resolved as non-admin", func(t *testing.T) {
		f.txQ.EXPECT().List(gomock.Any(), usecase.Caller{UserID: 2, IsAdmin: false}).
			Return(nil, usecase.ErrForbidden).Times(1)
		rec := f.do(http.MethodGet, "/admin/api/v1/get/transactions", f.token(t, 2))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown user resolves as non-admin", func(t *testing.T) {
		f.carQ.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)
		rec := f.do(http.MethodGet, "/admin/api/v1/get/cars", f.token(t, 42))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
