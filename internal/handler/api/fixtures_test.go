//go:build unit

package api_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"car-rental/internal/handler/middleware"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

var (
	adminCaller    = usecase.Caller{UserID: 1, IsAdmin: true}
	customerCaller = usecase.Caller{UserID: 2, IsAdmin: false}
)

// fakeAuth stands in for RequireAuth: the bearer token picks the caller.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "Bearer " + adminToken:
		middleware.SetCaller(c, adminCaller)
	case "Bearer " + customerToken:
		middleware.SetCaller(c, customerCaller)
	}
	c.Next()
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeAuth)
	return r
}

type envelope[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func performQuery(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

