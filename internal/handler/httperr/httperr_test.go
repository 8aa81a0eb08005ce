//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Define("bad input", errs.ErrValidation), want: http.StatusBadRequest},
		{name: "not found", err: errs.Define("missing", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: errs.Define("taken", errs.ErrConflict), want: http.StatusConflict},
		{name: "forbidden", err: errs.Define("admins only", errs.ErrForbidden), want: http.StatusForbidden},
		{name: "unauthorized", err: errs.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "wrapped category survives", err: errs.Wrap(errs.Define("missing", errs.ErrNotFound), "lookup"), want: http.StatusNotFound},
		{name: "uncategorised", err: errs.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}

func TestAbortWithUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "client error keeps message", err: errs.Define("role not found", errs.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "role not found"},
		{name: "server error uses fallback", err: errs.New("pg: connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.AbortWithUsecaseError(c, tt.err, "Internal server error")

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"]["message"])
			assert.True(t, c.IsAborted())
		})
	}
}
