package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/cookie"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxCallerKey = "caller"

var (
	errMissingToken = errs.Define("access token required", errs.ErrUnauthorized)
	errInvalidToken = errs.Define("invalid or expired token", errs.ErrUnauthorized)
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	authorizer     usecase.Authorizer
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, authorizer usecase.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		authorizer:     authorizer,
	}
}

// RequireAuth verifies the token and resolves the caller once per request.
// Handlers read the result with GetCaller.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = cookie.GetAccessToken(c)
		}
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		data, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Invalid or expired token", nil)
			return
		}

		caller, err := m.authorizer.ResolveCaller(c.Request.Context(), data.ID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve caller", nil)
			return
		}

		SetCaller(c, caller)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetCaller(c *gin.Context, caller usecase.Caller) {
	c.Set(ctxCallerKey, caller)
}

func GetCaller(c *gin.Context) (usecase.Caller, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return usecase.Caller{}, false
	}
	caller, ok := v.(usecase.Caller)
	return caller, ok
}
