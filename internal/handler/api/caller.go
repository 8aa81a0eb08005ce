package api

import (
	"net/http"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errCallerMissing = errs.Define("caller missing from request context", errs.ErrUnauthorized)

// callerFrom aborts with 401 when the route was mounted without RequireAuth.
func callerFrom(c *gin.Context) (usecase.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errCallerMissing, "Unauthorized", nil)
	}
	return caller, ok
}

func bindFailed(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request: "+err.Error(), nil)
}
