package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"car-rental/internal/handler/api"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Role        *api.RoleHandler
	User        *api.UserHandler
	Car         *api.CarHandler
	Booking     *api.BookingHandler
	Transaction *api.TransactionHandler
}

type Middlewares struct {
	fx.In

	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, registry *prometheus.Registry, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, registry, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := engine.Group("/auth")
	addRoutes(auth, []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimiter.Limit()}},
	})

	admin := engine.Group("/admin")
	admin.Use(mw.Auth.RequireAuth())
	{
		v1 := admin.Group("/api/v1")
		addRoutes(v1, []route{
			{Method: http.MethodPost, Path: "/create/role", Handler: h.Role.Create},
			{Method: http.MethodGet, Path: "/get/roles", Handler: h.Role.List},
			{Method: http.MethodPut, Path: "/update/role", Handler: h.Role.Update},
			{Method: http.MethodDelete, Path: "/delete/role", Handler: h.Role.Delete},

			{Method: http.MethodPost, Path: "/create/user", Handler: h.User.Create},
			{Method: http.MethodDelete, Path: "/delete/user", Handler: h.User.Delete},

			{Method: http.MethodPost, Path: "/create/car", Handler: h.Car.Create},
			{Method: http.MethodGet, Path: "/get/cars", Handler: h.Car.List},
			{Method: http.MethodPut, Path: "/update/car", Handler: h.Car.Update},
			{Method: http.MethodDelete, Path: "/delete/car", Handler: h.Car.Delete},

			{Method: http.MethodPost, Path: "/create/booking", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/get/bookings", Handler: h.Booking.List},
			{Method: http.MethodPut, Path: "/update/booking", Handler: h.Booking.Update},
			{Method: http.MethodDelete, Path: "/delete/booking", Handler: h.Booking.Delete},

			{Method: http.MethodPost, Path: "/create/transaction", Handler: h.Transaction.Create},
			{Method: http.MethodGet, Path: "/get/transactions", Handler: h.Transaction.List},
		})

		// user listing and update live outside /api
		legacy := admin.Group("/v1")
		addRoutes(legacy, []route{
			{Method: http.MethodGet, Path: "/get/users", Handler: h.User.List},
			{Method: http.MethodPut, Path: "/update/user", Handler: h.User.Update},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
