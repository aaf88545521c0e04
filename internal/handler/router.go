package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Search       *api.SearchHandler
	Admin        *api.AdminHandler
}

func NewHandlers(
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	search *api.SearchHandler,
	admin *api.AdminHandler,
) Handlers {
	return Handlers{Booking: booking, Availability: availability, Search: search, Admin: admin}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireOperator()

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: operator},
		})

		resources := apiGroup.Group("/resources")
		addRoutes(resources, []route{
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Availability.Slots},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListByResource},
		})

		search := apiGroup.Group("/search")
		search.Use(limiter.Limit())
		addRoutes(search, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Search.Search},
			{Method: http.MethodGet, Path: "/autocomplete", Handler: h.Search.Autocomplete},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(operator...)
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/catalog/reindex", Handler: h.Admin.Reindex},
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
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		g.Handle(r.Method, r.Path, append(handlers, r.Handler)...)
	}
}
