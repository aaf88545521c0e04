package middleware

import (
	"log/slog"
	"slices"
	"time"

	"court-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers browser clients must be able to read regardless of configuration
var alwaysExposed = []string{"Location", "Retry-After", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	return cors.New(corsConfig(cfg, logger))
}

func corsConfig(cfg config.CORSConfig, logger *slog.Logger) cors.Config {
	exposed := slices.Clone(cfg.ExposeHeaders)
	for _, h := range alwaysExposed {
		if !slices.Contains(exposed, h) {
			exposed = append(exposed, h)
		}
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 12 * time.Hour
	}

	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", exposed)
	return cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(slices.Clone(cfg.AllowHeaders), requestIDHeader),
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           maxAge,
	}
}
