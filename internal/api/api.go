package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pageza/recipe-catalog/internal/service"
)

// SetupAPI mounts the catalog pages and the health check.
func SetupAPI(router *gin.Engine, recipes service.IRecipeService, opts HandlerOptions) {
	router.GET("/healthz", healthz(opts))

	NewRecipeHandler(recipes, opts).RegisterRoutes(router)
}

func healthz(opts HandlerOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(c.Request.Context()); err != nil {
				log.Warn().Err(err).Msg("Health check failed")
				c.String(http.StatusServiceUnavailable, "storage unavailable")
				return
			}
		}
		c.String(http.StatusOK, "ok")
	}
}
