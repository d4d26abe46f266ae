package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-catalog/internal/api"
	"github.com/pageza/recipe-catalog/internal/middleware"
	"github.com/pageza/recipe-catalog/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(recipes service.IRecipeService, opts api.HandlerOptions) *gin.Engine {
	router := gin.New()

	// Request id first so the logger and error pages can see it
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())

	api.SetupAPI(router, recipes, opts)

	return router
}
