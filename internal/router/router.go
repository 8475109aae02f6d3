package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooknext/backend/internal/api"
	"github.com/cooknext/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	suggestionHandler *api.SuggestionHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1, validator)
	suggestionHandler.RegisterRoutes(v1)

	return router
}
