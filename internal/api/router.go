package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-compare/internal/api/handlers"
	"mortgage-compare/internal/api/middleware"
)

// NewRouter wires middleware and routes around a mortgage handler.
func NewRouter(h *handlers.MortgageHandler, logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/lenders", h.ListLenders)
		api.POST("/quote", h.Quote)
		api.POST("/compare", h.Compare)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return router
}
