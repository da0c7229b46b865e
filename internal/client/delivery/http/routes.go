package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.GET("/:id", h.Detail)
		clients.POST("", mw.RateLimit(), h.Create)
		clients.PUT("/:id", mw.RateLimit(), h.Update)
		clients.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
