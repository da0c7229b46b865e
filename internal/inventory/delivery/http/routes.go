package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Mutations
// pass through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/inventory")
	{
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.POST("", mw.RateLimit(), h.Create)
		items.PUT("/:id", mw.RateLimit(), h.Update)
		items.PUT("/:id/restock", mw.RateLimit(), h.Restock)
	}
}
