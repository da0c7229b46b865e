package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	members := rg.Group("/staff")
	{
		members.GET("", h.List)
		members.GET("/:id", h.Detail)
		members.POST("", mw.RateLimit(), h.Create)
		members.PUT("/:id", mw.RateLimit(), h.Update)
		members.PUT("/:id/status", mw.RateLimit(), h.UpdateStatus)
	}
}
