package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:id", h.Detail)
		events.POST("", mw.RateLimit(), h.Create)
		events.PUT("/:id", mw.RateLimit(), h.Update)
		events.DELETE("/:id", mw.RateLimit(), h.Delete)
		events.GET("/:id/availability", h.Availability)
		events.GET("/:id/assignments", h.ListAssignments)
		events.POST("/:id/assignments", mw.RateLimit(), h.AssignStaff)
	}
}
