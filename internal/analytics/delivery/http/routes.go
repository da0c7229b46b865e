package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Analytics
// is read-only, so nothing here is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reports := rg.Group("/analytics")
	{
		reports.GET("/summary", h.Summary)
		reports.GET("/dashboard", h.Dashboard)
	}
}
