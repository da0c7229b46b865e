package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/analytics"
	pkgLog "banquetpro/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	Summary(c *gin.Context)
	Dashboard(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l pkgLog.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
