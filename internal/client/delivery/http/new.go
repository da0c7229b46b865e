package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/client"
	pkgLog "banquetpro/pkg/log"
)

// Handler is the public interface for the client HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc client.UseCase
}

// New creates a new HTTP handler for the client domain.
func New(l pkgLog.Logger, uc client.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
