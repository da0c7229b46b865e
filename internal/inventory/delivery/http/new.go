package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/inventory"
	pkgLog "banquetpro/pkg/log"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Restock(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc inventory.UseCase
}

// New creates a new HTTP handler for the inventory domain.
func New(l pkgLog.Logger, uc inventory.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
