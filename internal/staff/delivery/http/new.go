package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/staff"
	pkgLog "banquetpro/pkg/log"
)

// Handler is the public interface for the staff HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc staff.UseCase
}

// New creates a new HTTP handler for the staff domain.
func New(l pkgLog.Logger, uc staff.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
