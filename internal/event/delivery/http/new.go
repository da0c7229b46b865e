package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/event"
	pkgLog "banquetpro/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Availability(c *gin.Context)
	AssignStaff(c *gin.Context)
	ListAssignments(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

// New creates a new HTTP handler for the event domain.
func New(l pkgLog.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
