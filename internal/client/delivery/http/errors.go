package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"banquetpro/internal/client"
	"banquetpro/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

func clientID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// respondErr translates use-case errors into HTTP responses.
func (h *handler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrClientNotFound):
		response.NotFound(c, err)
	case errors.Is(err, client.ErrEmailTaken),
		errors.Is(err, client.ErrHasEvents),
		errors.Is(err, client.ErrNameRequired),
		errors.Is(err, client.ErrEmailRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
