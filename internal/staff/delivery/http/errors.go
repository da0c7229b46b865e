package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"banquetpro/internal/staff"
	"banquetpro/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

func staffID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// respondErr translates use-case errors into HTTP responses.
func (h *handler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, staff.ErrStaffNotFound):
		response.NotFound(c, err)
	case errors.Is(err, staff.ErrEmailTaken),
		errors.Is(err, staff.ErrInvalidStatus),
		errors.Is(err, staff.ErrNameRequired),
		errors.Is(err, staff.ErrEmailRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
