package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"banquetpro/internal/inventory"
	"banquetpro/internal/stock"
	"banquetpro/pkg/response"
)

// respondErr translates use-case errors into HTTP responses. Unknown
// errors become an opaque 500.
func (h *handler) respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		response.NotFound(c, err)
	case errors.Is(err, inventory.ErrNameRequired),
		errors.Is(err, inventory.ErrStockBounds),
		errors.Is(err, stock.ErrInvalidQuantity):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
