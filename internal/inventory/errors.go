package inventory

import "errors"

// Domain-specific errors for the inventory package.
var (
	ErrItemNotFound = errors.New("inventory item not found")
	ErrNameRequired = errors.New("item name is required")
	ErrStockBounds  = errors.New("stock bounds violated")
)
