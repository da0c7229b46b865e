package stock

import "errors"

// Domain-specific errors for the stock package.
var (
	ErrInvalidQuantity = errors.New("restock quantity must be a positive integer")
)
