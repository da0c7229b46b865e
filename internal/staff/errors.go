package staff

import "errors"

// Domain-specific errors for the staff package.
var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidStatus = errors.New("invalid staff status")
	ErrNameRequired  = errors.New("staff name is required")
	ErrEmailRequired = errors.New("staff email is required")
)
