package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrVenueTaken      = errors.New("venue is not available on that date")
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrAlreadyAssigned = errors.New("staff member already assigned to this event")
	ErrInvalidStatus   = errors.New("invalid event status")
	ErrNameRequired    = errors.New("event name is required")
)
