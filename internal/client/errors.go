package client

import "errors"

// Domain-specific errors for the client package.
var (
	ErrClientNotFound = errors.New("client not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrHasEvents      = errors.New("cannot delete client with associated events")
	ErrNameRequired   = errors.New("client name is required")
	ErrEmailRequired  = errors.New("client email is required")
)
