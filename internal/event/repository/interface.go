package repository

import (
	"context"

	"banquetpro/internal/model"
)

// Repository is the interface for event data access against the external
// store, staff assignments included.
type Repository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	GetEvent(ctx context.Context, id int64) (model.Event, error)
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	UpdateEvent(ctx context.Context, id int64, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error)
	CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.StaffAssignment, error)
}
