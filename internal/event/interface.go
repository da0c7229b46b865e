package event

import (
	"context"

	"banquetpro/internal/model"
	"banquetpro/pkg/gcalendar"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, id int64) (model.Event, error)

	// Create requires an existing client and a venue free of other
	// non-cancelled events on the same date. On success a calendar entry is
	// synced best-effort.
	Create(ctx context.Context, input CreateEventInput) (model.Event, error)

	// Update applies a partial update. A transition to confirmed triggers a
	// best-effort calendar sync.
	Update(ctx context.Context, id int64, input UpdateEventInput) (model.Event, error)

	Delete(ctx context.Context, id int64) error

	// Availability computes the venue/staff/inventory snapshot for an event
	// from live data.
	Availability(ctx context.Context, id int64) (Availability, error)

	// AssignStaff links an existing staff member to the event; duplicates
	// are rejected.
	AssignStaff(ctx context.Context, eventID int64, input AssignStaffInput) (model.StaffAssignment, error)
	ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error)
}

// Calendar is the slice of the calendar client the event domain needs.
// Satisfied by *gcalendar.Client; nil disables sync and the availability
// cross-check.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
