package repository

import "banquetpro/internal/model"

// ListEventsOptions holds the parameters for listing events. ClientID and
// Venue/Date are exact-match filters used by referential checks.
type ListEventsOptions struct {
	Status   model.EventStatus
	ClientID int64
	Venue    string
	Date     string
	Skip     int
	Limit    int // default 100
}

// CreateEventOptions holds the fields for creating an event.
type CreateEventOptions struct {
	Name        string
	ClientID    int64
	EventType   string
	Date        string
	StartTime   string
	EndTime     string
	Venue       string
	GuestsCount int
	Budget      float64
	Status      model.EventStatus
	Notes       string
}

// UpdateEventOptions holds a partial event update. Nil fields are left
// untouched by the store.
type UpdateEventOptions struct {
	Name        *string
	ClientID    *int64
	EventType   *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Venue       *string
	GuestsCount *int
	Budget      *float64
	Status      *model.EventStatus
	Notes       *string
}

// CreateAssignmentOptions links a staff member to an event.
type CreateAssignmentOptions struct {
	EventID int64
	StaffID int64
	Notes   string
}
