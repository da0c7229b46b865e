package event

import "banquetpro/internal/model"

// ListInput filters the event listing.
type ListInput struct {
	Status model.EventStatus
	Skip   int
	Limit  int
}

// ListOutput is the result of an event listing.
type ListOutput struct {
	Events []model.Event `json:"events"`
	Count  int           `json:"count"`
}

// CreateEventInput is the boundary-validated payload for creating an event.
type CreateEventInput struct {
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

// UpdateEventInput is a partial event update; nil fields keep their stored
// value.
type UpdateEventInput struct {
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

// AssignStaffInput links a staff member to an event.
type AssignStaffInput struct {
	StaffID int64
	Notes   string
}

// Availability is the resource snapshot for an event, computed from live
// data.
type Availability struct {
	EventID             int64    `json:"event_id"`
	VenueAvailable      bool     `json:"venue_available"`
	StaffAvailable      bool     `json:"staff_available"`
	InventorySufficient bool     `json:"inventory_sufficient"`
	Recommendations     []string `json:"recommendations"`
}
