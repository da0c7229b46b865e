package model

// EventStatus is the lifecycle status of a banquet event.
// Transitions are driven by the caller; no internal state machine
// validates them.
type EventStatus string

const (
	EventStatusPlanning      EventStatus = "planning"
	EventStatusConfirmed     EventStatus = "confirmed"
	EventStatusInPreparation EventStatus = "in_preparation"
	EventStatusCompleted     EventStatus = "completed"
	EventStatusCancelled     EventStatus = "cancelled"
)

// ValidEventStatus reports whether s is one of the known event statuses.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusPlanning, EventStatusConfirmed, EventStatusInPreparation,
		EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// Event represents a banquet event as stored in the external data store.
// Temporal fields are ISO-8601 strings straight from the wire; they are
// parsed where needed and malformed values are tolerated by aggregation.
type Event struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	ClientID    int64       `json:"client_id"`
	EventType   string      `json:"event_type"`
	Date        string      `json:"date"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	Venue       string      `json:"venue"`
	GuestsCount int         `json:"guests_count"`
	Budget      float64     `json:"budget"`
	Status      EventStatus `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// StaffAssignment links a staff member to an event.
type StaffAssignment struct {
	ID         int64  `json:"id"`
	EventID    int64  `json:"event_id"`
	StaffID    int64  `json:"staff_id"`
	AssignedAt string `json:"assigned_at,omitempty"`
	Notes      string `json:"notes,omitempty"`
}
