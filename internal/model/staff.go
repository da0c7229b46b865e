package model

// StaffStatus is the current availability of a staff member.
type StaffStatus string

const (
	StaffStatusAvailable   StaffStatus = "available"
	StaffStatusBusy        StaffStatus = "busy"
	StaffStatusOnEvent     StaffStatus = "on_event"
	StaffStatusUnavailable StaffStatus = "unavailable"
)

// ValidStaffStatus reports whether s is one of the known staff statuses.
func ValidStaffStatus(s StaffStatus) bool {
	switch s {
	case StaffStatusAvailable, StaffStatusBusy, StaffStatusOnEvent, StaffStatusUnavailable:
		return true
	}
	return false
}

// StaffMember represents an employee of the banquet business.
// Rating is independent of TotalEvents: a member with zero events keeps
// whatever rating the store holds for them.
type StaffMember struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Role        string      `json:"role"`
	Specialty   string      `json:"specialty,omitempty"`
	HourlyRate  float64     `json:"hourly_rate,omitempty"`
	Status      StaffStatus `json:"status"`
	Rating      float64     `json:"rating"`
	TotalEvents int         `json:"total_events"`
	CreatedAt   string      `json:"created_at,omitempty"`
}
