package staff

import "banquetpro/internal/model"

// ListInput filters the staff listing.
type ListInput struct {
	Status model.StaffStatus
	Skip   int
	Limit  int
}

// ListOutput is the result of a staff listing.
type ListOutput struct {
	Staff []model.StaffMember `json:"staff"`
	Count int                 `json:"count"`
}

// CreateStaffInput is the boundary-validated payload for creating a staff
// member.
type CreateStaffInput struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	Specialty  string
	HourlyRate float64
	Status     model.StaffStatus
	Rating     float64
}

// UpdateStaffInput replaces a staff member's fields.
type UpdateStaffInput struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	Specialty  string
	HourlyRate float64
	Status     model.StaffStatus
	Rating     float64
}
