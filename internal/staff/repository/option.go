package repository

import "banquetpro/internal/model"

// ListStaffOptions holds the parameters for listing staff members. Email is
// an exact-match filter used for uniqueness checks.
type ListStaffOptions struct {
	Status model.StaffStatus
	Email  string
	Skip   int
	Limit  int // default 100
}

// CreateStaffOptions holds the fields for creating a staff member.
type CreateStaffOptions struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	Specialty  string
	HourlyRate float64
	Status     model.StaffStatus
	Rating     float64
}

// UpdateStaffOptions holds the full replacement fields for a staff update.
type UpdateStaffOptions struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	Specialty  string
	HourlyRate float64
	Status     model.StaffStatus
	Rating     float64
}
