package repository

import (
	"context"

	"banquetpro/internal/model"
)

// Repository is the interface for staff data access against the external
// store.
type Repository interface {
	ListStaff(ctx context.Context, opt ListStaffOptions) ([]model.StaffMember, error)
	GetStaff(ctx context.Context, id int64) (model.StaffMember, error)
	CreateStaff(ctx context.Context, opt CreateStaffOptions) (model.StaffMember, error)
	UpdateStaff(ctx context.Context, id int64, opt UpdateStaffOptions) (model.StaffMember, error)
	UpdateStaffStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error)
}
