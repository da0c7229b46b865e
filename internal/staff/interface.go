package staff

import (
	"context"

	"banquetpro/internal/model"
)

// UseCase defines the business logic interface for the staff domain.
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, id int64) (model.StaffMember, error)

	// Create rejects emails already registered to another staff member.
	Create(ctx context.Context, input CreateStaffInput) (model.StaffMember, error)

	// Update rejects email changes that collide with another staff member.
	Update(ctx context.Context, id int64, input UpdateStaffInput) (model.StaffMember, error)

	// UpdateStatus sets only the availability status; unknown statuses are
	// rejected with ErrInvalidStatus.
	UpdateStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error)
}
