package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/event"
	"banquetpro/internal/event/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
)

// AssignStaff links an existing staff member to an existing event. A staff
// member can be assigned to an event at most once.
func (uc *implUseCase) AssignStaff(ctx context.Context, eventID int64, input event.AssignStaffInput) (model.StaffAssignment, error) {
	if _, err := uc.Get(ctx, eventID); err != nil {
		return model.StaffAssignment{}, err
	}

	if _, err := uc.staff.GetStaff(ctx, input.StaffID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.StaffAssignment{}, event.ErrStaffNotFound
		}
		return model.StaffAssignment{}, fmt.Errorf("failed to check staff member: %w", err)
	}

	existing, err := uc.repo.ListAssignments(ctx, eventID)
	if err != nil {
		return model.StaffAssignment{}, fmt.Errorf("failed to list assignments: %w", err)
	}
	for _, a := range existing {
		if a.StaffID == input.StaffID {
			return model.StaffAssignment{}, event.ErrAlreadyAssigned
		}
	}

	a, err := uc.repo.CreateAssignment(ctx, repository.CreateAssignmentOptions{
		EventID: eventID,
		StaffID: input.StaffID,
		Notes:   input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event usecase: failed to assign staff %d to event %d: %v", input.StaffID, eventID, err)
		return model.StaffAssignment{}, fmt.Errorf("failed to assign staff: %w", err)
	}

	uc.l.Infof(ctx, "event usecase: staff %d assigned to event %d", input.StaffID, eventID)
	return a, nil
}

func (uc *implUseCase) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	if _, err := uc.Get(ctx, eventID); err != nil {
		return nil, err
	}

	assignments, err := uc.repo.ListAssignments(ctx, eventID)
	if err != nil {
		uc.l.Errorf(ctx, "event usecase: failed to list assignments for event %d: %v", eventID, err)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
