package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/model"
	"banquetpro/internal/staff"
	"banquetpro/internal/staff/repository"
	"banquetpro/internal/store"
)

func (uc *implUseCase) List(ctx context.Context, input staff.ListInput) (staff.ListOutput, error) {
	if input.Status != "" && !model.ValidStaffStatus(input.Status) {
		return staff.ListOutput{}, staff.ErrInvalidStatus
	}

	members, err := uc.repo.ListStaff(ctx, repository.ListStaffOptions{
		Status: input.Status,
		Skip:   input.Skip,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "staff usecase: failed to list staff: %v", err)
		return staff.ListOutput{}, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff.ListOutput{Staff: members, Count: len(members)}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (model.StaffMember, error) {
	m, err := uc.repo.GetStaff(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.StaffMember{}, staff.ErrStaffNotFound
		}
		return model.StaffMember{}, fmt.Errorf("failed to get staff member: %w", err)
	}
	return m, nil
}

func (uc *implUseCase) Create(ctx context.Context, input staff.CreateStaffInput) (model.StaffMember, error) {
	if err := validateStaff(input.Name, input.Email, input.Status); err != nil {
		return model.StaffMember{}, err
	}
	if err := uc.checkEmailFree(ctx, input.Email, 0); err != nil {
		return model.StaffMember{}, err
	}

	status := input.Status
	if status == "" {
		status = model.StaffStatusAvailable
	}

	m, err := uc.repo.CreateStaff(ctx, repository.CreateStaffOptions{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Specialty:  input.Specialty,
		HourlyRate: input.HourlyRate,
		Status:     status,
		Rating:     input.Rating,
	})
	if err != nil {
		uc.l.Errorf(ctx, "staff usecase: failed to create staff member: %v", err)
		return model.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	uc.l.Infof(ctx, "staff usecase: created staff member %d (%s)", m.ID, m.Email)
	return m, nil
}

func (uc *implUseCase) Update(ctx context.Context, id int64, input staff.UpdateStaffInput) (model.StaffMember, error) {
	if err := validateStaff(input.Name, input.Email, input.Status); err != nil {
		return model.StaffMember{}, err
	}

	current, err := uc.Get(ctx, id)
	if err != nil {
		return model.StaffMember{}, err
	}
	if input.Email != current.Email {
		if err := uc.checkEmailFree(ctx, input.Email, id); err != nil {
			return model.StaffMember{}, err
		}
	}

	status := input.Status
	if status == "" {
		status = current.Status
	}

	m, err := uc.repo.UpdateStaff(ctx, id, repository.UpdateStaffOptions{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Specialty:  input.Specialty,
		HourlyRate: input.HourlyRate,
		Status:     status,
		Rating:     input.Rating,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.StaffMember{}, staff.ErrStaffNotFound
		}
		uc.l.Errorf(ctx, "staff usecase: failed to update staff member %d: %v", id, err)
		return model.StaffMember{}, fmt.Errorf("failed to update staff member: %w", err)
	}
	return m, nil
}

func (uc *implUseCase) UpdateStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error) {
	if !model.ValidStaffStatus(status) {
		return model.StaffMember{}, staff.ErrInvalidStatus
	}

	m, err := uc.repo.UpdateStaffStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.StaffMember{}, staff.ErrStaffNotFound
		}
		uc.l.Errorf(ctx, "staff usecase: failed to update status of staff member %d: %v", id, err)
		return model.StaffMember{}, fmt.Errorf("failed to update staff status: %w", err)
	}

	uc.l.Infof(ctx, "staff usecase: staff member %d is now %s", id, status)
	return m, nil
}

func validateStaff(name, email string, status model.StaffStatus) error {
	if name == "" {
		return staff.ErrNameRequired
	}
	if email == "" {
		return staff.ErrEmailRequired
	}
	if status != "" && !model.ValidStaffStatus(status) {
		return staff.ErrInvalidStatus
	}
	return nil
}

// checkEmailFree rejects emails held by a staff member other than selfID.
func (uc *implUseCase) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	matches, err := uc.repo.ListStaff(ctx, repository.ListStaffOptions{Email: email})
	if err != nil {
		return fmt.Errorf("failed to check staff email: %w", err)
	}
	for _, m := range matches {
		if m.Email == email && m.ID != selfID {
			return staff.ErrEmailTaken
		}
	}
	return nil
}
