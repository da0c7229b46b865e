package storeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"banquetpro/internal/model"
	"banquetpro/internal/staff/repository"
	"banquetpro/internal/store"
	pkgLog "banquetpro/pkg/log"
)

const basePath = "/api/v1/staff"

type implRepository struct {
	client *store.Client
	l      pkgLog.Logger
}

// New creates a staff repository backed by the external data store.
func New(client *store.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListStaff(ctx context.Context, opt repository.ListStaffOptions) ([]model.StaffMember, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(opt.Skip))
	q.Set("limit", strconv.Itoa(limit))
	if opt.Status != "" {
		q.Set("status_filter", string(opt.Status))
	}
	if opt.Email != "" {
		q.Set("email", opt.Email)
	}

	var members []model.StaffMember
	if err := r.client.Get(ctx, basePath, q, &members); err != nil {
		r.l.Errorf(ctx, "staff repository: failed to list staff: %v", err)
		return nil, err
	}
	return members, nil
}

func (r *implRepository) GetStaff(ctx context.Context, id int64) (model.StaffMember, error) {
	var m model.StaffMember
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &m); err != nil {
		return model.StaffMember{}, err
	}
	return m, nil
}

func (r *implRepository) CreateStaff(ctx context.Context, opt repository.CreateStaffOptions) (model.StaffMember, error) {
	var m model.StaffMember
	if err := r.client.Post(ctx, basePath, staffBody(opt.Name, opt.Email, opt.Phone, opt.Role, opt.Specialty, opt.HourlyRate, opt.Status, opt.Rating), &m); err != nil {
		r.l.Errorf(ctx, "staff repository: failed to create staff member: %v", err)
		return model.StaffMember{}, err
	}
	return m, nil
}

func (r *implRepository) UpdateStaff(ctx context.Context, id int64, opt repository.UpdateStaffOptions) (model.StaffMember, error) {
	var m model.StaffMember
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), staffBody(opt.Name, opt.Email, opt.Phone, opt.Role, opt.Specialty, opt.HourlyRate, opt.Status, opt.Rating), &m); err != nil {
		r.l.Errorf(ctx, "staff repository: failed to update staff member %d: %v", id, err)
		return model.StaffMember{}, err
	}
	return m, nil
}

func (r *implRepository) UpdateStaffStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error) {
	body := map[string]any{"status": status}

	var m model.StaffMember
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d/status", basePath, id), body, &m); err != nil {
		r.l.Errorf(ctx, "staff repository: failed to update status of staff member %d: %v", id, err)
		return model.StaffMember{}, err
	}
	return m, nil
}

func staffBody(name, email, phone, role, specialty string, hourlyRate float64, status model.StaffStatus, rating float64) map[string]any {
	return map[string]any{
		"name":        name,
		"email":       email,
		"phone":       phone,
		"role":        role,
		"specialty":   specialty,
		"hourly_rate": hourlyRate,
		"status":      status,
		"rating":      rating,
	}
}
