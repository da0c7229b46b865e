package usecase

import (
	"context"

	"banquetpro/internal/model"
	"banquetpro/internal/staff/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock staff repository with overridable behavior per test.
type mockRepo struct {
	listFunc         func(opt repository.ListStaffOptions) ([]model.StaffMember, error)
	getFunc          func(id int64) (model.StaffMember, error)
	createFunc       func(opt repository.CreateStaffOptions) (model.StaffMember, error)
	updateFunc       func(id int64, opt repository.UpdateStaffOptions) (model.StaffMember, error)
	updateStatusFunc func(id int64, status model.StaffStatus) (model.StaffMember, error)
}

func (m *mockRepo) ListStaff(ctx context.Context, opt repository.ListStaffOptions) ([]model.StaffMember, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) GetStaff(ctx context.Context, id int64) (model.StaffMember, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.StaffMember{ID: id}, nil
}

func (m *mockRepo) CreateStaff(ctx context.Context, opt repository.CreateStaffOptions) (model.StaffMember, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.StaffMember{ID: 1, Name: opt.Name, Email: opt.Email, Status: opt.Status}, nil
}

func (m *mockRepo) UpdateStaff(ctx context.Context, id int64, opt repository.UpdateStaffOptions) (model.StaffMember, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	return model.StaffMember{ID: id, Name: opt.Name, Email: opt.Email, Status: opt.Status}, nil
}

func (m *mockRepo) UpdateStaffStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(id, status)
	}
	return model.StaffMember{ID: id, Status: status}, nil
}
