package usecase

import (
	"context"

	"banquetpro/internal/client/repository"
	eventRepo "banquetpro/internal/event/repository"
	"banquetpro/internal/model"
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

// Mock client repository with overridable behavior per test.
type mockRepo struct {
	listFunc   func(opt repository.ListClientsOptions) ([]model.Client, error)
	getFunc    func(id int64) (model.Client, error)
	createFunc func(opt repository.CreateClientOptions) (model.Client, error)
	updateFunc func(id int64, opt repository.UpdateClientOptions) (model.Client, error)
	deleteFunc func(id int64) error
}

func (m *mockRepo) ListClients(ctx context.Context, opt repository.ListClientsOptions) ([]model.Client, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) GetClient(ctx context.Context, id int64) (model.Client, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Client{ID: id}, nil
}

func (m *mockRepo) CreateClient(ctx context.Context, opt repository.CreateClientOptions) (model.Client, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Client{ID: 1, Name: opt.Name, Email: opt.Email}, nil
}

func (m *mockRepo) UpdateClient(ctx context.Context, id int64, opt repository.UpdateClientOptions) (model.Client, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	return model.Client{ID: id, Name: opt.Name, Email: opt.Email}, nil
}

func (m *mockRepo) DeleteClient(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// Mock event repository exposing only the listing used by deletion checks.
type mockEventRepo struct {
	listFunc func(opt eventRepo.ListEventsOptions) ([]model.Event, error)
}

func (m *mockEventRepo) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockEventRepo) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	return model.Event{ID: id}, nil
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, opt eventRepo.CreateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, id int64, opt eventRepo.UpdateEventOptions) (model.Event, error) {
	return model.Event{ID: id}, nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, id int64) error { return nil }

func (m *mockEventRepo) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	return nil, nil
}

func (m *mockEventRepo) CreateAssignment(ctx context.Context, opt eventRepo.CreateAssignmentOptions) (model.StaffAssignment, error) {
	return model.StaffAssignment{}, nil
}
