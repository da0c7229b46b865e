package usecase

import (
	"context"

	eventRepo "banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	staffRepo "banquetpro/internal/staff/repository"
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

// Mock event repository; analytics only ever lists.
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
	return model.Event{}, nil
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, opt eventRepo.CreateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, id int64, opt eventRepo.UpdateEventOptions) (model.Event, error) {
	return model.Event{}, nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, id int64) error {
	return nil
}

func (m *mockEventRepo) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	return nil, nil
}

func (m *mockEventRepo) CreateAssignment(ctx context.Context, opt eventRepo.CreateAssignmentOptions) (model.StaffAssignment, error) {
	return model.StaffAssignment{}, nil
}

// Mock staff repository; analytics only ever lists.
type mockStaffRepo struct {
	listFunc func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error)
}

func (m *mockStaffRepo) ListStaff(ctx context.Context, opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockStaffRepo) GetStaff(ctx context.Context, id int64) (model.StaffMember, error) {
	return model.StaffMember{}, nil
}

func (m *mockStaffRepo) CreateStaff(ctx context.Context, opt staffRepo.CreateStaffOptions) (model.StaffMember, error) {
	return model.StaffMember{}, nil
}

func (m *mockStaffRepo) UpdateStaff(ctx context.Context, id int64, opt staffRepo.UpdateStaffOptions) (model.StaffMember, error) {
	return model.StaffMember{}, nil
}

func (m *mockStaffRepo) UpdateStaffStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error) {
	return model.StaffMember{}, nil
}

// Mock inventory repository; analytics only ever lists.
type mockInventoryRepo struct {
	listFunc func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error)
}

func (m *mockInventoryRepo) ListItems(ctx context.Context, opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockInventoryRepo) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}

func (m *mockInventoryRepo) CreateItem(ctx context.Context, opt inventoryRepo.CreateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}

func (m *mockInventoryRepo) UpdateItem(ctx context.Context, id int64, opt inventoryRepo.UpdateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}
