package usecase

import (
	"context"
	"sync"

	clientRepo "banquetpro/internal/client/repository"
	"banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/pkg/gcalendar"
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

// Mock event repository with overridable behavior per test.
type mockRepo struct {
	listFunc             func(opt repository.ListEventsOptions) ([]model.Event, error)
	getFunc              func(id int64) (model.Event, error)
	createFunc           func(opt repository.CreateEventOptions) (model.Event, error)
	updateFunc           func(id int64, opt repository.UpdateEventOptions) (model.Event, error)
	deleteFunc           func(id int64) error
	listAssignmentsFunc  func(eventID int64) ([]model.StaffAssignment, error)
	createAssignmentFunc func(opt repository.CreateAssignmentOptions) (model.StaffAssignment, error)
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Event{ID: id, Status: model.EventStatusPlanning}, nil
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Event{
		ID: 1, Name: opt.Name, ClientID: opt.ClientID, EventType: opt.EventType,
		Date: opt.Date, StartTime: opt.StartTime, EndTime: opt.EndTime,
		Venue: opt.Venue, GuestsCount: opt.GuestsCount, Budget: opt.Budget,
		Status: opt.Status, Notes: opt.Notes,
	}, nil
}

func (m *mockRepo) UpdateEvent(ctx context.Context, id int64, opt repository.UpdateEventOptions) (model.Event, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	e := model.Event{ID: id, Status: model.EventStatusPlanning}
	if opt.Status != nil {
		e.Status = *opt.Status
	}
	return e, nil
}

func (m *mockRepo) DeleteEvent(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockRepo) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	if m.listAssignmentsFunc != nil {
		return m.listAssignmentsFunc(eventID)
	}
	return nil, nil
}

func (m *mockRepo) CreateAssignment(ctx context.Context, opt repository.CreateAssignmentOptions) (model.StaffAssignment, error) {
	if m.createAssignmentFunc != nil {
		return m.createAssignmentFunc(opt)
	}
	return model.StaffAssignment{ID: 1, EventID: opt.EventID, StaffID: opt.StaffID}, nil
}

// Mock client repository; only GetClient matters to the event domain.
type mockClientRepo struct {
	getFunc func(id int64) (model.Client, error)
}

func (m *mockClientRepo) ListClients(ctx context.Context, opt clientRepo.ListClientsOptions) ([]model.Client, error) {
	return nil, nil
}

func (m *mockClientRepo) GetClient(ctx context.Context, id int64) (model.Client, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.Client{ID: id}, nil
}

func (m *mockClientRepo) CreateClient(ctx context.Context, opt clientRepo.CreateClientOptions) (model.Client, error) {
	return model.Client{}, nil
}

func (m *mockClientRepo) UpdateClient(ctx context.Context, id int64, opt clientRepo.UpdateClientOptions) (model.Client, error) {
	return model.Client{ID: id}, nil
}

func (m *mockClientRepo) DeleteClient(ctx context.Context, id int64) error { return nil }

// Mock staff repository; listing and gets feed availability and assignment
// checks.
type mockStaffRepo struct {
	listFunc func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error)
	getFunc  func(id int64) (model.StaffMember, error)
}

func (m *mockStaffRepo) ListStaff(ctx context.Context, opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockStaffRepo) GetStaff(ctx context.Context, id int64) (model.StaffMember, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.StaffMember{ID: id}, nil
}

func (m *mockStaffRepo) CreateStaff(ctx context.Context, opt staffRepo.CreateStaffOptions) (model.StaffMember, error) {
	return model.StaffMember{}, nil
}

func (m *mockStaffRepo) UpdateStaff(ctx context.Context, id int64, opt staffRepo.UpdateStaffOptions) (model.StaffMember, error) {
	return model.StaffMember{ID: id}, nil
}

func (m *mockStaffRepo) UpdateStaffStatus(ctx context.Context, id int64, status model.StaffStatus) (model.StaffMember, error) {
	return model.StaffMember{ID: id, Status: status}, nil
}

// Mock inventory repository; only listing feeds availability checks.
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
	return model.InventoryItem{ID: id}, nil
}

func (m *mockInventoryRepo) CreateItem(ctx context.Context, opt inventoryRepo.CreateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{}, nil
}

func (m *mockInventoryRepo) UpdateItem(ctx context.Context, id int64, opt inventoryRepo.UpdateItemOptions) (model.InventoryItem, error) {
	return model.InventoryItem{ID: id}, nil
}

// Mock calendar recording sync calls; done is closed once a call lands so
// tests can wait on the background goroutine.
type mockCalendar struct {
	mu       sync.Mutex
	reqs     []gcalendar.CreateEventRequest
	done     chan struct{}
	once     sync.Once
	fail     bool
	listFunc func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

func newMockCalendar() *mockCalendar {
	return &mockCalendar{done: make(chan struct{})}
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	m.reqs = append(m.reqs, req)
	m.mu.Unlock()
	m.once.Do(func() { close(m.done) })
	if m.fail {
		return nil, context.DeadlineExceeded
	}
	return &gcalendar.Event{ID: "cal-1", Summary: req.Summary}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(req)
	}
	return nil, nil
}

func (m *mockCalendar) calls() []gcalendar.CreateEventRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]gcalendar.CreateEventRequest, len(m.reqs))
	copy(out, m.reqs)
	return out
}
