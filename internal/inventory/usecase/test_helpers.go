package usecase

import (
	"context"

	"banquetpro/internal/inventory/repository"
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

// Mock inventory repository with overridable behavior per test.
type mockRepo struct {
	listFunc   func(opt repository.ListItemsOptions) ([]model.InventoryItem, error)
	getFunc    func(id int64) (model.InventoryItem, error)
	createFunc func(opt repository.CreateItemOptions) (model.InventoryItem, error)
	updateFunc func(id int64, opt repository.UpdateItemOptions) (model.InventoryItem, error)
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.InventoryItem, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepo) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return model.InventoryItem{ID: id}, nil
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.InventoryItem, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.InventoryItem{ID: 1, Name: opt.Name}, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, id int64, opt repository.UpdateItemOptions) (model.InventoryItem, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	return model.InventoryItem{ID: id, Name: opt.Name}, nil
}
