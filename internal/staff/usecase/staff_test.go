package usecase

import (
	"context"
	"errors"
	"testing"

	"banquetpro/internal/model"
	"banquetpro/internal/staff"
	"banquetpro/internal/staff/repository"
	"banquetpro/internal/store"
)

func TestCreateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Status To Available", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{})
		got, err := uc.Create(ctx, staff.CreateStaffInput{Name: "Jordan Reyes", Email: "jordan@banquet.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != model.StaffStatusAvailable {
			t.Errorf("expected available, got %s", got.Status)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListStaffOptions) ([]model.StaffMember, error) {
			return []model.StaffMember{{ID: 2, Email: opt.Email}}, nil
		}}
		uc := New(&mockLogger{}, repo)

		_, err := uc.Create(ctx, staff.CreateStaffInput{Name: "Jordan Reyes", Email: "jordan@banquet.example"})
		if !errors.Is(err, staff.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Invalid Status", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(ctx, staff.CreateStaffInput{
			Name: "Jordan Reyes", Email: "jordan@banquet.example", Status: "retired",
		})
		if !errors.Is(err, staff.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestUpdateStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("Email Conflict", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int64) (model.StaffMember, error) {
				return model.StaffMember{ID: id, Name: "Jordan", Email: "old@banquet.example"}, nil
			},
			listFunc: func(opt repository.ListStaffOptions) ([]model.StaffMember, error) {
				return []model.StaffMember{{ID: 99, Email: opt.Email}}, nil
			},
		}
		uc := New(&mockLogger{}, repo)

		_, err := uc.Update(ctx, 1, staff.UpdateStaffInput{Name: "Jordan", Email: "new@banquet.example"})
		if !errors.Is(err, staff.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("Keeps Current Status When Empty", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int64) (model.StaffMember, error) {
				return model.StaffMember{ID: id, Name: "Jordan", Email: "jordan@banquet.example", Status: model.StaffStatusBusy}, nil
			},
			updateFunc: func(id int64, opt repository.UpdateStaffOptions) (model.StaffMember, error) {
				return model.StaffMember{ID: id, Status: opt.Status}, nil
			},
		}
		uc := New(&mockLogger{}, repo)

		got, err := uc.Update(ctx, 1, staff.UpdateStaffInput{Name: "Jordan", Email: "jordan@banquet.example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != model.StaffStatusBusy {
			t.Errorf("expected busy, got %s", got.Status)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(id int64) (model.StaffMember, error) {
			return model.StaffMember{}, store.ErrNotFound
		}}
		uc := New(&mockLogger{}, repo)

		_, err := uc.Update(ctx, 9, staff.UpdateStaffInput{Name: "X", Email: "x@y.z"})
		if !errors.Is(err, staff.ErrStaffNotFound) {
			t.Errorf("expected ErrStaffNotFound, got %v", err)
		}
	})
}

func TestUpdateStaffStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Transition", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{})
		got, err := uc.UpdateStatus(ctx, 3, model.StaffStatusOnEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != model.StaffStatusOnEvent {
			t.Errorf("expected on_event, got %s", got.Status)
		}
	})

	t.Run("Unknown Status Rejected Before Store Call", func(t *testing.T) {
		called := false
		repo := &mockRepo{updateStatusFunc: func(id int64, status model.StaffStatus) (model.StaffMember, error) {
			called = true
			return model.StaffMember{}, nil
		}}
		uc := New(&mockLogger{}, repo)

		if _, err := uc.UpdateStatus(ctx, 3, "sabbatical"); !errors.Is(err, staff.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if called {
			t.Error("store must not be called for unknown statuses")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &mockRepo{updateStatusFunc: func(id int64, status model.StaffStatus) (model.StaffMember, error) {
			return model.StaffMember{}, store.ErrNotFound
		}}
		uc := New(&mockLogger{}, repo)

		if _, err := uc.UpdateStatus(ctx, 9, model.StaffStatusBusy); !errors.Is(err, staff.ErrStaffNotFound) {
			t.Errorf("expected ErrStaffNotFound, got %v", err)
		}
	})
}

func TestListStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("Status Filter Forwarded", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListStaffOptions) ([]model.StaffMember, error) {
			if opt.Status != model.StaffStatusAvailable {
				t.Errorf("expected available filter, got %s", opt.Status)
			}
			return []model.StaffMember{{ID: 1, Status: model.StaffStatusAvailable}}, nil
		}}
		uc := New(&mockLogger{}, repo)

		out, err := uc.List(ctx, staff.ListInput{Status: model.StaffStatusAvailable})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 {
			t.Errorf("expected 1 member, got %d", out.Count)
		}
	})

	t.Run("Unknown Filter Rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{})
		if _, err := uc.List(ctx, staff.ListInput{Status: "ghost"}); !errors.Is(err, staff.ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}
