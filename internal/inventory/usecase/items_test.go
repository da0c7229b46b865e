package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"banquetpro/internal/inventory"
	"banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/stock"
	"banquetpro/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	items := []model.InventoryItem{
		{ID: 1, Name: "Tablecloths", CurrentStock: 15, MinimumStock: 20, MaximumStock: 50, UnitCost: 2},
		{ID: 2, Name: "Plates", CurrentStock: 120, MinimumStock: 50, MaximumStock: 200, UnitCost: 1},
		{ID: 3, Name: "Vases", CurrentStock: 0, MinimumStock: 5, MaximumStock: 30, UnitCost: 4},
	}

	t.Run("Derives Status Per Item", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListItemsOptions) ([]model.InventoryItem, error) {
			return items, nil
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		out, err := uc.List(ctx, inventory.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 3 {
			t.Fatalf("expected 3 items, got %d", out.Count)
		}
		if out.Items[0].Status != model.StockStatusCritical {
			t.Errorf("expected critical, got %s", out.Items[0].Status)
		}
		if out.Items[1].Status != model.StockStatusNormal {
			t.Errorf("expected normal, got %s", out.Items[1].Status)
		}
		if out.Items[2].Status != model.StockStatusOutOfStock {
			t.Errorf("expected out_of_stock, got %s", out.Items[2].Status)
		}
		if out.Items[0].FillPercentage != 30 {
			t.Errorf("expected fill 30, got %v", out.Items[0].FillPercentage)
		}
	})

	t.Run("Low Stock Filter", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListItemsOptions) ([]model.InventoryItem, error) {
			return items, nil
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		out, err := uc.List(ctx, inventory.ListInput{LowStock: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 {
			t.Errorf("expected 2 low-stock items, got %d", out.Count)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := &mockRepo{listFunc: func(opt repository.ListItemsOptions) ([]model.InventoryItem, error) {
			return nil, errors.New("store down")
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		if _, err := uc.List(ctx, inventory.ListInput{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found Translated", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(id int64) (model.InventoryItem, error) {
			return model.InventoryItem{}, store.ErrNotFound
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		_, err := uc.Get(ctx, 9)
		if !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := New(&mockLogger{}, &mockRepo{}, stock.New(), fixedNow)

	valid := inventory.CreateItemInput{
		Name: "Napkins", Category: "linen",
		CurrentStock: 10, MinimumStock: 5, MaximumStock: 100, UnitCost: 0.5,
	}

	t.Run("Valid Input", func(t *testing.T) {
		got, err := uc.Create(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Napkins" {
			t.Errorf("unexpected item: %+v", got)
		}
	})

	t.Run("Missing Name", func(t *testing.T) {
		input := valid
		input.Name = ""
		if _, err := uc.Create(ctx, input); !errors.Is(err, inventory.ErrNameRequired) {
			t.Errorf("expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("Minimum Above Maximum", func(t *testing.T) {
		input := valid
		input.MinimumStock = 200
		if _, err := uc.Create(ctx, input); !errors.Is(err, inventory.ErrStockBounds) {
			t.Errorf("expected ErrStockBounds, got %v", err)
		}
	})

	t.Run("Current Above Maximum", func(t *testing.T) {
		input := valid
		input.CurrentStock = 300
		if _, err := uc.Create(ctx, input); !errors.Is(err, inventory.ErrStockBounds) {
			t.Errorf("expected ErrStockBounds, got %v", err)
		}
	})

	t.Run("Zero Maximum", func(t *testing.T) {
		input := valid
		input.MaximumStock = 0
		input.CurrentStock = 0
		input.MinimumStock = 0
		if _, err := uc.Create(ctx, input); !errors.Is(err, inventory.ErrStockBounds) {
			t.Errorf("expected ErrStockBounds, got %v", err)
		}
	})

	t.Run("Negative Unit Cost", func(t *testing.T) {
		input := valid
		input.UnitCost = -1
		if _, err := uc.Create(ctx, input); !errors.Is(err, inventory.ErrStockBounds) {
			t.Errorf("expected ErrStockBounds, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found Translated", func(t *testing.T) {
		repo := &mockRepo{updateFunc: func(id int64, opt repository.UpdateItemOptions) (model.InventoryItem, error) {
			return model.InventoryItem{}, store.ErrNotFound
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		input := inventory.UpdateItemInput{
			Name: "Napkins", CurrentStock: 1, MinimumStock: 1, MaximumStock: 10,
		}
		if _, err := uc.Update(ctx, 9, input); !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Bounds Checked Before Store Call", func(t *testing.T) {
		called := false
		repo := &mockRepo{updateFunc: func(id int64, opt repository.UpdateItemOptions) (model.InventoryItem, error) {
			called = true
			return model.InventoryItem{}, nil
		}}
		uc := New(&mockLogger{}, repo, stock.New(), fixedNow)

		input := inventory.UpdateItemInput{Name: "X", CurrentStock: 9, MinimumStock: 5, MaximumStock: 3}
		if _, err := uc.Update(ctx, 1, input); !errors.Is(err, inventory.ErrStockBounds) {
			t.Fatalf("expected ErrStockBounds, got %v", err)
		}
		if called {
			t.Error("store must not be called on invalid input")
		}
	})
}
