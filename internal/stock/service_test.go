package stock_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"banquetpro/internal/model"
	"banquetpro/internal/stock"
)

func TestStatus(t *testing.T) {
	svc := stock.New()

	t.Run("Out Of Stock", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 0, MinimumStock: 5}
		if got := svc.Status(item); got != model.StockStatusOutOfStock {
			t.Errorf("expected out_of_stock, got %s", got)
		}
	})

	t.Run("Zero Minimum Still Out Of Stock", func(t *testing.T) {
		// The zero check must win over the threshold check.
		item := model.InventoryItem{CurrentStock: 0, MinimumStock: 0}
		if got := svc.Status(item); got != model.StockStatusOutOfStock {
			t.Errorf("expected out_of_stock for empty shelf with zero minimum, got %s", got)
		}
	})

	t.Run("Critical At Threshold", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 5, MinimumStock: 5}
		if got := svc.Status(item); got != model.StockStatusCritical {
			t.Errorf("expected critical, got %s", got)
		}
	})

	t.Run("Critical Below Threshold", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 3, MinimumStock: 5}
		if got := svc.Status(item); got != model.StockStatusCritical {
			t.Errorf("expected critical, got %s", got)
		}
	})

	t.Run("Normal Above Threshold", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 6, MinimumStock: 5}
		if got := svc.Status(item); got != model.StockStatusNormal {
			t.Errorf("expected normal, got %s", got)
		}
	})
}

func TestFillPercentage(t *testing.T) {
	svc := stock.New()

	t.Run("Half Full", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 5, MaximumStock: 10}
		if got := svc.FillPercentage(item); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("Capped At 100", func(t *testing.T) {
		// Restock past capacity is allowed, so the gauge must cap.
		item := model.InventoryItem{CurrentStock: 15, MaximumStock: 10}
		if got := svc.FillPercentage(item); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("Zero Maximum Is Finite", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 5, MaximumStock: 0}
		got := svc.FillPercentage(item)
		if got != got || got < 0 || got > 100 { // NaN check plus range
			t.Fatalf("expected finite percentage in [0,100], got %v", got)
		}
		if got != 100 {
			t.Errorf("expected 100 with stock on hand against floored denominator, got %v", got)
		}
	})

	t.Run("Zero Maximum Zero Stock", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 0, MaximumStock: 0}
		if got := svc.FillPercentage(item); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestLowStockAndCriticalCount(t *testing.T) {
	svc := stock.New()

	items := []model.InventoryItem{
		{ID: 1, CurrentStock: 0, MinimumStock: 5, MaximumStock: 10, UnitCost: 2},
		{ID: 2, CurrentStock: 3, MinimumStock: 5, MaximumStock: 10, UnitCost: 4},
		{ID: 3, CurrentStock: 9, MinimumStock: 5, MaximumStock: 10, UnitCost: 1},
	}

	t.Run("Low Stock Items", func(t *testing.T) {
		low := svc.LowStockItems(items)
		if len(low) != 2 {
			t.Fatalf("expected 2 low-stock items, got %d", len(low))
		}
		if low[0].ID != 1 || low[1].ID != 2 {
			t.Errorf("input order not preserved: %+v", low)
		}
	})

	t.Run("Critical Count Matches Low Stock Length", func(t *testing.T) {
		if got, want := svc.CriticalCount(items), len(svc.LowStockItems(items)); got != want {
			t.Errorf("CriticalCount=%d but len(LowStockItems)=%d", got, want)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if got := svc.CriticalCount(nil); got != 0 {
			t.Errorf("expected 0 on empty input, got %d", got)
		}
		if got := svc.LowStockItems(nil); len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})
}

func TestTotalValue(t *testing.T) {
	svc := stock.New()

	t.Run("Empty Is Zero", func(t *testing.T) {
		if got := svc.TotalValue(nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Missing Unit Cost Contributes Zero", func(t *testing.T) {
		items := []model.InventoryItem{
			{CurrentStock: 0, MinimumStock: 5, MaximumStock: 10, UnitCost: 2},
			{CurrentStock: 3, MinimumStock: 5, MaximumStock: 10, UnitCost: 4},
			{CurrentStock: 100, MinimumStock: 1, MaximumStock: 200}, // no cost
		}
		if got := svc.TotalValue(items); got != 12 {
			t.Errorf("expected 12, got %v", got)
		}
	})
}

func TestRestock(t *testing.T) {
	svc := stock.New()
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Adds Quantity", func(t *testing.T) {
		item := model.InventoryItem{ID: 1, CurrentStock: 3, MinimumStock: 5, MaximumStock: 10}
		got, err := svc.Restock(item, 4, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStock != 7 {
			t.Errorf("expected stock 7, got %d", got.CurrentStock)
		}
		if got.LastRestocked != now.Format(time.RFC3339) {
			t.Errorf("expected LastRestocked %q, got %q", now.Format(time.RFC3339), got.LastRestocked)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		item := model.InventoryItem{ID: 1, CurrentStock: 3}
		if _, err := svc.Restock(item, 4, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 3 || item.LastRestocked != "" {
			t.Errorf("input item mutated: %+v", item)
		}
	})

	t.Run("No Clamp At Maximum", func(t *testing.T) {
		item := model.InventoryItem{CurrentStock: 9, MaximumStock: 10}
		got, err := svc.Restock(item, 5, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStock != 14 {
			t.Errorf("expected passthrough to 14, got %d", got.CurrentStock)
		}
	})

	t.Run("Zero Quantity Rejected", func(t *testing.T) {
		_, err := svc.Restock(model.InventoryItem{CurrentStock: 3}, 0, now)
		if !errors.Is(err, stock.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("Negative Quantity Rejected", func(t *testing.T) {
		_, err := svc.Restock(model.InventoryItem{CurrentStock: 3}, -2, now)
		if !errors.Is(err, stock.ErrInvalidQuantity) {
			t.Errorf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestIdempotence(t *testing.T) {
	svc := stock.New()

	items := []model.InventoryItem{
		{ID: 1, CurrentStock: 0, MinimumStock: 5, MaximumStock: 10, UnitCost: 2},
		{ID: 2, CurrentStock: 3, MinimumStock: 5, MaximumStock: 10, UnitCost: 4},
	}

	first := svc.LowStockItems(items)
	second := svc.LowStockItems(items)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("LowStockItems not idempotent: %v vs %v", first, second)
	}

	if svc.TotalValue(items) != svc.TotalValue(items) {
		t.Error("TotalValue not idempotent")
	}
	if svc.CriticalCount(items) != svc.CriticalCount(items) {
		t.Error("CriticalCount not idempotent")
	}
}
