package stock

import (
	"time"

	"banquetpro/internal/model"
)

// Service derives stock health from inventory snapshots and computes
// restock transitions. Every method is a pure function of its inputs:
// no ambient clock, no cached status, no side effects.
type Service interface {
	// Status classifies an item: out_of_stock when the shelf is empty,
	// critical when at or below the minimum threshold, normal otherwise.
	Status(item model.InventoryItem) model.StockStatus

	// FillPercentage returns how full the item is against MaximumStock,
	// in [0, 100].
	FillPercentage(item model.InventoryItem) float64

	// LowStockItems returns the items whose status is not normal,
	// preserving input order.
	LowStockItems(items []model.InventoryItem) []model.InventoryItem

	// CriticalCount counts items whose status is not normal. Always equals
	// len(LowStockItems(items)).
	CriticalCount(items []model.InventoryItem) int

	// TotalValue sums CurrentStock * UnitCost across items. Items without
	// a unit cost contribute zero.
	TotalValue(items []model.InventoryItem) float64

	// Restock returns a copy of item with CurrentStock increased by
	// quantity and LastRestocked set to now. Fails with ErrInvalidQuantity
	// when quantity <= 0. The result is deliberately not clamped to
	// MaximumStock: the source system allows restocking past capacity.
	Restock(item model.InventoryItem, quantity int, now time.Time) (model.InventoryItem, error)
}

type service struct{}

// New creates a stock rules service.
func New() Service {
	return &service{}
}

// Status classifies stock health. The zero check runs before the threshold
// check so that an item with MinimumStock == 0 and an empty shelf reports
// out_of_stock, not critical.
func (s *service) Status(item model.InventoryItem) model.StockStatus {
	if item.CurrentStock == 0 {
		return model.StockStatusOutOfStock
	}
	if item.CurrentStock <= item.MinimumStock {
		return model.StockStatusCritical
	}
	return model.StockStatusNormal
}

// FillPercentage computes CurrentStock / MaximumStock * 100, capped at 100.
// A MaximumStock below 1 is treated as 1 so the division is always defined;
// with any stock on hand that degenerate case caps out at 100.
func (s *service) FillPercentage(item model.InventoryItem) float64 {
	max := item.MaximumStock
	if max < 1 {
		max = 1
	}

	pct := float64(item.CurrentStock) / float64(max) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

func (s *service) LowStockItems(items []model.InventoryItem) []model.InventoryItem {
	low := make([]model.InventoryItem, 0)
	for _, item := range items {
		if s.Status(item) != model.StockStatusNormal {
			low = append(low, item)
		}
	}
	return low
}

func (s *service) CriticalCount(items []model.InventoryItem) int {
	count := 0
	for _, item := range items {
		if s.Status(item) != model.StockStatusNormal {
			count++
		}
	}
	return count
}

func (s *service) TotalValue(items []model.InventoryItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.CurrentStock) * item.UnitCost
	}
	return total
}

func (s *service) Restock(item model.InventoryItem, quantity int, now time.Time) (model.InventoryItem, error) {
	if quantity <= 0 {
		return model.InventoryItem{}, ErrInvalidQuantity
	}

	restocked := item
	restocked.CurrentStock = item.CurrentStock + quantity
	restocked.LastRestocked = now.Format(time.RFC3339)
	return restocked, nil
}
