package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/inventory"
	"banquetpro/internal/inventory/repository"
	"banquetpro/internal/store"
)

// Restock fetches an item, applies the pure restock rule, and persists the
// result. The arithmetic (and the no-clamp behavior) lives in the stock
// service; this method only orchestrates.
func (uc *implUseCase) Restock(ctx context.Context, id int64, input inventory.RestockInput) (inventory.ItemView, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return inventory.ItemView{}, inventory.ErrItemNotFound
		}
		return inventory.ItemView{}, fmt.Errorf("failed to load item for restock: %w", err)
	}

	restocked, err := uc.stock.Restock(item, input.Quantity, uc.now())
	if err != nil {
		return inventory.ItemView{}, err
	}

	saved, err := uc.repo.UpdateItem(ctx, id, repository.UpdateItemOptions{
		Name:          restocked.Name,
		Category:      restocked.Category,
		CurrentStock:  restocked.CurrentStock,
		MinimumStock:  restocked.MinimumStock,
		MaximumStock:  restocked.MaximumStock,
		UnitCost:      restocked.UnitCost,
		Location:      restocked.Location,
		Supplier:      restocked.Supplier,
		LastRestocked: restocked.LastRestocked,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory usecase: failed to persist restock of item %d: %v", id, err)
		return inventory.ItemView{}, fmt.Errorf("failed to persist restock: %w", err)
	}

	uc.l.Infof(ctx, "inventory usecase: restocked item %d by %d (now %d)", id, input.Quantity, saved.CurrentStock)
	return uc.view(saved), nil
}
