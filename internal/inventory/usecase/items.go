package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/inventory"
	"banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
)

// List returns inventory items enriched with derived stock health.
// The low-stock filter is evaluated here with the stock rules, never
// pushed to the store.
func (uc *implUseCase) List(ctx context.Context, input inventory.ListInput) (inventory.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repository.ListItemsOptions{
		Category: input.Category,
		Skip:     input.Skip,
		Limit:    input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory usecase: failed to list items: %v", err)
		return inventory.ListOutput{}, fmt.Errorf("failed to list inventory: %w", err)
	}

	if input.LowStock {
		items = uc.stock.LowStockItems(items)
	}

	views := make([]inventory.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, uc.view(item))
	}

	return inventory.ListOutput{Items: views, Count: len(views)}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (inventory.ItemView, error) {
	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return inventory.ItemView{}, inventory.ErrItemNotFound
		}
		return inventory.ItemView{}, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return uc.view(item), nil
}

func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.ItemView, error) {
	if err := validateStockBounds(input.Name, input.CurrentStock, input.MinimumStock, input.MaximumStock, input.UnitCost); err != nil {
		return inventory.ItemView{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repository.CreateItemOptions{
		Name:         input.Name,
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		MaximumStock: input.MaximumStock,
		UnitCost:     input.UnitCost,
		Location:     input.Location,
		Supplier:     input.Supplier,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory usecase: failed to create item: %v", err)
		return inventory.ItemView{}, fmt.Errorf("failed to create inventory item: %w", err)
	}

	uc.l.Infof(ctx, "inventory usecase: created item %d (%s)", item.ID, item.Name)
	return uc.view(item), nil
}

func (uc *implUseCase) Update(ctx context.Context, id int64, input inventory.UpdateItemInput) (inventory.ItemView, error) {
	if err := validateStockBounds(input.Name, input.CurrentStock, input.MinimumStock, input.MaximumStock, input.UnitCost); err != nil {
		return inventory.ItemView{}, err
	}

	item, err := uc.repo.UpdateItem(ctx, id, repository.UpdateItemOptions{
		Name:         input.Name,
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		MinimumStock: input.MinimumStock,
		MaximumStock: input.MaximumStock,
		UnitCost:     input.UnitCost,
		Location:     input.Location,
		Supplier:     input.Supplier,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return inventory.ItemView{}, inventory.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "inventory usecase: failed to update item %d: %v", id, err)
		return inventory.ItemView{}, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return uc.view(item), nil
}

// validateStockBounds enforces the edge invariants: min <= max,
// current <= max, max >= 1, non-negative numbers. Violations inside data
// already stored are not healed here.
func validateStockBounds(name string, current, min, max int, unitCost float64) error {
	if name == "" {
		return inventory.ErrNameRequired
	}
	if current < 0 || min < 0 {
		return fmt.Errorf("%w: stock counts must be non-negative", inventory.ErrStockBounds)
	}
	if max < 1 {
		return fmt.Errorf("%w: maximum_stock must be at least 1", inventory.ErrStockBounds)
	}
	if min > max {
		return fmt.Errorf("%w: minimum_stock exceeds maximum_stock", inventory.ErrStockBounds)
	}
	if current > max {
		return fmt.Errorf("%w: current_stock exceeds maximum_stock", inventory.ErrStockBounds)
	}
	if unitCost < 0 {
		return fmt.Errorf("%w: unit_cost must be non-negative", inventory.ErrStockBounds)
	}
	return nil
}

func (uc *implUseCase) view(item model.InventoryItem) inventory.ItemView {
	return inventory.ItemView{
		InventoryItem:  item,
		Status:         uc.stock.Status(item),
		FillPercentage: uc.stock.FillPercentage(item),
	}
}
