package repository

import (
	"context"

	"banquetpro/internal/model"
)

// Repository is the interface for inventory data access. The backing store
// is external; implementations live under storeapi and may be wrapped by
// the caching decorator in this package.
type Repository interface {
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.InventoryItem, error)
	GetItem(ctx context.Context, id int64) (model.InventoryItem, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.InventoryItem, error)
	UpdateItem(ctx context.Context, id int64, opt UpdateItemOptions) (model.InventoryItem, error)
}
