package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"banquetpro/internal/model"
)

// cachedRepository is a read-through cache in front of a Repository.
// Entity reads dominate the dashboard workload and the store is a network
// hop away, so gets and lists are cached briefly; any write purges both
// caches.
type cachedRepository struct {
	next  Repository
	items *expirable.LRU[int64, model.InventoryItem]
	lists *expirable.LRU[string, []model.InventoryItem]
}

// NewCached wraps next with an expirable LRU cache.
func NewCached(next Repository, ttl time.Duration) Repository {
	return &cachedRepository{
		next:  next,
		items: expirable.NewLRU[int64, model.InventoryItem](1024, nil, ttl),
		lists: expirable.NewLRU[string, []model.InventoryItem](64, nil, ttl),
	}
}

func (r *cachedRepository) ListItems(ctx context.Context, opt ListItemsOptions) ([]model.InventoryItem, error) {
	key := fmt.Sprintf("%s|%d|%d", opt.Category, opt.Skip, opt.Limit)
	if items, ok := r.lists.Get(key); ok {
		return items, nil
	}

	items, err := r.next.ListItems(ctx, opt)
	if err != nil {
		return nil, err
	}
	r.lists.Add(key, items)
	return items, nil
}

func (r *cachedRepository) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	if item, ok := r.items.Get(id); ok {
		return item, nil
	}

	item, err := r.next.GetItem(ctx, id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	r.items.Add(id, item)
	return item, nil
}

func (r *cachedRepository) CreateItem(ctx context.Context, opt CreateItemOptions) (model.InventoryItem, error) {
	item, err := r.next.CreateItem(ctx, opt)
	if err != nil {
		return model.InventoryItem{}, err
	}
	r.purge()
	return item, nil
}

func (r *cachedRepository) UpdateItem(ctx context.Context, id int64, opt UpdateItemOptions) (model.InventoryItem, error) {
	item, err := r.next.UpdateItem(ctx, id, opt)
	if err != nil {
		return model.InventoryItem{}, err
	}
	r.purge()
	return item, nil
}

func (r *cachedRepository) purge() {
	r.items.Purge()
	r.lists.Purge()
}
