package storeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
	pkgLog "banquetpro/pkg/log"
)

const basePath = "/api/v1/inventory"

type implRepository struct {
	client *store.Client
	l      pkgLog.Logger
}

// New creates an inventory repository backed by the external data store.
func New(client *store.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]model.InventoryItem, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(opt.Skip))
	q.Set("limit", strconv.Itoa(limit))
	if opt.Category != "" {
		q.Set("category", opt.Category)
	}

	var items []model.InventoryItem
	if err := r.client.Get(ctx, basePath, q, &items); err != nil {
		r.l.Errorf(ctx, "inventory repository: failed to list items: %v", err)
		return nil, err
	}
	return items, nil
}

func (r *implRepository) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &item); err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.InventoryItem, error) {
	body := map[string]any{
		"name":          opt.Name,
		"category":      opt.Category,
		"current_stock": opt.CurrentStock,
		"minimum_stock": opt.MinimumStock,
		"maximum_stock": opt.MaximumStock,
		"unit_cost":     opt.UnitCost,
		"location":      opt.Location,
		"supplier":      opt.Supplier,
	}

	var item model.InventoryItem
	if err := r.client.Post(ctx, basePath, body, &item); err != nil {
		r.l.Errorf(ctx, "inventory repository: failed to create item: %v", err)
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, id int64, opt repository.UpdateItemOptions) (model.InventoryItem, error) {
	body := map[string]any{
		"name":          opt.Name,
		"category":      opt.Category,
		"current_stock": opt.CurrentStock,
		"minimum_stock": opt.MinimumStock,
		"maximum_stock": opt.MaximumStock,
		"unit_cost":     opt.UnitCost,
		"location":      opt.Location,
		"supplier":      opt.Supplier,
	}
	if opt.LastRestocked != "" {
		body["last_restocked"] = opt.LastRestocked
	}

	var item model.InventoryItem
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), body, &item); err != nil {
		r.l.Errorf(ctx, "inventory repository: failed to update item %d: %v", id, err)
		return model.InventoryItem{}, err
	}
	return item, nil
}
