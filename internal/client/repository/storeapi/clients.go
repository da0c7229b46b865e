package storeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"banquetpro/internal/client/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
	pkgLog "banquetpro/pkg/log"
)

const basePath = "/api/v1/clients"

type implRepository struct {
	client *store.Client
	l      pkgLog.Logger
}

// New creates a client repository backed by the external data store.
func New(client *store.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListClients(ctx context.Context, opt repository.ListClientsOptions) ([]model.Client, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(opt.Skip))
	q.Set("limit", strconv.Itoa(limit))
	if opt.Email != "" {
		q.Set("email", opt.Email)
	}

	var clients []model.Client
	if err := r.client.Get(ctx, basePath, q, &clients); err != nil {
		r.l.Errorf(ctx, "client repository: failed to list clients: %v", err)
		return nil, err
	}
	return clients, nil
}

func (r *implRepository) GetClient(ctx context.Context, id int64) (model.Client, error) {
	var c model.Client
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &c); err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (r *implRepository) CreateClient(ctx context.Context, opt repository.CreateClientOptions) (model.Client, error) {
	body := map[string]any{
		"name":         opt.Name,
		"email":        opt.Email,
		"phone":        opt.Phone,
		"address":      opt.Address,
		"company":      opt.Company,
		"is_corporate": opt.IsCorporate,
	}

	var c model.Client
	if err := r.client.Post(ctx, basePath, body, &c); err != nil {
		r.l.Errorf(ctx, "client repository: failed to create client: %v", err)
		return model.Client{}, err
	}
	return c, nil
}

func (r *implRepository) UpdateClient(ctx context.Context, id int64, opt repository.UpdateClientOptions) (model.Client, error) {
	body := map[string]any{
		"name":         opt.Name,
		"email":        opt.Email,
		"phone":        opt.Phone,
		"address":      opt.Address,
		"company":      opt.Company,
		"is_corporate": opt.IsCorporate,
	}

	var c model.Client
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), body, &c); err != nil {
		r.l.Errorf(ctx, "client repository: failed to update client %d: %v", id, err)
		return model.Client{}, err
	}
	return c, nil
}

func (r *implRepository) DeleteClient(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id)); err != nil {
		r.l.Errorf(ctx, "client repository: failed to delete client %d: %v", id, err)
		return err
	}
	return nil
}
