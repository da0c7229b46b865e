package repository

import (
	"context"

	"banquetpro/internal/model"
)

// Repository is the interface for client data access against the external
// store.
type Repository interface {
	ListClients(ctx context.Context, opt ListClientsOptions) ([]model.Client, error)
	GetClient(ctx context.Context, id int64) (model.Client, error)
	CreateClient(ctx context.Context, opt CreateClientOptions) (model.Client, error)
	UpdateClient(ctx context.Context, id int64, opt UpdateClientOptions) (model.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}
