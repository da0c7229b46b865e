package client

import (
	"context"

	"banquetpro/internal/model"
)

// UseCase defines the business logic interface for the client domain.
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, id int64) (model.Client, error)

	// Create rejects emails already registered to another client.
	Create(ctx context.Context, input CreateClientInput) (model.Client, error)

	// Update rejects email changes that collide with another client.
	Update(ctx context.Context, id int64, input UpdateClientInput) (model.Client, error)

	// Delete is rejected while events still reference the client.
	Delete(ctx context.Context, id int64) error
}
