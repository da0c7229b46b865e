package inventory

import "context"

// UseCase defines the business logic interface for the inventory domain.
type UseCase interface {
	// List returns inventory items with derived stock health, optionally
	// filtered by category and low-stock status.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Get returns a single item with derived stock health.
	Get(ctx context.Context, id int64) (ItemView, error)

	// Create validates the stock invariants and stores a new item.
	Create(ctx context.Context, input CreateItemInput) (ItemView, error)

	// Update validates the stock invariants and replaces an item's fields.
	Update(ctx context.Context, id int64, input UpdateItemInput) (ItemView, error)

	// Restock adds a positive quantity to an item's current stock and
	// stamps the restock time.
	Restock(ctx context.Context, id int64, input RestockInput) (ItemView, error)
}
