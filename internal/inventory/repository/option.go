package repository

// ListItemsOptions holds the parameters for listing inventory items.
// Low-stock filtering is deliberately absent: that is a derived rule owned
// by the stock service, not a store query.
type ListItemsOptions struct {
	Category string
	Skip     int
	Limit    int // default 100
}

// CreateItemOptions holds the fields for creating an inventory item.
type CreateItemOptions struct {
	Name         string
	Category     string
	CurrentStock int
	MinimumStock int
	MaximumStock int
	UnitCost     float64
	Location     string
	Supplier     string
}

// UpdateItemOptions holds the full replacement fields for an item update.
// LastRestocked is carried through so a restock can be persisted with the
// same call.
type UpdateItemOptions struct {
	Name          string
	Category      string
	CurrentStock  int
	MinimumStock  int
	MaximumStock  int
	UnitCost      float64
	Location      string
	Supplier      string
	LastRestocked string
}
