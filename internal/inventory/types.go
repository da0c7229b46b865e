package inventory

import "banquetpro/internal/model"

// ItemView is an inventory item enriched with its derived stock health.
// Status and FillPercentage are recomputed on every read; they are never
// stored.
type ItemView struct {
	model.InventoryItem
	Status         model.StockStatus `json:"status"`
	FillPercentage float64           `json:"fill_percentage"`
}

// ListInput filters the inventory listing. LowStock keeps only items whose
// derived status is not normal.
type ListInput struct {
	Category string
	LowStock bool
	Skip     int
	Limit    int
}

// ListOutput is the result of a filtered inventory listing.
type ListOutput struct {
	Items []ItemView `json:"items"`
	Count int        `json:"count"`
}

// CreateItemInput is the boundary-validated payload for creating an item.
type CreateItemInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	MinimumStock int     `json:"minimum_stock"`
	MaximumStock int     `json:"maximum_stock"`
	UnitCost     float64 `json:"unit_cost"`
	Location     string  `json:"location"`
	Supplier     string  `json:"supplier"`
}

// UpdateItemInput is the boundary-validated payload for a full item update,
// mirroring the store's replace-style PUT.
type UpdateItemInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	MinimumStock int     `json:"minimum_stock"`
	MaximumStock int     `json:"maximum_stock"`
	UnitCost     float64 `json:"unit_cost"`
	Location     string  `json:"location"`
	Supplier     string  `json:"supplier"`
}

// RestockInput carries the additive restock quantity.
type RestockInput struct {
	Quantity int `json:"quantity"`
}
