package model

// StockStatus is the derived stock-health classification of an inventory
// item. It is always re-derived from the stock numbers, never cached.
type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusCritical   StockStatus = "critical"
	StockStatusNormal     StockStatus = "normal"
)

// InventoryItem is a stocked item (tableware, linen, decoration, ...).
// MinimumStock <= MaximumStock and CurrentStock <= MaximumStock are
// enforced when values enter the system, not self-healed afterwards.
// CurrentStock only ever grows through restock or a direct edit;
// consumption is tracked elsewhere.
type InventoryItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CurrentStock  int     `json:"current_stock"`
	MinimumStock  int     `json:"minimum_stock"`
	MaximumStock  int     `json:"maximum_stock"`
	UnitCost      float64 `json:"unit_cost,omitempty"`
	Location      string  `json:"location,omitempty"`
	Supplier      string  `json:"supplier,omitempty"`
	LastRestocked string  `json:"last_restocked,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}
