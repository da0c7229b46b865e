package http

import (
	"banquetpro/internal/inventory"
)

// --- Request DTOs ---

type createReq struct {
	Name         string  `json:"name"          binding:"required,min=1,max=255"`
	Category     string  `json:"category"      binding:"max=100"`
	CurrentStock int     `json:"current_stock" binding:"min=0"`
	MinimumStock int     `json:"minimum_stock" binding:"min=0"`
	MaximumStock int     `json:"maximum_stock" binding:"required,min=1"`
	UnitCost     float64 `json:"unit_cost"     binding:"min=0"`
	Location     string  `json:"location"      binding:"max=255"`
	Supplier     string  `json:"supplier"      binding:"max=255"`
}

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:         r.Name,
		Category:     r.Category,
		CurrentStock: r.CurrentStock,
		MinimumStock: r.MinimumStock,
		MaximumStock: r.MaximumStock,
		UnitCost:     r.UnitCost,
		Location:     r.Location,
		Supplier:     r.Supplier,
	}
}

// ---

type listReq struct {
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
	Skip     int    `form:"skip"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() inventory.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	skip := r.Skip
	if skip < 0 {
		skip = 0
	}
	return inventory.ListInput{
		Category: r.Category,
		LowStock: r.LowStock,
		Skip:     skip,
		Limit:    limit,
	}
}

// ---

type updateReq struct {
	Name         string  `json:"name"          binding:"required,min=1,max=255"`
	Category     string  `json:"category"      binding:"max=100"`
	CurrentStock int     `json:"current_stock" binding:"min=0"`
	MinimumStock int     `json:"minimum_stock" binding:"min=0"`
	MaximumStock int     `json:"maximum_stock" binding:"required,min=1"`
	UnitCost     float64 `json:"unit_cost"     binding:"min=0"`
	Location     string  `json:"location"      binding:"max=255"`
	Supplier     string  `json:"supplier"      binding:"max=255"`
}

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		Name:         r.Name,
		Category:     r.Category,
		CurrentStock: r.CurrentStock,
		MinimumStock: r.MinimumStock,
		MaximumStock: r.MaximumStock,
		UnitCost:     r.UnitCost,
		Location:     r.Location,
		Supplier:     r.Supplier,
	}
}

// ---

type restockReq struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (r restockReq) toInput() inventory.RestockInput {
	return inventory.RestockInput{Quantity: r.Quantity}
}

// --- Response DTOs ---

type itemResp struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	CurrentStock   int     `json:"current_stock"`
	MinimumStock   int     `json:"minimum_stock"`
	MaximumStock   int     `json:"maximum_stock"`
	UnitCost       float64 `json:"unit_cost"`
	Location       string  `json:"location,omitempty"`
	Supplier       string  `json:"supplier,omitempty"`
	LastRestocked  string  `json:"last_restocked,omitempty"`
	Status         string  `json:"status"`
	FillPercentage float64 `json:"fill_percentage"`
}

func newItemResp(v inventory.ItemView) itemResp {
	return itemResp{
		ID:             v.ID,
		Name:           v.Name,
		Category:       v.Category,
		CurrentStock:   v.CurrentStock,
		MinimumStock:   v.MinimumStock,
		MaximumStock:   v.MaximumStock,
		UnitCost:       v.UnitCost,
		Location:       v.Location,
		Supplier:       v.Supplier,
		LastRestocked:  v.LastRestocked,
		Status:         string(v.Status),
		FillPercentage: v.FillPercentage,
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out inventory.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, v := range out.Items {
		items[i] = newItemResp(v)
	}
	return listResp{Items: items, Count: out.Count}
}
