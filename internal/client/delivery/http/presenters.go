package http

import (
	"banquetpro/internal/client"
	"banquetpro/internal/model"
)

// --- Request DTOs ---

type clientReq struct {
	Name        string `json:"name"     binding:"required,min=1,max=255"`
	Email       string `json:"email"    binding:"required,email"`
	Phone       string `json:"phone"    binding:"max=50"`
	Address     string `json:"address"  binding:"max=500"`
	Company     string `json:"company"  binding:"max=255"`
	IsCorporate bool   `json:"is_corporate"`
}

func (r clientReq) toCreateInput() client.CreateClientInput {
	return client.CreateClientInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Company:     r.Company,
		IsCorporate: r.IsCorporate,
	}
}

func (r clientReq) toUpdateInput() client.UpdateClientInput {
	return client.UpdateClientInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Company:     r.Company,
		IsCorporate: r.IsCorporate,
	}
}

type listReq struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

func (r listReq) toInput() client.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	skip := r.Skip
	if skip < 0 {
		skip = 0
	}
	return client.ListInput{Skip: skip, Limit: limit}
}

// --- Response DTOs ---

type clientResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Company     string `json:"company,omitempty"`
	IsCorporate bool   `json:"is_corporate"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func newClientResp(c model.Client) clientResp {
	return clientResp{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Company:     c.Company,
		IsCorporate: c.IsCorporate,
		CreatedAt:   c.CreatedAt,
	}
}

type listResp struct {
	Clients []clientResp `json:"clients"`
	Count   int          `json:"count"`
}

func (h *handler) newListResp(out client.ListOutput) listResp {
	clients := make([]clientResp, len(out.Clients))
	for i, c := range out.Clients {
		clients[i] = newClientResp(c)
	}
	return listResp{Clients: clients, Count: out.Count}
}
