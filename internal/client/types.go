package client

import "banquetpro/internal/model"

// ListInput pages through the client list.
type ListInput struct {
	Skip  int
	Limit int
}

// ListOutput is the result of a client listing.
type ListOutput struct {
	Clients []model.Client `json:"clients"`
	Count   int            `json:"count"`
}

// CreateClientInput is the boundary-validated payload for creating a client.
type CreateClientInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Company     string
	IsCorporate bool
}

// UpdateClientInput replaces a client's fields, mirroring the store's
// replace-style PUT.
type UpdateClientInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Company     string
	IsCorporate bool
}
