package repository

// ListClientsOptions holds the parameters for listing clients. Email is an
// exact-match filter used for uniqueness checks.
type ListClientsOptions struct {
	Email string
	Skip  int
	Limit int // default 100
}

// CreateClientOptions holds the fields for creating a client.
type CreateClientOptions struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Company     string
	IsCorporate bool
}

// UpdateClientOptions holds the full replacement fields for a client update.
type UpdateClientOptions struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Company     string
	IsCorporate bool
}
