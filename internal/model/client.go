package model

// Client is a customer of the banquet business. Events reference clients
// through Event.ClientID as a weak reference: the core tolerates dangling
// references and renders a placeholder label for them.
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Company     string `json:"company,omitempty"`
	IsCorporate bool   `json:"is_corporate"`
	CreatedAt   string `json:"created_at,omitempty"`
}
