package dto

import "github.com/shopspring/decimal"

// CreateClientRequest entrée pour créer un client.
type CreateClientRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
}

// UpdateClientRequest entrée pour modifier un client (champs optionnels).
type UpdateClientRequest struct {
	Name    *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string          `json:"address"`
	Phone   *string          `json:"phone"`
	Balance *decimal.Decimal `json:"balance"`
}

// ClientResponse sortie d'un client.
type ClientResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
}

// ClientListResponse liste de clients.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}

// CreateSupplierRequest entrée pour créer un fournisseur.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// UpdateSupplierRequest entrée pour modifier un fournisseur (champs optionnels).
type UpdateSupplierRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// SupplierResponse sortie d'un fournisseur.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SupplierListResponse liste de fournisseurs.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
