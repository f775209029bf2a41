package entity

import "github.com/shopspring/decimal"

// Client représente un client de la boutique. Balance est une dette libre,
// saisie manuellement : le cœur ne la rapproche pas du journal de caisse.
type Client struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
}

// Supplier représente un fournisseur.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}
