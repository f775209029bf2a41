package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem ligne de commande en cours de chiffrage. Éphémère : seule sa
// répercussion sur Product est persistée, via l'historique de commandes et la
// fusion catalogue.
type OrderItem struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	BuyPrice decimal.Decimal `json:"buyPrice"`
	Quantity int             `json:"quantity"`
}

// Order lot de commande validé, conservé dans l'historique.
type Order struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Items         []OrderItem     `json:"items"`
	GPTotal       decimal.Decimal `json:"gpTotal"`      // frais de groupage du colis
	ChargesTotal  decimal.Decimal `json:"chargesTotal"` // charges mensuelles saisies
	TotalArticles int             `json:"totalArticles"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}
