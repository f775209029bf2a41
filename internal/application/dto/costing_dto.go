package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest ligne de commande soumise au calculateur.
type OrderItemRequest struct {
	Name     string          `json:"name"`
	BuyPrice decimal.Decimal `json:"buy_price"`
	Quantity int             `json:"quantity"`
}

// QuoteRequest entrée du chiffrage d'un lot (aperçu comme validation).
type QuoteRequest struct {
	Items                  []OrderItemRequest `json:"items"`
	GPTotal                decimal.Decimal    `json:"gp_total"`
	MonthlyCharges         decimal.Decimal    `json:"monthly_charges"`
	EstimatedMonthlyVolume int                `json:"estimated_monthly_volume"`
}

// CommitBatchRequest validation d'un lot : fusion catalogue, et historique si demandé.
type CommitBatchRequest struct {
	QuoteRequest
	SaveHistory bool `json:"save_history"`
}

// PriceSuggestionResponse simulation de vente pour un palier de marge.
type PriceSuggestionResponse struct {
	Markup    decimal.Decimal `json:"markup"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Profit    decimal.Decimal `json:"profit"`
}

// LineQuoteResponse chiffrage d'une ligne.
type LineQuoteResponse struct {
	Name             string                    `json:"name"`
	BuyPrice         decimal.Decimal           `json:"buy_price"`
	Quantity         int                       `json:"quantity"`
	UnitCost         decimal.Decimal           `json:"unit_cost"`
	CatalogSellPrice decimal.Decimal           `json:"catalog_sell_price"`
	Suggestions      []PriceSuggestionResponse `json:"suggestions"`
}

// QuoteResponse chiffrage complet d'un lot.
type QuoteResponse struct {
	TotalArticles    int                 `json:"total_articles"`
	TotalBuy         decimal.Decimal     `json:"total_buy"`
	GPPerArticle     decimal.Decimal     `json:"gp_per_article"`
	ChargePerArticle decimal.Decimal     `json:"charge_per_article"`
	TotalCost        decimal.Decimal     `json:"total_cost"`
	Lines            []LineQuoteResponse `json:"lines"`
}

// CommitBatchResponse résultat de la validation d'un lot.
type CommitBatchResponse struct {
	Quote           QuoteResponse `json:"quote"`
	ProductsCreated int           `json:"products_created"`
	ProductsUpdated int           `json:"products_updated"`
	OrderID         string        `json:"order_id,omitempty"`
}

// OrderResponse commande de l'historique.
type OrderResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	Items         []OrderItemRequest `json:"items"`
	GPTotal       decimal.Decimal    `json:"gp_total"`
	ChargesTotal  decimal.Decimal    `json:"charges_total"`
	TotalArticles int                `json:"total_articles"`
	TotalCost     decimal.Decimal    `json:"total_cost"`
}
