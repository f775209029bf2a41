package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrée pour créer un produit manuellement.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Category  string          `json:"category"`
	Barcode   string          `json:"barcode"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
}

// UpdateProductRequest entrée pour modifier un produit (champs optionnels).
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category  *string          `json:"category"`
	Barcode   *string          `json:"barcode"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	SellPrice *decimal.Decimal `json:"sell_price"`
	Stock     *int             `json:"stock"`
}

// ProductResponse sortie d'un produit.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Barcode   string          `json:"barcode"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// ProductListResponse liste de produits.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CatalogStatsResponse agrégats du catalogue, recalculés par balayage complet.
type CatalogStatsResponse struct {
	ProductCount   int             `json:"product_count"`
	TotalStock     int             `json:"total_stock"`
	StockValue     decimal.Decimal `json:"stock_value"`
	WithoutBarcode int             `json:"without_barcode"`
}

// ImportPresetsResponse résultat de l'initialisation du catalogue pré-détecté.
type ImportPresetsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
