package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategorieNonClassee catégorie affectée aux produits créés depuis le calculateur
// sans catégorie explicite.
const CategorieNonClassee = "A classer"

// NomProduitParDefaut nom de remplacement quand une ligne de commande est validée sans nom.
const NomProduitParDefaut = "Produit sans nom"

// Product représente un article du catalogue. Le nom sert de clé de fusion
// (comparaison exacte insensible à la casse) : aucun autre identifiant n'est
// imposé lors de la fusion d'un lot de commande.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Barcode   string          `json:"barcode"`
	CostPrice decimal.Decimal `json:"costPrice"` // coût de revient unitaire (achat + GP + charges)
	SellPrice decimal.Decimal `json:"sellPrice"` // prix de vente catalogue
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}

// MatchesName compare le nom du produit à un nom candidat (insensible à la casse).
func (p *Product) MatchesName(name string) bool {
	return strings.EqualFold(p.Name, name)
}
