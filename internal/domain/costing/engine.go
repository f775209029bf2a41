package costing

import (
	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
)

// Policy politique de marge du moteur de chiffrage. Les paliers et la marge
// catalogue sont une politique commerciale configurable, pas une loi du système.
type Policy struct {
	MarkupTiers   []decimal.Decimal // paliers de simulation (fractions : 0.3 = 30 %)
	CatalogMarkup decimal.Decimal   // marge appliquée au prix de vente catalogue lors de la validation
}

// DefaultPolicy reproduit les paliers de référence : 0, 20, 30, 50 et 100 %,
// avec 30 % comme marge catalogue.
func DefaultPolicy() Policy {
	return Policy{
		MarkupTiers: []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromFloat(0.2),
			decimal.NewFromFloat(0.3),
			decimal.NewFromFloat(0.5),
			decimal.NewFromFloat(1.0),
		},
		CatalogMarkup: decimal.NewFromFloat(0.3),
	}
}

// PriceSuggestion simulation de vente pour un palier de marge.
type PriceSuggestion struct {
	Markup    decimal.Decimal // fraction de marge
	SellPrice decimal.Decimal // arrondi à l'unité
	Profit    decimal.Decimal // arrondi à l'unité
}

// LineQuote chiffrage d'une ligne de commande.
type LineQuote struct {
	Name             string
	BuyPrice         decimal.Decimal
	Quantity         int
	UnitCost         decimal.Decimal // achat + GP/article + charges/article
	CatalogSellPrice decimal.Decimal // prix de vente à la marge catalogue
	Suggestions      []PriceSuggestion
}

// BatchQuote chiffrage complet d'un lot de commande.
type BatchQuote struct {
	TotalArticles    int
	TotalBuy         decimal.Decimal // Σ achat × quantité
	GPPerArticle     decimal.Decimal
	ChargePerArticle decimal.Decimal
	TotalCost        decimal.Decimal // achat total + GP + charges réparties sur le lot
	Lines            []LineQuote
}

// Engine moteur de calcul du coût de revient unitaire (service de domaine, pur).
type Engine struct {
	policy Policy
}

// NewEngine construit le moteur avec la politique donnée. Seule une politique
// entièrement vide retombe sur DefaultPolicy : une marge catalogue de 0 avec
// des paliers fournis est un choix valide (vente à prix coûtant) et reste
// telle quelle.
func NewEngine(policy Policy) *Engine {
	if len(policy.MarkupTiers) == 0 {
		if policy.CatalogMarkup.IsZero() {
			return &Engine{policy: DefaultPolicy()}
		}
		policy.MarkupTiers = DefaultPolicy().MarkupTiers
	}
	return &Engine{policy: policy}
}

// Policy retourne la politique de marge en vigueur.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Quote chiffre un lot : répartition du groupage au prorata des articles réels,
// répartition des charges au prorata du volume mensuel ESTIMÉ (heuristique de
// planification, pas une garantie comptable), puis coût unitaire par ligne.
//
// Un lot vide ou un volume estimé nul ne sont jamais des erreurs : la part
// correspondante vaut simplement zéro, pour qu'une session vierge affiche un
// aperçu sans planter.
func (e *Engine) Quote(items []entity.OrderItem, gpTotal, monthlyCharges decimal.Decimal, estimatedMonthlyVolume int) BatchQuote {
	q := BatchQuote{Lines: make([]LineQuote, 0, len(items))}

	for _, it := range items {
		q.TotalArticles += it.Quantity
		q.TotalBuy = q.TotalBuy.Add(it.BuyPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	if q.TotalArticles > 0 {
		q.GPPerArticle = gpTotal.Div(decimal.NewFromInt(int64(q.TotalArticles)))
	}
	if estimatedMonthlyVolume > 0 {
		q.ChargePerArticle = monthlyCharges.Div(decimal.NewFromInt(int64(estimatedMonthlyVolume)))
	}

	for _, it := range items {
		unitCost := it.BuyPrice.Add(q.GPPerArticle).Add(q.ChargePerArticle)
		line := LineQuote{
			Name:             it.Name,
			BuyPrice:         it.BuyPrice,
			Quantity:         it.Quantity,
			UnitCost:         unitCost,
			CatalogSellPrice: SellPriceAt(unitCost, e.policy.CatalogMarkup),
			Suggestions:      make([]PriceSuggestion, 0, len(e.policy.MarkupTiers)),
		}
		for _, m := range e.policy.MarkupTiers {
			line.Suggestions = append(line.Suggestions, PriceSuggestion{
				Markup:    m,
				SellPrice: SellPriceAt(unitCost, m),
				Profit:    unitCost.Mul(m).Round(0),
			})
		}
		q.Lines = append(q.Lines, line)
	}

	if q.TotalArticles > 0 {
		q.TotalCost = q.TotalBuy.Add(gpTotal).Add(q.ChargePerArticle.Mul(decimal.NewFromInt(int64(q.TotalArticles))))
	}

	return q
}

// SellPriceAt prix de vente arrondi à l'unité pour un coût de revient et une marge donnés.
func SellPriceAt(unitCost, markup decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(1).Add(markup)).Round(0)
}
