package costing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	domcosting "github.com/manyboliot2022/eynpro/internal/domain/costing"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// UseCase cas d'usage du calculateur de coûts : aperçu, validation d'un lot
// (fusion catalogue + historique) et consultation de l'historique.
type UseCase struct {
	engine    *domcosting.Engine
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(engine *domcosting.Engine, txRunner TxRunner, orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{engine: engine, txRunner: txRunner, orderRepo: orderRepo}
}

// Preview chiffre un lot sans rien persister. Un lot vide rend un chiffrage à
// zéro, jamais une erreur.
func (uc *UseCase) Preview(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	items, err := toOrderItems(in.Items)
	if err != nil {
		return nil, err
	}
	q := uc.engine.Quote(items, in.GPTotal, in.MonthlyCharges, in.EstimatedMonthlyVolume)
	out := toQuoteResponse(q)
	return &out, nil
}

// CommitBatch valide un lot : chiffre, puis dans UNE transaction fusionne
// chaque ligne dans le catalogue (upsert par nom, insensible à la casse) et,
// si demandé, ajoute la commande à l'historique.
//
// Produit trouvé : coût et prix de vente écrasés, stock INCRÉMENTÉ de la
// quantité (cumulatif : revalider le même lot double le stock, comportement de
// référence à préserver). Produit absent : création avec identité générée.
func (uc *UseCase) CommitBatch(ctx context.Context, in dto.CommitBatchRequest) (*dto.CommitBatchResponse, error) {
	items, err := toOrderItems(in.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	q := uc.engine.Quote(items, in.GPTotal, in.MonthlyCharges, in.EstimatedMonthlyVolume)

	out := &dto.CommitBatchResponse{Quote: toQuoteResponse(q)}
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		for _, line := range q.Lines {
			existing, err := productRepo.FindByName(line.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				existing.CostPrice = line.UnitCost
				existing.SellPrice = line.CatalogSellPrice
				existing.Stock += line.Quantity
				existing.UpdatedAt = now
				if err := productRepo.Save(existing); err != nil {
					return err
				}
				out.ProductsUpdated++
				continue
			}
			name := line.Name
			if name == "" {
				name = entity.NomProduitParDefaut
			}
			product := &entity.Product{
				ID:        uuid.New().String(),
				Name:      name,
				Category:  entity.CategorieNonClassee,
				Barcode:   "",
				CostPrice: line.UnitCost,
				SellPrice: line.CatalogSellPrice,
				Stock:     line.Quantity,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Save(product); err != nil {
				return err
			}
			out.ProductsCreated++
		}

		if in.SaveHistory {
			order := &entity.Order{
				ID:            uuid.New().String(),
				Date:          now,
				Items:         items,
				GPTotal:       in.GPTotal,
				ChargesTotal:  in.MonthlyCharges,
				TotalArticles: q.TotalArticles,
				TotalCost:     q.TotalCost,
			}
			if err := orderRepo.Append(order); err != nil {
				return err
			}
			out.OrderID = order.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListOrders retourne l'historique des commandes, la plus récente d'abord.
func (uc *UseCase) ListOrders() ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]dto.OrderItemRequest, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, dto.OrderItemRequest{Name: it.Name, BuyPrice: it.BuyPrice, Quantity: it.Quantity})
		}
		out = append(out, dto.OrderResponse{
			ID:            o.ID,
			Date:          o.Date,
			Items:         items,
			GPTotal:       o.GPTotal,
			ChargesTotal:  o.ChargesTotal,
			TotalArticles: o.TotalArticles,
			TotalCost:     o.TotalCost,
		})
	}
	return out, nil
}

// toOrderItems valide et convertit les lignes saisies. Contrairement à la
// référence qui coerce silencieusement les saisies invalides à 0, une ligne à
// prix négatif ou quantité < 1 est rejetée avec ErrInvalidInput.
func toOrderItems(in []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		if it.BuyPrice.IsNegative() || it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.OrderItem{
			Name:     it.Name,
			BuyPrice: it.BuyPrice,
			Quantity: it.Quantity,
		})
	}
	return items, nil
}

func toQuoteResponse(q domcosting.BatchQuote) dto.QuoteResponse {
	out := dto.QuoteResponse{
		TotalArticles:    q.TotalArticles,
		TotalBuy:         q.TotalBuy,
		GPPerArticle:     q.GPPerArticle,
		ChargePerArticle: q.ChargePerArticle,
		TotalCost:        q.TotalCost,
		Lines:            make([]dto.LineQuoteResponse, 0, len(q.Lines)),
	}
	for _, line := range q.Lines {
		suggestions := make([]dto.PriceSuggestionResponse, 0, len(line.Suggestions))
		for _, s := range line.Suggestions {
			suggestions = append(suggestions, dto.PriceSuggestionResponse{
				Markup:    s.Markup,
				SellPrice: s.SellPrice,
				Profit:    s.Profit,
			})
		}
		out.Lines = append(out.Lines, dto.LineQuoteResponse{
			Name:             line.Name,
			BuyPrice:         line.BuyPrice,
			Quantity:         line.Quantity,
			UnitCost:         line.UnitCost,
			CatalogSellPrice: line.CatalogSellPrice,
			Suggestions:      suggestions,
		})
	}
	return out
}
