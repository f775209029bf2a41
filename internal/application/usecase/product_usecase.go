package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// ProductUseCase cas d'usage CRUD du catalogue, agrégats de stock et
// initialisation du catalogue pré-détecté.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crée un produit saisi manuellement. Le nom sert de clé de fusion :
// un doublon (insensible à la casse) est refusé.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := in.Category
	if category == "" {
		category = entity.CategorieNonClassee
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  category,
		Barcode:   in.Barcode,
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID retourne un produit, ou nil s'il n'existe pas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List retourne le catalogue, filtré par nom si search est non vide
// (sous-chaîne insensible à la casse, comme la recherche de référence).
func (uc *ProductUseCase) List(search string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	needle := strings.ToLower(search)
	for _, p := range list {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update modifie un produit champ par champ.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellPrice != nil {
		product.SellPrice = *in.SellPrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete supprime un produit du catalogue.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Stats agrégats du catalogue par balayage complet : stock total, valeur du
// stock au coût de revient, produits sans code-barres.
func (uc *ProductUseCase) Stats() (*dto.CatalogStatsResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.CatalogStatsResponse{ProductCount: len(list), StockValue: decimal.Zero}
	for _, p := range list {
		stats.TotalStock += p.Stock
		stats.StockValue = stats.StockValue.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Barcode == "" {
			stats.WithoutBarcode++
		}
	}
	return stats, nil
}

// ImportPresets initialise le catalogue avec les produits cosmétiques
// pré-détectés (prix et stock à zéro). Les noms déjà présents sont ignorés.
func (uc *ProductUseCase) ImportPresets() (*dto.ImportPresetsResponse, error) {
	out := &dto.ImportPresetsResponse{}
	now := time.Now()
	for _, preset := range entity.PresetProducts {
		existing, err := uc.repo.FindByName(preset.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			out.Skipped++
			continue
		}
		product := &entity.Product{
			ID:        uuid.New().String(),
			Name:      preset.Name,
			Category:  preset.Category,
			Barcode:   "",
			CostPrice: decimal.Zero,
			SellPrice: decimal.Zero,
			Stock:     0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Save(product); err != nil {
			return nil, err
		}
		out.Imported++
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Barcode:   p.Barcode,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
