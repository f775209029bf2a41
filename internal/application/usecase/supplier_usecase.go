package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// SupplierUseCase cas d'usage CRUD des fournisseurs.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construit le cas d'usage.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crée un fournisseur.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	if err := uc.repo.Save(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID retourne un fournisseur, ou nil s'il n'existe pas.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List retourne tous les fournisseurs.
func (uc *SupplierUseCase) List() (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}, nil
}

// Update modifie un fournisseur champ par champ.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if err := uc.repo.Save(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete supprime un fournisseur.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Email:   s.Email,
	}
}
