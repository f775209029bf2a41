package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// ClientUseCase cas d'usage CRUD des clients. Balance est une dette saisie
// librement : aucun rapprochement automatique avec le journal de caisse.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crée un client.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Balance: in.Balance,
	}
	if err := uc.repo.Save(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID retourne un client, ou nil s'il n'existe pas.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List retourne tous les clients.
func (uc *ClientUseCase) List() (*dto.ClientListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

// Update modifie un client champ par champ.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Name = *in.Name
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Balance != nil {
		client.Balance = *in.Balance
	}
	if err := uc.repo.Save(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete supprime un client.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Balance: c.Balance,
	}
}
