package repository

import "github.com/manyboliot2022/eynpro/internal/domain/entity"

// ClientRepository port de persistance des clients.
type ClientRepository interface {
	List() ([]*entity.Client, error)
	GetByID(id string) (*entity.Client, error)
	Save(client *entity.Client) error
	Delete(id string) error
	ReplaceAll(clients []*entity.Client) error
}

// SupplierRepository port de persistance des fournisseurs.
type SupplierRepository interface {
	List() ([]*entity.Supplier, error)
	GetByID(id string) (*entity.Supplier, error)
	Save(supplier *entity.Supplier) error
	Delete(id string) error
	ReplaceAll(suppliers []*entity.Supplier) error
}
