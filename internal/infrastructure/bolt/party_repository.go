package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation du port ClientRepository sur le document clients.
type ClientRepo struct {
	exec Executor
}

// NewClientRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewClientRepository(exec Executor) *ClientRepo {
	return &ClientRepo{exec: exec}
}

// List retourne tous les clients.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	var list []*entity.Client
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docClients, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID retourne un client par ID, ou nil s'il n'existe pas.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// Save insère ou remplace le client (par ID).
func (r *ClientRepo) Save(client *entity.Client) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Client
		if err := readDoc(tx, docClients, &list); err != nil {
			return err
		}
		replaced := false
		for i, c := range list {
			if c.ID == client.ID {
				list[i] = client
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, client)
		}
		return writeDoc(tx, docClients, list)
	})
}

// Delete retire un client. ErrNotFound si l'ID est inconnu.
func (r *ClientRepo) Delete(id string) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Client
		if err := readDoc(tx, docClients, &list); err != nil {
			return err
		}
		kept := make([]*entity.Client, 0, len(list))
		for _, c := range list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(list) {
			return domain.ErrNotFound
		}
		return writeDoc(tx, docClients, kept)
	})
}

// ReplaceAll remplace le document clients entier (restauration de sauvegarde).
func (r *ClientRepo) ReplaceAll(clients []*entity.Client) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docClients, clients)
	})
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implémentation du port SupplierRepository sur le document fournisseurs.
type SupplierRepo struct {
	exec Executor
}

// NewSupplierRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewSupplierRepository(exec Executor) *SupplierRepo {
	return &SupplierRepo{exec: exec}
}

// List retourne tous les fournisseurs.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docSuppliers, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID retourne un fournisseur par ID, ou nil s'il n'existe pas.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// Save insère ou remplace le fournisseur (par ID).
func (r *SupplierRepo) Save(supplier *entity.Supplier) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Supplier
		if err := readDoc(tx, docSuppliers, &list); err != nil {
			return err
		}
		replaced := false
		for i, s := range list {
			if s.ID == supplier.ID {
				list[i] = supplier
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, supplier)
		}
		return writeDoc(tx, docSuppliers, list)
	})
}

// Delete retire un fournisseur. ErrNotFound si l'ID est inconnu.
func (r *SupplierRepo) Delete(id string) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Supplier
		if err := readDoc(tx, docSuppliers, &list); err != nil {
			return err
		}
		kept := make([]*entity.Supplier, 0, len(list))
		for _, s := range list {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(list) {
			return domain.ErrNotFound
		}
		return writeDoc(tx, docSuppliers, kept)
	})
}

// ReplaceAll remplace le document fournisseurs entier (restauration de sauvegarde).
func (r *SupplierRepo) ReplaceAll(suppliers []*entity.Supplier) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docSuppliers, suppliers)
	})
}
