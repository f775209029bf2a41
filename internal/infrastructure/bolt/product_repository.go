package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur le document catalogue.
// Chaque écriture suit le schéma lire le document complet -> modifier -> réécrire,
// dans une seule transaction.
type ProductRepo struct {
	exec Executor
}

// NewProductRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewProductRepository(exec Executor) *ProductRepo {
	return &ProductRepo{exec: exec}
}

// List retourne le catalogue complet.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docProducts, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID retourne un produit par ID, ou nil s'il n'existe pas.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// FindByName cherche un produit par nom (comparaison exacte insensible à la
// casse, clé de fusion du catalogue), ou nil s'il n'existe pas.
func (r *ProductRepo) FindByName(name string) (*entity.Product, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.MatchesName(name) {
			return p, nil
		}
	}
	return nil, nil
}

// Save insère ou remplace le produit (par ID) dans le document catalogue.
func (r *ProductRepo) Save(product *entity.Product) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Product
		if err := readDoc(tx, docProducts, &list); err != nil {
			return err
		}
		replaced := false
		for i, p := range list {
			if p.ID == product.ID {
				list[i] = product
				replaced = true
				break
			}
		}
		if !replaced {
			list = append(list, product)
		}
		return writeDoc(tx, docProducts, list)
	})
}

// Delete retire un produit du catalogue. ErrNotFound si l'ID est inconnu.
func (r *ProductRepo) Delete(id string) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Product
		if err := readDoc(tx, docProducts, &list); err != nil {
			return err
		}
		kept := make([]*entity.Product, 0, len(list))
		for _, p := range list {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(list) {
			return domain.ErrNotFound
		}
		return writeDoc(tx, docProducts, kept)
	})
}

// ReplaceAll remplace le document catalogue entier (restauration de sauvegarde).
func (r *ProductRepo) ReplaceAll(products []*entity.Product) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docProducts, products)
	})
}
