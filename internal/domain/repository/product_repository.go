package repository

import "github.com/manyboliot2022/eynpro/internal/domain/entity"

// ProductRepository port de persistance du catalogue produits (DIP).
// L'implémentation vit dans infrastructure ; chaque écriture remplace le
// document catalogue entier de façon atomique.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	// FindByName cherche un produit par nom, comparaison exacte insensible à la casse.
	FindByName(name string) (*entity.Product, error)
	Save(product *entity.Product) error
	Delete(id string) error
	// ReplaceAll remplace le document catalogue entier (restauration de sauvegarde).
	ReplaceAll(products []*entity.Product) error
}
