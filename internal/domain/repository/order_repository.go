package repository

import "github.com/manyboliot2022/eynpro/internal/domain/entity"

// OrderRepository port de persistance de l'historique des commandes chiffrées.
type OrderRepository interface {
	Append(order *entity.Order) error
	List() ([]*entity.Order, error)
	ReplaceAll(orders []*entity.Order) error
}
