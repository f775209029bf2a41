package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implémentation de l'historique des commandes chiffrées.
type OrderRepo struct {
	exec Executor
}

// NewOrderRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewOrderRepository(exec Executor) *OrderRepo {
	return &OrderRepo{exec: exec}
}

// Append ajoute une commande en tête d'historique (la plus récente d'abord,
// ordre d'affichage de référence).
func (r *OrderRepo) Append(order *entity.Order) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Order
		if err := readDoc(tx, docOrderHistory, &list); err != nil {
			return err
		}
		list = append([]*entity.Order{order}, list...)
		return writeDoc(tx, docOrderHistory, list)
	})
}

// List retourne l'historique complet, la commande la plus récente d'abord.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	var list []*entity.Order
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docOrderHistory, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReplaceAll remplace l'historique entier (restauration de sauvegarde).
func (r *OrderRepo) ReplaceAll(orders []*entity.Order) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docOrderHistory, orders)
	})
}
