package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implémentation du journal de caisse append-only.
type TransactionRepo struct {
	exec Executor
}

// NewTransactionRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewTransactionRepository(exec Executor) *TransactionRepo {
	return &TransactionRepo{exec: exec}
}

// Append ajoute une transaction en fin de journal. Les entrées existantes ne
// sont jamais réécrites.
func (r *TransactionRepo) Append(txn *entity.Transaction) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		var list []*entity.Transaction
		if err := readDoc(tx, docTransactions, &list); err != nil {
			return err
		}
		list = append(list, txn)
		return writeDoc(tx, docTransactions, list)
	})
}

// List retourne le journal complet, dans l'ordre d'insertion.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	var list []*entity.Transaction
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docTransactions, &list)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReplaceAll remplace le journal entier (restauration de sauvegarde uniquement).
func (r *TransactionRepo) ReplaceAll(txns []*entity.Transaction) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docTransactions, txns)
	})
}
