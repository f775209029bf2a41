package repository

import "github.com/manyboliot2022/eynpro/internal/domain/entity"

// TransactionRepository port de persistance du journal de caisse.
// Append-only : aucune opération de modification ou de suppression n'existe,
// seule la restauration de sauvegarde remplace le document entier.
type TransactionRepository interface {
	Append(txn *entity.Transaction) error
	List() ([]*entity.Transaction, error)
	ReplaceAll(txns []*entity.Transaction) error
}
