package bolt

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/application/backup"
	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// Ensure TxRunner implements costing.TxRunner and backup.TxRunner.
var _ costing.TxRunner = (*TxRunner)(nil)
var _ backup.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une seule transaction bbolt, avec des
// repositories liés à cette transaction. C'est lui qui rend atomiques les mises
// à jour multi-documents (fusion catalogue + historique, restauration complète).
type TxRunner struct {
	store *Store
}

// NewTxRunner construit le runner sur le magasin de documents.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ouvre une transaction en écriture et exécute fn avec les repos du
// calculateur (catalogue + historique de commandes) liés à cette transaction.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// bbolt annule la transaction si fn retourne une erreur ; l'erreur du
	// callback remonte telle quelle.
	return r.store.Update(func(tx *bbolt.Tx) error {
		exec := txExecutor{tx: tx}
		return fn(NewProductRepository(exec), NewOrderRepository(exec))
	})
}

// RunRestore ouvre une transaction en écriture couvrant tous les documents du
// magasin, pour la restauration de sauvegarde : tout est remplacé ou rien.
func (r *TxRunner) RunRestore(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.Update(func(tx *bbolt.Tx) error {
		exec := txExecutor{tx: tx}
		return fn(
			NewProductRepository(exec),
			NewTransactionRepository(exec),
			NewClientRepository(exec),
			NewSupplierRepository(exec),
			NewOrderRepository(exec),
			NewSettingsRepository(exec),
		)
	})
}
