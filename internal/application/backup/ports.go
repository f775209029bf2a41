package backup

import (
	"context"

	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// TxRunner exécute la restauration dans une seule transaction du magasin :
// tous les documents sont remplacés ensemble, ou aucun ne l'est.
type TxRunner interface {
	RunRestore(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
		supplierRepo repository.SupplierRepository,
		orderRepo repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
	) error) error
}
