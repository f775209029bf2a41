package costing

import (
	"context"

	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction du magasin de documents,
// avec des repositories liés à cette transaction. Garantit que la fusion
// catalogue et l'historique de commandes sont écrits ensemble ou pas du tout.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
