package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// UseCase export et restauration de la sauvegarde complète.
type UseCase struct {
	productRepo  repository.ProductRepository
	txnRepo      repository.TransactionRepository
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	txRunner     TxRunner
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		txnRepo:      txnRepo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		txRunner:     txRunner,
	}
}

// Export sérialise l'intégralité du magasin dans un fichier de sauvegarde.
func (uc *UseCase) Export() (*dto.BackupFile, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	txns, err := uc.txnRepo.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	return &dto.BackupFile{
		Products:     products,
		Transactions: txns,
		Clients:      clients,
		Suppliers:    suppliers,
		OrderHistory: orders,
		Settings:     settings,
		ExportDate:   time.Now(),
	}, nil
}

// Import restaure l'état complet depuis une sauvegarde. Le fichier est validé
// en entier avant toute écriture ; la restauration remplace ensuite tous les
// documents dans une seule transaction. En cas d'échec, l'état antérieur reste
// intact.
func (uc *UseCase) Import(ctx context.Context, file dto.BackupFile) (*dto.ImportResponse, error) {
	if err := validate(file); err != nil {
		return nil, err
	}

	err := uc.txRunner.RunRestore(ctx, func(
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		clientRepo repository.ClientRepository,
		supplierRepo repository.SupplierRepository,
		orderRepo repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
	) error {
		if err := productRepo.ReplaceAll(file.Products); err != nil {
			return err
		}
		if err := txnRepo.ReplaceAll(file.Transactions); err != nil {
			return err
		}
		if err := clientRepo.ReplaceAll(file.Clients); err != nil {
			return err
		}
		if err := supplierRepo.ReplaceAll(file.Suppliers); err != nil {
			return err
		}
		if err := orderRepo.ReplaceAll(file.OrderHistory); err != nil {
			return err
		}
		if file.Settings != nil {
			if err := settingsRepo.Save(file.Settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ImportResponse{
		Products:     len(file.Products),
		Transactions: len(file.Transactions),
		Clients:      len(file.Clients),
		Suppliers:    len(file.Suppliers),
		Orders:       len(file.OrderHistory),
		SettingsSet:  file.Settings != nil,
	}, nil
}

// validate contrôle la cohérence de la sauvegarde avant toute écriture.
func validate(file dto.BackupFile) error {
	seen := make(map[string]struct{})
	for i, p := range file.Products {
		if p == nil || p.ID == "" {
			return fmt.Errorf("produit %d: identifiant manquant: %w", i, domain.ErrSauvegardeInvalide)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("produit %q: identifiant dupliqué: %w", p.ID, domain.ErrSauvegardeInvalide)
		}
		seen[p.ID] = struct{}{}
		if p.CostPrice.IsNegative() || p.SellPrice.IsNegative() || p.Stock < 0 {
			return fmt.Errorf("produit %q: valeurs négatives: %w", p.ID, domain.ErrSauvegardeInvalide)
		}
	}
	for i, t := range file.Transactions {
		if t == nil || t.ID == "" {
			return fmt.Errorf("transaction %d: identifiant manquant: %w", i, domain.ErrSauvegardeInvalide)
		}
		if t.Type != entity.TransactionIn && t.Type != entity.TransactionOut {
			return fmt.Errorf("transaction %q: sens inconnu %q: %w", t.ID, t.Type, domain.ErrSauvegardeInvalide)
		}
		if t.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("transaction %q: montant négatif: %w", t.ID, domain.ErrSauvegardeInvalide)
		}
	}
	for i, c := range file.Clients {
		if c == nil || c.ID == "" {
			return fmt.Errorf("client %d: identifiant manquant: %w", i, domain.ErrSauvegardeInvalide)
		}
	}
	for i, s := range file.Suppliers {
		if s == nil || s.ID == "" {
			return fmt.Errorf("fournisseur %d: identifiant manquant: %w", i, domain.ErrSauvegardeInvalide)
		}
	}
	for i, o := range file.OrderHistory {
		if o == nil || o.ID == "" {
			return fmt.Errorf("commande %d: identifiant manquant: %w", i, domain.ErrSauvegardeInvalide)
		}
	}
	return nil
}
