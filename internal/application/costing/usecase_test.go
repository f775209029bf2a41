package costing_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	domcosting "github.com/manyboliot2022/eynpro/internal/domain/costing"
	"github.com/manyboliot2022/eynpro/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test : magasin bbolt jetable dans un répertoire temporaire.
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(t *testing.T) (*costing.UseCase, *bolt.Store) {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	engine := domcosting.NewEngine(domcosting.DefaultPolicy())
	uc := costing.NewUseCase(engine, bolt.NewTxRunner(store), bolt.NewOrderRepository(store))
	return uc, store
}

func requeteSavon() dto.CommitBatchRequest {
	return dto.CommitBatchRequest{
		QuoteRequest: dto.QuoteRequest{
			Items: []dto.OrderItemRequest{
				{Name: "Savon", BuyPrice: decimal.NewFromInt(5000), Quantity: 10},
			},
			GPTotal:                decimal.NewFromInt(50000),
			MonthlyCharges:         decimal.NewFromInt(200000),
			EstimatedMonthlyVolume: 1000,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validation d'un lot : fusion dans le catalogue
// ──────────────────────────────────────────────────────────────────────────────

// Premier commit : le produit est créé avec le stock du lot et les prix chiffrés.
func TestCommitBatch_CreationProduit(t *testing.T) {
	uc, store := newUseCase(t)

	out, err := uc.CommitBatch(context.Background(), requeteSavon())
	require.NoError(t, err)
	assert.Equal(t, 1, out.ProductsCreated)
	assert.Equal(t, 0, out.ProductsUpdated)

	p, err := bolt.NewProductRepository(store).FindByName("Savon")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.CostPrice.Equal(decimal.NewFromInt(10200)),
		"coût attendu 10200, obtenu %s", p.CostPrice)
	assert.True(t, p.SellPrice.Equal(decimal.NewFromInt(13260)),
		"prix de vente attendu 13260, obtenu %s", p.SellPrice)
}

// Revalider le même lot incrémente le stock (fusion cumulative, pas idempotente)
// et écrase les prix avec le même chiffrage.
func TestCommitBatch_RecommitDoubleLeStock(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CommitBatch(ctx, requeteSavon())
	require.NoError(t, err)
	out, err := uc.CommitBatch(ctx, requeteSavon())
	require.NoError(t, err)
	assert.Equal(t, 0, out.ProductsCreated)
	assert.Equal(t, 1, out.ProductsUpdated)

	p, err := bolt.NewProductRepository(store).FindByName("Savon")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 20, p.Stock)
	assert.True(t, p.CostPrice.Equal(decimal.NewFromInt(10200)))
	assert.True(t, p.SellPrice.Equal(decimal.NewFromInt(13260)))
}

// La fusion par nom est insensible à la casse : "vaseline" retrouve "Vaseline".
func TestCommitBatch_FusionInsensibleALaCasse(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	req := requeteSavon()
	req.Items[0].Name = "Vaseline"
	_, err := uc.CommitBatch(ctx, req)
	require.NoError(t, err)

	req.Items[0].Name = "vaseline"
	out, err := uc.CommitBatch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ProductsUpdated)

	repo := bolt.NewProductRepository(store)
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "un seul produit doit exister, pas un doublon")
	assert.Equal(t, "Vaseline", list[0].Name, "le nom d'origine est conservé")
	assert.Equal(t, 20, list[0].Stock)
}

// Une ligne sans nom crée un produit avec le nom de substitution, dans la
// catégorie de classement par défaut.
func TestCommitBatch_LigneSansNom(t *testing.T) {
	uc, store := newUseCase(t)

	req := requeteSavon()
	req.Items[0].Name = ""
	_, err := uc.CommitBatch(context.Background(), req)
	require.NoError(t, err)

	list, err := bolt.NewProductRepository(store).List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Produit sans nom", list[0].Name)
	assert.Equal(t, "A classer", list[0].Category)
}

// SaveHistory ajoute la commande à l'historique dans la même transaction.
func TestCommitBatch_HistoriqueOptionnel(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	req := requeteSavon()
	req.SaveHistory = true
	out, err := uc.CommitBatch(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, out.OrderID)

	orders, err := uc.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, out.OrderID, orders[0].ID)
	assert.True(t, orders[0].TotalCost.Equal(decimal.NewFromInt(102000)),
		"coût total attendu 102000, obtenu %s", orders[0].TotalCost)

	// Sans le drapeau, rien ne s'ajoute.
	req.SaveHistory = false
	out, err = uc.CommitBatch(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, out.OrderID)

	orders, err = uc.ListOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

// Un lot vide ou une ligne invalide est refusé sans rien écrire.
func TestCommitBatch_EntreesInvalides(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	_, err := uc.CommitBatch(ctx, dto.CommitBatchRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := requeteSavon()
	req.Items[0].Quantity = 0
	_, err = uc.CommitBatch(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = requeteSavon()
	req.Items[0].BuyPrice = decimal.NewFromInt(-1)
	_, err = uc.CommitBatch(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := bolt.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, list, "aucun produit ne doit avoir été créé")
}

// L'aperçu ne persiste rien.
func TestPreview_SansEffet(t *testing.T) {
	uc, store := newUseCase(t)

	out, err := uc.Preview(requeteSavon().QuoteRequest)
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].UnitCost.Equal(decimal.NewFromInt(10200)))

	list, err := bolt.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
