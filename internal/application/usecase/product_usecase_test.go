package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newProductUseCase(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return usecase.NewProductUseCase(bolt.NewProductRepository(store))
}

func creerProduit(t *testing.T, uc *usecase.ProductUseCase, in dto.CreateProductRequest) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD catalogue
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DoublonRefuse(t *testing.T) {
	uc := newProductUseCase(t)

	creerProduit(t, uc, dto.CreateProductRequest{Name: "Savon"})

	// Le doublon est détecté sans tenir compte de la casse.
	_, err := uc.Create(dto.CreateProductRequest{Name: "savon"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un produit créé sans catégorie entre dans la catégorie de classement par défaut.
func TestProductCreate_CategorieParDefaut(t *testing.T) {
	uc := newProductUseCase(t)

	out := creerProduit(t, uc, dto.CreateProductRequest{Name: "Savon"})
	assert.Equal(t, "A classer", out.Category)

	out = creerProduit(t, uc, dto.CreateProductRequest{Name: "Nivea Soft", Category: "Crèmes & Hydratants"})
	assert.Equal(t, "Crèmes & Hydratants", out.Category)
}

func TestProductUpdate_ChampParChamp(t *testing.T) {
	uc := newProductUseCase(t)
	created := creerProduit(t, uc, dto.CreateProductRequest{
		Name:      "Savon",
		SellPrice: decimal.NewFromInt(13260),
		Stock:     10,
	})

	// Seuls les champs fournis bougent.
	nouveauStock := 25
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: &nouveauStock})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 25, out.Stock)
	assert.Equal(t, "Savon", out.Name)
	assert.True(t, out.SellPrice.Equal(decimal.NewFromInt(13260)))

	// Nom vidé : refusé.
	vide := "  "
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: &vide})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Produit inconnu : nil sans erreur, le handler traduit en 404.
	out, err = uc.Update("inconnu", dto.UpdateProductRequest{Stock: &nouveauStock})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete(t *testing.T) {
	uc := newProductUseCase(t)
	created := creerProduit(t, uc, dto.CreateProductRequest{Name: "Savon"})

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_FiltreParNom(t *testing.T) {
	uc := newProductUseCase(t)
	creerProduit(t, uc, dto.CreateProductRequest{Name: "Savon noir"})
	creerProduit(t, uc, dto.CreateProductRequest{Name: "Vaseline Aloe Vera"})

	out, err := uc.List("VASE")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Vaseline Aloe Vera", out.Items[0].Name)

	out, err = uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrégats du catalogue
// ──────────────────────────────────────────────────────────────────────────────

// stockValue = Σ(coût de revient × stock) ; les produits à stock nul comptent
// dans l'effectif mais pas dans la valeur.
func TestProductStats_Arithmetique(t *testing.T) {
	uc := newProductUseCase(t)
	creerProduit(t, uc, dto.CreateProductRequest{
		Name:      "Savon",
		Barcode:   "6111000000017",
		CostPrice: decimal.NewFromInt(10200),
		Stock:     10,
	})
	creerProduit(t, uc, dto.CreateProductRequest{
		Name:      "Vaseline",
		CostPrice: decimal.NewFromInt(8000),
		Stock:     5,
	})
	creerProduit(t, uc, dto.CreateProductRequest{
		Name:      "Sérum épuisé",
		CostPrice: decimal.NewFromInt(15000),
		Stock:     0,
	})

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ProductCount)
	assert.Equal(t, 15, stats.TotalStock)
	// 10200×10 + 8000×5 + 15000×0 = 142000
	assert.True(t, stats.StockValue.Equal(decimal.NewFromInt(142000)),
		"valeur de stock attendue 142000, obtenue %s", stats.StockValue)
	assert.Equal(t, 2, stats.WithoutBarcode)
}

// Un catalogue vide rend des agrégats à zéro, jamais une erreur.
func TestProductStats_CatalogueVide(t *testing.T) {
	uc := newProductUseCase(t)

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ProductCount)
	assert.Equal(t, 0, stats.TotalStock)
	assert.True(t, stats.StockValue.IsZero())
	assert.Equal(t, 0, stats.WithoutBarcode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalogue pré-détecté
// ──────────────────────────────────────────────────────────────────────────────

// Le premier import crée les produits pré-détectés à prix et stock nuls ; le
// second les ignore tous.
func TestImportPresets_Idempotent(t *testing.T) {
	uc := newProductUseCase(t)

	out, err := uc.ImportPresets()
	require.NoError(t, err)
	assert.Equal(t, len(entity.PresetProducts), out.Imported)
	assert.Equal(t, 0, out.Skipped)

	list, err := uc.List("")
	require.NoError(t, err)
	require.Equal(t, len(entity.PresetProducts), list.Total)
	for _, p := range list.Items {
		assert.True(t, p.CostPrice.IsZero(), "%s : prix de revient attendu à 0", p.Name)
		assert.True(t, p.SellPrice.IsZero(), "%s : prix de vente attendu à 0", p.Name)
		assert.Equal(t, 0, p.Stock)
	}

	out, err = uc.ImportPresets()
	require.NoError(t, err)
	assert.Equal(t, 0, out.Imported)
	assert.Equal(t, len(entity.PresetProducts), out.Skipped)
}

// Un produit saisi à la main avant l'import est conservé, l'entrée pré-détectée
// du même nom est ignorée.
func TestImportPresets_PreserveLExistant(t *testing.T) {
	uc := newProductUseCase(t)
	creerProduit(t, uc, dto.CreateProductRequest{
		Name:      "Nivea Soft",
		CostPrice: decimal.NewFromInt(7000),
		Stock:     3,
	})

	out, err := uc.ImportPresets()
	require.NoError(t, err)
	assert.Equal(t, len(entity.PresetProducts)-1, out.Imported)
	assert.Equal(t, 1, out.Skipped)

	list, err := uc.List("Nivea Soft")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.True(t, list.Items[0].CostPrice.Equal(decimal.NewFromInt(7000)),
		"le produit saisi ne doit pas être écrasé")
	assert.Equal(t, 3, list.Items[0].Stock)
}
