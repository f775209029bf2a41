package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyboliot2022/eynpro/internal/application/backup"
	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/application/finance"
	"github.com/manyboliot2022/eynpro/internal/application/pos"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
	domcosting "github.com/manyboliot2022/eynpro/internal/domain/costing"
	"github.com/manyboliot2022/eynpro/internal/infrastructure/bolt"
	apphttp "github.com/manyboliot2022/eynpro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test : application Fiber complète sur un magasin jetable.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	productRepo := bolt.NewProductRepository(store)
	txnRepo := bolt.NewTransactionRepository(store)
	clientRepo := bolt.NewClientRepository(store)
	supplierRepo := bolt.NewSupplierRepository(store)
	orderRepo := bolt.NewOrderRepository(store)
	settingsRepo := bolt.NewSettingsRepository(store)
	txRunner := bolt.NewTxRunner(store)
	engine := domcosting.NewEngine(domcosting.DefaultPolicy())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CostingUC:  costing.NewUseCase(engine, txRunner, orderRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		ClientUC:   usecase.NewClientUseCase(clientRepo),
		SupplierUC: usecase.NewSupplierUseCase(supplierRepo),
		SalesUC:    pos.NewUseCase(productRepo, clientRepo, txnRepo, settingsRepo),
		FinanceUC:  finance.NewUseCase(txnRepo),
		SettingsUC: usecase.NewSettingsUseCase(settingsRepo),
		BackupUC:   backup.NewUseCase(productRepo, txnRepo, clientRepo, supplierRepo, orderRepo, settingsRepo, txRunner),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "corps reçu : %s", raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Parcours complet : aperçu, validation, catalogue, vente
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ApercuPuisValidation(t *testing.T) {
	app := buildTestApp(t)

	lot := `{
		"items": [{"name": "Savon", "buy_price": "5000", "quantity": 10}],
		"gp_total": "50000",
		"monthly_charges": "200000",
		"estimated_monthly_volume": 1000
	}`

	// Aperçu : chiffrage sans écriture.
	resp := doJSON(t, app, http.MethodPost, "/api/costing/preview", lot)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quote struct {
		Lines []struct {
			UnitCost         string `json:"unit_cost"`
			CatalogSellPrice string `json:"catalog_sell_price"`
		} `json:"lines"`
	}
	decodeBody(t, resp, &quote)
	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "10200", quote.Lines[0].UnitCost)
	assert.Equal(t, "13260", quote.Lines[0].CatalogSellPrice)

	resp = doJSON(t, app, http.MethodGet, "/api/products/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	decodeBody(t, resp, &list)
	assert.Equal(t, 0, list.Total, "l'aperçu ne doit rien créer")

	// Validation : le produit entre au catalogue.
	resp = doJSON(t, app, http.MethodPost, "/api/costing/commit", lot)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var commit struct {
		ProductsCreated int `json:"products_created"`
	}
	decodeBody(t, resp, &commit)
	assert.Equal(t, 1, commit.ProductsCreated)

	resp = doJSON(t, app, http.MethodGet, "/api/products/?search=savon", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products struct {
		Items []struct {
			ID        string `json:"id"`
			SellPrice string `json:"sell_price"`
			Stock     int    `json:"stock"`
		} `json:"items"`
	}
	decodeBody(t, resp, &products)
	require.Len(t, products.Items, 1)
	assert.Equal(t, "13260", products.Items[0].SellPrice)
	assert.Equal(t, 10, products.Items[0].Stock)

	// Vente du produit fraîchement catalogué.
	resp = doJSON(t, app, http.MethodPost, "/api/sales/",
		`{"items": [{"product_id": "`+products.Items[0].ID+`", "quantity": 2}], "method": "OM"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale struct {
		Total string `json:"total"`
	}
	decodeBody(t, resp, &sale)
	assert.Equal(t, "26520", sale.Total)

	// Le journal et les agrégats reflètent la vente.
	resp = doJSON(t, app, http.MethodGet, "/api/finance/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		CashIn    string `json:"cash_in"`
		NetProfit string `json:"net_profit"`
	}
	decodeBody(t, resp, &summary)
	assert.Equal(t, "26520", summary.CashIn)
	assert.Equal(t, "26520", summary.NetProfit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traduction des erreurs du domaine
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CodesErreur(t *testing.T) {
	app := buildTestApp(t)

	// Produit inconnu : 404.
	resp := doJSON(t, app, http.MethodGet, "/api/products/inconnu", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Panier vide : 400 avec code dédié.
	resp = doJSON(t, app, http.MethodPost, "/api/sales/", `{"items": []}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResp struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "PANIER_VIDE", errResp.Code)

	// Facture sans client : 400 CLIENT_REQUIS. Il faut d'abord un produit.
	resp = doJSON(t, app, http.MethodPost, "/api/products/",
		`{"name": "Savon", "sell_price": "13260"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, http.MethodPost, "/api/sales/share",
		`{"items": [{"product_id": "`+created.ID+`", "quantity": 1}], "quote": false}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "CLIENT_REQUIS", errResp.Code)

	// Doublon de nom au catalogue : 409.
	resp = doJSON(t, app, http.MethodPost, "/api/products/",
		`{"name": "savon"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Corps illisible : 400.
	resp = doJSON(t, app, http.MethodPost, "/api/costing/preview", `{pas du json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Profil d'entreprise
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ProfilEntreprise(t *testing.T) {
	app := buildTestApp(t)

	// Par défaut tant que rien n'a été sauvegardé.
	resp := doJSON(t, app, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings struct {
		Name string `json:"name"`
	}
	decodeBody(t, resp, &settings)
	assert.Equal(t, "Everything you need", settings.Name)

	resp = doJSON(t, app, http.MethodPut, "/api/settings",
		`{"name": "Boutique Kaloum", "whatsapp": "+224 600000000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &settings)
	assert.Equal(t, "Boutique Kaloum", settings.Name)
}
