package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyboliot2022/eynpro/internal/application/backup"
	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/application/finance"
	"github.com/manyboliot2022/eynpro/internal/application/pos"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	CostingUC  *costing.UseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	SupplierUC *usecase.SupplierUseCase
	SalesUC    *pos.UseCase
	FinanceUC  *finance.UseCase
	SettingsUC *usecase.SettingsUseCase
	BackupUC   *backup.UseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Calculateur de coûts
	costingGroup := api.Group("/costing")
	costingHandler := NewCostingHandler(deps.CostingUC)
	costingGroup.Post("/preview", costingHandler.Preview)
	costingGroup.Post("/commit", costingHandler.Commit)
	costingGroup.Get("/orders", costingHandler.ListOrders)

	// Catalogue. Les routes fixes avant la route paramétrée.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/stats", productHandler.Stats)
	products.Post("/presets", productHandler.ImportPresets)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Fournisseurs
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Point de vente
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Checkout)
	sales.Post("/share", salesHandler.Share)

	// Journal de caisse
	financeGroup := api.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup.Get("/summary", financeHandler.Summary)
	financeGroup.Post("/expenses", financeHandler.AddExpense)
	financeGroup.Post("/incomes", financeHandler.AddIncome)
	api.Get("/transactions", financeHandler.ListTransactions)

	// Profil d'entreprise
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Save)

	// Sauvegarde
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
}
