package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/manyboliot2022/eynpro/internal/application/backup"
	"github.com/manyboliot2022/eynpro/internal/application/costing"
	"github.com/manyboliot2022/eynpro/internal/application/finance"
	"github.com/manyboliot2022/eynpro/internal/application/pos"
	"github.com/manyboliot2022/eynpro/internal/application/usecase"
	domcosting "github.com/manyboliot2022/eynpro/internal/domain/costing"
	"github.com/manyboliot2022/eynpro/internal/infrastructure/bolt"
	httpRouter "github.com/manyboliot2022/eynpro/internal/interfaces/http"
	"github.com/manyboliot2022/eynpro/pkg/config"
	"github.com/manyboliot2022/eynpro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("ouverture du magasin de documents")
	}
	defer store.Close()

	productRepo := bolt.NewProductRepository(store)
	txnRepo := bolt.NewTransactionRepository(store)
	clientRepo := bolt.NewClientRepository(store)
	supplierRepo := bolt.NewSupplierRepository(store)
	orderRepo := bolt.NewOrderRepository(store)
	settingsRepo := bolt.NewSettingsRepository(store)
	txRunner := bolt.NewTxRunner(store)

	engine := domcosting.NewEngine(domcosting.Policy{
		MarkupTiers:   cfg.Costing.MarkupTiers,
		CatalogMarkup: cfg.Costing.CatalogMarkup,
	})

	costingUC := costing.NewUseCase(engine, txRunner, orderRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	salesUC := pos.NewUseCase(productRepo, clientRepo, txnRepo, settingsRepo)
	financeUC := finance.NewUseCase(txnRepo)
	backupUC := backup.NewUseCase(productRepo, txnRepo, clientRepo, supplierRepo, orderRepo, settingsRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CostingUC:  costingUC,
		ProductUC:  productUC,
		ClientUC:   clientUC,
		SupplierUC: supplierUC,
		SalesUC:    salesUC,
		FinanceUC:  financeUC,
		SettingsUC: settingsUC,
		BackupUC:   backupUC,
	})

	httpLog := log.With().Str("composant", "http").Logger()
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("serveur à l'écoute")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
