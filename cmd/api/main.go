package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/almacen-api/internal/application/alerts"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	infrabarcode "github.com/jhoicas/almacen-api/internal/infrastructure/barcode"
	"github.com/jhoicas/almacen-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	locRepo := postgres.NewStockLocationRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	wearRepo := postgres.NewWearEquipmentRepository(pool)
	noteRepo := postgres.NewDeliveryNoteRepository(pool)
	sigRepo := postgres.NewSignatureRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	layoutRepo := postgres.NewLayoutRepository(pool)
	formatRepo := postgres.NewEmailFormatRepository(pool)
	metricsRepo := postgres.NewMetricsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo saliente: con SMTP configurado se envía de verdad; sin él,
	// el sender nulo registra y descarta.
	var sender usecase.EmailSender
	if cfg.SMTP.Enabled() {
		sender = mail.NewSMTPSender(cfg.SMTP, log)
	} else {
		sender = mail.NewNopSender(log)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, locRepo, warehouseRepo)
	stockUC := inventory.NewUpdateStockUseCase(txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, supplierRepo, itemRepo, formatRepo, sender)
	transactionUC := usecase.NewTransactionUseCase(txRepo)
	wearUC := usecase.NewWearUseCase(wearRepo)
	noteUC := usecase.NewDeliveryNoteUseCase(noteRepo, itemRepo, sigRepo)
	signatureUC := usecase.NewSignatureUseCase(sigRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	permissionUC := usecase.NewPermissionUseCase(permRepo)
	layoutUC := usecase.NewLayoutUseCase(layoutRepo)
	emailFormatUC := usecase.NewEmailFormatUseCase(formatRepo)
	dashboardUC := usecase.NewDashboardUseCase(metricsRepo, itemRepo, txRepo)

	pdfGen := infrapdf.NewGenerator(cfg.App.Name)
	renderer := infrabarcode.NewRenderer()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes de artículos y firmas subidas
	app.Static("/uploads", cfg.Uploads.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ItemUC:         itemUC,
		StockUC:        stockUC,
		WarehouseUC:    warehouseUC,
		CategoryUC:     categoryUC,
		SupplierUC:     supplierUC,
		OrderUC:        orderUC,
		TransactionUC:  transactionUC,
		WearUC:         wearUC,
		DeliveryNoteUC: noteUC,
		SignatureUC:    signatureUC,
		UserUC:         userUC,
		PermissionUC:   permissionUC,
		LayoutUC:       layoutUC,
		EmailFormatUC:  emailFormatUC,
		DashboardUC:    dashboardUC,
		PDFGen:         pdfGen,
		Barcode:        renderer,
		JWTSecret:      cfg.JWT.Secret,
		UploadsDir:     cfg.Uploads.Dir,
	})

	alertsCtx, stopAlerts := context.WithCancel(ctx)
	defer stopAlerts()
	if cfg.Alerts.Enabled {
		checker := alerts.NewLowStockChecker(
			itemRepo, formatRepo, sender,
			cfg.Alerts.Recipients,
			time.Duration(cfg.Alerts.IntervalHours)*time.Hour,
			log,
		)
		go checker.Start(alertsCtx)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopAlerts()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
