package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/barcode"
	"github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
)

// Páginas del SPA que gobierna la matriz de permisos.
const (
	PageInventory    = "inventory"
	PageSuppliers    = "suppliers"
	PageTransactions = "transactions"
	PageReports      = "reports"
	PageDeliveries   = "deliveries"
	PageSettings     = "settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ItemUC         *inventory.ItemUseCase
	StockUC        *inventory.UpdateStockUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	OrderUC        *usecase.OrderUseCase
	TransactionUC  *usecase.TransactionUseCase
	WearUC         *usecase.WearUseCase
	DeliveryNoteUC *usecase.DeliveryNoteUseCase
	SignatureUC    *usecase.SignatureUseCase
	UserUC         *usecase.UserUseCase
	PermissionUC   *usecase.PermissionUseCase
	LayoutUC       *usecase.LayoutUseCase
	EmailFormatUC  *usecase.EmailFormatUseCase
	DashboardUC    *usecase.DashboardUseCase
	PDFGen         *pdf.Generator
	Barcode        *barcode.Renderer
	JWTSecret      string
	UploadsDir     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público; register lo hace un admin autenticado.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Inventory (protegido, página inventory)
	invGroup := protected.Group("/inventory", RequirePage(PageInventory, deps.PermissionUC))
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.StockUC, deps.Barcode, deps.UploadsDir)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/barcode/:barcode", inventoryHandler.GetByBarcode)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", inventoryHandler.Delete)
	invGroup.Post("/:id/stock", inventoryHandler.UpdateStock)
	invGroup.Get("/:id/barcode.png", inventoryHandler.BarcodePNG)
	invGroup.Get("/:id/qr.png", inventoryHandler.QRPNG)
	invGroup.Post("/images", inventoryHandler.UploadImage)

	// Categories y warehouses comparten la página inventory
	categories := protected.Group("/categories", RequirePage(PageInventory, deps.PermissionUC))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	warehouses := protected.Group("/warehouses", RequirePage(PageInventory, deps.PermissionUC))
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Suppliers y pedidos de compra (página suppliers)
	suppliers := protected.Group("/suppliers", RequirePage(PageSuppliers, deps.PermissionUC))
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.OrderUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/orders", supplierHandler.CreateOrder)

	orders := protected.Group("/orders", RequirePage(PageSuppliers, deps.PermissionUC))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/send", orderHandler.Send)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Transactions (solo lectura, página transactions)
	transactions := protected.Group("/transactions", RequirePage(PageTransactions, deps.PermissionUC))
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Wear equipment (página reports)
	wear := protected.Group("/wear-equipment", RequirePage(PageReports, deps.PermissionUC))
	wearHandler := NewWearHandler(deps.WearUC, deps.PDFGen)
	wear.Post("/", wearHandler.Create)
	wear.Get("/", wearHandler.List)
	wear.Get("/report", wearHandler.Report)
	wear.Get("/report.pdf", wearHandler.ReportPDF)
	wear.Get("/:id", wearHandler.GetByID)
	wear.Put("/:id", wearHandler.Update)
	wear.Delete("/:id", wearHandler.Delete)

	// Delivery notes y firmas (página deliveries)
	notes := protected.Group("/delivery-notes", RequirePage(PageDeliveries, deps.PermissionUC))
	noteHandler := NewDeliveryNoteHandler(deps.DeliveryNoteUC, deps.PDFGen)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Post("/:id/sign", noteHandler.Sign)
	notes.Get("/:id/pdf", noteHandler.PDF)

	signatures := protected.Group("/signatures", RequirePage(PageDeliveries, deps.PermissionUC))
	signatureHandler := NewSignatureHandler(deps.SignatureUC, deps.UploadsDir)
	signatures.Post("/", signatureHandler.Create)
	signatures.Get("/", signatureHandler.List)
	signatures.Get("/:id", signatureHandler.GetByID)

	// Users y permisos (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	permissions := protected.Group("/permissions", RequireRole(entity.RoleAdmin))
	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions.Get("/", permissionHandler.List)
	permissions.Put("/", permissionHandler.Set)

	// Layouts (cualquier usuario autenticado, sobre su propio layout)
	layouts := protected.Group("/layouts")
	layoutHandler := NewLayoutHandler(deps.LayoutUC)
	layouts.Get("/:page", layoutHandler.Get)
	layouts.Put("/:page", layoutHandler.Save)
	layouts.Delete("/:page", layoutHandler.Delete)

	// Email formats (página settings)
	formats := protected.Group("/email-formats", RequirePage(PageSettings, deps.PermissionUC))
	emailFormatHandler := NewEmailFormatHandler(deps.EmailFormatUC)
	formats.Post("/", emailFormatHandler.Create)
	formats.Get("/", emailFormatHandler.List)
	formats.Get("/:id", emailFormatHandler.GetByID)
	formats.Put("/:id", emailFormatHandler.Update)
	formats.Delete("/:id", emailFormatHandler.Delete)

	// Dashboard (cualquier usuario autenticado)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/metrics", dashboardHandler.Metrics)
}
