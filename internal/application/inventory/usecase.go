package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// barcodePrefix prefijo de los códigos generados: WMS-{inicial}-{NNN}.
const barcodePrefix = "WMS"

// ItemUseCase casos de uso de artículos: CRUD, asignación de código de barras
// y reconciliación de ubicaciones. Las operaciones que tocan stock_locations
// corren dentro de TxRunner para mantener el invariante de current_stock.
type ItemUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	locRepo       repository.StockLocationRepository
	warehouseRepo repository.WarehouseRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	locRepo repository.StockLocationRepository,
	warehouseRepo repository.WarehouseRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		locRepo:       locRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create crea un artículo, le asigna código de barras y, si trae bodega
// principal, siembra la primera fila de stock_locations con el stock inicial.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name es requerido")
	}
	if in.InitialStock < 0 || in.MinThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.WarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}

	barcode, err := uc.allocateBarcode(in.Location)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		WarehouseID:  in.WarehouseID,
		Location:     in.Location,
		CurrentStock: in.InitialStock,
		MinThreshold: in.MinThreshold,
		Barcode:      barcode,
		ImageURL:     in.ImageURL,
		Unit:         in.Unit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		locRepo repository.StockLocationRepository,
		_ repository.TransactionRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if item.WarehouseID == "" {
			return nil
		}
		return locRepo.Upsert(&entity.StockLocation{
			ID:          uuid.New().String(),
			InventoryID: item.ID,
			WarehouseID: item.WarehouseID,
			Location:    item.Location,
			Quantity:    item.CurrentStock,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// GetByID obtiene un artículo con sus ubicaciones.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// GetByBarcode obtiene un artículo por su código de barras (lectura con escáner).
func (uc *ItemUseCase) GetByBarcode(barcode string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item)
}

// List lista artículos con filtros opcionales (AND) y paginación.
func (uc *ItemUseCase) List(filter repository.ItemFilter, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it, nil))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock lista artículos en o por debajo de su umbral mínimo.
func (uc *ItemUseCase) ListLowStock() ([]dto.ItemResponse, error) {
	list, err := uc.itemRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it, nil))
	}
	return items, nil
}

// Delete elimina un artículo por ID.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// allocateBarcode genera WMS-{inicial}-{NNN} con NNN = count(artículos)+1 a
// tres dígitos. La secuencia derivada de COUNT puede colisionar bajo creación
// concurrente; si el código ya existe se añade el timestamp actual como sufijo.
func (uc *ItemUseCase) allocateBarcode(location string) (string, error) {
	count, err := uc.itemRepo.Count()
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%s-%s-%03d", barcodePrefix, locationInitial(location), count+1)

	existing, err := uc.itemRepo.GetByBarcode(code)
	if err != nil {
		return "", err
	}
	if existing != nil {
		code = fmt.Sprintf("%s-%d", code, time.Now().Unix())
	}
	return code, nil
}

// locationInitial devuelve la inicial (mayúscula) de la ubicación, o "X" si no hay.
func locationInitial(location string) string {
	for _, r := range strings.TrimSpace(location) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return strings.ToUpper(string(r))
		}
	}
	return "X"
}

// toResponse arma la respuesta del artículo incluyendo sus ubicaciones.
func (uc *ItemUseCase) toResponse(item *entity.InventoryItem) (*dto.ItemResponse, error) {
	locs, err := uc.locRepo.ListByItem(item.ID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, locs), nil
}

func toItemResponse(item *entity.InventoryItem, locs []*entity.StockLocation) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		CategoryID:   item.CategoryID,
		SupplierID:   item.SupplierID,
		WarehouseID:  item.WarehouseID,
		Location:     item.Location,
		CurrentStock: item.CurrentStock,
		MinThreshold: item.MinThreshold,
		Barcode:      item.Barcode,
		ImageURL:     item.ImageURL,
		Unit:         item.Unit,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	for _, l := range locs {
		resp.Locations = append(resp.Locations, dto.StockLocationResponse{
			WarehouseID: l.WarehouseID,
			Location:    l.Location,
			Quantity:    l.Quantity,
		})
	}
	return resp
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		InventoryID: t.InventoryID,
		UserID:      t.UserID,
		WarehouseID: t.WarehouseID,
		Quantity:    t.Quantity,
		Type:        t.Type,
		Reason:      t.Reason,
		CreatedAt:   t.CreatedAt,
	}
}
