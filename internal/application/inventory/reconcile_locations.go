package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Update actualiza los campos del artículo y reconcilia sus ubicaciones.
//
// Rama de reconciliación (bodega principal / ubicación):
//   - Cambio de bodega principal con fila existente en la nueva bodega:
//     fusión — la cantidad de la bodega anterior se suma a la fila existente y
//     la fila anterior se elimina.
//   - Cambio de bodega principal sin fila en la nueva: movimiento — la fila
//     anterior se reapunta en el sitio (misma fila, misma cantidad).
//   - Solo cambia el texto de ubicación: se actualiza en el sitio, cantidad intacta.
//   - El artículo gana su primera bodega: se crea la fila sembrada con el
//     current_stock acumulado.
//
// Ubicaciones adicionales: la lista recibida es autoritativa. Cada par se
// upserta (cantidad 0 si es nueva; solo el texto si ya existe — nunca se pone
// a cero una cantidad existente) y después se elimina toda fila cuya bodega no
// esté en {principal ∪ adicionales}. Omitir una ubicación antes presente la
// elimina junto con su cantidad; es el comportamiento histórico del sistema y
// está cubierto por un test de regresión.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	for _, al := range in.AdditionalLocations {
		if al.WarehouseID == "" {
			return nil, domain.NewValidationError("additional_locations: warehouse_id es requerido")
		}
	}

	var updated *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		locRepo repository.StockLocationRepository,
		_ repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		oldWarehouse := item.WarehouseID
		oldLocation := item.Location
		applyItemFields(item, in)
		now := time.Now()
		item.UpdatedAt = now

		newWarehouse := item.WarehouseID
		newLocation := item.Location

		switch {
		case oldWarehouse != "" && newWarehouse != "" && oldWarehouse != newWarehouse:
			if err := uc.moveOrMerge(locRepo, item.ID, oldWarehouse, newWarehouse, newLocation, now); err != nil {
				return err
			}
		case oldWarehouse != "" && oldWarehouse == newWarehouse && oldLocation != newLocation:
			if err := locRepo.UpdateLocation(item.ID, newWarehouse, newLocation); err != nil {
				return err
			}
		case oldWarehouse == "" && newWarehouse != "":
			// Primera bodega del artículo: sembrar con el stock acumulado.
			if err := locRepo.Upsert(&entity.StockLocation{
				ID:          uuid.New().String(),
				InventoryID: item.ID,
				WarehouseID: newWarehouse,
				Location:    newLocation,
				Quantity:    item.CurrentStock,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
		}

		valid := make([]string, 0, len(in.AdditionalLocations)+1)
		if newWarehouse != "" {
			valid = append(valid, newWarehouse)
		}
		for _, al := range in.AdditionalLocations {
			if al.WarehouseID == newWarehouse {
				continue // la principal ya está reconciliada
			}
			valid = append(valid, al.WarehouseID)
			existing, err := locRepo.Get(item.ID, al.WarehouseID)
			if err != nil {
				return err
			}
			if existing == nil {
				if err := locRepo.Upsert(&entity.StockLocation{
					ID:          uuid.New().String(),
					InventoryID: item.ID,
					WarehouseID: al.WarehouseID,
					Location:    al.Location,
					Quantity:    0,
					UpdatedAt:   now,
				}); err != nil {
					return err
				}
				continue
			}
			if err := locRepo.UpdateLocation(item.ID, al.WarehouseID, al.Location); err != nil {
				return err
			}
		}

		// Reconciliación completa: se eliminan las filas fuera del conjunto válido.
		if err := locRepo.DeleteNotIn(item.ID, valid); err != nil {
			return err
		}

		total, err := locRepo.SumByItem(item.ID)
		if err != nil {
			return err
		}
		item.CurrentStock = total
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		if err := itemRepo.UpdateCurrentStock(item.ID, total); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(updated)
}

// moveOrMerge aplica el cambio de bodega principal: fusión si ya hay fila en
// la bodega destino, movimiento en el sitio si no.
func (uc *ItemUseCase) moveOrMerge(
	locRepo repository.StockLocationRepository,
	itemID, oldWarehouse, newWarehouse, newLocation string,
	now time.Time,
) error {
	oldRow, err := locRepo.GetForUpdate(itemID, oldWarehouse)
	if err != nil {
		return err
	}
	if oldRow == nil {
		// Sin fila en la bodega anterior (estado degradado): sembrar la nueva vacía.
		return locRepo.Upsert(&entity.StockLocation{
			ID:          uuid.New().String(),
			InventoryID: itemID,
			WarehouseID: newWarehouse,
			Location:    newLocation,
			Quantity:    0,
			UpdatedAt:   now,
		})
	}

	existing, err := locRepo.GetForUpdate(itemID, newWarehouse)
	if err != nil {
		return err
	}
	if existing != nil {
		// Fusión: sumar la cantidad vieja en la fila destino y borrar la vieja.
		existing.Quantity += oldRow.Quantity
		existing.Location = newLocation
		existing.UpdatedAt = now
		if err := locRepo.Upsert(existing); err != nil {
			return err
		}
		return locRepo.Delete(itemID, oldWarehouse)
	}
	// Movimiento: reapuntar la fila existente (misma fila, cantidad intacta).
	return locRepo.Repoint(itemID, oldWarehouse, newWarehouse, newLocation)
}

// applyItemFields copia al artículo los campos presentes del request.
func applyItemFields(item *entity.InventoryItem, in dto.UpdateItemRequest) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	if in.WarehouseID != nil {
		item.WarehouseID = *in.WarehouseID
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.MinThreshold != nil {
		item.MinThreshold = *in.MinThreshold
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
}
