package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Devuelven copias para
// simular una BD real: mutar lo retornado no cambia el estado guardado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]entity.InventoryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]entity.InventoryItem)}
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := it
	return &cp, nil
}

func (r *fakeItemRepo) GetByBarcode(barcode string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.Barcode == barcode {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) UpdateCurrentStock(id string, total int) error {
	it, ok := r.items[id]
	if !ok {
		return nil
	}
	it.CurrentStock = total
	r.items[id] = it
	return nil
}

func (r *fakeItemRepo) List(_ repository.ItemFilter, _, _ int) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		cp := it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) Count() (int, error) { return len(r.items), nil }

func (r *fakeItemRepo) ListLowStock() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if it.IsLowStock() {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeLocRepo struct {
	rows map[string]entity.StockLocation // clave inventoryID|warehouseID
}

func newFakeLocRepo() *fakeLocRepo {
	return &fakeLocRepo{rows: make(map[string]entity.StockLocation)}
}

func locKey(inventoryID, warehouseID string) string {
	return inventoryID + "|" + warehouseID
}

func (r *fakeLocRepo) Get(inventoryID, warehouseID string) (*entity.StockLocation, error) {
	row, ok := r.rows[locKey(inventoryID, warehouseID)]
	if !ok {
		return nil, nil
	}
	cp := row
	return &cp, nil
}

func (r *fakeLocRepo) GetForUpdate(inventoryID, warehouseID string) (*entity.StockLocation, error) {
	return r.Get(inventoryID, warehouseID)
}

func (r *fakeLocRepo) ListByItem(inventoryID string) ([]*entity.StockLocation, error) {
	var out []*entity.StockLocation
	for k, row := range r.rows {
		if strings.HasPrefix(k, inventoryID+"|") {
			cp := row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r *fakeLocRepo) Upsert(loc *entity.StockLocation) error {
	key := locKey(loc.InventoryID, loc.WarehouseID)
	if existing, ok := r.rows[key]; ok {
		loc.ID = existing.ID // la fila conserva su identidad en un upsert
	}
	r.rows[key] = *loc
	return nil
}

func (r *fakeLocRepo) UpdateLocation(inventoryID, warehouseID, location string) error {
	key := locKey(inventoryID, warehouseID)
	if row, ok := r.rows[key]; ok {
		row.Location = location
		r.rows[key] = row
	}
	return nil
}

func (r *fakeLocRepo) Repoint(inventoryID, fromWarehouseID, toWarehouseID, location string) error {
	key := locKey(inventoryID, fromWarehouseID)
	row, ok := r.rows[key]
	if !ok {
		return nil
	}
	delete(r.rows, key)
	row.WarehouseID = toWarehouseID
	row.Location = location
	r.rows[locKey(inventoryID, toWarehouseID)] = row
	return nil
}

func (r *fakeLocRepo) Delete(inventoryID, warehouseID string) error {
	delete(r.rows, locKey(inventoryID, warehouseID))
	return nil
}

func (r *fakeLocRepo) DeleteNotIn(inventoryID string, keepWarehouseIDs []string) error {
	keep := make(map[string]bool, len(keepWarehouseIDs))
	for _, id := range keepWarehouseIDs {
		keep[id] = true
	}
	for k, row := range r.rows {
		if strings.HasPrefix(k, inventoryID+"|") && !keep[row.WarehouseID] {
			delete(r.rows, k)
		}
	}
	return nil
}

func (r *fakeLocRepo) SumByItem(inventoryID string) (int, error) {
	total := 0
	for k, row := range r.rows {
		if strings.HasPrefix(k, inventoryID+"|") {
			total += row.Quantity
		}
	}
	return total, nil
}

type fakeTxRepo struct {
	created []entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.created = append(r.created, *tx)
	return nil
}

func (r *fakeTxRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, t := range r.created {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTxRepo) List(_ repository.TransactionFilter, _, _ int) ([]*entity.Transaction, int, error) {
	out := make([]*entity.Transaction, 0, len(r.created))
	for i := range r.created {
		cp := r.created[i]
		out = append(out, &cp)
	}
	return out, len(out), nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[string]entity.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = entity.Warehouse{ID: id, Name: "Bodega " + id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = *w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := w
	return &cp, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = *w
	return nil
}

func (r *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		cp := w
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.warehouses, id)
	return nil
}

// fakeTxRunner pasa los dobles a fn. Los casos de uso no escriben antes de sus
// validaciones, así que un fallo deja el estado intacto igual que un rollback.
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	locRepo  *fakeLocRepo
	txRepo   *fakeTxRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	locRepo repository.StockLocationRepository,
	txRepo repository.TransactionRepository,
) error) error {
	return fn(r.itemRepo, r.locRepo, r.txRepo)
}
