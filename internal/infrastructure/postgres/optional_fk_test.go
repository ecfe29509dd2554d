package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

// capturingQuerier registra el SQL ejecutado sin tocar una base de datos.
type capturingQuerier struct {
	sqls []string
}

func (q *capturingQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	return pgconn.CommandTag{}, nil
}

func (q *capturingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *capturingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

var (
	nullifAny  = regexp.MustCompile(`NULLIF\(\$\d+,''\)`)
	nullifUUID = regexp.MustCompile(`NULLIF\(\$\d+,''\)::uuid`)
)

// Los FK opcionales se escriben con NULLIF($n,''). Sin el cast ::uuid el
// servidor resuelve la expresión como text y el INSERT/UPDATE sobre una
// columna uuid falla en el prepare (42804), así que todo NULLIF de
// escritura debe llevar el cast.
func requireNullifCasteado(t *testing.T, sqls []string) {
	t.Helper()
	require.NotEmpty(t, sqls)
	for _, sql := range sqls {
		total := len(nullifAny.FindAllString(sql, -1))
		conCast := len(nullifUUID.FindAllString(sql, -1))
		require.Equal(t, total, conCast,
			"todo NULLIF($n,'') sobre columna uuid debe llevar ::uuid en:\n%s", sql)
	}
}

func TestItemRepo_FKOpcionalesConCastUUID(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewItemRepository(q)

	require.NoError(t, repo.Create(&entity.InventoryItem{ID: "item-1", Name: "Guantes"}))
	require.NoError(t, repo.Update(&entity.InventoryItem{ID: "item-1", Name: "Guantes"}))

	requireNullifCasteado(t, q.sqls)
}

func TestWearEquipmentRepo_FKOpcionalesConCastUUID(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewWearEquipmentRepository(q)

	require.NoError(t, repo.Create(&entity.WearEquipment{ID: "eq-1", Name: "Taladro"}))
	require.NoError(t, repo.Update(&entity.WearEquipment{ID: "eq-1", Name: "Taladro"}))

	requireNullifCasteado(t, q.sqls)
}

func TestDeliveryNoteRepo_FKOpcionalesConCastUUID(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewDeliveryNoteRepository(q)

	require.NoError(t, repo.Create(&entity.DeliveryNote{ID: "note-1", Number: "DN-2026-001"}, nil))
	require.NoError(t, repo.Update(&entity.DeliveryNote{ID: "note-1", Status: entity.DeliveryNoteSigned}))

	requireNullifCasteado(t, q.sqls)
}
