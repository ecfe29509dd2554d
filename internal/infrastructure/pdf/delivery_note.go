// Package pdf implementa la generación de documentos PDF del almacén con
// Maroto v2: la nota de entrega (albarán) y el informe de desgaste de equipos.
//
// Layout de la nota de entrega (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del almacén  │  N° Nota + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: destinatario de la entrega                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del número + firma del receptor                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Generator genera los PDF del almacén usando Maroto v2.
type Generator struct {
	appName string
}

// NewGenerator construye el generador; appName encabeza los documentos.
func NewGenerator(appName string) *Generator {
	return &Generator{appName: appName}
}

// DeliveryNotePDF genera el PDF del albarán y devuelve sus bytes.
// signaturePath es la ruta de la imagen de firma; vacío si la nota no está firmada.
func (g *Generator) DeliveryNotePDF(note *dto.DeliveryNoteResponse, signaturePath string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de entrega "+note.Number, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.noteHeaderRow(note))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(noteRecipientRow(note))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(noteTableHeaderRow())
	for _, r := range noteDetailRows(note.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(noteFooterRow(note, signaturePath))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar nota de entrega: %w", err)
	}
	return doc.GetBytes(), nil
}

// noteHeaderRow: nombre del almacén (izq) y número + fecha (der).
func (g *Generator) noteHeaderRow(note *dto.DeliveryNoteResponse) core.Row {
	fecha := note.CreatedAt.Format("02/01/2006")
	if note.IssuedAt != nil {
		fecha = note.IssuedAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de almacén", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(note.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// noteRecipientRow: receptor de la entrega.
func noteRecipientRow(note *dto.DeliveryNoteResponse) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(note.Recipient, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// noteTableHeaderRow: cabecera de la tabla de artículos entregados.
func noteTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Artículo entregado", 10, align.Left),
	)
}

// noteDetailRows: una fila por línea del albarán.
func noteDetailRows(lines []dto.DeliveryNoteLineResponse) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ItemName
		if name == "" {
			name = l.InventoryID
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(10).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// noteFooterRow: QR con el número de la nota + bloque de firma.
func noteFooterRow(note *dto.DeliveryNoteResponse, signaturePath string) core.Row {
	signatureCol := col.New(8)
	if signaturePath != "" {
		signatureCol.Add(
			image.NewFromFile(signaturePath, props.Rect{Percent: 60, Center: false, Top: 2}),
			text.New("Recibido conforme", props.Text{
				Size: 8, Top: 35, Left: 3, Color: colorGray,
			}),
		)
	} else {
		signatureCol.Add(
			text.New("Firma del receptor: ___________________________", props.Text{
				Size: 9, Top: 18, Left: 3,
			}),
		)
	}
	return row.New(50).Add(
		col.New(4).Add(code.NewQr(note.Number, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		signatureCol,
	)
}
