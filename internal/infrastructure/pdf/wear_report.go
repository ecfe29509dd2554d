package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// Etiquetas legibles de los estados de desgaste en el informe.
var conditionLabels = map[string]string{
	"new":       "Nuevo",
	"good":      "Buen estado",
	"worn":      "Desgastado",
	"defective": "Defectuoso",
}

// WearReportPDF genera el informe de desgaste del parque de equipos.
func (g *Generator) WearReportPDF(report *dto.WearReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de desgaste de equipos", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de desgaste de equipos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New("Estado", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New("Equipos", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	))

	// Orden estable de estados en el informe.
	conditions := make([]string, 0, len(report.ByCondition))
	for c := range report.ByCondition {
		conditions = append(conditions, c)
	}
	sort.Strings(conditions)
	for _, c := range conditions {
		label := conditionLabels[c]
		if label == "" {
			label = c
		}
		m.AddRows(row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(
				fmt.Sprintf("%d", report.ByCondition[c]),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(9).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New(
			fmt.Sprintf("%d", report.Total),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1},
		)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de desgaste: %w", err)
	}
	return doc.GetBytes(), nil
}
