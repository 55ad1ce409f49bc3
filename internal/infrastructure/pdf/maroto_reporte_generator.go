// Package pdf implementa la versión imprimible del reporte de IPV: una
// página A4 por cierre con la tabla de flujos de cada área, el resumen de
// faltantes/sobrantes/mermas y las notas del día.
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 80, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 160, Green: 30, Blue: 30}
)

var _ ipv.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa ipv.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) Generate(reporte *dto.ReporteIPV) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte IPV "+reporte.Fecha, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		col.New(8).Add(text.New("REPORTE DE INVENTARIO DIARIO (IPV)", props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New("Fecha: "+reporte.Fecha, props.Text{
			Size: 10, Align: align.Right, Top: 2, Color: colorGray,
		})),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, area := range sortedKeys(reporte.Areas) {
		m.AddRows(areaTitleRow(area))
		m.AddRows(tableHeaderRow())
		for _, fila := range reporte.Areas[area] {
			m.AddRows(tableDetailRow(fila))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(resumenRows(reporte)...)
	m.AddRows(notasRows(reporte.Notas)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func areaTitleRow(area string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(area, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
	})))
}

var columnas = []string{"Producto", "UM", "Inicio", "Entr.", "Cons.", "Merma", "O.Sal.", "F.Teór.", "F.Fís.", "Dif."}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columnas))
	for i, label := range columnas {
		ancho := 1
		if i == 0 {
			ancho = 3
		}
		cols = append(cols, col.New(ancho).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Top: 1,
		})))
	}
	return row.New(5).Add(cols...)
}

func tableDetailRow(fila dto.FilaReporte) core.Row {
	celda := func(valor decimal.Decimal, color *props.Color) core.Col {
		return col.New(1).Add(text.New(valor.String(), props.Text{Size: 7, Top: 1, Color: color}))
	}
	difColor := colorGray
	if fila.Diferencia.IsNegative() {
		difColor = colorRed
	}
	return row.New(4).Add(
		col.New(3).Add(text.New(fila.Producto, props.Text{Size: 7, Top: 1})),
		col.New(1).Add(text.New(fila.UM, props.Text{Size: 7, Top: 1, Color: colorGray})),
		celda(fila.Inicio, nil),
		celda(fila.Entradas, nil),
		celda(fila.Consumo, nil),
		celda(fila.Merma, nil),
		celda(fila.OtrasSalidas, nil),
		celda(fila.FinalTeorico, nil),
		celda(fila.FinalFisico, nil),
		celda(fila.Diferencia, difColor),
	)
}

func resumenRows(reporte *dto.ReporteIPV) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("RESUMEN", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}))),
	}
	seccion := func(titulo string, entradas []string, color *props.Color) {
		if len(entradas) == 0 {
			return
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Color: color,
		}))))
		for _, e := range entradas {
			rows = append(rows, row.New(4).Add(col.New(12).Add(text.New("• "+e, props.Text{Size: 7, Top: 1}))))
		}
	}
	for _, area := range sortedKeys(reporte.Resumen) {
		resumen := reporte.Resumen[area]
		if len(resumen.Faltantes)+len(resumen.Sobrantes)+len(resumen.Mermas) == 0 {
			continue
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(area, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		}))))
		seccion("Faltantes", resumen.Faltantes, colorRed)
		seccion("Sobrantes", resumen.Sobrantes, colorPrimary)
		seccion("Mermas", resumen.Mermas, colorGray)
	}
	return rows
}

func notasRows(notas []string) []core.Row {
	if len(notas) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("NOTAS", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, nota := range notas {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New("• "+nota, props.Text{Size: 7, Top: 1}))))
	}
	return rows
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
