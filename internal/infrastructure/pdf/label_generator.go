// Package pdf implementa la generación de hojas de etiquetas de código
// de barras para góndola usando Maroto v2.
//
// Layout de la página A4: una grilla de 3 etiquetas por fila, cada una con
//
//	┌──────────────────────┐
//	│  Nombre del producto │
//	│  ║█║█║║█║█║║█║█║█║   │  (Code128 del código de barras)
//	│  $ 2.500             │
//	└──────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// labelsPerRow etiquetas por fila de la grilla A4.
const labelsPerRow = 3

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LabelGenerator genera hojas de etiquetas de productos en PDF.
type LabelGenerator struct{}

func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabelSheet genera el PDF con una etiqueta por copia de cada
// producto, en el orden recibido, y devuelve sus bytes.
func (g *LabelGenerator) GenerateLabelSheet(products []*entity.Product, copies int) ([]byte, error) {
	if copies < 1 {
		copies = 1
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de productos", true).
		Build()

	m := maroto.New(cfg)

	// Aplana producto×copias en la secuencia de etiquetas a imprimir.
	labels := make([]*entity.Product, 0, len(products)*copies)
	for _, p := range products {
		for i := 0; i < copies; i++ {
			labels = append(labels, p)
		}
	}

	for start := 0; start < len(labels); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(labels) {
			end = len(labels)
		}
		m.AddRows(labelRow(labels[start:end]))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow construye una fila de la grilla; rellena con columnas vacías
// cuando la última fila queda incompleta.
func labelRow(products []*entity.Product) core.Row {
	width := 12 / labelsPerRow
	cols := make([]core.Col, 0, labelsPerRow)
	for _, p := range products {
		cols = append(cols, labelCol(width, p))
	}
	for len(cols) < labelsPerRow {
		cols = append(cols, col.New(width))
	}
	return row.New(28).Add(cols...)
}

// labelCol una etiqueta: nombre, código de barras Code128 y precio de venta.
func labelCol(width int, p *entity.Product) core.Col {
	return col.New(width).Add(
		text.New(p.Name, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
		}),
		code.NewBar(p.Barcode, props.Barcode{
			Percent: 80,
			Center:  true,
			Top:     6,
			Proportion: props.Proportion{
				Width:  16,
				Height: 5,
			},
		}),
		text.New(p.Barcode, props.Text{
			Size: 6.5, Align: align.Center, Top: 20, Color: colorGray,
		}),
		text.New("$"+formatMoney(p.SellingPrice.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center,
			Top: 23, Color: colorPrimary,
		}),
	)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
