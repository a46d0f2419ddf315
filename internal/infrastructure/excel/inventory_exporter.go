// Package excel implementa la exportación del inventario a un libro XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
)

const sheetName = "Inventario"

var columnHeaders = []string{
	"Código de barras", "Nombre", "Proveedor",
	"Precio de costo", "Precio de venta", "Stock",
}

// InventoryExporter genera el libro de inventario.
type InventoryExporter struct{}

func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

// Export arma un XLSX con una fila por producto y devuelve sus bytes.
// Los precios van como número para que Excel los trate como moneda.
func (e *InventoryExporter) Export(products []dto.ProductResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E2F3"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo de cabecera: %w", err)
	}

	for i, h := range columnHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(columnHeaders), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo de cabecera: %w", err)
	}

	for i, p := range products {
		rowIdx := i + 2
		cost, _ := p.CostPrice.Float64()
		selling, _ := p.SellingPrice.Float64()
		values := []interface{}{
			p.Barcode, p.Name, p.CompanyName, cost, selling, p.Stock,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir fila %d: %w", rowIdx, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 18)
	_ = f.SetColWidth(sheetName, "B", "C", 28)
	_ = f.SetColWidth(sheetName, "D", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
