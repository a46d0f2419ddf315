package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
)

func TestExport(t *testing.T) {
	exporter := NewInventoryExporter()

	raw, err := exporter.Export([]dto.ProductResponse{
		{
			ID:           "p-1",
			Barcode:      "7791234567890",
			Name:         "Leche Entera 1L",
			CompanyName:  "Lácteos del Sur",
			CostPrice:    decimal.NewFromInt(2000),
			SellingPrice: decimal.NewFromInt(2500),
			Stock:        12,
		},
		{
			ID:           "p-2",
			Barcode:      "7799876543210",
			Name:         "Pan Lactal",
			CompanyName:  dto.UnknownCompanyName,
			CostPrice:    decimal.NewFromInt(2800),
			SellingPrice: decimal.NewFromInt(3200),
			Stock:        4,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	// Relee el libro generado y verifica contenido.
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Código de barras", rows[0][0])
	assert.Equal(t, "Leche Entera 1L", rows[1][1])
	assert.Equal(t, "Lácteos del Sur", rows[1][2])
	assert.Equal(t, "7799876543210", rows[2][0])
	assert.Equal(t, "4", rows[2][5])
}

func TestExport_SinProductos(t *testing.T) {
	exporter := NewInventoryExporter()

	raw, err := exporter.Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo la cabecera
}
