package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:           "p-1",
			Barcode:      "7791234567890",
			Name:         "Leche Entera 1L",
			SellingPrice: decimal.NewFromInt(2500),
		},
		{
			ID:           "p-2",
			Barcode:      "7799876543210",
			Name:         "Pan Lactal",
			SellingPrice: decimal.NewFromInt(3200),
		},
	}
}

func TestGenerateLabelSheet(t *testing.T) {
	gen := NewLabelGenerator()

	raw, err := gen.GenerateLabelSheet(sampleProducts(), 2)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	// Cabecera estándar de todo PDF.
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestGenerateLabelSheet_CopiasInvalidas(t *testing.T) {
	gen := NewLabelGenerator()

	// copies < 1 se normaliza a una etiqueta por producto.
	raw, err := gen.GenerateLabelSheet(sampleProducts(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "500", formatMoney("500"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}
