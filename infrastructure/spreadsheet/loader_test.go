package spreadsheet

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook monta um xlsx em memória com o cabeçalho e as linhas dadas
func buildWorkbook(t *testing.T, header []string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, name))
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func validRow(pedido string) []interface{} {
	return []interface{}{
		"X", "2024-03-15 10:00:00", "Cliente Uno", "C-001", pedido,
		"PR-01", "Producto Uno", 2, 250.0, 500.0, 450.0, "A",
	}
}

func TestLoad_ValidWorkbook(t *testing.T) {
	data := buildWorkbook(t, domain.RequiredColumns(), [][]interface{}{
		validRow("P-1"),
		validRow("P-2"),
	})

	ds, err := Load(data)
	require.NoError(t, err)
	require.Len(t, ds, 2)

	record := ds[0]
	assert.Equal(t, "X", record.Vendedor)
	assert.Equal(t, "Cliente Uno", record.NombreCliente)
	assert.Equal(t, "C-001", record.CodigoCliente)
	assert.Equal(t, "P-1", record.Pedido)
	assert.Equal(t, "PR-01", record.CodigoProducto)
	assert.Equal(t, "Producto Uno", record.NombreProducto)
	assert.Equal(t, 2.0, record.Cantidad)
	assert.Equal(t, 250.0, record.Precio)
	assert.Equal(t, 500.0, record.MontoTotal)
	assert.Equal(t, 450.0, record.Caja)
	assert.Equal(t, "A", record.Centro)
	assert.NotEmpty(t, record.FechaPedidoRaw)

	// Enriquecimento ainda não aconteceu
	assert.Zero(t, record.Ano)
	assert.True(t, record.FechaPedido.IsZero())
}

func TestLoad_SkipsEmptyRows(t *testing.T) {
	data := buildWorkbook(t, domain.RequiredColumns(), [][]interface{}{
		validRow("P-1"),
		{"", "", "", "", "", "", "", "", "", "", "", ""},
		validRow("P-2"),
	})

	ds, err := Load(data)
	require.NoError(t, err)
	assert.Len(t, ds, 2)
}

func TestLoad_MissingColumns(t *testing.T) {
	// Cabeçalho sem Vendedor nem Caja
	header := []string{
		domain.ColFechaPedido, domain.ColNombreCliente, domain.ColCodigoCliente,
		domain.ColPedido, domain.ColCodigoProducto, domain.ColNombreProducto,
		domain.ColCantidad, domain.ColPrecio, domain.ColMontoTotal, domain.ColCentro,
	}
	data := buildWorkbook(t, header, nil)

	_, err := Load(data)
	require.Error(t, err)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{domain.ColVendedor, domain.ColCaja}, missingErr.Columns)
}

func TestLoad_HeaderIsCaseSensitive(t *testing.T) {
	header := domain.RequiredColumns()
	header[0] = "vendedor" // minúsculo não vale

	data := buildWorkbook(t, header, nil)

	_, err := Load(data)
	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{domain.ColVendedor}, missingErr.Columns)
}

func TestLoad_GarbageBytes(t *testing.T) {
	_, err := Load([]byte("<html>no es una planilla</html>"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_EmptySheet(t *testing.T) {
	data := buildWorkbook(t, domain.RequiredColumns(), nil)

	ds, err := Load(data)
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestLoad_DecimalComma(t *testing.T) {
	rows := [][]interface{}{
		{"X", "2024-03-15", "Cliente", "C-1", "P-1", "PR-1", "Producto", "1,5", "100,25", "150,38", "140,10", "A"},
	}
	data := buildWorkbook(t, domain.RequiredColumns(), rows)

	ds, err := Load(data)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	assert.Equal(t, 1.5, ds[0].Cantidad)
	assert.Equal(t, 100.25, ds[0].Precio)
	assert.Equal(t, 150.38, ds[0].MontoTotal)
}

func TestLoad_NonNumericMeasureBecomesZero(t *testing.T) {
	rows := [][]interface{}{
		{"X", "2024-03-15", "Cliente", "C-1", "P-1", "PR-1", "Producto", "n/a", 100.0, 150.0, 140.0, "A"},
	}
	data := buildWorkbook(t, domain.RequiredColumns(), rows)

	ds, err := Load(data)
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Zero(t, ds[0].Cantidad)
}

func TestLoad_ManyRows(t *testing.T) {
	rows := make([][]interface{}, 0, 200)
	for i := 0; i < 200; i++ {
		rows = append(rows, validRow(fmt.Sprintf("P-%d", i)))
	}
	data := buildWorkbook(t, domain.RequiredColumns(), rows)

	ds, err := Load(data)
	require.NoError(t, err)
	assert.Len(t, ds, 200)
}
