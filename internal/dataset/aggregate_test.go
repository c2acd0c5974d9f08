package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

func aggregateDataset(t *testing.T) domain.Dataset {
	t.Helper()

	ds := domain.Dataset{
		{FechaPedidoRaw: "2024-03-15", Vendedor: "X", Centro: "A", Pedido: "P-1", NombreCliente: "C1", MontoTotal: 500, Caja: 450, Cantidad: 2},
		{FechaPedidoRaw: "2024-03-15", Vendedor: "X", Centro: "A", Pedido: "P-1", NombreCliente: "C1", MontoTotal: 100, Caja: 90, Cantidad: 1},
		{FechaPedidoRaw: "2024-03-16", Vendedor: "Y", Centro: "A", Pedido: "P-2", NombreCliente: "C2", MontoTotal: 300, Caja: 280, Cantidad: 3},
		{FechaPedidoRaw: "2024-03-18", Vendedor: "X", Centro: "B", Pedido: "P-3", NombreCliente: "C1", MontoTotal: 200, Caja: 180, Cantidad: 1},
	}

	enriched, err := Enrich(ds, nil)
	require.NoError(t, err)
	return enriched
}

func TestAggregate_GroupBySums(t *testing.T) {
	ds := aggregateDataset(t)

	rows := Aggregate(ds, Spec{
		GroupBy: []string{domain.ColVendedor},
		Sums:    []string{domain.ColMontoTotal, domain.ColCaja},
	})

	require.Len(t, rows, 2)

	// Ordem de primeira aparição: X antes de Y
	assert.Equal(t, []string{"X"}, rows[0].Key)
	assert.Equal(t, 800.0, rows[0].Sums[domain.ColMontoTotal])
	assert.Equal(t, 720.0, rows[0].Sums[domain.ColCaja])

	assert.Equal(t, []string{"Y"}, rows[1].Key)
	assert.Equal(t, 300.0, rows[1].Sums[domain.ColMontoTotal])
}

// A soma das partições de qualquer agrupamento tem de bater com o total
// sem agrupamento.
func TestAggregate_PartitionConservation(t *testing.T) {
	ds := aggregateDataset(t)

	total := Aggregate(ds, Spec{Sums: []string{domain.ColMontoTotal}})
	require.Len(t, total, 1)

	groupings := [][]string{
		{domain.ColVendedor},
		{domain.ColCentro},
		{domain.ColVendedor, domain.ColCentro},
		{domain.ColDiaSemana},
	}

	for _, groupBy := range groupings {
		rows := Aggregate(ds, Spec{GroupBy: groupBy, Sums: []string{domain.ColMontoTotal}})

		var sum float64
		for _, row := range rows {
			sum += row.Sums[domain.ColMontoTotal]
		}
		assert.InDelta(t, total[0].Sums[domain.ColMontoTotal], sum, 1e-9)
	}
}

func TestAggregate_CountDistinct(t *testing.T) {
	ds := aggregateDataset(t)

	rows := Aggregate(ds, Spec{
		CountDistinct: []string{domain.ColPedido, domain.ColNombreCliente, domain.ColDia},
	})

	require.Len(t, rows, 1)
	// P-1 aparece em duas linhas mas conta uma vez
	assert.Equal(t, 3, rows[0].Distinct[domain.ColPedido])
	assert.Equal(t, 2, rows[0].Distinct[domain.ColNombreCliente])
	assert.Equal(t, 3, rows[0].Distinct[domain.ColDia])
}

func TestAggregate_DateRange(t *testing.T) {
	ds := aggregateDataset(t)

	rows := Aggregate(ds, Spec{
		GroupBy:   []string{domain.ColNombreCliente},
		DateRange: true,
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"C1"}, rows[0].Key)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), rows[0].PrimeraFecha)
	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), rows[0].UltimaFecha)
}

func TestAggregate_MultiDimensionKey(t *testing.T) {
	ds := aggregateDataset(t)

	rows := Aggregate(ds, Spec{
		GroupBy: []string{domain.ColVendedor, domain.ColCentro},
		Sums:    []string{domain.ColMontoTotal},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"X", "A"}, rows[0].Key)
	assert.Equal(t, 600.0, rows[0].Sums[domain.ColMontoTotal])
	assert.Equal(t, []string{"Y", "A"}, rows[1].Key)
	assert.Equal(t, []string{"X", "B"}, rows[2].Key)
}

func TestAggregate_EmptyDataset(t *testing.T) {
	rows := Aggregate(domain.Dataset{}, Spec{
		GroupBy: []string{domain.ColVendedor},
		Sums:    []string{domain.ColMontoTotal},
	})

	assert.Empty(t, rows)
}

func TestSortBySumDesc(t *testing.T) {
	ds := aggregateDataset(t)

	rows := Aggregate(ds, Spec{
		GroupBy: []string{domain.ColVendedor},
		Sums:    []string{domain.ColMontoTotal},
	})
	SortBySumDesc(rows, domain.ColMontoTotal)

	assert.Equal(t, []string{"X"}, rows[0].Key)
	assert.Equal(t, []string{"Y"}, rows[1].Key)
}

func TestDimensionValue_DerivedColumns(t *testing.T) {
	record := domain.SaleRecord{
		FechaPedido: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Ano:         2024,
		Mes:         3,
		Dia:         15,
		DiaSemana:   "Friday",
	}

	assert.Equal(t, "2024-03-15", DimensionValue(record, domain.ColFecha))
	assert.Equal(t, "03-2024", DimensionValue(record, domain.ColPeriodo))
	assert.Equal(t, "2024", DimensionValue(record, domain.ColAno))
	assert.Equal(t, "15", DimensionValue(record, domain.ColDia))
	assert.Equal(t, "Friday", DimensionValue(record, domain.ColDiaSemana))
	assert.Equal(t, "", DimensionValue(record, "coluna inexistente"))
}
