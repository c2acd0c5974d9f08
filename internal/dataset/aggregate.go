package dataset

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// Spec declara um agrupamento e as medidas a reduzir por grupo. As colunas
// são referenciadas pelos mesmos nomes usados na planilha e nas derivadas.
type Spec struct {
	GroupBy       []string // dimensões da chave do grupo
	Sums          []string // medidas somadas (Monto Total, Caja, Cantidad)
	CountDistinct []string // medidas contadas por valor distinto
	DateRange     bool     // calcular min/max de Fecha Pedido por grupo
}

// Row é o resultado de um grupo: a chave nas posições de GroupBy e as
// reduções por medida. Não tem identidade além da chave e é recalculada a
// cada mudança de filtro.
type Row struct {
	Key          []string
	Sums         map[string]float64
	Distinct     map[string]int
	PrimeraFecha time.Time
	UltimaFecha  time.Time
}

type accumulator struct {
	key          []string
	sums         map[string]float64
	distinct     map[string]map[string]struct{}
	primeraFecha time.Time
	ultimaFecha  time.Time
	hasDates     bool
}

// separador improvável de colidir com valores reais das dimensões
const keySeparator = "\x1f"

// Aggregate é uma função pura de (dataset, spec) para linhas agregadas.
// A ordem das linhas é a ordem de primeira aparição de cada grupo; ordenar
// é responsabilidade do chamador (ver SortBySumDesc).
func Aggregate(ds domain.Dataset, spec Spec) []Row {
	groups := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, record := range ds {
		keyParts := make([]string, len(spec.GroupBy))
		for i, dim := range spec.GroupBy {
			keyParts[i] = DimensionValue(record, dim)
		}
		key := strings.Join(keyParts, keySeparator)

		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				key:      keyParts,
				sums:     make(map[string]float64, len(spec.Sums)),
				distinct: make(map[string]map[string]struct{}, len(spec.CountDistinct)),
			}
			for _, measure := range spec.CountDistinct {
				acc.distinct[measure] = make(map[string]struct{})
			}
			groups[key] = acc
			order = append(order, key)
		}

		for _, measure := range spec.Sums {
			acc.sums[measure] += MeasureValue(record, measure)
		}

		for _, measure := range spec.CountDistinct {
			acc.distinct[measure][DimensionValue(record, measure)] = struct{}{}
		}

		if spec.DateRange {
			if !acc.hasDates || record.FechaPedido.Before(acc.primeraFecha) {
				acc.primeraFecha = record.FechaPedido
			}
			if !acc.hasDates || record.FechaPedido.After(acc.ultimaFecha) {
				acc.ultimaFecha = record.FechaPedido
			}
			acc.hasDates = true
		}
	}

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		acc := groups[key]

		row := Row{
			Key:          acc.key,
			Sums:         acc.sums,
			Distinct:     make(map[string]int, len(acc.distinct)),
			PrimeraFecha: acc.primeraFecha,
			UltimaFecha:  acc.ultimaFecha,
		}
		for measure, values := range acc.distinct {
			row.Distinct[measure] = len(values)
		}

		rows = append(rows, row)
	}

	return rows
}

// SortBySumDesc ordena as linhas pela medida somada, da maior para a menor.
// Ordenação é uma preocupação de apresentação aplicada sobre as linhas já
// reduzidas.
func SortBySumDesc(rows []Row, measure string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sums[measure] > rows[j].Sums[measure]
	})
}

// DimensionValue extrai o valor de uma dimensão de agrupamento (ou de uma
// medida de contagem distinta) como string.
func DimensionValue(r domain.SaleRecord, dim string) string {
	switch dim {
	case domain.ColVendedor:
		return r.Vendedor
	case domain.ColCentro:
		return r.Centro
	case domain.ColNombreCliente:
		return r.NombreCliente
	case domain.ColCodigoCliente:
		return r.CodigoCliente
	case domain.ColCodigoProducto:
		return r.CodigoProducto
	case domain.ColNombreProducto:
		return r.NombreProducto
	case domain.ColPedido:
		return r.Pedido
	case domain.ColDiaSemana:
		return r.DiaSemana
	case domain.ColFecha:
		return r.FechaPedido.Format("2006-01-02")
	case domain.ColPeriodo:
		return r.FechaPedido.Format("01-2006")
	case domain.ColAno:
		return strconv.Itoa(r.Ano)
	case domain.ColMes:
		return strconv.Itoa(r.Mes)
	case domain.ColDia:
		return strconv.Itoa(r.Dia)
	}
	return ""
}

// MeasureValue extrai o valor numérico de uma medida somável.
func MeasureValue(r domain.SaleRecord, measure string) float64 {
	switch measure {
	case domain.ColMontoTotal:
		return r.MontoTotal
	case domain.ColCaja:
		return r.Caja
	case domain.ColCantidad:
		return r.Cantidad
	case domain.ColPrecio:
		return r.Precio
	}
	return 0
}
