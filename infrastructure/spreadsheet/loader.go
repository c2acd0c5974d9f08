package spreadsheet

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrParse indica planilha corrompida ou ilegível. Recuperável no nível do
// pipeline de carga: a próxima fonte candidata é tentada.
var ErrParse = errors.New("planilha corrompida ou ilegível")

// MissingColumnsError indica que a planilha não contém todas as colunas
// obrigatórias, nomeando exatamente as ausentes.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "faltam colunas obrigatórias: " + strings.Join(e.Columns, ", ")
}

// Load interpreta os bytes como uma planilha xlsx e valida a estrutura.
// Em caso de sucesso retorna o Dataset sem nenhum filtro aplicado; as
// células de data ficam no valor bruto para o enriquecimento temporal.
func Load(data []byte) (domain.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrParse, "a planilha não contém nenhuma aba")
	}

	// Valores brutos: números sem formatação e datas como serial do Excel
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(ErrParse, err.Error())
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrParse, "a planilha não contém linha de cabeçalho")
	}

	colIndex := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIndex[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, required := range domain.RequiredColumns() {
		if _, ok := colIndex[required]; !ok {
			missing = append(missing, required)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	dataset := make(domain.Dataset, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		record := domain.SaleRecord{
			Vendedor:       cellAt(row, colIndex[domain.ColVendedor]),
			FechaPedidoRaw: cellAt(row, colIndex[domain.ColFechaPedido]),
			NombreCliente:  cellAt(row, colIndex[domain.ColNombreCliente]),
			CodigoCliente:  cellAt(row, colIndex[domain.ColCodigoCliente]),
			Pedido:         cellAt(row, colIndex[domain.ColPedido]),
			CodigoProducto: cellAt(row, colIndex[domain.ColCodigoProducto]),
			NombreProducto: cellAt(row, colIndex[domain.ColNombreProducto]),
			Cantidad:       numberAt(row, colIndex[domain.ColCantidad]),
			Precio:         numberAt(row, colIndex[domain.ColPrecio]),
			MontoTotal:     numberAt(row, colIndex[domain.ColMontoTotal]),
			Caja:           numberAt(row, colIndex[domain.ColCaja]),
			Centro:         cellAt(row, colIndex[domain.ColCentro]),
		}

		dataset = append(dataset, record)
	}

	return dataset, nil
}

// cellAt retorna a célula na posição idx; o excelize descarta células
// vazias no fim da linha, então o índice pode passar do tamanho do slice.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func numberAt(row []string, idx int) float64 {
	raw := cellAt(row, idx)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}

	return value
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
