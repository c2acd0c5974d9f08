package domain

import "time"

// Nomes exatos das colunas obrigatórias da planilha de vendas, em espanhol,
// como o sistema de origem exporta. A validação do loader é case-sensitive.
const (
	ColVendedor       = "Vendedor"
	ColFechaPedido    = "Fecha Pedido"
	ColNombreCliente  = "Nombre Cliente"
	ColCodigoCliente  = "Codigo Cliente"
	ColPedido         = "Pedido"
	ColCodigoProducto = "Codigo Producto"
	ColNombreProducto = "Nombre Producto"
	ColCantidad       = "Cantidad"
	ColPrecio         = "Precio"
	ColMontoTotal     = "Monto Total"
	ColCaja           = "Caja"
	ColCentro         = "Centro"
)

// Colunas derivadas pelo enriquecimento temporal (não existem na planilha)
const (
	ColAno       = "Ano"
	ColMes       = "Mes"
	ColDia       = "Dia"
	ColDiaSemana = "Dia Semana"
	ColSemana    = "Semana"
	ColHora      = "Hora"
	ColFecha     = "Fecha"
	ColPeriodo   = "Periodo"
)

// RequiredColumns retorna a lista fixa das doze colunas obrigatórias,
// na ordem canônica da planilha.
func RequiredColumns() []string {
	return []string{
		ColVendedor,
		ColFechaPedido,
		ColNombreCliente,
		ColCodigoCliente,
		ColPedido,
		ColCodigoProducto,
		ColNombreProducto,
		ColCantidad,
		ColPrecio,
		ColMontoTotal,
		ColCaja,
		ColCentro,
	}
}

// SaleRecord representa uma linha (item de pedido) da planilha de vendas.
// Os registros são imutáveis depois de carregados: todo filtro ou derivação
// produz um novo Dataset.
type SaleRecord struct {
	Vendedor       string  `json:"vendedor"`
	NombreCliente  string  `json:"nombre_cliente"`
	CodigoCliente  string  `json:"codigo_cliente"`
	Pedido         string  `json:"pedido"`
	CodigoProducto string  `json:"codigo_producto"`
	NombreProducto string  `json:"nombre_producto"`
	Cantidad       float64 `json:"cantidad"`
	Precio         float64 `json:"precio"`
	MontoTotal     float64 `json:"monto_total"`
	Caja           float64 `json:"caja"`
	Centro         string  `json:"centro"`

	// Valor bruto da célula de data; interpretado pelo enriquecimento temporal
	FechaPedidoRaw string `json:"-"`

	// Campos derivados, preenchidos pelo enriquecimento temporal
	FechaPedido time.Time `json:"fecha_pedido"`
	Ano         int       `json:"ano"`
	Mes         int       `json:"mes"`
	Dia         int       `json:"dia"`
	Hora        int       `json:"hora"`
	Semana      int       `json:"semana"` // número da semana ISO
	DiaSemana   string    `json:"dia_semana"`
	EsDiaHabil  bool      `json:"es_dia_habil"`
}

// Dataset é uma sequência ordenada de registros de venda com esquema uniforme.
type Dataset []SaleRecord

// Period representa o intervalo de datas coberto pelo dataset carregado.
// Substitui variáveis globais de data mínima/máxima: os limites são
// calculados no load e passados explicitamente aos consumidores.
type Period struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`
}

// WeekdayNames contém os sete dias da semana no idioma do painel, na ordem
// canônica (segunda-feira primeiro) usada para agrupamento e exibição.
var WeekdayNames = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekdayNameOf converte o dia da semana de uma data para o nome categórico
// correspondente em WeekdayNames.
func WeekdayNameOf(t time.Time) string {
	// time.Weekday começa no domingo; a semana do painel começa na segunda
	return WeekdayNames[(int(t.Weekday())+6)%7]
}

// WeekdayIndex retorna a posição do dia na semana canônica (0 = Monday),
// ou -1 quando o nome não pertence ao conjunto fixo.
func WeekdayIndex(name string) int {
	for i, n := range WeekdayNames {
		if n == name {
			return i
		}
	}
	return -1
}

// BusinessDayPolicy define quais dias da semana contam como dia hábil.
// A regra do negócio inclui o sábado; por ser uma convenção do domínio,
// a política é nomeada e substituível em vez de um literal no enriquecedor.
type BusinessDayPolicy map[time.Weekday]bool

// DefaultBusinessDays é a política padrão: segunda a sábado.
var DefaultBusinessDays = BusinessDayPolicy{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  true,
}

// IsBusinessDay indica se o dia informado é hábil segundo a política.
func (p BusinessDayPolicy) IsBusinessDay(d time.Weekday) bool {
	return p[d]
}
