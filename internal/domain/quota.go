package domain

// VendedorQuota é uma linha da tabela de cumprimento de objetivo por
// vendedor. As razões derivadas são calculadas depois da agregação;
// denominador zero resulta em zero, nunca em erro.
type VendedorQuota struct {
	Vendedor        string  `json:"vendedor"`
	TotalPedidos    int     `json:"total_pedidos"`
	DiasTrabajados  int     `json:"dias_trabajados"`
	MontoTotal      float64 `json:"monto_total"`
	PedidosPorDia   float64 `json:"pedidos_por_dia"`
	CumplimientoPct float64 `json:"cumplimiento_pct"`
	Desviacion      float64 `json:"desviacion"`
}

// WeekdayVendedorPedidos conta pedidos distintos por par (dia da semana,
// vendedor), na ordem canônica dos dias.
type WeekdayVendedorPedidos struct {
	DiaSemana string `json:"dia_semana"`
	Vendedor  string `json:"vendedor"`
	Pedidos   int    `json:"pedidos"`
}

// QuotaView é a resposta da aba de pedidos por vendedor.
type QuotaView struct {
	Filtro          FilterMeta               `json:"filtro"`
	ObjetivoDiario  int                      `json:"objetivo_diario"`
	DiasHabiles     int                      `json:"dias_habiles"`
	ObjetivoMensual int                      `json:"objetivo_mensual"`
	PorVendedor     []VendedorQuota          `json:"por_vendedor"`
	PorDiaSemana    []WeekdayVendedorPedidos `json:"por_dia_semana"`
}
