package domain

// FilterMeta acompanha toda resposta de visão: a seleção efetivamente aplicada
// e o aviso de fallback quando o filtro não encontrou nenhum registro e o
// dataset completo foi exibido no lugar. A camada de apresentação deve
// mostrar o aviso ao usuário.
type FilterMeta struct {
	Seleccion         Selection `json:"seleccion"`
	FallbackAplicado  bool      `json:"fallback_aplicado"`
	Aviso             string    `json:"aviso,omitempty"`
	RegistrosFiltrado int       `json:"registros_filtrados"`
}

// SummaryKPIs contém os indicadores principais do resumo geral de vendas.
type SummaryKPIs struct {
	VentasTotales  float64 `json:"ventas_totales"`
	CajasVendidas  float64 `json:"cajas_vendidas"`
	PedidosTotales int     `json:"pedidos_totales"`
	TicketPromedio float64 `json:"ticket_promedio"`
	ClientesUnicos int     `json:"clientes_unicos"`
}

// MonthComparison compara as vendas do período selecionado com o mês
// anterior, mantendo os mesmos centros e vendedores.
type MonthComparison struct {
	Ano            int     `json:"ano"`
	Mes            int     `json:"mes"`
	Ventas         float64 `json:"ventas"`
	AnoAnterior    int     `json:"ano_anterior"`
	MesAnterior    int     `json:"mes_anterior"`
	VentasAnterior float64 `json:"ventas_anterior"`
	VariacionPct   float64 `json:"variacion_pct"`
}

// VendedorVentas é uma linha do agregado de vendas por vendedor.
type VendedorVentas struct {
	Vendedor   string  `json:"vendedor"`
	MontoTotal float64 `json:"monto_total"`
	Pedidos    int     `json:"pedidos"`
	Cajas      float64 `json:"cajas"`
}

// CentroVentas é uma linha do agregado de vendas por centro.
type CentroVentas struct {
	Centro     string  `json:"centro"`
	MontoTotal float64 `json:"monto_total"`
	Cajas      float64 `json:"cajas"`
}

// SummaryView é a resposta completa da aba de resumo geral.
type SummaryView struct {
	Filtro             FilterMeta       `json:"filtro"`
	KPIs               SummaryKPIs      `json:"kpis"`
	ComparacionMensual MonthComparison  `json:"comparacion_mensual"`
	VentasPorVendedor  []VendedorVentas `json:"ventas_por_vendedor"`
	VentasPorCentro    []CentroVentas   `json:"ventas_por_centro"`
}
