package domain

import "time"

// ClienteResumen é uma linha do resumo por cliente (código + nome).
type ClienteResumen struct {
	CodigoCliente string    `json:"codigo_cliente"`
	NombreCliente string    `json:"nombre_cliente"`
	Pedidos       int       `json:"pedidos"`
	MontoTotal    float64   `json:"monto_total"`
	Cajas         float64   `json:"cajas"`
	PrimerPedido  time.Time `json:"primer_pedido"`
	UltimoPedido  time.Time `json:"ultimo_pedido"`
}

// ProductoComprado é uma linha dos produtos comprados por um cliente.
type ProductoComprado struct {
	CodigoProducto string  `json:"codigo_producto"`
	NombreProducto string  `json:"nombre_producto"`
	Cantidad       float64 `json:"cantidad"`
	MontoTotal     float64 `json:"monto_total"`
	Cajas          float64 `json:"cajas"`
	Pedidos        int     `json:"pedidos"`
}

// PuntoDiario é um ponto da evolução diária de compras.
type PuntoDiario struct {
	Fecha      string  `json:"fecha"` // formato 2006-01-02
	MontoTotal float64 `json:"monto_total"`
	Pedidos    int     `json:"pedidos"`
}

// ClienteDetalle agrupa o detalhamento de um único cliente selecionado.
type ClienteDetalle struct {
	NombreCliente   string             `json:"nombre_cliente"`
	Productos       []ProductoComprado `json:"productos"`
	EvolucionDiaria []PuntoDiario      `json:"evolucion_diaria"`
}

// CustomersView é a resposta da aba de vendas por cliente.
type CustomersView struct {
	Filtro  FilterMeta       `json:"filtro"`
	Resumen []ClienteResumen `json:"resumen"`
	Detalle *ClienteDetalle  `json:"detalle,omitempty"`
}

// ProductoResumen é uma linha do resumo de produtos selecionados.
type ProductoResumen struct {
	CodigoProducto string    `json:"codigo_producto"`
	NombreProducto string    `json:"nombre_producto"`
	Pedidos        int       `json:"pedidos"`
	Cantidad       float64   `json:"cantidad"`
	MontoTotal     float64   `json:"monto_total"`
	Cajas          float64   `json:"cajas"`
	ClientesUnicos int       `json:"clientes_unicos"`
	PrimeraVenta   time.Time `json:"primera_venta"`
	UltimaVenta    time.Time `json:"ultima_venta"`
}

// ClienteDeProducto é uma linha dos clientes que compraram um produto.
type ClienteDeProducto struct {
	CodigoCliente string    `json:"codigo_cliente"`
	NombreCliente string    `json:"nombre_cliente"`
	Pedidos       int       `json:"pedidos"`
	Cantidad      float64   `json:"cantidad"`
	MontoTotal    float64   `json:"monto_total"`
	Cajas         float64   `json:"cajas"`
	UltimaCompra  time.Time `json:"ultima_compra"`
}

// PuntoMensual é um ponto da evolução mensal de vendas de um produto.
type PuntoMensual struct {
	Periodo    string  `json:"periodo"` // formato 01-2006
	MontoTotal float64 `json:"monto_total"`
	Pedidos    int     `json:"pedidos"`
	Cantidad   float64 `json:"cantidad"`
}

// ProductoDetalle agrupa o detalhamento de um único produto selecionado.
type ProductoDetalle struct {
	NombreProducto   string              `json:"nombre_producto"`
	Clientes         []ClienteDeProducto `json:"clientes"`
	EvolucionMensual []PuntoMensual      `json:"evolucion_mensual"`
}

// ProductsView é a resposta da aba de busca de produtos. Diferente das
// demais abas, opera sobre o dataset completo, não sobre o filtrado.
type ProductsView struct {
	Filtro  FilterMeta        `json:"filtro"`
	Resumen []ProductoResumen `json:"resumen"`
	Detalle *ProductoDetalle  `json:"detalle,omitempty"`
}
