package dashboarding

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/dataset"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/loading"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// Mensagem exibida ao usuário quando o filtro não encontra nenhum registro
// e o painel mostra o dataset completo no lugar
const avisoFallback = "No hay datos con los filtros seleccionados. Mostrando todos los datos."

// Service monta as quatro visões do painel a partir do dataset carregado,
// combinando o motor de filtro com o de agregação. Nenhuma visão modifica
// o dataset; cada uma trabalha sobre subconjuntos derivados.
type Service struct {
	loader        loading.DatasetLoader
	defaultTarget int
}

func NewService(loader loading.DatasetLoader, cfg *config.Config) Dashboarder {
	return &Service{
		loader:        loader,
		defaultTarget: cfg.Dataset.DefaultDailyTarget,
	}
}

// FilterOptions devolve as opções de filtro, a seleção padrão e o período
// do dataset para a camada de apresentação montar os controles.
func (s *Service) FilterOptions(ctx context.Context) (*domain.FiltersView, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.FiltersView{
		Opciones:         dataset.Options(result.Dataset),
		SeleccionDefault: dataset.DefaultSelection(result.Dataset),
		Periodo:          result.Periodo,
		Registros:        result.Registros,
		ActualizadoEn:    result.ActualizadoEn,
	}, nil
}

// Summary monta o resumo geral: KPIs, comparação com o mês anterior e os
// agregados por vendedor e por centro.
func (s *Service) Summary(ctx context.Context, sel *domain.Selection) (*domain.SummaryView, error) {
	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	selection := resolveSelection(result.Dataset, sel)
	filtered, meta := filterWithMeta(result.Dataset, selection)

	view := &domain.SummaryView{Filtro: meta}

	// KPIs: reduções sobre o dataset filtrado inteiro (sem agrupamento)
	totals := dataset.Aggregate(filtered, dataset.Spec{
		Sums:          []string{domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido, domain.ColCodigoCliente},
	})

	if len(totals) > 0 {
		row := totals[0]
		pedidos := row.Distinct[domain.ColPedido]

		view.KPIs = domain.SummaryKPIs{
			VentasTotales:  row.Sums[domain.ColMontoTotal],
			CajasVendidas:  row.Sums[domain.ColCaja],
			PedidosTotales: pedidos,
			TicketPromedio: utils.RoundWithTwoDecimalPlace(
				utils.SafeDivide(row.Sums[domain.ColMontoTotal], float64(pedidos)),
			),
			ClientesUnicos: row.Distinct[domain.ColCodigoCliente],
		}
	}

	view.ComparacionMensual = s.compareWithPreviousMonth(result.Dataset, selection, view.KPIs.VentasTotales)

	// Vendas por vendedor, da maior para a menor
	porVendedor := dataset.Aggregate(filtered, dataset.Spec{
		GroupBy:       []string{domain.ColVendedor},
		Sums:          []string{domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido},
	})
	dataset.SortBySumDesc(porVendedor, domain.ColMontoTotal)

	for _, row := range porVendedor {
		view.VentasPorVendedor = append(view.VentasPorVendedor, domain.VendedorVentas{
			Vendedor:   row.Key[0],
			MontoTotal: row.Sums[domain.ColMontoTotal],
			Pedidos:    row.Distinct[domain.ColPedido],
			Cajas:      row.Sums[domain.ColCaja],
		})
	}

	porCentro := dataset.Aggregate(filtered, dataset.Spec{
		GroupBy: []string{domain.ColCentro},
		Sums:    []string{domain.ColMontoTotal, domain.ColCaja},
	})
	dataset.SortBySumDesc(porCentro, domain.ColMontoTotal)

	for _, row := range porCentro {
		view.VentasPorCentro = append(view.VentasPorCentro, domain.CentroVentas{
			Centro:     row.Key[0],
			MontoTotal: row.Sums[domain.ColMontoTotal],
			Cajas:      row.Sums[domain.ColCaja],
		})
	}

	return view, nil
}

// compareWithPreviousMonth calcula as vendas do mês anterior mantendo os
// mesmos centros e vendedores. Janeiro compara com dezembro do ano anterior.
// Aqui não há fallback: um mês anterior sem dados compara contra zero.
func (s *Service) compareWithPreviousMonth(ds domain.Dataset, sel domain.Selection, ventasActuales float64) domain.MonthComparison {
	prev := sel
	if sel.Mes > 1 {
		prev.Mes = sel.Mes - 1
	} else {
		prev.Mes = 12
		prev.Ano = sel.Ano - 1
	}

	var ventasAnterior float64
	for _, record := range ds {
		if prev.Matches(record) {
			ventasAnterior += record.MontoTotal
		}
	}

	variacion := 0.0
	if ventasAnterior != 0 {
		variacion = utils.RoundWithTwoDecimalPlace((ventasActuales - ventasAnterior) / ventasAnterior * 100)
	}

	return domain.MonthComparison{
		Ano:            sel.Ano,
		Mes:            sel.Mes,
		Ventas:         ventasActuales,
		AnoAnterior:    prev.Ano,
		MesAnterior:    prev.Mes,
		VentasAnterior: ventasAnterior,
		VariacionPct:   variacion,
	}
}

// QuotaCompliance monta a aba de pedidos por vendedor: cumprimento do
// objetivo diário, dias trabalhados e a distribuição por dia da semana.
func (s *Service) QuotaCompliance(ctx context.Context, sel *domain.Selection, dailyTarget int) (*domain.QuotaView, error) {
	if dailyTarget == 0 {
		dailyTarget = s.defaultTarget
	}
	if dailyTarget <= 0 {
		return nil, ErrInvalidTarget
	}

	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	selection := resolveSelection(result.Dataset, sel)
	filtered, meta := filterWithMeta(result.Dataset, selection)

	// Dias hábeis do período = dias distintos com venda no dataset filtrado
	diasHabiles := 0
	periodTotals := dataset.Aggregate(filtered, dataset.Spec{
		CountDistinct: []string{domain.ColDia},
	})
	if len(periodTotals) > 0 {
		diasHabiles = periodTotals[0].Distinct[domain.ColDia]
	}

	objetivoMensual := dailyTarget * diasHabiles

	view := &domain.QuotaView{
		Filtro:          meta,
		ObjetivoDiario:  dailyTarget,
		DiasHabiles:     diasHabiles,
		ObjetivoMensual: objetivoMensual,
	}

	porVendedor := dataset.Aggregate(filtered, dataset.Spec{
		GroupBy:       []string{domain.ColVendedor},
		Sums:          []string{domain.ColMontoTotal},
		CountDistinct: []string{domain.ColPedido, domain.ColDia},
	})

	for _, row := range porVendedor {
		pedidos := row.Distinct[domain.ColPedido]
		dias := row.Distinct[domain.ColDia]

		// Razões derivadas depois da redução; denominador zero vira zero
		pedidosPorDia := utils.SafeDivide(float64(pedidos), float64(dias))
		cumplimiento := utils.SafeDivide(pedidosPorDia, float64(dailyTarget)) * 100

		view.PorVendedor = append(view.PorVendedor, domain.VendedorQuota{
			Vendedor:        row.Key[0],
			TotalPedidos:    pedidos,
			DiasTrabajados:  dias,
			MontoTotal:      row.Sums[domain.ColMontoTotal],
			PedidosPorDia:   utils.RoundWithTwoDecimalPlace(pedidosPorDia),
			CumplimientoPct: utils.RoundWithTwoDecimalPlace(cumplimiento),
			Desviacion:      float64(pedidos - objetivoMensual),
		})
	}

	sort.SliceStable(view.PorVendedor, func(i, j int) bool {
		return view.PorVendedor[i].CumplimientoPct > view.PorVendedor[j].CumplimientoPct
	})

	porDiaSemana := dataset.Aggregate(filtered, dataset.Spec{
		GroupBy:       []string{domain.ColDiaSemana, domain.ColVendedor},
		CountDistinct: []string{domain.ColPedido},
	})

	for _, row := range porDiaSemana {
		view.PorDiaSemana = append(view.PorDiaSemana, domain.WeekdayVendedorPedidos{
			DiaSemana: row.Key[0],
			Vendedor:  row.Key[1],
			Pedidos:   row.Distinct[domain.ColPedido],
		})
	}

	// Ordem canônica da semana (segunda primeiro) e vendedor como desempate
	sort.SliceStable(view.PorDiaSemana, func(i, j int) bool {
		di := domain.WeekdayIndex(view.PorDiaSemana[i].DiaSemana)
		dj := domain.WeekdayIndex(view.PorDiaSemana[j].DiaSemana)
		if di != dj {
			return di < dj
		}
		return view.PorDiaSemana[i].Vendedor < view.PorDiaSemana[j].Vendedor
	})

	return view, nil
}

// Customers monta a aba de vendas por cliente sobre o dataset filtrado.
// Exige ao menos um cliente selecionado; o detalhamento de um único cliente
// (produtos e evolução diária) é opcional.
func (s *Service) Customers(ctx context.Context, sel *domain.Selection, customers []string, detail string) (*domain.CustomersView, error) {
	if len(customers) == 0 {
		return nil, ErrNoSelection
	}

	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	selection := resolveSelection(result.Dataset, sel)
	filtered, meta := filterWithMeta(result.Dataset, selection)

	subset := subsetByDimension(filtered, domain.ColNombreCliente, customers)

	view := &domain.CustomersView{Filtro: meta}

	resumen := dataset.Aggregate(subset, dataset.Spec{
		GroupBy:       []string{domain.ColCodigoCliente, domain.ColNombreCliente},
		Sums:          []string{domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido},
		DateRange:     true,
	})
	dataset.SortBySumDesc(resumen, domain.ColMontoTotal)

	for _, row := range resumen {
		view.Resumen = append(view.Resumen, domain.ClienteResumen{
			CodigoCliente: row.Key[0],
			NombreCliente: row.Key[1],
			Pedidos:       row.Distinct[domain.ColPedido],
			MontoTotal:    row.Sums[domain.ColMontoTotal],
			Cajas:         row.Sums[domain.ColCaja],
			PrimerPedido:  row.PrimeraFecha,
			UltimoPedido:  row.UltimaFecha,
		})
	}

	if detail != "" {
		view.Detalle = s.customerDetail(subset, detail)
	}

	return view, nil
}

func (s *Service) customerDetail(subset domain.Dataset, customer string) *domain.ClienteDetalle {
	records := subsetByDimension(subset, domain.ColNombreCliente, []string{customer})

	detalle := &domain.ClienteDetalle{NombreCliente: customer}

	productos := dataset.Aggregate(records, dataset.Spec{
		GroupBy:       []string{domain.ColCodigoProducto, domain.ColNombreProducto},
		Sums:          []string{domain.ColCantidad, domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido},
	})
	dataset.SortBySumDesc(productos, domain.ColMontoTotal)

	for _, row := range productos {
		detalle.Productos = append(detalle.Productos, domain.ProductoComprado{
			CodigoProducto: row.Key[0],
			NombreProducto: row.Key[1],
			Cantidad:       row.Sums[domain.ColCantidad],
			MontoTotal:     row.Sums[domain.ColMontoTotal],
			Cajas:          row.Sums[domain.ColCaja],
			Pedidos:        row.Distinct[domain.ColPedido],
		})
	}

	evolucion := dataset.Aggregate(records, dataset.Spec{
		GroupBy:       []string{domain.ColFecha},
		Sums:          []string{domain.ColMontoTotal},
		CountDistinct: []string{domain.ColPedido},
	})

	// Chaves no formato 2006-01-02 ordenam cronologicamente como texto
	sort.SliceStable(evolucion, func(i, j int) bool {
		return evolucion[i].Key[0] < evolucion[j].Key[0]
	})

	for _, row := range evolucion {
		detalle.EvolucionDiaria = append(detalle.EvolucionDiaria, domain.PuntoDiario{
			Fecha:      row.Key[0],
			MontoTotal: row.Sums[domain.ColMontoTotal],
			Pedidos:    row.Distinct[domain.ColPedido],
		})
	}

	return detalle
}

// Products monta a aba de busca de produtos. Diferente das demais abas,
// opera sobre o dataset completo, não sobre o recorte do mês selecionado:
// a busca de produtos cruza todo o histórico, como no painel original.
func (s *Service) Products(ctx context.Context, sel *domain.Selection, products []string, detail string) (*domain.ProductsView, error) {
	if len(products) == 0 {
		return nil, ErrNoSelection
	}

	result, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	selection := resolveSelection(result.Dataset, sel)
	subset := subsetByDimension(result.Dataset, domain.ColNombreProducto, products)

	view := &domain.ProductsView{
		Filtro: domain.FilterMeta{
			Seleccion:         selection,
			RegistrosFiltrado: len(subset),
		},
	}

	resumen := dataset.Aggregate(subset, dataset.Spec{
		GroupBy:       []string{domain.ColCodigoProducto, domain.ColNombreProducto},
		Sums:          []string{domain.ColCantidad, domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido, domain.ColNombreCliente},
		DateRange:     true,
	})

	for _, row := range resumen {
		view.Resumen = append(view.Resumen, domain.ProductoResumen{
			CodigoProducto: row.Key[0],
			NombreProducto: row.Key[1],
			Pedidos:        row.Distinct[domain.ColPedido],
			Cantidad:       row.Sums[domain.ColCantidad],
			MontoTotal:     row.Sums[domain.ColMontoTotal],
			Cajas:          row.Sums[domain.ColCaja],
			ClientesUnicos: row.Distinct[domain.ColNombreCliente],
			PrimeraVenta:   row.PrimeraFecha,
			UltimaVenta:    row.UltimaFecha,
		})
	}

	if detail != "" {
		view.Detalle = s.productDetail(subset, detail)
	}

	return view, nil
}

func (s *Service) productDetail(subset domain.Dataset, product string) *domain.ProductoDetalle {
	records := subsetByDimension(subset, domain.ColNombreProducto, []string{product})

	detalle := &domain.ProductoDetalle{NombreProducto: product}

	clientes := dataset.Aggregate(records, dataset.Spec{
		GroupBy:       []string{domain.ColCodigoCliente, domain.ColNombreCliente},
		Sums:          []string{domain.ColCantidad, domain.ColMontoTotal, domain.ColCaja},
		CountDistinct: []string{domain.ColPedido},
		DateRange:     true,
	})
	dataset.SortBySumDesc(clientes, domain.ColMontoTotal)

	for _, row := range clientes {
		detalle.Clientes = append(detalle.Clientes, domain.ClienteDeProducto{
			CodigoCliente: row.Key[0],
			NombreCliente: row.Key[1],
			Pedidos:       row.Distinct[domain.ColPedido],
			Cantidad:      row.Sums[domain.ColCantidad],
			MontoTotal:    row.Sums[domain.ColMontoTotal],
			Cajas:         row.Sums[domain.ColCaja],
			UltimaCompra:  row.UltimaFecha,
		})
	}

	evolucion := dataset.Aggregate(records, dataset.Spec{
		GroupBy:       []string{domain.ColPeriodo},
		Sums:          []string{domain.ColMontoTotal, domain.ColCantidad},
		CountDistinct: []string{domain.ColPedido},
	})

	// Períodos no formato 01-2006 precisam ser interpretados para ordenar
	sort.SliceStable(evolucion, func(i, j int) bool {
		ti, _ := time.Parse("01-2006", evolucion[i].Key[0])
		tj, _ := time.Parse("01-2006", evolucion[j].Key[0])
		return ti.Before(tj)
	})

	for _, row := range evolucion {
		detalle.EvolucionMensual = append(detalle.EvolucionMensual, domain.PuntoMensual{
			Periodo:    row.Key[0],
			MontoTotal: row.Sums[domain.ColMontoTotal],
			Pedidos:    row.Distinct[domain.ColPedido],
			Cantidad:   row.Sums[domain.ColCantidad],
		})
	}

	return detalle
}

// resolveSelection completa uma seleção parcial com os padrões derivados do
// dataset: ano/mês mais recentes, todos os centros e todos os vendedores.
func resolveSelection(ds domain.Dataset, sel *domain.Selection) domain.Selection {
	defaults := dataset.DefaultSelection(ds)

	if sel == nil {
		return defaults
	}

	resolved := *sel

	if resolved.Ano == 0 {
		resolved.Ano = defaults.Ano
	}

	if resolved.Mes == 0 {
		// Mês mais recente do ano efetivamente selecionado
		months := dataset.Options(ds).MesesPorAno[resolved.Ano]
		if len(months) > 0 {
			resolved.Mes = months[len(months)-1]
		} else {
			resolved.Mes = defaults.Mes
		}
	}

	if len(resolved.Centros) == 0 {
		resolved.Centros = defaults.Centros
	}

	if len(resolved.Vendedores) == 0 {
		resolved.Vendedores = defaults.Vendedores
	}

	return resolved
}

// filterWithMeta aplica o filtro e monta os metadados que acompanham toda
// resposta de visão, incluindo o aviso de fallback quando aplicável.
func filterWithMeta(ds domain.Dataset, sel domain.Selection) (domain.Dataset, domain.FilterMeta) {
	filtered, fellBack := dataset.Apply(ds, sel)

	meta := domain.FilterMeta{
		Seleccion:         sel,
		FallbackAplicado:  fellBack,
		RegistrosFiltrado: len(filtered),
	}

	if fellBack {
		meta.Aviso = avisoFallback
	}

	return filtered, meta
}

// subsetByDimension devolve os registros cujo valor da dimensão pertence ao
// conjunto informado.
func subsetByDimension(ds domain.Dataset, dim string, values []string) domain.Dataset {
	subset := make(domain.Dataset, 0, len(ds))

	for _, record := range ds {
		if slices.Contains(values, dataset.DimensionValue(record, dim)) {
			subset = append(subset, record)
		}
	}

	return subset
}
