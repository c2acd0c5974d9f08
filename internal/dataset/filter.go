package dataset

import (
	"sort"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// Apply restringe o dataset enriquecido aos registros que satisfazem a
// seleção completa (ano, mês, centros e vendedores). Quando o resultado é
// vazio, a política do painel é devolver o dataset completo em vez de um
// painel em branco; o segundo retorno indica que esse fallback foi aplicado
// e o chamador deve avisar o usuário.
func Apply(ds domain.Dataset, sel domain.Selection) (domain.Dataset, bool) {
	filtered := make(domain.Dataset, 0, len(ds))

	for _, record := range ds {
		if sel.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	if len(filtered) == 0 {
		return ds, true
	}

	return filtered, false
}

// Options deriva as opções de filtro dos valores distintos do dataset.
// Anos e meses saem ordenados; centros e vendedores preservam a ordem de
// primeira aparição na planilha, como no painel original.
func Options(ds domain.Dataset) domain.FilterOptions {
	options := domain.FilterOptions{
		MesesPorAno: make(map[int][]int),
	}

	seenYear := make(map[int]bool)
	seenMonth := make(map[int]map[int]bool)
	seenCentro := make(map[string]bool)
	seenVendedor := make(map[string]bool)

	for _, record := range ds {
		if !seenYear[record.Ano] {
			seenYear[record.Ano] = true
			options.Anos = append(options.Anos, record.Ano)
		}

		if seenMonth[record.Ano] == nil {
			seenMonth[record.Ano] = make(map[int]bool)
		}
		if !seenMonth[record.Ano][record.Mes] {
			seenMonth[record.Ano][record.Mes] = true
			options.MesesPorAno[record.Ano] = append(options.MesesPorAno[record.Ano], record.Mes)
		}

		if !seenCentro[record.Centro] {
			seenCentro[record.Centro] = true
			options.Centros = append(options.Centros, record.Centro)
		}

		if !seenVendedor[record.Vendedor] {
			seenVendedor[record.Vendedor] = true
			options.Vendedores = append(options.Vendedores, record.Vendedor)
		}
	}

	sort.Ints(options.Anos)
	for _, months := range options.MesesPorAno {
		sort.Ints(months)
	}

	return options
}

// DefaultSelection monta a seleção padrão: ano mais recente, mês mais
// recente dentro dele, todos os centros e todos os vendedores.
func DefaultSelection(ds domain.Dataset) domain.Selection {
	options := Options(ds)

	selection := domain.Selection{
		Centros:    options.Centros,
		Vendedores: options.Vendedores,
	}

	if len(options.Anos) > 0 {
		selection.Ano = options.Anos[len(options.Anos)-1]

		months := options.MesesPorAno[selection.Ano]
		if len(months) > 0 {
			selection.Mes = months[len(months)-1]
		}
	}

	return selection
}
