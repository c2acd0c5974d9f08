package domain

import (
	"slices"
	"time"
)

// Selection representa os filtros escolhidos pelo usuário: ano, mês e os
// conjuntos de centros e vendedores. Não é persistida; quando o cliente não
// informa valores, a seleção padrão é derivada do dataset a cada requisição.
type Selection struct {
	Ano        int      `json:"ano"`
	Mes        int      `json:"mes"`
	Centros    []string `json:"centros"`
	Vendedores []string `json:"vendedores"`
}

// FilterOptions representa as opções de filtro disponíveis, derivadas dos
// valores distintos do dataset enriquecido. Os meses são escopados por ano.
type FilterOptions struct {
	Anos        []int         `json:"anos"`
	MesesPorAno map[int][]int `json:"meses_por_ano"`
	Centros     []string      `json:"centros"`
	Vendedores  []string      `json:"vendedores"`
}

// FiltersView descreve para a camada de apresentação tudo o que ela precisa
// para montar os controles: opções disponíveis, seleção padrão e o período
// coberto pelo dataset carregado.
type FiltersView struct {
	Opciones         FilterOptions `json:"opciones"`
	SeleccionDefault Selection     `json:"seleccion_default"`
	Periodo          Period        `json:"periodo"`
	Registros        int           `json:"registros"`
	ActualizadoEn    time.Time     `json:"actualizado_en"`
}

// Matches indica se um registro satisfaz a seleção completa.
func (s Selection) Matches(r SaleRecord) bool {
	return r.Ano == s.Ano &&
		r.Mes == s.Mes &&
		slices.Contains(s.Centros, r.Centro) &&
		slices.Contains(s.Vendedores, r.Vendedor)
}
