package dashboarding

import "errors"

// Erros específicos das visões do painel
var (
	// ErrNoSelection indica que um drill-down foi pedido sem nenhum
	// cliente/produto selecionado. Recuperável: a apresentação deve pedir
	// ao usuário que selecione pelo menos uma entidade.
	ErrNoSelection = errors.New("selecione al menos una entidad para el análisis")

	// ErrInvalidTarget indica um objetivo diário não positivo
	ErrInvalidTarget = errors.New("el objetivo diario debe ser un entero positivo")
)
