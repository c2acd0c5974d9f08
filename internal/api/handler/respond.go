package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/internal/dataset"
	"github.com/vfg2006/sales-panel-api/internal/domain"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/internal/usecases/loading"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar a resposta")
	}
}

// selectionFromQuery interpreta os parâmetros de filtro da query string.
// Campos ausentes ficam zerados e são completados pela seleção padrão no
// usecase. Retorna nil quando nenhum parâmetro de filtro foi informado.
func selectionFromQuery(r *http.Request) (*domain.Selection, error) {
	query := r.URL.Query()

	sel := &domain.Selection{}
	informed := false

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Errorf("ano inválido: %q", raw)
		}
		sel.Ano = year
		informed = true
	}

	if raw := query.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return nil, errors.Errorf("mês inválido: %q", raw)
		}
		sel.Mes = month
		informed = true
	}

	if centros := csvParam(query.Get("centers")); len(centros) > 0 {
		sel.Centros = centros
		informed = true
	}

	if vendedores := csvParam(query.Get("salespeople")); len(vendedores) > 0 {
		sel.Vendedores = vendedores
		informed = true
	}

	if !informed {
		return nil, nil
	}

	return sel, nil
}

func csvParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

// writeViewError traduz os erros tipados do pipeline e das visões para a
// resposta padronizada da API. Cada visão falha de forma independente: um
// erro aqui não afeta as demais rotas.
func writeViewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loading.ErrNoDataAvailable), errors.Is(err, loading.ErrNoSources):
		apiErrors.WriteError(w, apiErrors.ErrNoDataAvailable, err.Error(), nil)
	case errors.Is(err, dataset.ErrMissingOrderDate):
		apiErrors.WriteError(w, apiErrors.ErrMissingOrderDate, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrNoSelection):
		apiErrors.WriteError(w, apiErrors.ErrNoSelection, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrInvalidTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
