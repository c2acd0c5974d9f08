package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// GetFilterOptions devolve as opções de filtro, a seleção padrão e o
// período do dataset carregado
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		view, err := service.FilterOptions(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: erro ao montar as opções de filtro")
			writeViewError(w, err)
			return
		}

		respondJSON(w, r, view)
	})
}

// GetSummary devolve o resumo geral de vendas do período selecionado
func GetSummary(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		view, err := service.Summary(r.Context(), sel)
		if err != nil {
			logger.WithError(err).Error("summary: erro ao montar o resumo de vendas")
			writeViewError(w, err)
			return
		}

		if view.Filtro.FallbackAplicado {
			logger.Warn("summary: filtro sem resultados, exibindo o dataset completo")
		}

		respondJSON(w, r, view)
	})
}

// GetQuotaCompliance devolve o cumprimento do objetivo diário de pedidos
// por vendedor. O objetivo vem do parâmetro target; ausente, vale o padrão
// configurado.
func GetQuotaCompliance(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		target := 0
		if raw := r.URL.Query().Get("target"); raw != "" {
			target, err = strconv.Atoi(raw)
			if err != nil || target <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"target deve ser um inteiro positivo", nil)
				return
			}
		}

		view, err := service.QuotaCompliance(r.Context(), sel, target)
		if err != nil {
			logger.WithError(err).Error("salespeople: erro ao montar o cumprimento por vendedor")
			writeViewError(w, err)
			return
		}

		respondJSON(w, r, view)
	})
}

// GetCustomers devolve o drill-down de clientes. Exige o parâmetro
// customers (lista separada por vírgula); customer seleciona o detalhe.
func GetCustomers(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		customers := csvParam(r.URL.Query().Get("customers"))
		detail := r.URL.Query().Get("customer")

		view, err := service.Customers(r.Context(), sel, customers, detail)
		if err != nil {
			logger.WithError(err).Warn("customers: erro ao montar o drill-down de clientes")
			writeViewError(w, err)
			return
		}

		respondJSON(w, r, view)
	})
}

// GetProducts devolve o drill-down de produtos sobre o histórico completo.
// Exige o parâmetro products; product seleciona o detalhe.
func GetProducts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel, err := selectionFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		products := csvParam(r.URL.Query().Get("products"))
		detail := r.URL.Query().Get("product")

		view, err := service.Products(r.Context(), sel, products, detail)
		if err != nil {
			logger.WithError(err).Warn("products: erro ao montar o drill-down de produtos")
			writeViewError(w, err)
			return
		}

		respondJSON(w, r, view)
	})
}
