package dashboarding

import (
	"context"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// Dashboarder é o contrato da camada de apresentação com as quatro visões
// do painel. A seleção pode vir parcialmente preenchida (ou nula): os campos
// ausentes são completados com a seleção padrão derivada do dataset.
type Dashboarder interface {
	FilterOptions(ctx context.Context) (*domain.FiltersView, error)
	Summary(ctx context.Context, sel *domain.Selection) (*domain.SummaryView, error)
	QuotaCompliance(ctx context.Context, sel *domain.Selection, dailyTarget int) (*domain.QuotaView, error)
	Customers(ctx context.Context, sel *domain.Selection, customers []string, detail string) (*domain.CustomersView, error)
	Products(ctx context.Context, sel *domain.Selection, products []string, detail string) (*domain.ProductsView, error)
}
