package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

func TestEnrich_DerivedFields(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantAno    int
		wantMes    int
		wantDia    int
		wantHora   int
		wantSemana int
		wantDiaSem string
		wantHabil  bool
	}{
		{
			name:       "Data ISO com hora - sexta-feira, dia hábil",
			raw:        "2024-03-15 14:30:00",
			wantAno:    2024,
			wantMes:    3,
			wantDia:    15,
			wantHora:   14,
			wantSemana: 11,
			wantDiaSem: "Friday",
			wantHabil:  true,
		},
		{
			name:       "Sábado conta como dia hábil",
			raw:        "2024-03-16",
			wantAno:    2024,
			wantMes:    3,
			wantDia:    16,
			wantHora:   0,
			wantSemana: 11,
			wantDiaSem: "Saturday",
			wantHabil:  true,
		},
		{
			name:       "Domingo não é dia hábil",
			raw:        "2024-03-17",
			wantAno:    2024,
			wantMes:    3,
			wantDia:    17,
			wantHora:   0,
			wantSemana: 11,
			wantDiaSem: "Sunday",
			wantHabil:  false,
		},
		{
			name:       "Formato dia/mês/ano",
			raw:        "15/03/2024 09:15:00",
			wantAno:    2024,
			wantMes:    3,
			wantDia:    15,
			wantHora:   9,
			wantSemana: 11,
			wantDiaSem: "Friday",
			wantHabil:  true,
		},
		{
			name:       "Número serial do Excel",
			raw:        "45366.5",
			wantAno:    2024,
			wantMes:    3,
			wantDia:    15,
			wantHora:   12,
			wantSemana: 11,
			wantDiaSem: "Friday",
			wantHabil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := domain.Dataset{{FechaPedidoRaw: tt.raw}}

			enriched, err := Enrich(ds, nil)
			require.NoError(t, err)
			require.Len(t, enriched, 1)

			record := enriched[0]
			assert.Equal(t, tt.wantAno, record.Ano)
			assert.Equal(t, tt.wantMes, record.Mes)
			assert.Equal(t, tt.wantDia, record.Dia)
			assert.Equal(t, tt.wantHora, record.Hora)
			assert.Equal(t, tt.wantSemana, record.Semana)
			assert.Equal(t, tt.wantDiaSem, record.DiaSemana)
			assert.Equal(t, tt.wantHabil, record.EsDiaHabil)
		})
	}
}

func TestEnrich_InvalidDateIsFatal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Célula vazia", raw: ""},
		{name: "Texto sem formato de data", raw: "no es una fecha"},
		{name: "Serial negativo", raw: "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := domain.Dataset{
				{FechaPedidoRaw: "2024-03-15", Pedido: "P-1"},
				{FechaPedidoRaw: tt.raw, Pedido: "P-2"},
			}

			enriched, err := Enrich(ds, nil)
			assert.ErrorIs(t, err, ErrMissingOrderDate)
			// Sem enriquecimento parcial: um registro inválido invalida tudo
			assert.Nil(t, enriched)
		})
	}
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	ds := domain.Dataset{{FechaPedidoRaw: "2024-03-15", Pedido: "P-1"}}

	enriched, err := Enrich(ds, nil)
	require.NoError(t, err)

	assert.Zero(t, ds[0].Ano)
	assert.Equal(t, 2024, enriched[0].Ano)
}

func TestEnrich_CustomBusinessDayPolicy(t *testing.T) {
	// Política reduzida: só segunda a sexta
	policy := domain.BusinessDayPolicy{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}

	ds := domain.Dataset{{FechaPedidoRaw: "2024-03-16"}} // sábado

	enriched, err := Enrich(ds, policy)
	require.NoError(t, err)
	assert.False(t, enriched[0].EsDiaHabil)
}

func TestBounds(t *testing.T) {
	t.Run("Dataset vazio resulta em período zerado", func(t *testing.T) {
		period := Bounds(domain.Dataset{})
		assert.True(t, period.Desde.IsZero())
		assert.True(t, period.Hasta.IsZero())
	})

	t.Run("Período cobre as datas mínima e máxima", func(t *testing.T) {
		ds := domain.Dataset{
			{FechaPedidoRaw: "2024-02-10"},
			{FechaPedidoRaw: "2023-11-05"},
			{FechaPedidoRaw: "2024-03-15"},
		}

		enriched, err := Enrich(ds, nil)
		require.NoError(t, err)

		period := Bounds(enriched)
		assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), period.Desde)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), period.Hasta)
	})
}

func TestWeekdayNameOf_AllDays(t *testing.T) {
	// 2024-03-11 é segunda-feira
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	for i, want := range domain.WeekdayNames {
		got := domain.WeekdayNameOf(monday.AddDate(0, 0, i))
		assert.Equal(t, want, got)
	}
}
