// Package dataset contém as operações puras sobre o dataset de vendas:
// enriquecimento temporal, filtro e agregação. Nenhuma função deste pacote
// modifica um Dataset já publicado; toda derivação produz um dataset novo.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// ErrMissingOrderDate indica que a data de pedido de algum registro não pôde
// ser interpretada. Fatal para o pipeline inteiro: não há enriquecimento
// parcial.
var ErrMissingOrderDate = errors.New("data de pedido ausente ou ininterpretável")

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// Enrich devolve um novo Dataset com os campos derivados do calendário
// calculados a partir da data de pedido de cada registro: ano, mês, dia,
// hora, semana ISO, nome do dia da semana e a marca de dia hábil segundo
// a política informada (nil usa a política padrão, segunda a sábado).
func Enrich(ds domain.Dataset, policy domain.BusinessDayPolicy) (domain.Dataset, error) {
	if policy == nil {
		policy = domain.DefaultBusinessDays
	}

	enriched := make(domain.Dataset, len(ds))

	for i, record := range ds {
		orderDate, err := parseOrderDate(record.FechaPedidoRaw)
		if err != nil {
			return nil, errors.Wrapf(ErrMissingOrderDate, "registro %d (%q)", i+1, record.FechaPedidoRaw)
		}

		record.FechaPedido = orderDate
		record.Ano = orderDate.Year()
		record.Mes = int(orderDate.Month())
		record.Dia = orderDate.Day()
		record.Hora = orderDate.Hour()
		_, record.Semana = orderDate.ISOWeek()
		record.DiaSemana = domain.WeekdayNameOf(orderDate)
		record.EsDiaHabil = policy.IsBusinessDay(orderDate.Weekday())

		enriched[i] = record
	}

	return enriched, nil
}

// Bounds calcula o período coberto pelo dataset enriquecido (data mínima e
// máxima de pedido). Datasets vazios resultam em um período zerado.
func Bounds(ds domain.Dataset) domain.Period {
	var period domain.Period

	for i, record := range ds {
		if i == 0 || record.FechaPedido.Before(period.Desde) {
			period.Desde = record.FechaPedido
		}
		if i == 0 || record.FechaPedido.After(period.Hasta) {
			period.Hasta = record.FechaPedido
		}
	}

	return period
}

func parseOrderDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("célula de data vazia")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	// Número serial do Excel: dias desde 30/12/1899, fração = hora do dia
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		return excelSerialToTime(serial), nil
	}

	return time.Time{}, errors.Errorf("formato de data não reconhecido: %q", raw)
}

func excelSerialToTime(serial float64) time.Time {
	days := int(serial)
	seconds := int(math.Round((serial - float64(days)) * 86400))

	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
}
