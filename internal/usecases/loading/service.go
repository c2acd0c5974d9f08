package loading

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-panel-api/infrastructure/integrator/drive"
	"github.com/vfg2006/sales-panel-api/infrastructure/spreadsheet"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/dataset"
	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// Service implementa DatasetLoader: orquestra o fetch com fallback entre
// fontes, o parse da planilha, o enriquecimento temporal e a memoização do
// resultado por TTL.
type Service struct {
	fetcher drive.Fetcher
	sources []string
	ttl     time.Duration
	policy  domain.BusinessDayPolicy

	mu     sync.RWMutex
	cached *Result
}

// NewService cria o serviço de carga com a política padrão de dias hábeis.
func NewService(fetcher drive.Fetcher, cfg *config.Config) *Service {
	return &Service{
		fetcher: fetcher,
		sources: cfg.Dataset.SourceURLs,
		ttl:     cfg.Dataset.CacheTTL,
		policy:  domain.DefaultBusinessDays,
	}
}

// WithBusinessDays substitui a política de dias hábeis usada no
// enriquecimento temporal.
func (s *Service) WithBusinessDays(policy domain.BusinessDayPolicy) *Service {
	s.policy = policy
	return s
}

// Load devolve o dataset canônico. Dentro da janela de TTL o resultado
// memoizado é retornado sem tocar na rede; fora dela o pipeline completo é
// executado de novo. Falhas nunca são memoizadas: a próxima chamada tenta
// o pipeline inteiro outra vez.
func (s *Service) Load(ctx context.Context) (*Result, error) {
	s.mu.RLock()
	if cached := s.cached; cached != nil && time.Since(cached.ActualizadoEn) < s.ttl {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Outra goroutine pode ter recarregado enquanto esperávamos o lock
	if cached := s.cached; cached != nil && time.Since(cached.ActualizadoEn) < s.ttl {
		return cached, nil
	}

	result, err := s.loadFromSources(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = result

	logrus.WithFields(logrus.Fields{
		"registros": result.Registros,
		"fuente":    result.FuenteIndex,
		"desde":     result.Periodo.Desde.Format(time.DateOnly),
		"hasta":     result.Periodo.Hasta.Format(time.DateOnly),
	}).Info("Dataset de vendas carregado com sucesso")

	return result, nil
}

// Invalidate descarta o resultado memoizado; a próxima chamada a Load
// ignora o TTL restante e refaz o pipeline (botão de atualização manual).
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	logrus.Info("Cache do dataset invalidado manualmente")
}

// loadFromSources tenta cada fonte candidata em ordem estrita. Falhas de
// rede, download vazio, parse e colunas ausentes são recuperáveis por fonte:
// geram um warning e avançam para a próxima candidata. Só o esgotamento de
// todas as fontes interrompe a carga; uma data de pedido ininterpretável é
// fatal de imediato, sem enriquecimento parcial.
func (s *Service) loadFromSources(ctx context.Context) (*Result, error) {
	if len(s.sources) == 0 {
		return nil, ErrNoSources
	}

	for i, url := range s.sources {
		data, err := s.fetcher.FetchSource(ctx, url)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"fuente": i + 1,
				"url":    url,
			}).Warn("Tentativa de download falhou; tentando a próxima fonte")
			continue
		}

		raw, err := spreadsheet.Load(data)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"fuente": i + 1,
			}).Warn("Planilha inválida nesta fonte; tentando a próxima")
			continue
		}

		enriched, err := dataset.Enrich(raw, s.policy)
		if err != nil {
			return nil, err
		}

		return &Result{
			Dataset:       enriched,
			Registros:     len(enriched),
			Periodo:       dataset.Bounds(enriched),
			FuenteIndex:   i,
			ActualizadoEn: time.Now(),
		}, nil
	}

	return nil, ErrNoDataAvailable
}
