// Package scheduler contém o serviço de agendamento do re-aquecimento do
// cache do dataset
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/usecases/loading"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService invalida e recarrega o dataset no cron configurado,
// para que o primeiro usuário depois da expiração do TTL não pague o custo
// da carga completa. A carga manual via API continua disponível mesmo com o
// cron desabilitado.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	loader    loading.DatasetLoader
	config    DatasetRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

func NewDatasetRefreshService(loader loading.DatasetLoader, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		loader:    loader,
		config:    refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o cron quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset invalida o cache e executa o pipeline completo de carga.
// Também é acionável manualmente pela rota de cron da API.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	s.refreshMutex.Lock()

	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando recarga do dataset de vendas")

	s.loader.Invalidate()

	result, err := s.loader.Load(ctx)
	if err != nil {
		s.refreshMutex.Lock()
		s.lastRefreshError = err.Error()
		s.refreshMutex.Unlock()

		return err
	}

	s.refreshMutex.Lock()
	s.lastRefreshError = ""
	s.refreshMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"registros": result.Registros,
		"fuente":    result.FuenteIndex,
	}).Info("Recarga do dataset concluída com sucesso")

	return nil
}

// Status descreve o estado corrente do agendador para a rota de cron.
type Status struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
}

func (s *DatasetRefreshService) Status() Status {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return Status{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.refreshRunning,
		LastStartedAt:   s.lastRefreshStartedAt,
		LastCompletedAt: s.lastRefreshCompletedAt,
		LastError:       s.lastRefreshError,
	}
}
