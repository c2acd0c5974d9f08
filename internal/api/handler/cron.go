package handler

import (
	"net/http"

	"github.com/vfg2006/sales-panel-api/internal/scheduler"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// GetCronStatus devolve o estado do job agendado de atualização do dataset
func GetCronStatus(refreshService *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, refreshService.Status())
	})
}

// RunDatasetRefresh dispara manualmente a atualização do dataset, fora do
// horário agendado
func RunDatasetRefresh(refreshService *scheduler.DatasetRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("cron: atualização do dataset disparada manualmente")

		if err := refreshService.RefreshDataset(r.Context()); err != nil {
			logger.WithError(err).Error("cron: falha na atualização manual do dataset")
			writeViewError(w, err)
			return
		}

		respondJSON(w, r, map[string]string{
			"status": "dataset atualizado",
		})
	})
}
