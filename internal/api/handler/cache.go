package handler

import (
	"net/http"

	"github.com/vfg2006/sales-panel-api/internal/usecases/loading"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// InvalidateCache descarta o dataset em cache e força o recarregamento
// na próxima leitura
func InvalidateCache(loader loading.DatasetLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		loader.Invalidate()
		logger.Info("cache: dataset invalidado manualmente")

		respondJSON(w, r, map[string]string{
			"status": "cache invalidado",
		})
	})
}
