package loading

import (
	"context"
	"time"

	"github.com/vfg2006/sales-panel-api/internal/domain"
)

// Result é o produto de um ciclo completo de carga: o dataset enriquecido e
// os metadados que antes viviam em estado global (limites de data, contagem,
// fonte usada). Imutável depois de publicado.
type Result struct {
	Dataset       domain.Dataset `json:"-"`
	Registros     int            `json:"registros"`
	Periodo       domain.Period  `json:"periodo"`
	FuenteIndex   int            `json:"fuente_index"`
	ActualizadoEn time.Time      `json:"actualizado_en"`
}

// DatasetLoader é o contrato consumido pelas visões e pela camada HTTP:
// carrega (ou devolve do cache) o dataset canônico e permite invalidar a
// memoização para forçar uma recarga na próxima chamada.
type DatasetLoader interface {
	Load(ctx context.Context) (*Result, error)
	Invalidate()
}
