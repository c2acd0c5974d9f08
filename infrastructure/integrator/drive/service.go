package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/infrastructure/integrator/drive/driveclient"
	"github.com/vfg2006/sales-panel-api/pkg/utils"
)

// ErrEmptyDownload indica que a fonte respondeu com um arquivo de zero bytes;
// é tratado como falha recuperável daquela fonte, nunca como sucesso.
var ErrEmptyDownload = errors.New("o arquivo baixado está vazio")

// Fetcher obtém os bytes da planilha a partir de uma única fonte candidata.
// O loop de fallback entre fontes fica no pipeline de carga, porque falhas
// de parse e validação também avançam para a próxima fonte.
type Fetcher interface {
	FetchSource(ctx context.Context, url string) ([]byte, error)
}

type Service struct {
	client driveclient.Client
}

func NewService(client driveclient.Client) *Service {
	return &Service{client: client}
}

// FetchSource baixa a URL para um arquivo temporário com nome único e
// devolve os bytes. O arquivo temporário é removido em todo caminho de
// saída, com ou sem sucesso.
func (s *Service) FetchSource(ctx context.Context, url string) ([]byte, error) {
	suffix, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar sufixo do arquivo temporário")
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("ventas_spv_%s.xlsx", suffix))
	defer os.Remove(tempPath) // limpeza garantida, inclusive em erro

	if err := s.client.DownloadTo(ctx, url, tempPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(tempPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inspecionar o arquivo baixado")
	}

	if info.Size() == 0 {
		return nil, ErrEmptyDownload
	}

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo baixado")
	}

	return data, nil
}
