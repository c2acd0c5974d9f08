package driveclient

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-panel-api/internal/config"
)

// Client baixa uma fonte remota para um arquivo local.
type Client interface {
	DownloadTo(ctx context.Context, url string, destPath string) error
}

type DriveClient struct {
	httpClient *http.Client
}

// O Google Drive rejeita downloads sem um User-Agent de navegador
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// NewClient cria um cliente de download com o timeout configurado.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Dataset.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DriveClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DownloadTo executa o GET da URL e grava o corpo em destPath por streaming.
// Qualquer status diferente de 200 é tratado como falha da fonte.
func (c *DriveClient) DownloadTo(ctx context.Context, url string, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição de download")
	}

	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar o download de %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("download falhou com status: %s", resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return errors.Wrap(err, "erro ao criar o arquivo temporário")
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return errors.Wrap(err, "erro ao gravar o corpo da resposta")
	}

	return nil
}
