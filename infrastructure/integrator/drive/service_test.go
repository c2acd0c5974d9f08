package drive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-panel-api/infrastructure/integrator/drive/driveclient/mocks"
	"go.uber.org/mock/gomock"
)

const sourceURL = "https://example.com/planilla"

func TestFetchSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var tempPath string

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DownloadTo(gomock.Any(), sourceURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, destPath string) error {
			tempPath = destPath
			return os.WriteFile(destPath, []byte("contenido de la planilla"), 0o600)
		})

	service := NewService(mockClient)

	data, err := service.FetchSource(context.Background(), sourceURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("contenido de la planilla"), data)

	// Arquivo temporário no diretório do sistema, com o prefixo esperado
	assert.Equal(t, os.TempDir(), filepath.Dir(tempPath))
	assert.True(t, strings.HasPrefix(filepath.Base(tempPath), "ventas_spv_"))
	assert.True(t, strings.HasSuffix(tempPath, ".xlsx"))

	// Limpeza garantida depois do retorno
	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchSource_UniqueTempNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := make(map[string]bool)

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DownloadTo(gomock.Any(), sourceURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, destPath string) error {
			paths[destPath] = true
			return os.WriteFile(destPath, []byte("x"), 0o600)
		}).
		Times(3)

	service := NewService(mockClient)

	for i := 0; i < 3; i++ {
		_, err := service.FetchSource(context.Background(), sourceURL)
		require.NoError(t, err)
	}

	assert.Len(t, paths, 3)
}

func TestFetchSource_DownloadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DownloadTo(gomock.Any(), sourceURL, gomock.Any()).
		Return(errors.New("HTTP 403"))

	service := NewService(mockClient)

	_, err := service.FetchSource(context.Background(), sourceURL)
	assert.ErrorContains(t, err, "HTTP 403")
}

func TestFetchSource_EmptyDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DownloadTo(gomock.Any(), sourceURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, destPath string) error {
			return os.WriteFile(destPath, nil, 0o600)
		})

	service := NewService(mockClient)

	_, err := service.FetchSource(context.Background(), sourceURL)
	assert.ErrorIs(t, err, ErrEmptyDownload)
}
