package loading

import "errors"

// Erros específicos do pipeline de carga
var (
	// ErrNoDataAvailable indica que todas as fontes candidatas foram
	// esgotadas sem produzir um dataset válido. Fatal: o chamador deve
	// interromper o processamento em vez de renderizar um painel parcial.
	ErrNoDataAvailable = errors.New("não foi possível carregar a planilha de nenhuma fonte disponível")

	// ErrNoSources indica configuração sem nenhuma URL de fonte
	ErrNoSources = errors.New("nenhuma fonte de dados configurada")
)
