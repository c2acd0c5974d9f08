package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNoSelection         = "VAL_004" // Nenhuma entidade selecionada para o drill-down

	// Erros do pipeline de dados (DATA)
	ErrNoDataAvailable  = "DATA_001" // Nenhuma fonte de dados disponível
	ErrMissingOrderDate = "DATA_002" // Data de pedido ausente ou inválida no dataset
	ErrEmptyDownload    = "DATA_003" // Download retornou arquivo vazio
	ErrParseFailure     = "DATA_004" // Planilha corrompida ou ilegível
	ErrMissingColumns   = "DATA_005" // Colunas obrigatórias ausentes na planilha

	// Erros do servidor (SRV)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNoSelection:         http.StatusBadRequest,
	ErrNoDataAvailable:     http.StatusServiceUnavailable,
	ErrMissingOrderDate:    http.StatusBadGateway,
	ErrEmptyDownload:       http.StatusBadGateway,
	ErrParseFailure:        http.StatusBadGateway,
	ErrMissingColumns:      http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
