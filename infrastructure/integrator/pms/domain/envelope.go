package pmsdomain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope é o formato uniforme de resposta da API do Stayza Core.
// Toda resposta, de sucesso ou de erro, vem embrulhada nele.
type Envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Code    string              `json:"code,omitempty"`
}

// ErrorMessage consolida a mensagem e os erros de campo em um texto único
func (e *Envelope) ErrorMessage() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Errors))
	for field, messages := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}

	if e.Message != "" {
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, ", "))
	}

	return strings.Join(parts, ", ")
}

// APIError representa uma resposta de erro da aplicação (4xx/5xx com envelope).
// Diferente de falhas de rede, nunca é retentado pelo cliente.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("pms: erro da API [%s] status %d: %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pms: erro da API status %d: %s", e.StatusCode, e.Message)
}
