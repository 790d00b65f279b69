package property

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de imóveis
var (
	// Erros de validação
	ErrPropertyIDRequired = errors.New("property ID is required")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrInvalidSecret      = errors.New("invalid channel secret")

	// Erros de serviços externos
	ErrPMSIntegration = errors.New("error fetching properties from PMS")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateProperty    = errors.New("error updating property")
	ErrFetchProperties   = errors.New("error fetching properties from database")
)

// PropertyError é um erro com contexto adicional para imóveis
type PropertyError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	PropertyID string // ID do imóvel envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PropertyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError cria um novo PropertyError
func NewPropertyError(err error, code string, details string) *PropertyError {
	return &PropertyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewPropertyErrorWithID cria um novo PropertyError com ID do imóvel
func NewPropertyErrorWithID(err error, code string, propertyID string, details string) *PropertyError {
	return &PropertyError{
		Err:        err,
		Code:       code,
		PropertyID: propertyID,
		Details:    details,
	}
}
