package customer

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de clientes
var (
	// Erros de validação
	ErrCustomerIDRequired      = errors.New("customer ID is required")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrInvalidStatus           = errors.New("invalid customer status")
	ErrInvalidStatusTransition = errors.New("invalid customer status transition")
	ErrInvalidContractPeriod   = errors.New("invalid contract period")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchProviders    = errors.New("error fetching providers from directory")
	ErrFetchCustomers    = errors.New("error fetching customers from database")
	ErrBatchCreate       = errors.New("error writing customer batch")

	// Erros de sincronização
	ErrGenerateID = errors.New("error generating ID")
)

// CustomerError é um erro com contexto adicional para clientes
type CustomerError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID string // ID do cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CustomerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CustomerError) Unwrap() error {
	return e.Err
}

func NewCustomerError(err error, code string, details string) *CustomerError {
	return &CustomerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCustomerErrorWithID(err error, code string, customerID string, details string) *CustomerError {
	return &CustomerError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
