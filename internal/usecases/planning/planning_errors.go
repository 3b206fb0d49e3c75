package planning

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonth      = errors.New("month must be between 0 and 11")
	ErrProspectNotFound  = errors.New("prospect not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// PlanningError é um erro com contexto adicional para o planejamento de receita
type PlanningError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	ID      string // ID do registro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *PlanningError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PlanningError) Unwrap() error {
	return e.Err
}

func NewPlanningError(err error, code string, id string, details string) *PlanningError {
	return &PlanningError{
		Err:     err,
		Code:    code,
		ID:      id,
		Details: details,
	}
}
