package handler

import (
	"errors"
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/scheduler"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeRequest decodifica o corpo JSON e aplica as regras de validação
func decodeRequest(w http.ResponseWriter, r *http.Request, validator *validation.Validator, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return false
	}

	if validator == nil {
		return true
	}

	if err := validator.Struct(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", validation.Details(err))
		return false
	}

	return true
}

// writeServiceError traduz os erros tipados dos serviços para o formato da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		customerErr *customer.CustomerError
		planningErr *planning.PlanningError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &customerErr):
		apiErrors.WriteError(w, customerErr.Code, customerErr.Error(), detailsWithID("customer_id", customerErr.CustomerID))

	case errors.As(err, &planningErr):
		apiErrors.WriteError(w, planningErr.Code, planningErr.Error(), detailsWithID("id", planningErr.ID))

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.Is(err, customer.ErrCustomerIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do cliente não fornecido", nil)

	case errors.Is(err, scheduler.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrProviderSyncInProgress, "Sincronização de providers já em andamento", nil)

	default:
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsWithID(key, id string) map[string]string {
	if id == "" {
		return nil
	}
	return map[string]string{key: id}
}
