package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
)

type customerRevenueResponse struct {
	CustomerID string            `json:"customer_id"`
	Months     []decimal.Decimal `json:"months"`
	YearTotal  decimal.Decimal   `json:"year_total"`
}

// ListCustomers aceita filtros por vírgula: ?status=freemium,prospect&source=manual
func ListCustomers(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseCustomerFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		customers, err := service.ListCustomers(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, http.StatusOK, customers)
	}
}

func parseCustomerFilter(r *http.Request) (domain.CustomerFilter, error) {
	var filter domain.CustomerFilter

	for _, value := range splitQuery(r, "status") {
		status := domain.CustomerStatus(value)
		if !status.IsValid() {
			return filter, fmt.Errorf("status inválido: %s", value)
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	for _, value := range splitQuery(r, "source") {
		source := domain.CustomerSource(value)
		if source != domain.CustomerSourceManual && source != domain.CustomerSourceProviderSync {
			return filter, fmt.Errorf("origem inválida: %s", value)
		}
		filter.Sources = append(filter.Sources, source)
	}

	return filter, nil
}

func splitQuery(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	values := make([]string, 0)
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func CreateCustomer(service customer.CustomerService, validator *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddCustomerRequest
		if !decodeRequest(w, r, validator, &req) {
			return
		}

		created, err := service.AddCustomer(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		found, err := service.GetCustomer(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, http.StatusOK, found)
	}
}

func UpdateCustomer(service customer.CustomerService, validator *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCustomerRequest
		if !decodeRequest(w, r, validator, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateCustomer(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func ChangeCustomerStatus(service customer.CustomerService, validator *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChangeStatusRequest
		if !decodeRequest(w, r, validator, &req) {
			return
		}
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.ChangeCustomerStatus(r.Context(), id, req.Status)
		if err != nil {
			writeServiceError(w, err, "Erro ao alterar status do cliente")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteCustomer(service customer.CustomerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCustomer(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetCustomerRevenue retorna a receita mensal do cliente arredondada para exibição
func GetCustomerRevenue(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetCustomerRevenue(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular receita do cliente")
			return
		}

		writeJSON(w, http.StatusOK, customerRevenueResponse{
			CustomerID: result.CustomerID,
			Months:     utils.RoundCurrencies(result.Months),
			YearTotal:  utils.RoundCurrency(result.YearTotal),
		})
	}
}
