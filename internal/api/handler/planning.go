package handler

import (
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
)

type monthResponse struct {
	Month    int             `json:"month"`
	Label    string          `json:"label"`
	Signed   decimal.Decimal `json:"signed"`
	Prospect decimal.Decimal `json:"prospect"`
	Total    decimal.Decimal `json:"total"`
}

type yearPlanResponse struct {
	Year          int             `json:"year"`
	Months        []monthResponse `json:"months"`
	SignedTotal   decimal.Decimal `json:"signed_total"`
	ProspectTotal decimal.Decimal `json:"prospect_total"`
	Total         decimal.Decimal `json:"total"`
}

type summaryResponse struct {
	Month             int             `json:"month"`
	Label             string          `json:"label"`
	MRR               decimal.Decimal `json:"mrr"`
	ARR               decimal.Decimal `json:"arr"`
	ActiveCustomers   int             `json:"active_customers"`
	WeightedProspects decimal.Decimal `json:"weighted_prospects"`
	ProspectRevenue   decimal.Decimal `json:"prospect_revenue"`
}

func GetYearPlan(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := service.GetYearPlan(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular plano anual")
			return
		}

		months := make([]monthResponse, 0, len(plan.Months))
		for _, aggregate := range plan.Months {
			months = append(months, newMonthResponse(aggregate))
		}

		writeJSON(w, http.StatusOK, yearPlanResponse{
			Year:          plan.Year,
			Months:        months,
			SignedTotal:   utils.RoundCurrency(plan.SignedTotal),
			ProspectTotal: utils.RoundCurrency(plan.ProspectTotal),
			Total:         utils.RoundCurrency(plan.Total),
		})
	}
}

func GetPlanningMonth(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := utils.ParseMonth(httprouter.ParamsFromContext(r.Context()).ByName("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidMonth, err.Error(), nil)
			return
		}

		aggregate, err := service.GetMonth(r.Context(), month)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular receita do mês")
			return
		}

		writeJSON(w, http.StatusOK, newMonthResponse(*aggregate))
	}
}

func GetPlanningSummary(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular resumo de receita")
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			Month:             summary.Month,
			Label:             utils.MonthName(summary.Month),
			MRR:               utils.RoundCurrency(summary.MRR),
			ARR:               utils.RoundCurrency(summary.ARR),
			ActiveCustomers:   summary.ActiveCustomers,
			WeightedProspects: utils.RoundCurrency(summary.WeightedProspects),
			ProspectRevenue:   utils.RoundCurrency(summary.ProspectRevenue),
		})
	}
}

func newMonthResponse(aggregate domain.MonthlyAggregate) monthResponse {
	return monthResponse{
		Month:    aggregate.Month,
		Label:    utils.MonthName(aggregate.Month),
		Signed:   utils.RoundCurrency(aggregate.Signed),
		Prospect: utils.RoundCurrency(aggregate.Prospect),
		Total:    utils.RoundCurrency(aggregate.Total),
	}
}
