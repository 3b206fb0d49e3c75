package handler

import (
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	"github.com/julienschmidt/httprouter"
)

func ListProspects(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prospects, err := service.ListProspects(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar prospects")
			return
		}

		writeJSON(w, http.StatusOK, prospects)
	}
}

func CreateProspect(service planning.PlanningService, validator *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProspectRequest
		if !decodeRequest(w, r, validator, &req) {
			return
		}

		created, err := service.CreateProspect(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar prospect")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// UpdateProspect substitui o grupo de prospects por completo
func UpdateProspect(service planning.PlanningService, validator *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProspectRequest
		if !decodeRequest(w, r, validator, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.UpdateProspect(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar prospect")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteProspect(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProspect(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover prospect")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
