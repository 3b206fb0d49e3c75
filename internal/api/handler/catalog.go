package handler

import (
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
)

func GetCatalog(service planning.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Catalog())
	}
}
