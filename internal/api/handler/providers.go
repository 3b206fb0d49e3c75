package handler

import (
	"context"
	"net/http"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ProviderSyncRunner executa a sincronização respeitando o bloqueio de execução
type ProviderSyncRunner interface {
	RunNow(ctx context.Context) (*domain.SyncProvidersResponse, error)
}

func SyncProviders(runner ProviderSyncRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncProviders")

		resp, err := runner.RunNow(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao sincronizar providers")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
