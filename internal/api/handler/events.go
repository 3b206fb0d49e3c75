package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const (
	customerEventName = "customers_changed"
	keepAliveInterval = 25 * time.Second
	eventBufferSize   = 32
)

// CustomerEvents mantém um stream SSE com cada escrita na tabela de clientes.
// Eventos são descartados quando o cliente não consome rápido o suficiente.
// O stream termina quando a requisição é cancelada ou shutdown é fechado.
func CustomerEvents(service customer.CustomerService, shutdown <-chan struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		ctx := r.Context()
		changes := make(chan domain.CustomerChange, eventBufferSize)

		unsubscribe := service.OnCustomersChanged(ctx, func(change domain.CustomerChange) {
			select {
			case changes <- change:
			default:
				logrus.WithField("customer_id", change.CustomerID).Warn("Evento de cliente descartado, stream lento")
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-shutdown:
				return

			case change := <-changes:
				payload, err := json.Marshal(change)
				if err != nil {
					logrus.WithError(err).Error("Erro ao codificar evento de cliente")
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", customerEventName, payload)
				flusher.Flush()

			case <-ticker.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			}
		}
	}
}
