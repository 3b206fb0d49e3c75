package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benchtrust/budgetplanung-api/internal/api/handler"
	"github.com/benchtrust/budgetplanung-api/internal/api/handler/router"
	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/internal/scheduler"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
	"github.com/benchtrust/budgetplanung-api/pkg/middleware"
	"github.com/benchtrust/budgetplanung-api/pkg/validation"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer  *http.Server
	stopStreams context.CancelFunc
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB            handler.Pinger
	Authenticator authenticating.Authenticator
	Customers     customer.CustomerService
	Planning      planning.PlanningService
	ProviderSync  *scheduler.ProviderSyncService
	Metrics       *metrics.Metrics
}

func New(cfg *config.Config, services Services) (*Server, error) {
	validator := validation.New(services.Planning.Catalog())
	streams, stopStreams := context.WithCancel(context.Background())

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, validator)...),
		router.WithRoutes(handler.Catalog(services.Planning)...),
		router.WithRoutes(handler.Customers(services.Customers, services.Planning, validator, streams.Done())...),
		router.WithRoutes(handler.Prospects(services.Planning, validator)...),
		router.WithRoutes(handler.Planning(services.Planning)...),
	}

	if services.ProviderSync != nil {
		routes = append(routes,
			router.WithRoutes(handler.Providers(services.ProviderSync)...),
			router.WithRoutes(handler.CronJobs(handler.CronJobServices{ProviderSync: services.ProviderSync})...),
		)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	if cfg.Metrics.Enabled {
		routes = append(routes, router.WithRoutes(handler.Metrics()...))
		middlewares = append(middlewares, middleware.MetricsMiddleware(services.Metrics))
	}

	middlewares = append(middlewares, middleware.AuthMiddleware(services.Authenticator))

	rt := router.New(routes...)
	h := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
		stopStreams: stopStreams,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	// Streams SSE nunca ficam ociosos, então precisam ser encerrados antes do Shutdown
	logrus.Info("Encerrando streams de eventos abertos")
	s.stopStreams()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
