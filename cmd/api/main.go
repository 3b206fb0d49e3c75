package main

import (
	"context"

	"github.com/benchtrust/budgetplanung-api/infrastructure/changefeed"
	"github.com/benchtrust/budgetplanung-api/infrastructure/database/postgres"
	"github.com/benchtrust/budgetplanung-api/infrastructure/migration"
	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/api"
	"github.com/benchtrust/budgetplanung-api/internal/catalog"
	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/internal/scheduler"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/authenticating"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/revenue"
	"github.com/benchtrust/budgetplanung-api/pkg/log"
	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	// Valores monetários saem como números JSON, não strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrationsEnabled {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	priceCatalog, err := catalog.Load(cfg.App.CatalogFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar catálogo de preços")
	}

	customerRepo := repository.NewCustomerRepository(pgConn)
	providerRepo := repository.NewProviderRepository(pgConn)
	prospectRepo := repository.NewProspectRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	listener, err := changefeed.NewListener(cfg.Database.DSN, repository.CustomersChangedChannel)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar changefeed de clientes")
	}
	defer listener.Close()
	go listener.Run(ctx)

	appMetrics := metrics.Default()

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	customerService := customer.NewService(customerRepo, providerRepo, listener, appMetrics)
	planningService := planning.NewService(customerRepo, prospectRepo, revenue.NewCalculator(priceCatalog), cfg.Planning)

	providerSyncService := scheduler.NewProviderSyncService(customerService, cfg)
	if err := providerSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de providers")
	}

	server, err := api.New(cfg, api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Customers:     customerService,
		Planning:      planningService,
		ProviderSync:  providerSyncService,
		Metrics:       appMetrics,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
