package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/benchtrust/budgetplanung-api/infrastructure/database/postgres"
	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:           "budgetctl",
	Short:         "Operações de manutenção da API de planejamento de receita",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		log.Configure(flagLogLevel)
	},
}

// Execute é chamado a partir de main.go
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.WithError(err).Error("Comando falhou")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Nível de log (debug, info, warn, error)")
}

// connect carrega a configuração e abre a conexão com o PostgreSQL
func connect(ctx context.Context) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return cfg, conn, nil
}
