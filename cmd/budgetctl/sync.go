package main

import (
	"fmt"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/customer"
	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var syncJSON bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Executa uma sincronização de providers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		// O processo da CLI não expõe /metrics, então usa um registry próprio
		service := customer.NewService(
			repository.NewCustomerRepository(conn),
			repository.NewProviderRepository(conn),
			nil,
			metrics.New(prometheus.NewRegistry()),
		)

		resp, err := service.SyncProviders(cmd.Context())
		if err != nil {
			return err
		}

		if syncJSON {
			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(resp))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "imprime o resultado completo em JSON")
	rootCmd.AddCommand(syncCmd)
}
