package main

import (
	"github.com/benchtrust/budgetplanung-api/infrastructure/migration"
	"github.com/spf13/cobra"
)

var flagDownSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica ou reverte as migrações do banco de dados",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas as migrações pendentes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		return migration.Up(conn.DB)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Reverte as últimas migrações",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		return migration.Down(conn.DB, flagDownSteps)
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&flagDownSteps, "steps", 1, "Quantidade de migrações a reverter")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}
