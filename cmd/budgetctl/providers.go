package main

import (
	"fmt"
	"os"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Gerencia o diretório de providers",
}

var providersImportCmd = &cobra.Command{
	Use:   "import <arquivo.yaml>",
	Short: "Importa (upsert) providers de um export YAML do diretório",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providers, err := readProviders(args[0])
		if err != nil {
			return err
		}

		_, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		count, err := repository.NewProviderRepository(conn).UpsertProviders(cmd.Context(), providers)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d providers importados\n", count)
		return nil
	},
}

func init() {
	providersCmd.AddCommand(providersImportCmd)
	rootCmd.AddCommand(providersCmd)
}

// readProviders aceita tanto uma lista na raiz quanto a chave "providers"
func readProviders(path string) ([]*domain.ProviderRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao ler %s", path)
	}

	var providers []*domain.ProviderRecord
	if err := yaml.Unmarshal(data, &providers); err != nil {
		var wrapped struct {
			Providers []*domain.ProviderRecord `yaml:"providers"`
		}
		if wrappedErr := yaml.Unmarshal(data, &wrapped); wrappedErr != nil {
			return nil, pkgerrors.Wrapf(err, "erro ao decodificar %s", path)
		}
		providers = wrapped.Providers
	}

	for i, provider := range providers {
		if provider == nil || provider.ID == "" || provider.CompanyName == "" {
			return nil, fmt.Errorf("provider %d sem id ou company_name", i)
		}
	}

	return providers, nil
}
