// Package catalog carrega o catálogo de modelos de preço e add-ons.
package catalog

import (
	"fmt"
	"os"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default retorna o catálogo padrão da BenchTrust
func Default() *domain.Catalog {
	return &domain.Catalog{
		PricingModels: []domain.PricingModel{
			{ID: "showcase", Name: "Showcase", MonthlyPrice: decimal.RequireFromString("29.90"), YearlyPrice: decimal.NewFromInt(299)},
			{ID: "professional", Name: "Professional", MonthlyPrice: decimal.NewFromInt(99), YearlyPrice: decimal.NewFromInt(990)},
			{ID: "lead-engine", Name: "Lead Engine", MonthlyPrice: decimal.NewFromInt(349), YearlyPrice: decimal.NewFromInt(3490)},
		},
		AddOns: []domain.AddOn{
			{ID: "premium-listing", Name: "Premium Listing", MonthlyPrice: decimal.RequireFromString("19.90")},
			{ID: "api-access", Name: "API Access", MonthlyPrice: decimal.NewFromInt(49)},
			{ID: "extra-seats", Name: "Extra Seats", MonthlyPrice: decimal.NewFromInt(15)},
		},
	}
}

// Load lê o catálogo de um arquivo YAML. Caminho vazio retorna o catálogo padrão.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		logrus.Info("Nenhum arquivo de catálogo configurado, usando catálogo padrão")
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if err := Validate(&catalog); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":           path,
		"pricing_models": len(catalog.PricingModels),
		"add_ons":        len(catalog.AddOns),
	}).Info("Catálogo de preços carregado")

	return &catalog, nil
}

// Validate garante IDs únicos e preços não negativos, o que mantém as taxas
// calculadas sempre >= 0.
func Validate(catalog *domain.Catalog) error {
	if len(catalog.PricingModels) == 0 {
		return fmt.Errorf("catalog has no pricing models defined")
	}

	seen := make(map[string]struct{})
	for _, pm := range catalog.PricingModels {
		if pm.ID == "" {
			return fmt.Errorf("pricing model %q: id is required", pm.Name)
		}
		if _, exists := seen[pm.ID]; exists {
			return fmt.Errorf("pricing model %q: duplicated id", pm.ID)
		}
		if pm.MonthlyPrice.IsNegative() || pm.YearlyPrice.IsNegative() {
			return fmt.Errorf("pricing model %q: prices must not be negative", pm.ID)
		}
		seen[pm.ID] = struct{}{}
	}

	seen = make(map[string]struct{})
	for _, addOn := range catalog.AddOns {
		if addOn.ID == "" {
			return fmt.Errorf("add-on %q: id is required", addOn.Name)
		}
		if _, exists := seen[addOn.ID]; exists {
			return fmt.Errorf("add-on %q: duplicated id", addOn.ID)
		}
		if addOn.MonthlyPrice.IsNegative() {
			return fmt.Errorf("add-on %q: price must not be negative", addOn.ID)
		}
		seen[addOn.ID] = struct{}{}
	}

	return nil
}
