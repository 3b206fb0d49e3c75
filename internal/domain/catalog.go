// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

type ContractType string

const (
	ContractTypeMonthly ContractType = "monthly"
	ContractTypeYearly  ContractType = "yearly"
)

func (t ContractType) IsValid() bool {
	return t == ContractTypeMonthly || t == ContractTypeYearly
}

// PricingModel é uma entrada imutável do catálogo de preços.
// YearlyPrice já embute o desconto anual ("2 meses grátis"), portanto
// não é igual a MonthlyPrice*12.
type PricingModel struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price" yaml:"monthly_price"`
	YearlyPrice  decimal.Decimal `json:"yearly_price" yaml:"yearly_price"`
}

type AddOn struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price" yaml:"monthly_price"`
}

// Catalog agrupa os modelos de preço e add-ons disponíveis
type Catalog struct {
	PricingModels []PricingModel `json:"pricing_models" yaml:"pricing_models"`
	AddOns        []AddOn        `json:"add_ons" yaml:"add_ons"`
}

func (c *Catalog) PricingModel(id string) (PricingModel, bool) {
	if c == nil {
		return PricingModel{}, false
	}

	for _, pm := range c.PricingModels {
		if pm.ID == id {
			return pm, true
		}
	}

	return PricingModel{}, false
}

func (c *Catalog) AddOn(id string) (AddOn, bool) {
	if c == nil {
		return AddOn{}, false
	}

	for _, addOn := range c.AddOns {
		if addOn.ID == id {
			return addOn, true
		}
	}

	return AddOn{}, false
}
