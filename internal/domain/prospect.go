package domain

import "time"

// Prospect representa um grupo de potenciais clientes ainda não assinados.
// A receita é ponderada por ConversionProbability/100 e multiplicada por Count.
type Prospect struct {
	ID                    string       `json:"id"`
	Count                 int          `json:"count"`
	PricingModel          string       `json:"pricing_model"`
	AddOns                []string     `json:"add_ons"`
	ExpectedStartMonth    int          `json:"expected_start_month"`
	ContractType          ContractType `json:"contract_type"`
	ConversionProbability int          `json:"conversion_probability"`
	Notes                 string       `json:"notes"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

type ProspectRequest struct {
	ID                    string       `json:"-"`
	Count                 int          `json:"count" validate:"required,min=1"`
	PricingModel          string       `json:"pricing_model" validate:"required,pricingmodel"`
	AddOns                []string     `json:"add_ons" validate:"addons"`
	ExpectedStartMonth    int          `json:"expected_start_month" validate:"min=0,max=11"`
	ContractType          ContractType `json:"contract_type" validate:"required,oneof=monthly yearly"`
	ConversionProbability int          `json:"conversion_probability" validate:"min=0,max=100"`
	Notes                 string       `json:"notes" validate:"max=2000"`
}
