package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerStatus string

const (
	CustomerStatusFreemium CustomerStatus = "freemium"
	CustomerStatusProspect CustomerStatus = "prospect"
	CustomerStatusSigned   CustomerStatus = "signed"
)

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusFreemium, CustomerStatusProspect, CustomerStatusSigned:
		return true
	}
	return false
}

// Rank retorna a posição do status no funil freemium → prospect → signed
func (s CustomerStatus) Rank() int {
	switch s {
	case CustomerStatusFreemium:
		return 0
	case CustomerStatusProspect:
		return 1
	case CustomerStatusSigned:
		return 2
	}
	return -1
}

type CustomerSource string

const (
	CustomerSourceProviderSync CustomerSource = "provider-sync"
	CustomerSourceManual       CustomerSource = "manual"
)

type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "active"
	ContractStatusChurned ContractStatus = "churned"
	ContractStatusPaused  ContractStatus = "paused"
)

// MonthlyOverride substitui o preço padrão do cliente em um mês específico.
// Se CustomAmount estiver definido ele vence; caso contrário PricingModel/AddOns
// passam pela fórmula padrão de cálculo.
type MonthlyOverride struct {
	PricingModel string           `json:"pricing_model"`
	AddOns       []string         `json:"add_ons"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}

// SignedCustomer é a visão contratual usada pela calculadora de receita
type SignedCustomer struct {
	ID              string                  `json:"id"`
	CompanyName     string                  `json:"company_name"`
	PricingModel    string                  `json:"pricing_model"`
	AddOns          []string                `json:"add_ons"`
	StartMonth      int                     `json:"start_month"`
	EndMonth        int                     `json:"end_month"`
	ContractType    ContractType            `json:"contract_type"`
	Status          ContractStatus          `json:"status"`
	MonthlyRevenues map[int]MonthlyOverride `json:"monthly_revenues,omitempty"`
}

// Customer é o registro local editável. Depois que IsModified vira true o
// registro nunca mais é sobrescrito pela sincronização de providers.
type Customer struct {
	ID              string                  `json:"id"`
	ProviderID      *string                 `json:"provider_id,omitempty"`
	Source          CustomerSource          `json:"source"`
	Status          CustomerStatus          `json:"status"`
	IsModified      bool                    `json:"is_modified"`
	CompanyName     string                  `json:"company_name"`
	Description     string                  `json:"description,omitempty"`
	Domain          string                  `json:"domain,omitempty"`
	Category        string                  `json:"category,omitempty"`
	Website         string                  `json:"website,omitempty"`
	Logo            string                  `json:"logo,omitempty"`
	Address         string                  `json:"address,omitempty"`
	Contacts        Contacts                `json:"contacts"`
	PricingModel    string                  `json:"pricing_model,omitempty"`
	AddOns          []string                `json:"add_ons"`
	StartMonth      int                     `json:"start_month"`
	EndMonth        int                     `json:"end_month"`
	ContractType    ContractType            `json:"contract_type"`
	ContractStatus  ContractStatus          `json:"contract_status"`
	MonthlyRevenues map[int]MonthlyOverride `json:"monthly_revenues,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func (c *Customer) AsSignedCustomer() SignedCustomer {
	return SignedCustomer{
		ID:              c.ID,
		CompanyName:     c.CompanyName,
		PricingModel:    c.PricingModel,
		AddOns:          c.AddOns,
		StartMonth:      c.StartMonth,
		EndMonth:        c.EndMonth,
		ContractType:    c.ContractType,
		Status:          c.ContractStatus,
		MonthlyRevenues: c.MonthlyRevenues,
	}
}

type CustomerFilter struct {
	Statuses []CustomerStatus
	Sources  []CustomerSource
}

type AddCustomerRequest struct {
	CompanyName     string                  `json:"company_name" validate:"required,max=200"`
	Status          CustomerStatus          `json:"status" validate:"required,oneof=freemium prospect signed"`
	Description     string                  `json:"description" validate:"max=2000"`
	Domain          string                  `json:"domain" validate:"max=200"`
	Category        string                  `json:"category" validate:"max=100"`
	Website         string                  `json:"website" validate:"omitempty,url"`
	Logo            string                  `json:"logo" validate:"omitempty,url"`
	Address         string                  `json:"address" validate:"max=500"`
	Contacts        Contacts                `json:"contacts"`
	PricingModel    string                  `json:"pricing_model" validate:"omitempty,pricingmodel"`
	AddOns          []string                `json:"add_ons" validate:"addons"`
	StartMonth      int                     `json:"start_month" validate:"min=0,max=11"`
	EndMonth        int                     `json:"end_month" validate:"min=0,max=11,gtefield=StartMonth"`
	ContractType    ContractType            `json:"contract_type" validate:"omitempty,oneof=monthly yearly"`
	ContractStatus  ContractStatus          `json:"contract_status" validate:"omitempty,oneof=active churned paused"`
	MonthlyRevenues map[int]MonthlyOverride `json:"monthly_revenues" validate:"overrides"`
	Notes           string                  `json:"notes" validate:"max=2000"`
}

// UpdateCustomerRequest carrega apenas os campos informados (atualização parcial)
type UpdateCustomerRequest struct {
	ID              string                   `json:"-"`
	CompanyName     *string                  `json:"company_name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string                  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Domain          *string                  `json:"domain,omitempty" validate:"omitempty,max=200"`
	Category        *string                  `json:"category,omitempty" validate:"omitempty,max=100"`
	Website         *string                  `json:"website,omitempty" validate:"omitempty,url"`
	Logo            *string                  `json:"logo,omitempty" validate:"omitempty,url"`
	Address         *string                  `json:"address,omitempty" validate:"omitempty,max=500"`
	Contacts        *Contacts                `json:"contacts,omitempty"`
	PricingModel    *string                  `json:"pricing_model,omitempty" validate:"omitempty,pricingmodel"`
	AddOns          *[]string                `json:"add_ons,omitempty" validate:"omitempty,addons"`
	StartMonth      *int                     `json:"start_month,omitempty" validate:"omitempty,min=0,max=11"`
	EndMonth        *int                     `json:"end_month,omitempty" validate:"omitempty,min=0,max=11"`
	ContractType    *ContractType            `json:"contract_type,omitempty" validate:"omitempty,oneof=monthly yearly"`
	ContractStatus  *ContractStatus          `json:"contract_status,omitempty" validate:"omitempty,oneof=active churned paused"`
	MonthlyRevenues *map[int]MonthlyOverride `json:"monthly_revenues,omitempty" validate:"omitempty,overrides"`
	Notes           *string                  `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type ChangeStatusRequest struct {
	Status CustomerStatus `json:"status" validate:"required,oneof=freemium prospect signed"`
}

type CustomerChangeOp string

const (
	CustomerChangeInsert CustomerChangeOp = "insert"
	CustomerChangeUpdate CustomerChangeOp = "update"
	CustomerChangeDelete CustomerChangeOp = "delete"
)

// CustomerChange é a notificação publicada a cada escrita na tabela de clientes
type CustomerChange struct {
	Op         CustomerChangeOp `json:"op"`
	CustomerID string           `json:"customer_id"`
}

type CustomerRevenueResponse struct {
	CustomerID string            `json:"customer_id"`
	Months     []decimal.Decimal `json:"months"`
	YearTotal  decimal.Decimal   `json:"year_total"`
}
