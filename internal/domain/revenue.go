package domain

import "github.com/shopspring/decimal"

// MonthlyAggregate é a receita de um mês separada entre clientes assinados e prospects ponderados
type MonthlyAggregate struct {
	Month    int             `json:"month"`
	Signed   decimal.Decimal `json:"signed"`
	Prospect decimal.Decimal `json:"prospect"`
	Total    decimal.Decimal `json:"total"`
}

type YearPlan struct {
	Year          int                `json:"year"`
	Months        []MonthlyAggregate `json:"months"`
	SignedTotal   decimal.Decimal    `json:"signed_total"`
	ProspectTotal decimal.Decimal    `json:"prospect_total"`
	Total         decimal.Decimal    `json:"total"`
}

type RevenueSummary struct {
	Month             int             `json:"month"`
	MRR               decimal.Decimal `json:"mrr"`
	ARR               decimal.Decimal `json:"arr"`
	ActiveCustomers   int             `json:"active_customers"`
	WeightedProspects decimal.Decimal `json:"weighted_prospects"`
	ProspectRevenue   decimal.Decimal `json:"prospect_revenue"`
}
