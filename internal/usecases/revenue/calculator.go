// Package revenue calcula receita recorrente (MRR/ARR) a partir do catálogo de preços.
//
// Todas as funções são puras: não alteram estado compartilhado e podem ser chamadas
// concorrentemente. IDs desconhecidos de modelo de preço ou add-on contribuem com zero
// em vez de gerar erro; a validação estrita acontece na entrada de dados.
// Nenhum valor é arredondado aqui, o arredondamento fica para a camada de resposta.
package revenue

import (
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	FirstMonth   = 0
	LastMonth    = 11
	MonthsInYear = 12
)

var (
	twelve  = decimal.NewFromInt(MonthsInYear)
	hundred = decimal.NewFromInt(100)
)

type Calculator struct {
	catalog *domain.Catalog
}

func NewCalculator(catalog *domain.Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

func (c *Calculator) Catalog() *domain.Catalog {
	return c.catalog
}

// MonthlyRate retorna a taxa mensal efetiva do modelo de preço mais add-ons.
// No contrato anual a base é yearlyPrice/12, que embute o desconto anual.
func (c *Calculator) MonthlyRate(pricingModelID string, addOnIDs []string, contractType domain.ContractType) decimal.Decimal {
	pricingModel, ok := c.catalog.PricingModel(pricingModelID)
	if !ok {
		return decimal.Zero
	}

	rate := pricingModel.MonthlyPrice
	if contractType == domain.ContractTypeYearly {
		rate = pricingModel.YearlyPrice.Div(twelve)
	}

	for _, addOnID := range addOnIDs {
		addOn, ok := c.catalog.AddOn(addOnID)
		if !ok {
			continue
		}
		rate = rate.Add(addOn.MonthlyPrice)
	}

	return rate
}

// YearlyRate multiplica a taxa mensal pelos meses ativos (endMonth - startMonth + 1).
// O chamador garante endMonth >= startMonth; não há validação aqui.
func (c *Calculator) YearlyRate(pricingModelID string, addOnIDs []string, contractType domain.ContractType, startMonth, endMonth int) decimal.Decimal {
	activeMonths := decimal.NewFromInt(int64(endMonth - startMonth + 1))
	return c.MonthlyRate(pricingModelID, addOnIDs, contractType).Mul(activeMonths)
}

// CustomerMonthRevenue retorna a receita do cliente no mês informado, respeitando
// a janela [StartMonth, EndMonth] e os overrides mensais.
func (c *Calculator) CustomerMonthRevenue(customer domain.SignedCustomer, monthIndex int) decimal.Decimal {
	if monthIndex < customer.StartMonth || monthIndex > customer.EndMonth {
		return decimal.Zero
	}

	if override, ok := customer.MonthlyRevenues[monthIndex]; ok {
		if override.CustomAmount != nil {
			return *override.CustomAmount
		}
		return c.MonthlyRate(override.PricingModel, override.AddOns, customer.ContractType)
	}

	return c.MonthlyRate(customer.PricingModel, customer.AddOns, customer.ContractType)
}

// CustomerYearTotal é o valor anual oficial de um cliente assinado, pois considera
// os overrides mês a mês (YearlyRate só vale para quem não tem overrides).
func (c *Calculator) CustomerYearTotal(customer domain.SignedCustomer) decimal.Decimal {
	total := decimal.Zero
	for month := FirstMonth; month <= LastMonth; month++ {
		total = total.Add(c.CustomerMonthRevenue(customer, month))
	}
	return total
}

func (c *Calculator) CustomerMonths(customer domain.SignedCustomer) []decimal.Decimal {
	months := make([]decimal.Decimal, 0, MonthsInYear)
	for month := FirstMonth; month <= LastMonth; month++ {
		months = append(months, c.CustomerMonthRevenue(customer, month))
	}
	return months
}

// WeightedProspectRevenue é o valor esperado do grupo de prospects até o fim do ano.
// O resultado é contínuo, não arredondado para clientes inteiros.
func (c *Calculator) WeightedProspectRevenue(prospect domain.Prospect) decimal.Decimal {
	yearly := c.YearlyRate(prospect.PricingModel, prospect.AddOns, prospect.ContractType, prospect.ExpectedStartMonth, LastMonth)
	return yearly.Mul(prospectWeight(prospect))
}

// MonthlyAggregate soma a receita do mês. Clientes assinados contam apenas com
// status active; prospects contam a partir do mês esperado de início e seguem
// sem data de término até o fim do ano.
func (c *Calculator) MonthlyAggregate(signedCustomers []domain.SignedCustomer, prospects []domain.Prospect, monthIndex int) domain.MonthlyAggregate {
	signed := decimal.Zero
	for _, customer := range signedCustomers {
		if customer.Status != domain.ContractStatusActive {
			continue
		}
		signed = signed.Add(c.CustomerMonthRevenue(customer, monthIndex))
	}

	prospectRevenue := decimal.Zero
	for _, prospect := range prospects {
		if prospect.ExpectedStartMonth > monthIndex {
			continue
		}
		rate := c.MonthlyRate(prospect.PricingModel, prospect.AddOns, prospect.ContractType)
		prospectRevenue = prospectRevenue.Add(rate.Mul(prospectWeight(prospect)))
	}

	return domain.MonthlyAggregate{
		Month:    monthIndex,
		Signed:   signed,
		Prospect: prospectRevenue,
		Total:    signed.Add(prospectRevenue),
	}
}

func (c *Calculator) YearPlan(signedCustomers []domain.SignedCustomer, prospects []domain.Prospect) domain.YearPlan {
	plan := domain.YearPlan{
		Months:        make([]domain.MonthlyAggregate, 0, MonthsInYear),
		SignedTotal:   decimal.Zero,
		ProspectTotal: decimal.Zero,
		Total:         decimal.Zero,
	}

	for month := FirstMonth; month <= LastMonth; month++ {
		aggregate := c.MonthlyAggregate(signedCustomers, prospects, month)
		plan.Months = append(plan.Months, aggregate)
		plan.SignedTotal = plan.SignedTotal.Add(aggregate.Signed)
		plan.ProspectTotal = plan.ProspectTotal.Add(aggregate.Prospect)
		plan.Total = plan.Total.Add(aggregate.Total)
	}

	return plan
}

// Summary resume MRR/ARR do mês de referência
func (c *Calculator) Summary(signedCustomers []domain.SignedCustomer, prospects []domain.Prospect, monthIndex int) domain.RevenueSummary {
	aggregate := c.MonthlyAggregate(signedCustomers, prospects, monthIndex)

	activeCustomers := 0
	for _, customer := range signedCustomers {
		if customer.Status == domain.ContractStatusActive &&
			monthIndex >= customer.StartMonth && monthIndex <= customer.EndMonth {
			activeCustomers++
		}
	}

	weightedProspects := decimal.Zero
	for _, prospect := range prospects {
		weightedProspects = weightedProspects.Add(prospectWeight(prospect))
	}

	return domain.RevenueSummary{
		Month:             monthIndex,
		MRR:               aggregate.Signed,
		ARR:               aggregate.Signed.Mul(twelve),
		ActiveCustomers:   activeCustomers,
		WeightedProspects: weightedProspects,
		ProspectRevenue:   aggregate.Prospect,
	}
}

// prospectWeight = count * (conversionProbability / 100)
func prospectWeight(prospect domain.Prospect) decimal.Decimal {
	count := decimal.NewFromInt(int64(prospect.Count))
	probability := decimal.NewFromInt(int64(prospect.ConversionProbability)).Div(hundred)
	return count.Mul(probability)
}
