package customer

import "github.com/benchtrust/budgetplanung-api/internal/domain"

const providerIDPrefix = "provider_"

// CustomerIDForProvider deriva o ID do cliente a partir do ID do provider.
// Sincronizações concorrentes geram o mesmo ID e o banco descarta a duplicata.
func CustomerIDForProvider(providerID string) string {
	return providerIDPrefix + providerID
}

// NewCustomerFromProvider monta o registro inicial (freemium, não modificado) de um provider
func NewCustomerFromProvider(provider *domain.ProviderRecord) *domain.Customer {
	providerID := provider.ID

	return &domain.Customer{
		ID:              CustomerIDForProvider(provider.ID),
		ProviderID:      &providerID,
		Source:          domain.CustomerSourceProviderSync,
		Status:          domain.CustomerStatusFreemium,
		IsModified:      false,
		CompanyName:     provider.CompanyName,
		Description:     provider.Description,
		Domain:          provider.Domain,
		Category:        provider.Category,
		Website:         provider.Website,
		Logo:            provider.Logo,
		Address:         provider.Address,
		Contacts:        copyContacts(provider.Contacts),
		AddOns:          []string{},
		StartMonth:      0,
		EndMonth:        11,
		ContractType:    domain.ContractTypeMonthly,
		ContractStatus:  domain.ContractStatusActive,
		MonthlyRevenues: map[int]domain.MonthlyOverride{},
	}
}

func copyContacts(in domain.Contacts) domain.Contacts {
	cp := func(c *domain.Contact) *domain.Contact {
		if c == nil {
			return nil
		}
		v := *c
		return &v
	}

	return domain.Contacts{
		CEO:       cp(in.CEO),
		Sales:     cp(in.Sales),
		Marketing: cp(in.Marketing),
		General:   cp(in.General),
	}
}
