package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/infrastructure/repository/mocks"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func stringPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *mocks.MockCustomerRepository, *mocks.MockProviderRepository) {
	ctrl := gomock.NewController(t)

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	providerRepo := mocks.NewMockProviderRepository(ctrl)

	svc := NewService(customerRepo, providerRepo, nil, nil).(*Service)

	return svc, customerRepo, providerRepo
}

func TestCustomerIDForProvider(t *testing.T) {
	assert.Equal(t, "provider_abc123", CustomerIDForProvider("abc123"))
	assert.Equal(t, CustomerIDForProvider("x"), CustomerIDForProvider("x"))
}

func TestNewCustomerFromProvider(t *testing.T) {
	provider := &domain.ProviderRecord{
		ID:          "p1",
		CompanyName: "Acme GmbH",
		Description: "Software",
		Domain:      "acme.de",
		Category:    "SaaS",
		Website:     "https://acme.de",
		Logo:        "https://acme.de/logo.png",
		Address:     "Berlin",
		Contacts: domain.Contacts{
			CEO:   &domain.Contact{Name: "Anna", Email: "anna@acme.de"},
			Sales: &domain.Contact{Name: "Ben", Phone: "+49 30 1234"},
		},
	}

	c := NewCustomerFromProvider(provider)

	assert.Equal(t, "provider_p1", c.ID)
	require.NotNil(t, c.ProviderID)
	assert.Equal(t, "p1", *c.ProviderID)
	assert.Equal(t, domain.CustomerSourceProviderSync, c.Source)
	assert.Equal(t, domain.CustomerStatusFreemium, c.Status)
	assert.False(t, c.IsModified)
	assert.Equal(t, "Acme GmbH", c.CompanyName)
	assert.Equal(t, "acme.de", c.Domain)
	assert.Equal(t, "Anna", c.Contacts.CEO.Name)
	assert.Equal(t, "+49 30 1234", c.Contacts.Sales.Phone)
	assert.Nil(t, c.Contacts.Marketing)

	// o registro não compartilha ponteiros com o provider
	provider.Contacts.CEO.Name = "Outro"
	assert.Equal(t, "Anna", c.Contacts.CEO.Name)
}

func TestSyncProviders(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		providers        []*domain.ProviderRecord
		existing         []*domain.Customer
		expectBatch      []string
		batchErr         error
		expectedQuantity int
		expectedErr      error
	}{
		{
			name: "Primeira sincronização - cria um cliente freemium por provider ativo",
			providers: []*domain.ProviderRecord{
				{ID: "p1", CompanyName: "Alpha"},
				{ID: "p2", CompanyName: "Beta", Active: boolPtr(true)},
				{ID: "p3", CompanyName: "Gamma", Active: boolPtr(false)},
			},
			existing:         []*domain.Customer{},
			expectBatch:      []string{"provider_p1", "provider_p2"},
			expectedQuantity: 2,
		},
		{
			name: "Segunda sincronização idempotente - nenhum registro novo, nada é gravado",
			providers: []*domain.ProviderRecord{
				{ID: "p1", CompanyName: "Alpha"},
				{ID: "p2", CompanyName: "Beta"},
			},
			existing: []*domain.Customer{
				{ID: "provider_p1", ProviderID: stringPtr("p1"), Status: domain.CustomerStatusFreemium},
				{ID: "provider_p2", ProviderID: stringPtr("p2"), Status: domain.CustomerStatusFreemium},
			},
			expectedQuantity: 0,
		},
		{
			name: "Registros modificados nunca são tocados - provider representado é ignorado",
			providers: []*domain.ProviderRecord{
				{ID: "p1", CompanyName: "Alpha renomeada no diretório"},
				{ID: "p4", CompanyName: "Delta"},
			},
			existing: []*domain.Customer{
				{ID: "provider_p1", ProviderID: stringPtr("p1"), Status: domain.CustomerStatusSigned, IsModified: true, CompanyName: "Alpha editada"},
				{ID: "manual01", Source: domain.CustomerSourceManual, Status: domain.CustomerStatusProspect, IsModified: true},
			},
			expectBatch:      []string{"provider_p4"},
			expectedQuantity: 1,
		},
		{
			name: "Provider duplicado no diretório gera apenas um registro",
			providers: []*domain.ProviderRecord{
				{ID: "p5", CompanyName: "Epsilon"},
				{ID: "p5", CompanyName: "Epsilon"},
			},
			existing:         nil,
			expectBatch:      []string{"provider_p5"},
			expectedQuantity: 1,
		},
		{
			name: "Falha no lote aborta a sincronização",
			providers: []*domain.ProviderRecord{
				{ID: "p6", CompanyName: "Zeta"},
			},
			existing:    []*domain.Customer{},
			expectBatch: []string{"provider_p6"},
			batchErr:    errors.New("connection reset"),
			expectedErr: ErrBatchCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, customerRepo, providerRepo := newTestService(t)

			providerRepo.EXPECT().FetchActiveProviders(gomock.Any()).Return(tt.providers, nil)
			customerRepo.EXPECT().FetchAllCustomers(gomock.Any()).Return(tt.existing, nil)

			if len(tt.expectBatch) > 0 {
				customerRepo.EXPECT().
					BatchCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customers []*domain.Customer) (int, error) {
						ids := make([]string, 0, len(customers))
						for _, c := range customers {
							assert.Equal(t, domain.CustomerStatusFreemium, c.Status)
							assert.False(t, c.IsModified)
							assert.Equal(t, domain.CustomerSourceProviderSync, c.Source)
							ids = append(ids, c.ID)
						}
						assert.Equal(t, tt.expectBatch, ids)

						if tt.batchErr != nil {
							return 0, tt.batchErr
						}
						return len(customers), nil
					})
			}

			resp, err := svc.SyncProviders(ctx)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, resp.Error)
				assert.Equal(t, 0, resp.Quantity)
				return
			}

			require.NoError(t, err)
			assert.False(t, resp.Error)
			assert.Equal(t, tt.expectedQuantity, resp.Quantity)
		})
	}
}

func TestSyncProviders_FetchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Erro ao consultar providers", func(t *testing.T) {
		svc, _, providerRepo := newTestService(t)

		providerRepo.EXPECT().FetchActiveProviders(gomock.Any()).Return(nil, errors.New("timeout"))

		resp, err := svc.SyncProviders(ctx)

		var customerErr *CustomerError
		require.ErrorAs(t, err, &customerErr)
		assert.Equal(t, apiErrors.ErrProviderSyncFailed, customerErr.Code)
		assert.True(t, resp.Error)
	})

	t.Run("Erro ao consultar clientes existentes", func(t *testing.T) {
		svc, customerRepo, providerRepo := newTestService(t)

		providerRepo.EXPECT().FetchActiveProviders(gomock.Any()).Return([]*domain.ProviderRecord{{ID: "p1"}}, nil)
		customerRepo.EXPECT().FetchAllCustomers(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.SyncProviders(ctx)

		assert.ErrorIs(t, err, ErrFetchCustomers)
	})
}

func TestChangeCustomerStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    domain.CustomerStatus
		to      domain.CustomerStatus
		allowed bool
	}{
		{"freemium para prospect", domain.CustomerStatusFreemium, domain.CustomerStatusProspect, true},
		{"prospect para signed", domain.CustomerStatusProspect, domain.CustomerStatusSigned, true},
		{"freemium direto para signed", domain.CustomerStatusFreemium, domain.CustomerStatusSigned, true},
		{"mesmo status é aceito", domain.CustomerStatusProspect, domain.CustomerStatusProspect, true},
		{"signed para freemium é rejeitado", domain.CustomerStatusSigned, domain.CustomerStatusFreemium, false},
		{"prospect para freemium é rejeitado", domain.CustomerStatusProspect, domain.CustomerStatusFreemium, false},
		{"signed para prospect é rejeitado", domain.CustomerStatusSigned, domain.CustomerStatusProspect, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, customerRepo, _ := newTestService(t)

			updatedAt := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

			lookup := customerRepo.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&domain.Customer{
				ID:     "c1",
				Status: tt.from,
			}, nil)

			if tt.allowed {
				update := customerRepo.EXPECT().UpdateStatus(gomock.Any(), "c1", tt.to).Return(nil).After(lookup)
				customerRepo.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&domain.Customer{
					ID:         "c1",
					Status:     tt.to,
					IsModified: true,
					UpdatedAt:  updatedAt,
				}, nil).After(update)
			}

			customer, err := svc.ChangeCustomerStatus(ctx, "c1", tt.to)

			if !tt.allowed {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)

				var customerErr *CustomerError
				require.ErrorAs(t, err, &customerErr)
				assert.Equal(t, apiErrors.ErrInvalidStatusTransition, customerErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, customer.Status)
			assert.True(t, customer.IsModified)
			assert.Equal(t, updatedAt, customer.UpdatedAt)
		})
	}
}

func TestChangeCustomerStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ChangeCustomerStatus(context.Background(), "c1", domain.CustomerStatus("churned"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAddCustomer(t *testing.T) {
	svc, customerRepo, _ := newTestService(t)

	customerRepo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
			return c, nil
		})

	customer, err := svc.AddCustomer(context.Background(), &domain.AddCustomerRequest{
		CompanyName:  "Manual AG",
		Status:       domain.CustomerStatusSigned,
		PricingModel: "lead-engine",
		StartMonth:   0,
		EndMonth:     11,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Nil(t, customer.ProviderID)
	assert.Equal(t, domain.CustomerSourceManual, customer.Source)
	assert.True(t, customer.IsModified)
	assert.Equal(t, domain.ContractTypeMonthly, customer.ContractType)
	assert.Equal(t, domain.ContractStatusActive, customer.ContractStatus)
	assert.Equal(t, []string{}, customer.AddOns)
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Atualização parcial retorna o registro recarregado", func(t *testing.T) {
		svc, customerRepo, _ := newTestService(t)
		name := "Novo nome"
		request := &domain.UpdateCustomerRequest{ID: "c1", CompanyName: &name}

		gomock.InOrder(
			customerRepo.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&domain.Customer{ID: "c1", EndMonth: 11}, nil),
			customerRepo.EXPECT().UpdateOne(gomock.Any(), request).Return(nil),
			customerRepo.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&domain.Customer{ID: "c1", CompanyName: name, IsModified: true, EndMonth: 11}, nil),
		)

		customer, err := svc.UpdateCustomer(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, name, customer.CompanyName)
		assert.True(t, customer.IsModified)
	})

	t.Run("Período de contrato invertido é rejeitado", func(t *testing.T) {
		svc, customerRepo, _ := newTestService(t)
		endMonth := 2

		customerRepo.EXPECT().GetCustomer(gomock.Any(), "c1").Return(&domain.Customer{ID: "c1", StartMonth: 5, EndMonth: 11}, nil)

		_, err := svc.UpdateCustomer(ctx, &domain.UpdateCustomerRequest{ID: "c1", EndMonth: &endMonth})

		assert.ErrorIs(t, err, ErrInvalidContractPeriod)
	})

	t.Run("Cliente inexistente", func(t *testing.T) {
		svc, customerRepo, _ := newTestService(t)

		customerRepo.EXPECT().GetCustomer(gomock.Any(), "nope").Return(nil, repository.ErrNotFound)

		_, err := svc.UpdateCustomer(ctx, &domain.UpdateCustomerRequest{ID: "nope"})

		var customerErr *CustomerError
		require.ErrorAs(t, err, &customerErr)
		assert.Equal(t, apiErrors.ErrCustomerNotFound, customerErr.Code)
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Remove o registro", func(t *testing.T) {
		svc, customerRepo, _ := newTestService(t)
		customerRepo.EXPECT().DeleteOne(gomock.Any(), "c1").Return(nil)

		assert.NoError(t, svc.DeleteCustomer(ctx, "c1"))
	})

	t.Run("Registro inexistente vira not found", func(t *testing.T) {
		svc, customerRepo, _ := newTestService(t)
		customerRepo.EXPECT().DeleteOne(gomock.Any(), "c1").Return(repository.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteCustomer(ctx, "c1"), ErrCustomerNotFound)
	})

	t.Run("ID vazio", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		assert.ErrorIs(t, svc.DeleteCustomer(ctx, ""), ErrCustomerIDRequired)
	})
}

type fakeSubscriber struct {
	callbacks map[int]func(domain.CustomerChange)
	next      int
}

func (f *fakeSubscriber) Subscribe(callback func(domain.CustomerChange)) func() {
	id := f.next
	f.next++
	f.callbacks[id] = callback
	return func() { delete(f.callbacks, id) }
}

func (f *fakeSubscriber) publish(change domain.CustomerChange) {
	for _, cb := range f.callbacks {
		cb(change)
	}
}

func TestOnCustomersChanged(t *testing.T) {
	sub := &fakeSubscriber{callbacks: map[int]func(domain.CustomerChange){}}
	svc := NewService(nil, nil, sub, nil)

	var received []domain.CustomerChange
	unsubscribe := svc.OnCustomersChanged(context.Background(), func(c domain.CustomerChange) {
		received = append(received, c)
	})

	sub.publish(domain.CustomerChange{Op: domain.CustomerChangeInsert, CustomerID: "c1"})
	unsubscribe()
	unsubscribe()
	sub.publish(domain.CustomerChange{Op: domain.CustomerChangeDelete, CustomerID: "c1"})

	require.Len(t, received, 1)
	assert.Equal(t, "c1", received[0].CustomerID)
	assert.Empty(t, sub.callbacks)
}
