package customer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CustomerService interface {
	SyncProviders(ctx context.Context) (*domain.SyncProvidersResponse, error)
	AddCustomer(ctx context.Context, request *domain.AddCustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.Customer, error)
	ChangeCustomerStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	OnCustomersChanged(ctx context.Context, callback func(domain.CustomerChange)) func()
}

// ChangeSubscriber entrega as notificações de escrita na tabela de clientes
type ChangeSubscriber interface {
	Subscribe(callback func(domain.CustomerChange)) func()
}

type Service struct {
	customerRepository repository.CustomerRepository
	providerRepository repository.ProviderRepository
	changes            ChangeSubscriber
	metrics            *metrics.Metrics
}

func NewService(
	customerRepository repository.CustomerRepository,
	providerRepository repository.ProviderRepository,
	changes ChangeSubscriber,
	m *metrics.Metrics,
) CustomerService {
	return &Service{
		customerRepository: customerRepository,
		providerRepository: providerRepository,
		changes:            changes,
		metrics:            m,
	}
}

// SyncProviders cria um cliente freemium para cada provider ativo ainda não
// representado. É estritamente aditivo: clientes existentes, modificados ou
// não, nunca são alterados.
func (s *Service) SyncProviders(ctx context.Context) (*domain.SyncProvidersResponse, error) {
	response, err := s.syncProviders(ctx)
	s.metrics.ObserveProviderSync(response.Quantity, err)
	return response, err
}

func (s *Service) syncProviders(ctx context.Context) (*domain.SyncProvidersResponse, error) {
	response := &domain.SyncProvidersResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar providers",
		Error:    true,
	}

	providers, err := s.providerRepository.FetchActiveProviders(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error fetching active providers")
		return response, NewCustomerError(ErrFetchProviders, apiErrors.ErrProviderSyncFailed, "Falha ao consultar o diretório de providers")
	}

	existing, err := s.customerRepository.FetchAllCustomers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error fetching customers from database")
		return response, NewCustomerError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "Falha ao consultar clientes existentes no banco de dados")
	}

	represented := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		if c.ProviderID != nil {
			represented[*c.ProviderID] = struct{}{}
		}
	}

	toCreate := make([]*domain.Customer, 0)
	for _, provider := range providers {
		if !provider.IsActive() {
			continue
		}

		if _, exists := represented[provider.ID]; exists {
			continue
		}

		toCreate = append(toCreate, NewCustomerFromProvider(provider))
		// evita duplicar quando o diretório repete o mesmo provider
		represented[provider.ID] = struct{}{}
	}

	quantity := 0
	if len(toCreate) > 0 {
		quantity, err = s.customerRepository.BatchCreate(ctx, toCreate)
		if err != nil {
			logrus.WithError(err).WithField("batch_size", len(toCreate)).Error("Error writing customer batch")
			return response, NewCustomerError(ErrBatchCreate, apiErrors.ErrDatabaseOperation, "Falha ao salvar novos clientes")
		}
	}

	logrus.WithFields(logrus.Fields{
		"providers": len(providers),
		"existing":  len(existing),
		"created":   quantity,
	}).Infof("%d customers were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d clientes foram sincronizados com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) AddCustomer(ctx context.Context, request *domain.AddCustomerRequest) (*domain.Customer, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCustomerError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para cliente")
	}

	contractType := request.ContractType
	if contractType == "" {
		contractType = domain.ContractTypeMonthly
	}

	contractStatus := request.ContractStatus
	if contractStatus == "" {
		contractStatus = domain.ContractStatusActive
	}

	addOns := request.AddOns
	if addOns == nil {
		addOns = []string{}
	}

	customer := &domain.Customer{
		ID:              id,
		Source:          domain.CustomerSourceManual,
		Status:          request.Status,
		IsModified:      true,
		CompanyName:     request.CompanyName,
		Description:     request.Description,
		Domain:          request.Domain,
		Category:        request.Category,
		Website:         request.Website,
		Logo:            request.Logo,
		Address:         request.Address,
		Contacts:        request.Contacts,
		PricingModel:    request.PricingModel,
		AddOns:          addOns,
		StartMonth:      request.StartMonth,
		EndMonth:        request.EndMonth,
		ContractType:    contractType,
		ContractStatus:  contractStatus,
		MonthlyRevenues: request.MonthlyRevenues,
		Notes:           request.Notes,
	}

	created, err := s.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		logrus.WithError(err).Error("Error creating customer on the repository")
		return nil, NewCustomerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar cliente no banco de dados")
	}

	return created, nil
}

// UpdateCustomer aplica uma atualização parcial. Qualquer edição marca o
// registro como modificado, protegendo-o de futuras sincronizações.
func (s *Service) UpdateCustomer(ctx context.Context, request *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if request.ID == "" {
		return nil, ErrCustomerIDRequired
	}

	current, err := s.GetCustomer(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	startMonth, endMonth := current.StartMonth, current.EndMonth
	if request.StartMonth != nil {
		startMonth = *request.StartMonth
	}
	if request.EndMonth != nil {
		endMonth = *request.EndMonth
	}
	if endMonth < startMonth {
		return nil, NewCustomerErrorWithID(ErrInvalidContractPeriod, apiErrors.ErrInvalidRequest, request.ID, "end_month deve ser maior ou igual a start_month")
	}

	if err := s.customerRepository.UpdateOne(ctx, request); err != nil {
		return nil, s.writeError(err, request.ID, "Falha ao atualizar cliente no banco de dados")
	}

	return s.GetCustomer(ctx, request.ID)
}

// ChangeCustomerStatus só permite avançar no funil freemium → prospect → signed.
// Repetir o status atual é aceito e também marca o registro como modificado.
func (s *Service) ChangeCustomerStatus(ctx context.Context, id string, status domain.CustomerStatus) (*domain.Customer, error) {
	if id == "" {
		return nil, ErrCustomerIDRequired
	}

	if !status.IsValid() {
		return nil, NewCustomerErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("status desconhecido: %s", status))
	}

	current, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(current.Status, status) {
		return nil, NewCustomerErrorWithID(
			ErrInvalidStatusTransition,
			apiErrors.ErrInvalidStatusTransition,
			id,
			fmt.Sprintf("%s → %s", current.Status, status),
		)
	}

	if err := s.customerRepository.UpdateStatus(ctx, id, status); err != nil {
		return nil, s.writeError(err, id, "Falha ao atualizar status do cliente")
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": id,
		"from":        current.Status,
		"to":          status,
	}).Info("Customer status changed")

	return s.GetCustomer(ctx, id)
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return ErrCustomerIDRequired
	}

	if err := s.customerRepository.DeleteOne(ctx, id); err != nil {
		return s.writeError(err, id, "Falha ao remover cliente")
	}

	return nil
}

func (s *Service) ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	customers, err := s.customerRepository.ListCustomers(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Error listing customers")
		return nil, NewCustomerError(ErrFetchCustomers, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes no banco de dados")
	}

	return customers, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, ErrCustomerIDRequired
	}

	customer, err := s.customerRepository.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, id, "Cliente não encontrado")
		}
		logrus.WithError(err).WithField("customer_id", id).Error("Error getting customer")
		return nil, NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar cliente no banco de dados")
	}

	return customer, nil
}

// OnCustomersChanged registra um callback para cada escrita em clientes.
// A inscrição é removida quando o contexto termina ou a função retornada é chamada.
func (s *Service) OnCustomersChanged(ctx context.Context, callback func(domain.CustomerChange)) func() {
	if s.changes == nil {
		return func() {}
	}

	unsubscribe := s.changes.Subscribe(callback)

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			unsubscribe()
		case <-stop:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			unsubscribe()
		})
	}
}

// CanTransition informa se a mudança de status respeita a ordem do funil
func CanTransition(from, to domain.CustomerStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	return to.Rank() >= from.Rank()
}

func (s *Service) writeError(err error, id string, details string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewCustomerErrorWithID(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, id, "Cliente não encontrado")
	}

	logrus.WithError(err).WithField("customer_id", id).Error(details)
	return NewCustomerErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, details)
}
