package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/revenue"
	"github.com/benchtrust/budgetplanung-api/pkg/apiErrors"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PlanningService interface {
	Catalog() *domain.Catalog
	GetYearPlan(ctx context.Context) (*domain.YearPlan, error)
	GetMonth(ctx context.Context, month int) (*domain.MonthlyAggregate, error)
	GetSummary(ctx context.Context) (*domain.RevenueSummary, error)
	GetCustomerRevenue(ctx context.Context, customerID string) (*domain.CustomerRevenueResponse, error)
	ListProspects(ctx context.Context) ([]*domain.Prospect, error)
	CreateProspect(ctx context.Context, request *domain.ProspectRequest) (*domain.Prospect, error)
	UpdateProspect(ctx context.Context, request *domain.ProspectRequest) (*domain.Prospect, error)
	DeleteProspect(ctx context.Context, id string) error
}

type Service struct {
	customerRepository repository.CustomerRepository
	prospectRepository repository.ProspectRepository
	calculator         *revenue.Calculator
	cfg                config.Planning
	now                func() time.Time
}

func NewService(
	customerRepository repository.CustomerRepository,
	prospectRepository repository.ProspectRepository,
	calculator *revenue.Calculator,
	cfg config.Planning,
) PlanningService {
	return &Service{
		customerRepository: customerRepository,
		prospectRepository: prospectRepository,
		calculator:         calculator,
		cfg:                cfg,
		now:                time.Now,
	}
}

func (s *Service) Catalog() *domain.Catalog {
	return s.calculator.Catalog()
}

func (s *Service) GetYearPlan(ctx context.Context) (*domain.YearPlan, error) {
	signed, prospects, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	plan := s.calculator.YearPlan(signed, prospects)
	plan.Year = s.year()

	return &plan, nil
}

func (s *Service) GetMonth(ctx context.Context, month int) (*domain.MonthlyAggregate, error) {
	if month < revenue.FirstMonth || month > revenue.LastMonth {
		return nil, NewPlanningError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, "", fmt.Sprintf("mês recebido: %d", month))
	}

	signed, prospects, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	aggregate := s.calculator.MonthlyAggregate(signed, prospects, month)
	return &aggregate, nil
}

func (s *Service) GetSummary(ctx context.Context) (*domain.RevenueSummary, error) {
	signed, prospects, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}

	summary := s.calculator.Summary(signed, prospects, s.cfg.ReferenceMonth(s.now()))
	return &summary, nil
}

// GetCustomerRevenue retorna a receita mês a mês de um cliente. Clientes que
// ainda não estão assinados não entram no plano e retornam zeros.
func (s *Service) GetCustomerRevenue(ctx context.Context, customerID string) (*domain.CustomerRevenueResponse, error) {
	customer, err := s.customerRepository.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewPlanningError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, customerID, "Cliente não encontrado")
		}
		logrus.WithError(err).WithField("customer_id", customerID).Error("Error getting customer")
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, customerID, "Erro ao buscar cliente no banco de dados")
	}

	response := &domain.CustomerRevenueResponse{
		CustomerID: customerID,
		Months:     make([]decimal.Decimal, revenue.MonthsInYear),
	}

	if customer.Status == domain.CustomerStatusSigned {
		response.Months = s.calculator.CustomerMonths(customer.AsSignedCustomer())
	}

	for _, m := range response.Months {
		response.YearTotal = response.YearTotal.Add(m)
	}

	return response, nil
}

func (s *Service) ListProspects(ctx context.Context) ([]*domain.Prospect, error) {
	prospects, err := s.prospectRepository.ListProspects(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error listing prospects")
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar prospects")
	}

	return prospects, nil
}

func (s *Service) CreateProspect(ctx context.Context, request *domain.ProspectRequest) (*domain.Prospect, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewPlanningError(ErrGenerateID, apiErrors.ErrInternalServer, "", "Falha ao gerar identificador único para prospect")
	}

	prospect := prospectFromRequest(id, request)

	created, err := s.prospectRepository.CreateProspect(ctx, prospect)
	if err != nil {
		logrus.WithError(err).Error("Error creating prospect")
		return nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao criar prospect")
	}

	return created, nil
}

func (s *Service) UpdateProspect(ctx context.Context, request *domain.ProspectRequest) (*domain.Prospect, error) {
	prospect := prospectFromRequest(request.ID, request)

	if err := s.prospectRepository.UpdateProspect(ctx, prospect); err != nil {
		return nil, s.prospectWriteError(err, request.ID, "Falha ao atualizar prospect")
	}

	updated, err := s.prospectRepository.GetProspect(ctx, request.ID)
	if err != nil {
		return nil, s.prospectWriteError(err, request.ID, "Falha ao recarregar prospect")
	}

	return updated, nil
}

func (s *Service) DeleteProspect(ctx context.Context, id string) error {
	if err := s.prospectRepository.DeleteProspect(ctx, id); err != nil {
		return s.prospectWriteError(err, id, "Falha ao remover prospect")
	}

	return nil
}

// loadInputs carrega os clientes assinados e os prospects na forma usada pela calculadora
func (s *Service) loadInputs(ctx context.Context) ([]domain.SignedCustomer, []domain.Prospect, error) {
	customers, err := s.customerRepository.ListCustomers(ctx, domain.CustomerFilter{
		Statuses: []domain.CustomerStatus{domain.CustomerStatusSigned},
	})
	if err != nil {
		logrus.WithError(err).Error("Error loading signed customers")
		return nil, nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao carregar clientes assinados")
	}

	prospects, err := s.prospectRepository.ListProspects(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error loading prospects")
		return nil, nil, NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao carregar prospects")
	}

	signed := make([]domain.SignedCustomer, 0, len(customers))
	for _, c := range customers {
		signed = append(signed, c.AsSignedCustomer())
	}

	plain := make([]domain.Prospect, 0, len(prospects))
	for _, p := range prospects {
		plain = append(plain, *p)
	}

	return signed, plain, nil
}

func (s *Service) year() int {
	if s.cfg.Year > 0 {
		return s.cfg.Year
	}
	return s.now().Year()
}

func (s *Service) prospectWriteError(err error, id, details string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewPlanningError(ErrProspectNotFound, apiErrors.ErrProspectNotFound, id, "Prospect não encontrado")
	}

	logrus.WithError(err).WithField("prospect_id", id).Error(details)
	return NewPlanningError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, details)
}

func prospectFromRequest(id string, request *domain.ProspectRequest) *domain.Prospect {
	addOns := request.AddOns
	if addOns == nil {
		addOns = []string{}
	}

	return &domain.Prospect{
		ID:                    id,
		Count:                 request.Count,
		PricingModel:          request.PricingModel,
		AddOns:                addOns,
		ExpectedStartMonth:    request.ExpectedStartMonth,
		ContractType:          request.ContractType,
		ConversionProbability: request.ConversionProbability,
		Notes:                 request.Notes,
	}
}
