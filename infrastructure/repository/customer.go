package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/benchtrust/budgetplanung-api/infrastructure/database/postgres"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	customersTable = "customers"

	// CustomersChangedChannel é o canal LISTEN/NOTIFY publicado a cada escrita em customers
	CustomersChangedChannel = "customers_changed"
)

var ErrNotFound = errors.New("registro não encontrado")

var customerColumns = []string{
	"id", "provider_id", "source", "status", "is_modified",
	"company_name", "description", "domain", "category", "website", "logo", "address",
	"contacts", "pricing_model", "add_ons", "start_month", "end_month",
	"contract_type", "contract_status", "monthly_revenues", "notes",
	"created_at", "updated_at",
}

type CustomerRepository interface {
	FetchAllCustomers(ctx context.Context) ([]*domain.Customer, error)
	ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	BatchCreate(ctx context.Context, customers []*domain.Customer) (int, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateOne(ctx context.Context, request *domain.UpdateCustomerRequest) error
	UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) error
	DeleteOne(ctx context.Context, id string) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *customerRepository) FetchAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return r.ListCustomers(ctx, domain.CustomerFilter{})
}

func (r *customerRepository) ListCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*domain.Customer, error) {
	queryBuilder := squirrel.
		Select(customerColumns...).
		From(customersTable).
		OrderBy("company_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.Statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filter.Statuses})
	}

	if len(filter.Sources) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"source": filter.Sources})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir consulta de clientes")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar clientes")
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao deserializar cliente")
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro durante iteração de clientes")
	}

	return customers, nil
}

func (r *customerRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns...).
		From(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir consulta de cliente")
	}

	customer, err := scanCustomer(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "erro ao buscar cliente %s", id)
	}

	return customer, nil
}

// BatchCreate grava todos os clientes em uma única transação. Registros cujo ID
// já existe são ignorados (ON CONFLICT DO NOTHING), nunca sobrescritos.
// Retorna a quantidade efetivamente inserida.
func (r *customerRepository) BatchCreate(ctx context.Context, customers []*domain.Customer) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	sqlQuery, args, err := batchInsertQuery(customers).ToSql()
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to build query")
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return wrapDatabaseError(err)
		}

		ids := make([]string, 0, len(customers))
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, id := range ids {
			if err := notifyCustomerChange(ctx, tx, domain.CustomerChangeInsert, id); err != nil {
				return err
			}
		}

		inserted = len(ids)
		return nil
	})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "erro ao gravar lote de clientes")
	}

	if inserted < len(customers) {
		logrus.WithFields(logrus.Fields{
			"requested": len(customers),
			"inserted":  inserted,
		}).Warn("Alguns clientes já existiam e foram ignorados no lote")
	}

	return inserted, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns(customerColumns...).
		Values(customerValues(customer)...).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to build query")
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt); err != nil {
			return wrapDatabaseError(err)
		}
		return notifyCustomerChange(ctx, tx, domain.CustomerChangeInsert, customer.ID)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar cliente")
	}

	return customer, nil
}

// UpdateOne aplica apenas os campos informados e marca o registro como modificado
func (r *customerRepository) UpdateOne(ctx context.Context, request *domain.UpdateCustomerRequest) error {
	query, args, err := updateCustomerQuery(request).ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build query")
	}

	return r.execAndNotify(ctx, domain.CustomerChangeUpdate, request.ID, query, args)
}

func (r *customerRepository) UpdateStatus(ctx context.Context, id string, status domain.CustomerStatus) error {
	query, args, err := updateStatusQuery(id, status).ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build query")
	}

	return r.execAndNotify(ctx, domain.CustomerChangeUpdate, id, query, args)
}

func (r *customerRepository) DeleteOne(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build query")
	}

	return r.execAndNotify(ctx, domain.CustomerChangeDelete, id, query, args)
}

func (r *customerRepository) execAndNotify(ctx context.Context, op domain.CustomerChangeOp, id, query string, args []any) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return wrapDatabaseError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return pkgerrors.Wrap(err, "error getting rows affected")
		}

		if rowsAffected == 0 {
			return ErrNotFound
		}

		return notifyCustomerChange(ctx, tx, op, id)
	})
}

func notifyCustomerChange(ctx context.Context, q postgres.Queryer, op domain.CustomerChangeOp, id string) error {
	payload, err := utils.JSONB{V: domain.CustomerChange{Op: op, CustomerID: id}}.Value()
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, "SELECT pg_notify($1, $2)", CustomersChangedChannel, payload); err != nil {
		return pkgerrors.Wrap(err, "erro ao publicar notificação de clientes")
	}

	return nil
}

// batchInsertQuery monta o INSERT do lote de sincronização. IDs já existentes
// são ignorados, nunca sobrescritos.
func batchInsertQuery(customers []*domain.Customer) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(customersTable).
		Columns(customerColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, customer := range customers {
		query = query.Values(customerValues(customer)...)
	}

	return query.Suffix("ON CONFLICT DO NOTHING RETURNING id")
}

func updateCustomerQuery(request *domain.UpdateCustomerRequest) squirrel.UpdateBuilder {
	queryBuilder := squirrel.
		Update(customersTable).
		Set("is_modified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": request.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if request.CompanyName != nil {
		queryBuilder = queryBuilder.Set("company_name", *request.CompanyName)
	}
	if request.Description != nil {
		queryBuilder = queryBuilder.Set("description", *request.Description)
	}
	if request.Domain != nil {
		queryBuilder = queryBuilder.Set("domain", *request.Domain)
	}
	if request.Category != nil {
		queryBuilder = queryBuilder.Set("category", *request.Category)
	}
	if request.Website != nil {
		queryBuilder = queryBuilder.Set("website", *request.Website)
	}
	if request.Logo != nil {
		queryBuilder = queryBuilder.Set("logo", *request.Logo)
	}
	if request.Address != nil {
		queryBuilder = queryBuilder.Set("address", *request.Address)
	}
	if request.Contacts != nil {
		queryBuilder = queryBuilder.Set("contacts", utils.JSONB{V: request.Contacts})
	}
	if request.PricingModel != nil {
		queryBuilder = queryBuilder.Set("pricing_model", *request.PricingModel)
	}
	if request.AddOns != nil {
		queryBuilder = queryBuilder.Set("add_ons", utils.JSONB{V: nonNilStrings(*request.AddOns)})
	}
	if request.StartMonth != nil {
		queryBuilder = queryBuilder.Set("start_month", *request.StartMonth)
	}
	if request.EndMonth != nil {
		queryBuilder = queryBuilder.Set("end_month", *request.EndMonth)
	}
	if request.ContractType != nil {
		queryBuilder = queryBuilder.Set("contract_type", *request.ContractType)
	}
	if request.ContractStatus != nil {
		queryBuilder = queryBuilder.Set("contract_status", *request.ContractStatus)
	}
	if request.MonthlyRevenues != nil {
		queryBuilder = queryBuilder.Set("monthly_revenues", utils.JSONB{V: *request.MonthlyRevenues})
	}
	if request.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *request.Notes)
	}

	return queryBuilder
}

func updateStatusQuery(id string, status domain.CustomerStatus) squirrel.UpdateBuilder {
	return squirrel.
		Update(customersTable).
		Set("is_modified", true).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func customerValues(c *domain.Customer) []any {
	contractType := c.ContractType
	if contractType == "" {
		contractType = domain.ContractTypeMonthly
	}

	contractStatus := c.ContractStatus
	if contractStatus == "" {
		contractStatus = domain.ContractStatusActive
	}

	monthlyRevenues := c.MonthlyRevenues
	if monthlyRevenues == nil {
		monthlyRevenues = map[int]domain.MonthlyOverride{}
	}

	return []any{
		c.ID,
		c.ProviderID,
		c.Source,
		c.Status,
		c.IsModified,
		c.CompanyName,
		c.Description,
		c.Domain,
		c.Category,
		c.Website,
		c.Logo,
		c.Address,
		utils.JSONB{V: c.Contacts},
		c.PricingModel,
		utils.JSONB{V: nonNilStrings(c.AddOns)},
		c.StartMonth,
		c.EndMonth,
		contractType,
		contractStatus,
		utils.JSONB{V: monthlyRevenues},
		c.Notes,
		squirrel.Expr("NOW()"),
		squirrel.Expr("NOW()"),
	}
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	var providerID sql.NullString

	if err := row.Scan(
		&c.ID,
		&providerID,
		&c.Source,
		&c.Status,
		&c.IsModified,
		&c.CompanyName,
		&c.Description,
		&c.Domain,
		&c.Category,
		&c.Website,
		&c.Logo,
		&c.Address,
		utils.JSONB{V: &c.Contacts},
		&c.PricingModel,
		utils.JSONB{V: &c.AddOns},
		&c.StartMonth,
		&c.EndMonth,
		&c.ContractType,
		&c.ContractStatus,
		utils.JSONB{V: &c.MonthlyRevenues},
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if providerID.Valid {
		c.ProviderID = &providerID.String
	}

	if c.AddOns == nil {
		c.AddOns = []string{}
	}

	return c, nil
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pkgerrors.Wrapf(err, "database error (code: %s)", pqErr.Code)
	}
	return pkgerrors.Wrap(err, "failed to execute query")
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
