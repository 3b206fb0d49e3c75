package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/benchtrust/budgetplanung-api/infrastructure/database/postgres"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	pkgerrors "github.com/pkg/errors"
)

const prospectsTable = "prospects"

var prospectColumns = []string{
	"id", "count", "pricing_model", "add_ons", "expected_start_month",
	"contract_type", "conversion_probability", "notes", "created_at", "updated_at",
}

type ProspectRepository interface {
	ListProspects(ctx context.Context) ([]*domain.Prospect, error)
	GetProspect(ctx context.Context, id string) (*domain.Prospect, error)
	CreateProspect(ctx context.Context, prospect *domain.Prospect) (*domain.Prospect, error)
	UpdateProspect(ctx context.Context, prospect *domain.Prospect) error
	DeleteProspect(ctx context.Context, id string) error
}

type prospectRepository struct {
	conn *postgres.Connection
}

func NewProspectRepository(conn *postgres.Connection) ProspectRepository {
	return &prospectRepository{
		conn: conn,
	}
}

func (r *prospectRepository) ListProspects(ctx context.Context) ([]*domain.Prospect, error) {
	query, args, err := squirrel.
		Select(prospectColumns...).
		From(prospectsTable).
		OrderBy("expected_start_month ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir consulta de prospects")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar prospects")
	}
	defer rows.Close()

	prospects := make([]*domain.Prospect, 0)
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao deserializar prospect")
		}
		prospects = append(prospects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro durante iteração de prospects")
	}

	return prospects, nil
}

func (r *prospectRepository) GetProspect(ctx context.Context, id string) (*domain.Prospect, error) {
	query, args, err := squirrel.
		Select(prospectColumns...).
		From(prospectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir consulta de prospect")
	}

	p, err := scanProspect(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrapf(err, "erro ao buscar prospect %s", id)
	}

	return p, nil
}

func (r *prospectRepository) CreateProspect(ctx context.Context, p *domain.Prospect) (*domain.Prospect, error) {
	query, args, err := squirrel.
		Insert(prospectsTable).
		Columns("id", "count", "pricing_model", "add_ons", "expected_start_month", "contract_type", "conversion_probability", "notes").
		Values(p.ID, p.Count, p.PricingModel, utils.JSONB{V: nonNilStrings(p.AddOns)}, p.ExpectedStartMonth, p.ContractType, p.ConversionProbability, p.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to build query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, wrapDatabaseError(err)
	}

	return p, nil
}

func (r *prospectRepository) UpdateProspect(ctx context.Context, p *domain.Prospect) error {
	query, args, err := squirrel.
		Update(prospectsTable).
		Set("count", p.Count).
		Set("pricing_model", p.PricingModel).
		Set("add_ons", utils.JSONB{V: nonNilStrings(p.AddOns)}).
		Set("expected_start_month", p.ExpectedStartMonth).
		Set("contract_type", p.ContractType).
		Set("conversion_probability", p.ConversionProbability).
		Set("notes", p.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build query")
	}

	return r.exec(ctx, query, args)
}

func (r *prospectRepository) DeleteProspect(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(prospectsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to build query")
	}

	return r.exec(ctx, query, args)
}

func (r *prospectRepository) exec(ctx context.Context, query string, args []any) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
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

	return nil
}

func scanProspect(row rowScanner) (*domain.Prospect, error) {
	p := &domain.Prospect{}

	if err := row.Scan(
		&p.ID,
		&p.Count,
		&p.PricingModel,
		utils.JSONB{V: &p.AddOns},
		&p.ExpectedStartMonth,
		&p.ContractType,
		&p.ConversionProbability,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if p.AddOns == nil {
		p.AddOns = []string{}
	}

	return p, nil
}
