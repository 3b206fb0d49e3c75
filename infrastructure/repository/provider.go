package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/benchtrust/budgetplanung-api/infrastructure/database/postgres"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	pkgerrors "github.com/pkg/errors"
)

const providersTable = "providers"

// ProviderRepository lê o diretório de empresas (somente leitura para a sincronização).
// UpsertProviders existe apenas para a importação do diretório via budgetctl.
type ProviderRepository interface {
	FetchActiveProviders(ctx context.Context) ([]*domain.ProviderRecord, error)
	UpsertProviders(ctx context.Context, providers []*domain.ProviderRecord) (int, error)
}

type providerRepository struct {
	conn *postgres.Connection
}

func NewProviderRepository(conn *postgres.Connection) ProviderRepository {
	return &providerRepository{
		conn: conn,
	}
}

// FetchActiveProviders retorna os providers ativos; active nulo conta como ativo
func (r *providerRepository) FetchActiveProviders(ctx context.Context) ([]*domain.ProviderRecord, error) {
	query, args, err := squirrel.
		Select("id", "company_name", "description", "domain", "category", "website", "logo", "address", "contacts", "active").
		From(providersTable).
		Where(squirrel.Or{squirrel.Eq{"active": nil}, squirrel.Eq{"active": true}}).
		OrderBy("company_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao construir consulta de providers")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao consultar providers")
	}
	defer rows.Close()

	providers := make([]*domain.ProviderRecord, 0)
	for rows.Next() {
		p := &domain.ProviderRecord{}
		var active sql.NullBool

		if err := rows.Scan(
			&p.ID,
			&p.CompanyName,
			&p.Description,
			&p.Domain,
			&p.Category,
			&p.Website,
			&p.Logo,
			&p.Address,
			utils.JSONB{V: &p.Contacts},
			&active,
		); err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao deserializar provider")
		}

		if active.Valid {
			p.Active = &active.Bool
		}

		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "erro durante iteração de providers")
	}

	return providers, nil
}

func (r *providerRepository) UpsertProviders(ctx context.Context, providers []*domain.ProviderRecord) (int, error) {
	if len(providers) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert(providersTable).
		Columns("id", "company_name", "description", "domain", "category", "website", "logo", "address", "contacts", "active").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range providers {
		query = query.Values(
			p.ID,
			p.CompanyName,
			p.Description,
			p.Domain,
			p.Category,
			p.Website,
			p.Logo,
			p.Address,
			utils.JSONB{V: p.Contacts},
			p.Active,
		)
	}

	query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				company_name = EXCLUDED.company_name,
				description = EXCLUDED.description,
				domain = EXCLUDED.domain,
				category = EXCLUDED.category,
				website = EXCLUDED.website,
				logo = EXCLUDED.logo,
				address = EXCLUDED.address,
				contacts = EXCLUDED.contacts,
				active = EXCLUDED.active
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to build query")
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapDatabaseError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, pkgerrors.Wrap(err, "error getting rows affected")
	}

	return int(affected), nil
}
