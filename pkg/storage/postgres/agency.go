package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func agencyKeyWhere(key domain.AgencyKey) []exp.Expression {
	return []exp.Expression{
		goqu.I("subtype_code").Eq(key.SubtypeCode),
		goqu.I("agency_code").Eq(key.AgencyCode),
	}
}

func (p *PgSQL) AgencyByKey(ctx context.Context, key domain.AgencyKey) (*domain.Agency, error) {
	var row PgAgency
	found, err := p.Builder.From(agenciesTable).
		Where(agencyKeyWhere(key)...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch agency")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) AgencyExists(ctx context.Context, key domain.AgencyKey) (bool, error) {
	return p.exists(ctx, agenciesTable, agencyKeyWhere(key)...)
}

func (p *PgSQL) ActiveAgencyCountForSubtype(ctx context.Context, subtypeCode string) (int64, error) {
	count, err := p.Builder.From(agenciesTable).
		Where(
			goqu.I("subtype_code").Eq(subtypeCode),
			goqu.I("status").Eq(string(domain.StatusActive)),
		).CountContext(ctx)
	if err != nil {
		return 0, wrapErr(err, "could not count active agencies")
	}

	return count, nil
}

func (p *PgSQL) SaveAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error) {
	var row PgAgency
	row.FromDomain(agency)

	var out PgAgency
	if _, err := p.Builder.Insert(agenciesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("subtype_code, agency_code", excluded(
			"name", "description", "address", "phone", "custodian_name",
			"custodian_id_type", "custodian_id_number", "embosser_code", "embosser_name",
			"status", "updated_at", "updated_by",
		))).
		Returning(&PgAgency{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save agency")
	}

	return out.ToDomain()
}

func (p *PgSQL) ListAgencies(
	ctx context.Context,
	filter storage.AgencyFilter,
	page storage.PageRequest,
) (storage.Page[domain.Agency], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.SubtypeCode != "" {
		where = append(where, goqu.I("subtype_code").Eq(filter.SubtypeCode))
	}

	var rows []PgAgency
	total, err := paginate(ctx, p.Builder.From(agenciesTable).Where(where...), page, &rows,
		goqu.I("subtype_code").Asc(), goqu.I("agency_code").Asc())
	if err != nil {
		return storage.Page[domain.Agency]{}, wrapErr(err, "could not list agencies")
	}

	items, err := toDomainAll(rows, (*PgAgency).ToDomain)
	if err != nil {
		return storage.Page[domain.Agency]{}, err
	}

	return storage.Page[domain.Agency]{Items: items, Total: total}, nil
}
