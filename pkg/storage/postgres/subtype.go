package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (p *PgSQL) subtypeWhere(ctx context.Context, where ...exp.Expression) (*domain.Subtype, error) {
	var row PgSubtype
	found, err := p.Builder.From(subtypesTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch subtype")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) SubtypeByCode(ctx context.Context, code string) (*domain.Subtype, error) {
	return p.subtypeWhere(ctx, goqu.I("subtype_code").Eq(code))
}

func (p *PgSQL) SubtypeByBinAndExt(ctx context.Context, bin, binExt string) (*domain.Subtype, error) {
	return p.subtypeWhere(ctx, goqu.I("bin").Eq(bin), goqu.I("bin_ext").Eq(binExt))
}

func (p *PgSQL) SubtypeExists(ctx context.Context, code string) (bool, error) {
	return p.exists(ctx, subtypesTable, goqu.I("subtype_code").Eq(code))
}

func (p *PgSQL) SubtypeIsActive(ctx context.Context, code string) (bool, error) {
	return p.exists(ctx, subtypesTable,
		goqu.I("subtype_code").Eq(code),
		goqu.I("status").Eq(string(domain.StatusActive)))
}

func (p *PgSQL) AnySubtypeReferencesBin(ctx context.Context, bin string) (bool, error) {
	return p.exists(ctx, subtypesTable, goqu.I("bin").Eq(bin))
}

// SaveSubtype upserts on the subtype code. A (bin, bin_ext) pair already used
// by another subtype fails with storage.ErrDuplicate.
func (p *PgSQL) SaveSubtype(ctx context.Context, subtype domain.Subtype) (*domain.Subtype, error) {
	var row PgSubtype
	row.FromDomain(subtype)

	var out PgSubtype
	if _, err := p.Builder.Insert(subtypesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("subtype_code", excluded(
			"name", "description", "status", "owner_id_type", "owner_id_number",
			"bin_ext", "bin_efectivo", "updated_at", "updated_by",
		))).
		Returning(&PgSubtype{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save subtype")
	}

	return out.ToDomain()
}

// ListSubtypes orders by subtype code.
func (p *PgSQL) ListSubtypes(
	ctx context.Context,
	filter storage.SubtypeFilter,
	page storage.PageRequest,
) (storage.Page[domain.Subtype], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.Bin != "" {
		where = append(where, goqu.I("bin").Eq(filter.Bin))
	}

	var rows []PgSubtype
	total, err := paginate(ctx, p.Builder.From(subtypesTable).Where(where...), page, &rows,
		goqu.I("subtype_code").Asc())
	if err != nil {
		return storage.Page[domain.Subtype]{}, wrapErr(err, "could not list subtypes")
	}

	items, err := toDomainAll(rows, (*PgSubtype).ToDomain)
	if err != nil {
		return storage.Page[domain.Subtype]{}, err
	}

	return storage.Page[domain.Subtype]{Items: items, Total: total}, nil
}
