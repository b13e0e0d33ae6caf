package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (p *PgSQL) BinByCode(ctx context.Context, bin string) (*domain.Bin, error) {
	var row PgBin
	found, err := p.Builder.From(binsTable).
		Where(goqu.I("bin").Eq(bin)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch bin")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) BinExists(ctx context.Context, bin string) (bool, error) {
	return p.exists(ctx, binsTable, goqu.I("bin").Eq(bin))
}

func (p *PgSQL) BinIsActive(ctx context.Context, bin string) (bool, error) {
	return p.exists(ctx, binsTable,
		goqu.I("bin").Eq(bin),
		goqu.I("status").Eq(string(domain.StatusActive)))
}

// SaveBin upserts on the BIN; created_at of an existing row is kept.
func (p *PgSQL) SaveBin(ctx context.Context, bin domain.Bin) (*domain.Bin, error) {
	var row PgBin
	row.FromDomain(bin)

	var out PgBin
	if _, err := p.Builder.Insert(binsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("bin", excluded(
			"name", "type_bin", "type_account", "compensation_cod", "description",
			"status", "uses_bin_ext", "bin_ext_digits", "updated_at", "updated_by",
		))).
		Returning(&PgBin{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save bin")
	}

	return out.ToDomain()
}

// ListBins orders by BIN.
func (p *PgSQL) ListBins(
	ctx context.Context,
	filter storage.BinFilter,
	page storage.PageRequest,
) (storage.Page[domain.Bin], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.TypeBin != "" {
		where = append(where, goqu.I("type_bin").Eq(string(filter.TypeBin)))
	}

	var rows []PgBin
	total, err := paginate(ctx, p.Builder.From(binsTable).Where(where...), page, &rows, goqu.I("bin").Asc())
	if err != nil {
		return storage.Page[domain.Bin]{}, wrapErr(err, "could not list bins")
	}

	items, err := toDomainAll(rows, (*PgBin).ToDomain)
	if err != nil {
		return storage.Page[domain.Bin]{}, err
	}

	return storage.Page[domain.Bin]{Items: items, Total: total}, nil
}
