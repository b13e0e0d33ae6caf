package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/storage"
)

const (
	binsTable           = "bins"
	subtypesTable       = "subtypes"
	agenciesTable       = "agencies"
	validationsTable    = "validations"
	validationMapsTable = "validation_maps"
	plansTable          = "commerce_plans"
	planItemsTable      = "plan_items"
	subtypePlansTable   = "subtype_plans"
)

// excluded builds the SET clause of an upsert taking every column from the
// proposed row.
func excluded(cols ...string) goqu.Record {
	rec := make(goqu.Record, len(cols))
	for _, c := range cols {
		rec[c] = goqu.I("excluded." + c)
	}

	return rec
}

// exists reports whether any row of table matches where.
func (p *PgSQL) exists(ctx context.Context, table string, where ...exp.Expression) (bool, error) {
	var one int
	found, err := p.Builder.From(table).
		Select(goqu.L("1")).
		Where(where...).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, wrapErr(err, "could not check "+table)
	}

	return found, nil
}

// paginate counts the rows of ds and scans the requested page into dest.
func paginate(
	ctx context.Context,
	ds *goqu.SelectDataset,
	page storage.PageRequest,
	dest any,
	order ...exp.OrderedExpression,
) (int64, error) {
	total, err := ds.CountContext(ctx)
	if err != nil {
		return 0, err //nolint: wrapcheck
	}

	page = page.Normalize()
	if err := ds.Order(order...).
		Limit(page.Size).
		Offset(page.Offset()).
		Executor().ScanStructsContext(ctx, dest); err != nil {
		return 0, err //nolint: wrapcheck
	}

	return total, nil
}

// statusEq adds a status condition when status is set.
func statusEq(where []exp.Expression, col string, status string) []exp.Expression {
	if status == "" {
		return where
	}

	return append(where, goqu.I(col).Eq(status))
}
