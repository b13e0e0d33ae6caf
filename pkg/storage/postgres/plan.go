package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (p *PgSQL) planWhere(ctx context.Context, where exp.Expression) (*domain.CommercePlan, error) {
	var row PgCommercePlan
	found, err := p.Builder.From(plansTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch commerce plan")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PlanByCode(ctx context.Context, code string) (*domain.CommercePlan, error) {
	return p.planWhere(ctx, goqu.I("code").Eq(code))
}

func (p *PgSQL) PlanByID(ctx context.Context, id int64) (*domain.CommercePlan, error) {
	return p.planWhere(ctx, goqu.I("plan_id").Eq(id))
}

func (p *PgSQL) SavePlan(ctx context.Context, plan domain.CommercePlan) (*domain.CommercePlan, error) {
	var row PgCommercePlan
	row.FromDomain(plan)

	var out PgCommercePlan
	if _, err := p.Builder.Insert(plansTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("code", excluded(
			"name", "validation_mode", "description", "status", "updated_at", "updated_by",
		))).
		Returning(&PgCommercePlan{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save commerce plan")
	}

	return out.ToDomain()
}

func (p *PgSQL) ListPlans(
	ctx context.Context,
	filter storage.PlanFilter,
	page storage.PageRequest,
) (storage.Page[domain.CommercePlan], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.Mode != "" {
		where = append(where, goqu.I("validation_mode").Eq(string(filter.Mode)))
	}

	var rows []PgCommercePlan
	total, err := paginate(ctx, p.Builder.From(plansTable).Where(where...), page, &rows, goqu.I("code").Asc())
	if err != nil {
		return storage.Page[domain.CommercePlan]{}, wrapErr(err, "could not list commerce plans")
	}

	items, err := toDomainAll(rows, (*PgCommercePlan).ToDomain)
	if err != nil {
		return storage.Page[domain.CommercePlan]{}, err
	}

	return storage.Page[domain.CommercePlan]{Items: items, Total: total}, nil
}

func (p *PgSQL) ActivePlanItemCount(ctx context.Context, planID int64) (int64, error) {
	count, err := p.Builder.From(planItemsTable).
		Where(
			goqu.I("plan_id").Eq(planID),
			goqu.I("status").Eq(string(domain.StatusActive)),
		).CountContext(ctx)
	if err != nil {
		return 0, wrapErr(err, "could not count plan items")
	}

	return count, nil
}

func (p *PgSQL) ActivePlanItemValues(ctx context.Context, planID int64, values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	var out []string
	if err := p.Builder.From(planItemsTable).
		Select("value").
		Where(
			goqu.I("plan_id").Eq(planID),
			goqu.I("status").Eq(string(domain.StatusActive)),
			goqu.I("value").In(values),
		).
		Order(goqu.I("value").Asc()).
		Executor().ScanValsContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not fetch plan item values")
	}

	return out, nil
}

// InsertPlanItems inserts items and reactivates removed ones in one
// statement. Rows already active are not touched, so the affected row count
// is the number of items that became active.
func (p *PgSQL) InsertPlanItems(ctx context.Context, items ...domain.PlanItem) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	rows := make([]PgPlanItem, len(items))
	for i := range items {
		rows[i].FromDomain(items[i])
	}

	var written []string
	if err := p.Builder.Insert(planItemsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("plan_id, value", goqu.Record{
			"status":     goqu.I("excluded.status"),
			"updated_at": goqu.I("excluded.updated_at"),
			"updated_by": goqu.I("excluded.updated_by"),
		}).Where(goqu.I(planItemsTable+".status").Eq(string(domain.StatusInactive)))).
		Returning(goqu.I(planItemsTable+".value")).
		Executor().ScanValsContext(ctx, &written); err != nil {
		return nil, wrapErr(err, "could not insert plan items")
	}

	return written, nil
}

func (p *PgSQL) ActivePlanItemByValue(ctx context.Context, planID int64, value string) (*domain.PlanItem, error) {
	var row PgPlanItem
	found, err := p.Builder.From(planItemsTable).
		Where(
			goqu.I("plan_id").Eq(planID),
			goqu.I("value").Eq(value),
			goqu.I("status").Eq(string(domain.StatusActive)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch plan item")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SavePlanItem updates the status and audit fields of a stored item.
func (p *PgSQL) SavePlanItem(ctx context.Context, item domain.PlanItem) (*domain.PlanItem, error) {
	var row PgPlanItem
	row.FromDomain(item)

	var out PgPlanItem
	found, err := p.Builder.Update(planItemsTable).
		Set(goqu.Record{
			"status":     row.Status,
			"updated_at": row.UpdatedAt,
			"updated_by": row.UpdatedBy,
		}).
		Where(goqu.I("plan_item_id").Eq(row.PlanItemID)).
		Returning(&PgPlanItem{}).
		Executor().ScanStructContext(ctx, &out)
	if err != nil {
		return nil, wrapErr(err, "could not save plan item")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain()
}

func (p *PgSQL) ListPlanItems(
	ctx context.Context,
	planID int64,
	status domain.Status,
	page storage.PageRequest,
) (storage.Page[domain.PlanItem], error) {
	where := statusEq([]exp.Expression{goqu.I("plan_id").Eq(planID)}, "status", string(status))

	var rows []PgPlanItem
	total, err := paginate(ctx, p.Builder.From(planItemsTable).Where(where...), page, &rows,
		goqu.I("value").Asc())
	if err != nil {
		return storage.Page[domain.PlanItem]{}, wrapErr(err, "could not list plan items")
	}

	items, err := toDomainAll(rows, (*PgPlanItem).ToDomain)
	if err != nil {
		return storage.Page[domain.PlanItem]{}, err
	}

	return storage.Page[domain.PlanItem]{Items: items, Total: total}, nil
}

func (p *PgSQL) SubtypePlanBySubtype(ctx context.Context, subtypeCode string) (*domain.SubtypePlanLink, error) {
	var row PgSubtypePlan
	found, err := p.Builder.From(subtypePlansTable).
		Where(goqu.I("subtype_code").Eq(subtypeCode)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch subtype plan")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SaveSubtypePlan upserts on the subtype code, replacing the previous plan.
func (p *PgSQL) SaveSubtypePlan(ctx context.Context, link domain.SubtypePlanLink) (*domain.SubtypePlanLink, error) {
	var row PgSubtypePlan
	row.FromDomain(link)

	var out PgSubtypePlan
	if _, err := p.Builder.Insert(subtypePlansTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("subtype_code", excluded("plan_id", "updated_at", "updated_by"))).
		Returning(&PgSubtypePlan{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save subtype plan")
	}

	return out.ToDomain()
}
