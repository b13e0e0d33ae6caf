package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/shopspring/decimal"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func mapKeyWhere(key domain.MapKey) []exp.Expression {
	return []exp.Expression{
		goqu.I("subtype_code").Eq(key.SubtypeCode),
		goqu.I("bin").Eq(key.Bin),
		goqu.I("validation_id").Eq(key.ValidationID),
	}
}

func (p *PgSQL) ActiveValidationMapExists(ctx context.Context, key domain.MapKey) (bool, error) {
	where := append(mapKeyWhere(key), goqu.I("status").Eq(string(domain.StatusActive)))

	return p.exists(ctx, validationMapsTable, where...)
}

func (p *PgSQL) ActiveValidationMapCount(ctx context.Context, subtypeCode, bin string) (int64, error) {
	count, err := p.Builder.From(validationMapsTable).
		Where(
			goqu.I("subtype_code").Eq(subtypeCode),
			goqu.I("bin").Eq(bin),
			goqu.I("status").Eq(string(domain.StatusActive)),
		).CountContext(ctx)
	if err != nil {
		return 0, wrapErr(err, "could not count validation maps")
	}

	return count, nil
}

func (p *PgSQL) LatestValidationMapByKey(ctx context.Context, key domain.MapKey) (*domain.ValidationMap, error) {
	var row PgValidationMap
	found, err := p.Builder.From(validationMapsTable).
		Where(mapKeyWhere(key)...).
		Order(goqu.I("map_id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch validation map")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SaveValidationMap inserts a new row when the mapping has no ID and updates
// status, priority and override of the existing row otherwise. A second
// active row for a key fails with storage.ErrDuplicate.
func (p *PgSQL) SaveValidationMap(ctx context.Context, m domain.ValidationMap) (*domain.ValidationMap, error) {
	var row PgValidationMap
	row.FromDomain(m)

	var (
		out   PgValidationMap
		found = true
		err   error
	)
	if row.MapID == 0 {
		_, err = p.Builder.Insert(validationMapsTable).
			Rows(row).
			Returning(&PgValidationMap{}).
			Executor().ScanStructContext(ctx, &out)
	} else {
		found, err = p.Builder.Update(validationMapsTable).
			Set(goqu.Record{
				"priority":   row.Priority,
				"status":     row.Status,
				"value_flag": row.ValueFlag,
				"value_num":  row.ValueNum,
				"value_text": row.ValueText,
				"updated_at": row.UpdatedAt,
				"updated_by": row.UpdatedBy,
			}).
			Where(goqu.I("map_id").Eq(row.MapID)).
			Returning(&PgValidationMap{}).
			Executor().ScanStructContext(ctx, &out)
	}
	if err != nil {
		return nil, wrapErr(err, "could not save validation map")
	}
	if !found {
		return nil, nil
	}

	return out.ToDomain()
}

func (p *PgSQL) ListValidationMaps(
	ctx context.Context,
	filter storage.ValidationMapFilter,
	page storage.PageRequest,
) (storage.Page[domain.ValidationMap], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.SubtypeCode != "" {
		where = append(where, goqu.I("subtype_code").Eq(filter.SubtypeCode))
	}
	if filter.Bin != "" {
		where = append(where, goqu.I("bin").Eq(filter.Bin))
	}

	var rows []PgValidationMap
	total, err := paginate(ctx, p.Builder.From(validationMapsTable).Where(where...), page, &rows,
		goqu.I("priority").Asc(), goqu.I("map_id").Asc())
	if err != nil {
		return storage.Page[domain.ValidationMap]{}, wrapErr(err, "could not list validation maps")
	}

	items, err := toDomainAll(rows, (*PgValidationMap).ToDomain)
	if err != nil {
		return storage.Page[domain.ValidationMap]{}, err
	}

	return storage.Page[domain.ValidationMap]{Items: items, Total: total}, nil
}

// pgResolvedRule is one row of the mapping/definition join.
type pgResolvedRule struct {
	MapID        int64               `db:"map_id"`
	Priority     int                 `db:"priority"`
	MapStatus    string              `db:"map_status"`
	OverrideFlag sql.NullString      `db:"override_flag"`
	OverrideNum  decimal.NullDecimal `db:"override_num"`
	OverrideText sql.NullString      `db:"override_text"`
	ValidationID int64               `db:"validation_id"`
	Code         string              `db:"code"`
	Description  sql.NullString      `db:"description"`
	DataType     string              `db:"data_type"`
	PgValue
	ValidFrom time.Time    `db:"valid_from"`
	ValidTo   sql.NullTime `db:"valid_to"`
}

func (r *pgResolvedRule) toDomain() domain.ResolvedRule {
	def := PgValidation{
		ValidationID: r.ValidationID,
		Code:         r.Code,
		Description:  r.Description,
		DataType:     r.DataType,
		PgValue:      r.PgValue,
		ValidFrom:    r.ValidFrom,
		ValidTo:      r.ValidTo,
	}
	m := PgValidationMap{
		MapID:    r.MapID,
		Priority: r.Priority,
		Status:   r.MapStatus,
		PgValue: PgValue{
			ValueFlag: r.OverrideFlag,
			ValueNum:  r.OverrideNum,
			ValueText: r.OverrideText,
		},
	}

	return domain.Resolve(m.record(), def.record())
}

// ResolveValidations joins mappings of the pair with their definitions,
// ordered by priority then map ID.
func (p *PgSQL) ResolveValidations(
	ctx context.Context,
	q storage.ResolveQuery,
	page storage.PageRequest,
) (storage.Page[domain.ResolvedRule], error) {
	where := []exp.Expression{
		goqu.I("m.subtype_code").Eq(q.SubtypeCode),
		goqu.I("m.bin").Eq(q.Bin),
	}
	where = statusEq(where, "m.status", string(q.Status))
	if !q.EffectiveAt.IsZero() {
		where = append(where,
			goqu.I("v.status").Eq(string(domain.StatusActive)),
			goqu.I("v.valid_from").Lte(q.EffectiveAt),
			goqu.Or(goqu.I("v.valid_to").IsNull(), goqu.I("v.valid_to").Gte(q.EffectiveAt)),
		)
	}

	ds := p.Builder.From(goqu.T(validationMapsTable).As("m")).
		Join(goqu.T(validationsTable).As("v"), goqu.On(goqu.I("v.validation_id").Eq(goqu.I("m.validation_id")))).
		Select(
			goqu.I("m.map_id"),
			goqu.I("m.priority"),
			goqu.I("m.status").As("map_status"),
			goqu.I("m.value_flag").As("override_flag"),
			goqu.I("m.value_num").As("override_num"),
			goqu.I("m.value_text").As("override_text"),
			goqu.I("v.validation_id"),
			goqu.I("v.code"),
			goqu.I("v.description"),
			goqu.I("v.data_type"),
			goqu.I("v.value_flag"),
			goqu.I("v.value_num"),
			goqu.I("v.value_text"),
			goqu.I("v.valid_from"),
			goqu.I("v.valid_to"),
		).
		Where(where...)

	var rows []pgResolvedRule
	total, err := paginate(ctx, ds, page, &rows, goqu.I("m.priority").Asc(), goqu.I("m.map_id").Asc())
	if err != nil {
		return storage.Page[domain.ResolvedRule]{}, wrapErr(err, "could not resolve validations")
	}

	items := make([]domain.ResolvedRule, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toDomain())
	}

	return storage.Page[domain.ResolvedRule]{Items: items, Total: total}, nil
}
