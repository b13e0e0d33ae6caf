package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (p *PgSQL) validationWhere(ctx context.Context, where exp.Expression) (*domain.Validation, error) {
	var row PgValidation
	found, err := p.Builder.From(validationsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapErr(err, "could not fetch validation")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ValidationByCode(ctx context.Context, code string) (*domain.Validation, error) {
	return p.validationWhere(ctx, goqu.I("code").Eq(code))
}

func (p *PgSQL) ValidationByID(ctx context.Context, id int64) (*domain.Validation, error) {
	return p.validationWhere(ctx, goqu.I("validation_id").Eq(id))
}

func (p *PgSQL) ValidationExistsByCode(ctx context.Context, code string) (bool, error) {
	return p.exists(ctx, validationsTable, goqu.I("code").Eq(code))
}

// SaveValidation upserts on the code; the data type never changes once stored.
func (p *PgSQL) SaveValidation(ctx context.Context, validation domain.Validation) (*domain.Validation, error) {
	var row PgValidation
	row.FromDomain(validation)

	var out PgValidation
	if _, err := p.Builder.Insert(validationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("code", excluded(
			"description", "value_flag", "value_num", "value_text", "status",
			"valid_from", "valid_to", "updated_at", "updated_by",
		))).
		Returning(&PgValidation{}).
		Executor().ScanStructContext(ctx, &out); err != nil {
		return nil, wrapErr(err, "could not save validation")
	}

	return out.ToDomain()
}

// ListValidations orders by code.
func (p *PgSQL) ListValidations(
	ctx context.Context,
	filter storage.ValidationFilter,
	page storage.PageRequest,
) (storage.Page[domain.Validation], error) {
	var where []exp.Expression
	where = statusEq(where, "status", string(filter.Status))
	if filter.DataType != "" {
		where = append(where, goqu.I("data_type").Eq(string(filter.DataType)))
	}

	var rows []PgValidation
	total, err := paginate(ctx, p.Builder.From(validationsTable).Where(where...), page, &rows,
		goqu.I("code").Asc())
	if err != nil {
		return storage.Page[domain.Validation]{}, wrapErr(err, "could not list validations")
	}

	items, err := toDomainAll(rows, (*PgValidation).ToDomain)
	if err != nil {
		return storage.Page[domain.Validation]{}, err
	}

	return storage.Page[domain.Validation]{Items: items, Total: total}, nil
}
