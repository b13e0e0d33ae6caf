package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/storage"
)

// CreateValidation registers an active validation definition.
func (c *catalog) CreateValidation(
	ctx context.Context,
	attrs domain.ValidationAttrs,
	actor domain.Actor,
) (_ *domain.Validation, err error) {
	ctx, done := c.track(ctx, "CreateValidation")
	defer done(&err)

	created, err := domain.NewValidation(attrs, c.now(), actor)
	if err != nil {
		return nil, err
	}

	var saved *domain.Validation
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		exists, err := tx.ValidationExistsByCode(ctx, created.Code())
		if err != nil {
			return fmt.Errorf("could not check validation: %w", err)
		}
		if exists {
			return domain.FamilyValidation.AlreadyExists("validation %s already exists", created.Code())
		}

		saved, err = tx.SaveValidation(ctx, created)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save validation: %w", err),
				domain.FamilyValidation, "validation %s already exists", created.Code(),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityValidation,
			Key:    saved.Code(),
			Action: events.ActionCreated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create validation: %w", err)
	}

	logWrite(ctx, "validation created", actor,
		zap.String("code", saved.Code()),
		zap.Int64("validationId", saved.ID()))

	return saved, nil
}

// GetValidation returns a validation by code or a not-found error.
func (c *catalog) GetValidation(ctx context.Context, code string) (_ *domain.Validation, err error) {
	ctx, done := c.track(ctx, "GetValidation")
	defer done(&err)

	code = upperCode(code)

	res, err := c.storage.ValidationByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not get validation: %w", err)
	}
	if res == nil {
		return nil, domain.FamilyValidation.NotFound("validation %s not found", code)
	}

	return res, nil
}

// ListValidations returns a page of validation definitions.
func (c *catalog) ListValidations(
	ctx context.Context,
	filter storage.ValidationFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.Validation], err error) {
	ctx, done := c.track(ctx, "ListValidations")
	defer done(&err)

	res, err := c.storage.ListValidations(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.Validation]{}, fmt.Errorf("could not list validations: %w", err)
	}

	return res, nil
}

// loadValidation returns the validation named code inside tx.
func loadValidation(ctx context.Context, tx storage.AllStorage, code string) (*domain.Validation, error) {
	res, err := tx.ValidationByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not get validation: %w", err)
	}
	if res == nil {
		return nil, domain.FamilyValidation.NotFound("validation %s not found", code)
	}

	return res, nil
}

// UpdateValidation replaces the description, value and validity window of a
// definition. The data type never changes.
func (c *catalog) UpdateValidation(
	ctx context.Context,
	code string,
	update domain.ValidationUpdate,
	actor domain.Actor,
) (_ *domain.Validation, err error) {
	ctx, done := c.track(ctx, "UpdateValidation")
	defer done(&err)

	code = upperCode(code)

	var saved *domain.Validation
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := loadValidation(ctx, tx, code)
		if err != nil {
			return err
		}

		updated, err := current.UpdateBasics(update, c.now(), actor)
		if err != nil {
			return err
		}

		saved, err = tx.SaveValidation(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save validation: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityValidation,
			Key:    code,
			Action: events.ActionUpdated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not update validation: %w", err)
	}

	logWrite(ctx, "validation updated", actor, zap.String("code", code))

	return saved, nil
}

// ChangeValidationStatus activates or deactivates a definition. Mappings keep
// their own status; inactive definitions are skipped by default resolution.
func (c *catalog) ChangeValidationStatus(
	ctx context.Context,
	code, status string,
	actor domain.Actor,
) (_ *domain.Validation, err error) {
	ctx, done := c.track(ctx, "ChangeValidationStatus")
	defer done(&err)

	code = upperCode(code)

	var saved *domain.Validation
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := loadValidation(ctx, tx, code)
		if err != nil {
			return err
		}

		updated, err := current.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}

		saved, err = tx.SaveValidation(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save validation: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityValidation,
			Key:    code,
			Action: events.ActionStatusChanged,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not change validation status: %w", err)
	}

	logWrite(ctx, "validation status changed", actor,
		zap.String("code", code),
		zap.String("status", string(saved.Status())))

	return saved, nil
}
