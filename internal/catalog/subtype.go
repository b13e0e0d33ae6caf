package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/storage"
)

// checkSubtypePair fails when another subtype already owns the (bin, binExt)
// pair of s.
func checkSubtypePair(ctx context.Context, tx storage.AllStorage, s domain.Subtype) error {
	owner, err := tx.SubtypeByBinAndExt(ctx, s.Bin(), s.BinExt())
	if err != nil {
		return fmt.Errorf("could not check subtype pair: %w", err)
	}
	if owner != nil && owner.Code() != s.Code() {
		return domain.FamilySubtype.AlreadyExists(
			"bin %s with extension %q already belongs to subtype %s", s.Bin(), s.BinExt(), owner.Code())
	}

	return nil
}

// CreateSubtype registers an inactive subtype under an active BIN.
func (c *catalog) CreateSubtype(
	ctx context.Context,
	code, bin string,
	attrs domain.SubtypeAttrs,
	actor domain.Actor,
) (_ *domain.Subtype, err error) {
	ctx, done := c.track(ctx, "CreateSubtype")
	defer done(&err)

	created, err := domain.NewSubtype(code, bin, attrs, c.now(), actor)
	if err != nil {
		return nil, err
	}

	var saved *domain.Subtype
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		owner, err := tx.BinByCode(ctx, created.Bin())
		if err != nil {
			return fmt.Errorf("could not get bin: %w", err)
		}
		if owner == nil {
			return domain.FamilyBin.NotFound("bin %s not found", created.Bin())
		}
		if !owner.IsActive() {
			return domain.FamilySubtype.ConflictRule("bin %s is inactive", created.Bin())
		}

		exists, err := tx.SubtypeExists(ctx, created.Code())
		if err != nil {
			return fmt.Errorf("could not check subtype: %w", err)
		}
		if exists {
			return domain.FamilySubtype.AlreadyExists("subtype %s already exists", created.Code())
		}
		if err := checkSubtypePair(ctx, tx, created); err != nil {
			return err
		}

		saved, err = tx.SaveSubtype(ctx, created)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save subtype: %w", err),
				domain.FamilySubtype, "subtype %s or its bin extension already exists", created.Code(),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntitySubtype,
			Key:    saved.Code(),
			Action: events.ActionCreated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
			Bin:    saved.BinEfectivo(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create subtype: %w", err)
	}

	logWrite(ctx, "subtype created", actor,
		zap.String("subtypeCode", saved.Code()),
		zap.String("binEfectivo", saved.BinEfectivo()))

	return saved, nil
}

// GetSubtype returns a subtype or a not-found error.
func (c *catalog) GetSubtype(ctx context.Context, code string) (_ *domain.Subtype, err error) {
	ctx, done := c.track(ctx, "GetSubtype")
	defer done(&err)

	res, err := c.storage.SubtypeByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("could not get subtype: %w", err)
	}
	if res == nil {
		return nil, domain.FamilySubtype.NotFound("subtype %s not found", code)
	}

	return res, nil
}

// ListSubtypes returns a page of subtypes.
func (c *catalog) ListSubtypes(
	ctx context.Context,
	filter storage.SubtypeFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.Subtype], err error) {
	ctx, done := c.track(ctx, "ListSubtypes")
	defer done(&err)

	res, err := c.storage.ListSubtypes(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.Subtype]{}, fmt.Errorf("could not list subtypes: %w", err)
	}

	return res, nil
}

// UpdateSubtype replaces the descriptive attributes and the extension of a
// subtype, recomputing its effective BIN. The extension is fixed while the
// subtype has active rules.
func (c *catalog) UpdateSubtype(
	ctx context.Context,
	code string,
	attrs domain.SubtypeAttrs,
	actor domain.Actor,
) (_ *domain.Subtype, err error) {
	ctx, done := c.track(ctx, "UpdateSubtype")
	defer done(&err)

	code = strings.TrimSpace(code)

	var saved *domain.Subtype
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.SubtypeByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("could not get subtype: %w", err)
		}
		if current == nil {
			return domain.FamilySubtype.NotFound("subtype %s not found", code)
		}

		updated, err := current.UpdateBasics(attrs, c.now(), actor)
		if err != nil {
			return err
		}
		if updated.BinExt() != current.BinExt() {
			// active rules stay keyed on the previous effective BIN
			mapped, err := tx.ActiveValidationMapCount(ctx, code, current.BinEfectivo())
			if err != nil {
				return fmt.Errorf("could not count validation maps: %w", err)
			}
			if mapped > 0 {
				return domain.FamilySubtype.ConflictRule(
					"subtype %s has %d active rules on bin %s", code, mapped, current.BinEfectivo())
			}
			if err := checkSubtypePair(ctx, tx, updated); err != nil {
				return err
			}
		}

		saved, err = tx.SaveSubtype(ctx, updated)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save subtype: %w", err),
				domain.FamilySubtype, "bin %s with extension %q already exists", updated.Bin(), updated.BinExt(),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntitySubtype,
			Key:    code,
			Action: events.ActionUpdated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
			Bin:    saved.BinEfectivo(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not update subtype: %w", err)
	}

	logWrite(ctx, "subtype updated", actor,
		zap.String("subtypeCode", code),
		zap.String("binEfectivo", saved.BinEfectivo()))

	return saved, nil
}

// ChangeSubtypeStatus activates or deactivates a subtype. Activation needs
// the owning BIN to be active. Deactivation does not cascade to agencies.
func (c *catalog) ChangeSubtypeStatus(
	ctx context.Context,
	code, status string,
	actor domain.Actor,
) (_ *domain.Subtype, err error) {
	ctx, done := c.track(ctx, "ChangeSubtypeStatus")
	defer done(&err)

	code = strings.TrimSpace(code)

	var (
		saved          *domain.Subtype
		activeAgencies int64
	)
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.SubtypeByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("could not get subtype: %w", err)
		}
		if current == nil {
			return domain.FamilySubtype.NotFound("subtype %s not found", code)
		}

		updated, err := current.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}

		if updated.IsActive() {
			active, err := tx.BinIsActive(ctx, current.Bin())
			if err != nil {
				return fmt.Errorf("could not check bin: %w", err)
			}
			if !active {
				return domain.FamilySubtype.ConflictRule(
					"subtype %s cannot be activated: bin %s is missing or inactive", code, current.Bin())
			}
		} else {
			activeAgencies, err = tx.ActiveAgencyCountForSubtype(ctx, code)
			if err != nil {
				return fmt.Errorf("could not count agencies: %w", err)
			}
		}

		saved, err = tx.SaveSubtype(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save subtype: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntitySubtype,
			Key:    code,
			Action: events.ActionStatusChanged,
			Status: string(saved.Status()),
			Actor:  actor.String(),
			Bin:    saved.BinEfectivo(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not change subtype status: %w", err)
	}

	fields := []zap.Field{zap.String("subtypeCode", code), zap.String("status", string(saved.Status()))}
	if activeAgencies > 0 {
		fields = append(fields, zap.Int64("activeAgencies", activeAgencies))
	}
	logWrite(ctx, "subtype status changed", actor, fields...)

	return saved, nil
}
