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

// CreateBin registers a new active BIN.
func (c *catalog) CreateBin(
	ctx context.Context,
	bin string,
	attrs domain.BinAttrs,
	actor domain.Actor,
) (_ *domain.Bin, err error) {
	ctx, done := c.track(ctx, "CreateBin")
	defer done(&err)

	created, err := domain.NewBin(bin, attrs, c.now(), actor)
	if err != nil {
		return nil, err
	}

	var saved *domain.Bin
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		exists, err := tx.BinExists(ctx, created.Bin())
		if err != nil {
			return fmt.Errorf("could not check bin: %w", err)
		}
		if exists {
			return domain.FamilyBin.AlreadyExists("bin %s already exists", created.Bin())
		}

		saved, err = tx.SaveBin(ctx, created)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save bin: %w", err),
				domain.FamilyBin, "bin %s already exists", created.Bin(),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityBin,
			Key:    saved.Bin(),
			Action: events.ActionCreated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create bin: %w", err)
	}

	logWrite(ctx, "bin created", actor, zap.String("bin", saved.Bin()))

	return saved, nil
}

// GetBin returns a BIN or a not-found error.
func (c *catalog) GetBin(ctx context.Context, bin string) (_ *domain.Bin, err error) {
	ctx, done := c.track(ctx, "GetBin")
	defer done(&err)

	res, err := c.storage.BinByCode(ctx, strings.TrimSpace(bin))
	if err != nil {
		return nil, fmt.Errorf("could not get bin: %w", err)
	}
	if res == nil {
		return nil, domain.FamilyBin.NotFound("bin %s not found", bin)
	}

	return res, nil
}

// ListBins returns a page of BINs.
func (c *catalog) ListBins(
	ctx context.Context,
	filter storage.BinFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.Bin], err error) {
	ctx, done := c.track(ctx, "ListBins")
	defer done(&err)

	res, err := c.storage.ListBins(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.Bin]{}, fmt.Errorf("could not list bins: %w", err)
	}

	return res, nil
}

// UpdateBin replaces the descriptive attributes of a BIN. Changing the
// extension configuration is refused while any subtype refers to the BIN,
// since their effective BINs were derived from it.
func (c *catalog) UpdateBin(
	ctx context.Context,
	bin string,
	attrs domain.BinAttrs,
	actor domain.Actor,
) (_ *domain.Bin, err error) {
	ctx, done := c.track(ctx, "UpdateBin")
	defer done(&err)

	bin = strings.TrimSpace(bin)

	var saved *domain.Bin
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.BinByCode(ctx, bin)
		if err != nil {
			return fmt.Errorf("could not get bin: %w", err)
		}
		if current == nil {
			return domain.FamilyBin.NotFound("bin %s not found", bin)
		}

		updated, err := current.UpdateBasics(attrs, c.now(), actor)
		if err != nil {
			return err
		}

		if current.ExtensionChanged(attrs) {
			referenced, err := tx.AnySubtypeReferencesBin(ctx, bin)
			if err != nil {
				return fmt.Errorf("could not check subtypes of bin: %w", err)
			}
			if referenced {
				return domain.FamilyBin.ConflictRule(
					"bin %s extension configuration cannot change while subtypes refer to it", bin)
			}
		}

		saved, err = tx.SaveBin(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save bin: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityBin,
			Key:    bin,
			Action: events.ActionUpdated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not update bin: %w", err)
	}

	logWrite(ctx, "bin updated", actor, zap.String("bin", bin))

	return saved, nil
}

// ChangeBinStatus activates or deactivates a BIN. Subtypes are left as they
// are; an inactive BIN only blocks new subtypes and their activation.
func (c *catalog) ChangeBinStatus(
	ctx context.Context,
	bin, status string,
	actor domain.Actor,
) (_ *domain.Bin, err error) {
	ctx, done := c.track(ctx, "ChangeBinStatus")
	defer done(&err)

	bin = strings.TrimSpace(bin)

	var saved *domain.Bin
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.BinByCode(ctx, bin)
		if err != nil {
			return fmt.Errorf("could not get bin: %w", err)
		}
		if current == nil {
			return domain.FamilyBin.NotFound("bin %s not found", bin)
		}

		updated, err := current.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}

		saved, err = tx.SaveBin(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save bin: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityBin,
			Key:    bin,
			Action: events.ActionStatusChanged,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not change bin status: %w", err)
	}

	logWrite(ctx, "bin status changed", actor, zap.String("bin", bin), zap.String("status", string(saved.Status())))

	return saved, nil
}
