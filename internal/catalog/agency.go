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

func agencyEventKey(key domain.AgencyKey) string { return key.SubtypeCode + "/" + key.AgencyCode }

func trimAgencyKey(key domain.AgencyKey) domain.AgencyKey {
	return domain.AgencyKey{
		SubtypeCode: strings.TrimSpace(key.SubtypeCode),
		AgencyCode:  strings.TrimSpace(key.AgencyCode),
	}
}

// requireActiveSubtype fails when the subtype is missing or inactive.
func requireActiveSubtype(ctx context.Context, tx storage.AllStorage, code string) error {
	subtype, err := tx.SubtypeByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("could not get subtype: %w", err)
	}
	if subtype == nil {
		return domain.FamilySubtype.NotFound("subtype %s not found", code)
	}
	if !subtype.IsActive() {
		return domain.FamilyAgency.ConflictRule("subtype %s is inactive", code)
	}

	return nil
}

// CreateAgency registers an active agency under an active subtype.
func (c *catalog) CreateAgency(
	ctx context.Context,
	key domain.AgencyKey,
	attrs domain.AgencyAttrs,
	actor domain.Actor,
) (_ *domain.Agency, err error) {
	ctx, done := c.track(ctx, "CreateAgency")
	defer done(&err)

	created, err := domain.NewAgency(key, attrs, c.now(), actor)
	if err != nil {
		return nil, err
	}
	key = created.Key()

	var saved *domain.Agency
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := requireActiveSubtype(ctx, tx, key.SubtypeCode); err != nil {
			return err
		}

		exists, err := tx.AgencyExists(ctx, key)
		if err != nil {
			return fmt.Errorf("could not check agency: %w", err)
		}
		if exists {
			return domain.FamilyAgency.AlreadyExists("agency %s already exists", agencyEventKey(key))
		}

		saved, err = tx.SaveAgency(ctx, created)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save agency: %w", err),
				domain.FamilyAgency, "agency %s already exists", agencyEventKey(key),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity:      events.EntityAgency,
			Key:         agencyEventKey(key),
			Action:      events.ActionCreated,
			Status:      string(saved.Status()),
			Actor:       actor.String(),
			SubtypeCode: key.SubtypeCode,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create agency: %w", err)
	}

	logWrite(ctx, "agency created", actor,
		zap.String("subtypeCode", key.SubtypeCode),
		zap.String("agencyCode", key.AgencyCode))

	return saved, nil
}

// GetAgency returns an agency or a not-found error.
func (c *catalog) GetAgency(ctx context.Context, key domain.AgencyKey) (_ *domain.Agency, err error) {
	ctx, done := c.track(ctx, "GetAgency")
	defer done(&err)

	key = trimAgencyKey(key)

	res, err := c.storage.AgencyByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("could not get agency: %w", err)
	}
	if res == nil {
		return nil, domain.FamilyAgency.NotFound("agency %s not found", agencyEventKey(key))
	}

	return res, nil
}

// ListAgencies returns a page of agencies.
func (c *catalog) ListAgencies(
	ctx context.Context,
	filter storage.AgencyFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.Agency], err error) {
	ctx, done := c.track(ctx, "ListAgencies")
	defer done(&err)

	res, err := c.storage.ListAgencies(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.Agency]{}, fmt.Errorf("could not list agencies: %w", err)
	}

	return res, nil
}

// UpdateAgency replaces the descriptive attributes of an agency.
func (c *catalog) UpdateAgency(
	ctx context.Context,
	key domain.AgencyKey,
	attrs domain.AgencyAttrs,
	actor domain.Actor,
) (_ *domain.Agency, err error) {
	ctx, done := c.track(ctx, "UpdateAgency")
	defer done(&err)

	key = trimAgencyKey(key)

	var saved *domain.Agency
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.AgencyByKey(ctx, key)
		if err != nil {
			return fmt.Errorf("could not get agency: %w", err)
		}
		if current == nil {
			return domain.FamilyAgency.NotFound("agency %s not found", agencyEventKey(key))
		}

		updated, err := current.UpdateBasics(attrs, c.now(), actor)
		if err != nil {
			return err
		}

		saved, err = tx.SaveAgency(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save agency: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity:      events.EntityAgency,
			Key:         agencyEventKey(key),
			Action:      events.ActionUpdated,
			Status:      string(saved.Status()),
			Actor:       actor.String(),
			SubtypeCode: key.SubtypeCode,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not update agency: %w", err)
	}

	logWrite(ctx, "agency updated", actor,
		zap.String("subtypeCode", key.SubtypeCode),
		zap.String("agencyCode", key.AgencyCode))

	return saved, nil
}

// ChangeAgencyStatus activates or deactivates an agency. Activation needs the
// subtype to be active.
func (c *catalog) ChangeAgencyStatus(
	ctx context.Context,
	key domain.AgencyKey,
	status string,
	actor domain.Actor,
) (_ *domain.Agency, err error) {
	ctx, done := c.track(ctx, "ChangeAgencyStatus")
	defer done(&err)

	key = trimAgencyKey(key)

	var saved *domain.Agency
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.AgencyByKey(ctx, key)
		if err != nil {
			return fmt.Errorf("could not get agency: %w", err)
		}
		if current == nil {
			return domain.FamilyAgency.NotFound("agency %s not found", agencyEventKey(key))
		}

		updated, err := current.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}
		if updated.IsActive() {
			active, err := tx.SubtypeIsActive(ctx, key.SubtypeCode)
			if err != nil {
				return fmt.Errorf("could not check subtype: %w", err)
			}
			if !active {
				return domain.FamilyAgency.ConflictRule(
					"agency %s cannot be activated: subtype %s is missing or inactive",
					agencyEventKey(key), key.SubtypeCode)
			}
		}

		saved, err = tx.SaveAgency(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save agency: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity:      events.EntityAgency,
			Key:         agencyEventKey(key),
			Action:      events.ActionStatusChanged,
			Status:      string(saved.Status()),
			Actor:       actor.String(),
			SubtypeCode: key.SubtypeCode,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not change agency status: %w", err)
	}

	logWrite(ctx, "agency status changed", actor,
		zap.String("subtypeCode", key.SubtypeCode),
		zap.String("agencyCode", key.AgencyCode),
		zap.String("status", string(saved.Status())))

	return saved, nil
}
