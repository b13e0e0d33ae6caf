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

// loadPlan returns the plan named code using s.
func loadPlan(ctx context.Context, s storage.AllStorage, code string) (*domain.CommercePlan, error) {
	res, err := s.PlanByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not get commerce plan: %w", err)
	}
	if res == nil {
		return nil, domain.FamilyCommercePlan.NotFound("commerce plan %s not found", code)
	}

	return res, nil
}

// CreatePlan registers an active commerce plan.
func (c *catalog) CreatePlan(
	ctx context.Context,
	code string,
	attrs domain.CommercePlanAttrs,
	actor domain.Actor,
) (_ *domain.CommercePlan, err error) {
	ctx, done := c.track(ctx, "CreatePlan")
	defer done(&err)

	created, err := domain.NewCommercePlan(code, attrs, c.now(), actor)
	if err != nil {
		return nil, err
	}

	var saved *domain.CommercePlan
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.PlanByCode(ctx, created.Code())
		if err != nil {
			return fmt.Errorf("could not get commerce plan: %w", err)
		}
		if existing != nil {
			return domain.FamilyCommercePlan.AlreadyExists("commerce plan %s already exists", created.Code())
		}

		saved, err = tx.SavePlan(ctx, created)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save commerce plan: %w", err),
				domain.FamilyCommercePlan, "commerce plan %s already exists", created.Code(),
			)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityCommercePlan,
			Key:    saved.Code(),
			Action: events.ActionCreated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not create commerce plan: %w", err)
	}

	logWrite(ctx, "commerce plan created", actor,
		zap.String("planCode", saved.Code()),
		zap.String("validationMode", string(saved.Mode())))

	return saved, nil
}

// GetPlan returns a commerce plan or a not-found error.
func (c *catalog) GetPlan(ctx context.Context, code string) (_ *domain.CommercePlan, err error) {
	ctx, done := c.track(ctx, "GetPlan")
	defer done(&err)

	return loadPlan(ctx, c.storage, upperCode(code))
}

// ListPlans returns a page of commerce plans.
func (c *catalog) ListPlans(
	ctx context.Context,
	filter storage.PlanFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.CommercePlan], err error) {
	ctx, done := c.track(ctx, "ListPlans")
	defer done(&err)

	res, err := c.storage.ListPlans(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.CommercePlan]{}, fmt.Errorf("could not list commerce plans: %w", err)
	}

	return res, nil
}

// UpdatePlan replaces the name, description and validation mode of a plan.
// The mode cannot change while the plan has active items, since they were
// validated against the current one.
func (c *catalog) UpdatePlan(
	ctx context.Context,
	code string,
	attrs domain.CommercePlanAttrs,
	actor domain.Actor,
) (_ *domain.CommercePlan, err error) {
	ctx, done := c.track(ctx, "UpdatePlan")
	defer done(&err)

	code = upperCode(code)

	var saved *domain.CommercePlan
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := loadPlan(ctx, tx, code)
		if err != nil {
			return err
		}

		updated, err := current.UpdateBasics(attrs, c.now(), actor)
		if err != nil {
			return err
		}

		if current.ModeChanged(attrs) {
			items, err := tx.ActivePlanItemCount(ctx, current.ID())
			if err != nil {
				return fmt.Errorf("could not count plan items: %w", err)
			}
			if items > 0 {
				return domain.FamilyCommercePlan.ConflictRule(
					"commerce plan %s has %d active items; its validation mode cannot change", code, items)
			}
		}

		saved, err = tx.SavePlan(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save commerce plan: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityCommercePlan,
			Key:    code,
			Action: events.ActionUpdated,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not update commerce plan: %w", err)
	}

	logWrite(ctx, "commerce plan updated", actor, zap.String("planCode", code))

	return saved, nil
}

// ChangePlanStatus activates or deactivates a plan. Existing subtype links are
// kept.
func (c *catalog) ChangePlanStatus(
	ctx context.Context,
	code, status string,
	actor domain.Actor,
) (_ *domain.CommercePlan, err error) {
	ctx, done := c.track(ctx, "ChangePlanStatus")
	defer done(&err)

	code = upperCode(code)

	var saved *domain.CommercePlan
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := loadPlan(ctx, tx, code)
		if err != nil {
			return err
		}

		updated, err := current.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}

		saved, err = tx.SavePlan(ctx, updated)
		if err != nil {
			return fmt.Errorf("could not save commerce plan: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityCommercePlan,
			Key:    code,
			Action: events.ActionStatusChanged,
			Status: string(saved.Status()),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not change commerce plan status: %w", err)
	}

	logWrite(ctx, "commerce plan status changed", actor,
		zap.String("planCode", code),
		zap.String("status", string(saved.Status())))

	return saved, nil
}

// AddPlanItems adds MCCs or merchant identifiers to an active plan. Every
// requested value ends up counted exactly once: inserted (including removed
// values brought back), duplicate (already active or repeated in the request)
// or invalid.
func (c *catalog) AddPlanItems(
	ctx context.Context,
	planCode string,
	values []string,
	actor domain.Actor,
) (_ domain.ItemsResult, err error) {
	ctx, done := c.track(ctx, "AddPlanItems")
	defer done(&err)

	planCode = upperCode(planCode)

	var res domain.ItemsResult
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := loadPlan(ctx, tx, planCode)
		if err != nil {
			return err
		}
		if !plan.IsActive() {
			return domain.FamilyPlanItem.ConflictRule("commerce plan %s is inactive", planCode)
		}

		batch := domain.ClassifyItems(plan.Mode(), values)

		var active []string
		if len(batch.Candidates) > 0 {
			active, err = tx.ActivePlanItemValues(ctx, plan.ID(), batch.Candidates)
			if err != nil {
				return fmt.Errorf("could not get active plan items: %w", err)
			}
		}
		present := make(map[string]struct{}, len(active))
		for _, v := range active {
			present[v] = struct{}{}
		}

		now := c.now()
		items := make([]domain.PlanItem, 0, len(batch.Candidates))
		var duplicates []string
		for _, v := range batch.Candidates {
			if _, ok := present[v]; ok {
				duplicates = append(duplicates, v)
				continue
			}
			item, err := domain.NewPlanItem(*plan, v, now, actor)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		var inserted []string
		if len(items) > 0 {
			inserted, err = tx.InsertPlanItems(ctx, items...)
			if err != nil {
				return fmt.Errorf("could not insert plan items: %w", err)
			}
		}

		// rows raced in by a concurrent writer count as duplicates
		written := make(map[string]struct{}, len(inserted))
		for _, v := range inserted {
			written[v] = struct{}{}
		}
		for _, item := range items {
			if _, ok := written[item.Value()]; !ok {
				duplicates = append(duplicates, item.Value())
			}
		}
		duplicates = append(duplicates, batch.Repeated...)

		res = domain.ItemsResult{
			Requested:       len(values),
			Inserted:        len(inserted),
			Duplicates:      len(duplicates),
			Invalid:         len(batch.Invalid),
			DuplicateValues: duplicates,
			InvalidValues:   batch.Invalid,
		}

		if res.Inserted == 0 {
			return nil
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityPlanItem,
			Key:    planCode,
			Action: events.ActionItemsAdded,
			Actor:  actor.String(),
		})
	}); err != nil {
		return domain.ItemsResult{}, fmt.Errorf("could not add plan items: %w", err)
	}

	logWrite(ctx, "plan items added", actor,
		zap.String("planCode", planCode),
		zap.Int("requested", res.Requested),
		zap.Int("inserted", res.Inserted),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("invalid", res.Invalid))

	return res, nil
}

// RemovePlanItem deactivates an active item of a plan.
func (c *catalog) RemovePlanItem(
	ctx context.Context,
	planCode, value string,
	actor domain.Actor,
) (_ *domain.PlanItem, err error) {
	ctx, done := c.track(ctx, "RemovePlanItem")
	defer done(&err)

	planCode = upperCode(planCode)
	value = strings.TrimSpace(value)

	var saved *domain.PlanItem
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plan, err := loadPlan(ctx, tx, planCode)
		if err != nil {
			return err
		}

		item, err := tx.ActivePlanItemByValue(ctx, plan.ID(), value)
		if err != nil {
			return fmt.Errorf("could not get plan item: %w", err)
		}
		if item == nil {
			return domain.FamilyPlanItem.NotFound("item %s not found in commerce plan %s", value, planCode)
		}

		saved, err = tx.SavePlanItem(ctx, item.Remove(c.now(), actor))
		if err != nil {
			return fmt.Errorf("could not save plan item: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity: events.EntityPlanItem,
			Key:    planCode + "/" + value,
			Action: events.ActionItemRemoved,
			Status: string(domain.StatusInactive),
			Actor:  actor.String(),
		})
	}); err != nil {
		return nil, fmt.Errorf("could not remove plan item: %w", err)
	}

	logWrite(ctx, "plan item removed", actor, zap.String("planCode", planCode), zap.String("value", value))

	return saved, nil
}

// ListPlanItems returns a page of the items of a plan. An empty status lists
// every item.
func (c *catalog) ListPlanItems(
	ctx context.Context,
	planCode, status string,
	page storage.PageRequest,
) (_ storage.Page[domain.PlanItem], err error) {
	ctx, done := c.track(ctx, "ListPlanItems")
	defer done(&err)

	st, err := optionalStatus(domain.FamilyPlanItem, status)
	if err != nil {
		return storage.Page[domain.PlanItem]{}, err
	}

	plan, err := loadPlan(ctx, c.storage, upperCode(planCode))
	if err != nil {
		return storage.Page[domain.PlanItem]{}, err
	}

	res, err := c.storage.ListPlanItems(ctx, plan.ID(), st, page.Normalize())
	if err != nil {
		return storage.Page[domain.PlanItem]{}, fmt.Errorf("could not list plan items: %w", err)
	}

	return res, nil
}

// AssignPlan links an active plan to a subtype, replacing any previous plan.
func (c *catalog) AssignPlan(
	ctx context.Context,
	subtypeCode, planCode string,
	actor domain.Actor,
) (_ *domain.SubtypePlanLink, err error) {
	ctx, done := c.track(ctx, "AssignPlan")
	defer done(&err)

	subtypeCode = strings.TrimSpace(subtypeCode)
	planCode = upperCode(planCode)

	var saved *domain.SubtypePlanLink
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		exists, err := tx.SubtypeExists(ctx, subtypeCode)
		if err != nil {
			return fmt.Errorf("could not check subtype: %w", err)
		}
		if !exists {
			return domain.FamilySubtype.NotFound("subtype %s not found", subtypeCode)
		}

		plan, err := loadPlan(ctx, tx, planCode)
		if err != nil {
			return err
		}
		if !plan.IsActive() {
			return domain.FamilySubtypePlan.ConflictRule("commerce plan %s is inactive", planCode)
		}

		current, err := tx.SubtypePlanBySubtype(ctx, subtypeCode)
		if err != nil {
			return fmt.Errorf("could not get subtype plan: %w", err)
		}

		var link domain.SubtypePlanLink
		if current != nil {
			link, err = current.Reassign(*plan, c.now(), actor)
		} else {
			link, err = domain.NewSubtypePlanLink(subtypeCode, *plan, c.now(), actor)
		}
		if err != nil {
			return err
		}

		saved, err = tx.SaveSubtypePlan(ctx, link)
		if err != nil {
			return fmt.Errorf("could not save subtype plan: %w", err)
		}

		return c.enqueue(ctx, tx, events.CatalogChanged{
			Entity:      events.EntitySubtypePlan,
			Key:         subtypeCode,
			Action:      events.ActionAssigned,
			Actor:       actor.String(),
			SubtypeCode: subtypeCode,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not assign commerce plan: %w", err)
	}

	logWrite(ctx, "commerce plan assigned", actor,
		zap.String("subtypeCode", subtypeCode),
		zap.String("planCode", planCode))

	return saved, nil
}

// GetSubtypePlan returns the plan link of a subtype or a not-found error.
func (c *catalog) GetSubtypePlan(ctx context.Context, subtypeCode string) (_ *domain.SubtypePlanLink, err error) {
	ctx, done := c.track(ctx, "GetSubtypePlan")
	defer done(&err)

	subtypeCode = strings.TrimSpace(subtypeCode)

	res, err := c.storage.SubtypePlanBySubtype(ctx, subtypeCode)
	if err != nil {
		return nil, fmt.Errorf("could not get subtype plan: %w", err)
	}
	if res == nil {
		return nil, domain.FamilySubtypePlan.NotFound("subtype %s has no commerce plan", subtypeCode)
	}

	return res, nil
}
