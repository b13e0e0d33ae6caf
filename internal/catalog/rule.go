package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bincatalog/pkg/binid"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/rulecache"
	"bincatalog/pkg/storage"
)

func (k RuleKey) normalize() RuleKey {
	return RuleKey{
		SubtypeCode:    strings.TrimSpace(k.SubtypeCode),
		Bin:            binid.NormalizeBin(k.Bin),
		ValidationCode: upperCode(k.ValidationCode),
	}
}

func (k RuleKey) String() string { return k.SubtypeCode + "/" + k.Bin + "/" + k.ValidationCode }

func ruleChange(key RuleKey, action events.Action, status domain.Status, actor domain.Actor) events.CatalogChanged {
	return events.CatalogChanged{
		Entity:      events.EntityValidationMap,
		Key:         key.String(),
		Action:      action,
		Status:      string(status),
		Actor:       actor.String(),
		SubtypeCode: key.SubtypeCode,
		Bin:         key.Bin,
	}
}

// AttachRule maps an active validation to a (subtype, effective BIN) pair.
// The pair must match the subtype's effective BIN and may hold at most one
// active mapping per validation.
func (c *catalog) AttachRule(ctx context.Context, in AttachRule, actor domain.Actor) (_ *domain.ValidationMap, err error) {
	ctx, done := c.track(ctx, "AttachRule")
	defer done(&err)

	key := in.RuleKey.normalize()

	var saved *domain.ValidationMap
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		def, err := loadValidation(ctx, tx, key.ValidationCode)
		if err != nil {
			return err
		}
		if !def.IsActive() {
			return domain.FamilyValidationMap.ConflictRule("validation %s is inactive", key.ValidationCode)
		}

		subtype, err := tx.SubtypeByCode(ctx, key.SubtypeCode)
		if err != nil {
			return fmt.Errorf("could not get subtype: %w", err)
		}
		if subtype == nil {
			return domain.FamilySubtype.NotFound("subtype %s not found", key.SubtypeCode)
		}
		if subtype.BinEfectivo() != key.Bin {
			return domain.FamilyValidationMap.InvalidData([]string{"bin"},
				"bin %s is not the effective bin of subtype %s", key.Bin, key.SubtypeCode)
		}

		mapping, err := domain.NewValidationMap(key.SubtypeCode, key.Bin, *def, in.Priority, in.Override, c.now(), actor)
		if err != nil {
			return err
		}

		active, err := tx.ActiveValidationMapExists(ctx, mapping.Key())
		if err != nil {
			return fmt.Errorf("could not check rule mapping: %w", err)
		}
		if active {
			return domain.FamilyValidationMap.AlreadyExists("rule %s is already attached", key)
		}

		saved, err = tx.SaveValidationMap(ctx, mapping)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save rule mapping: %w", err),
				domain.FamilyValidationMap, "rule %s is already attached", key,
			)
		}

		return c.enqueue(ctx, tx, ruleChange(key, events.ActionAttached, saved.Status(), actor))
	}); err != nil {
		return nil, fmt.Errorf("could not attach rule: %w", err)
	}

	logWrite(ctx, "rule attached", actor,
		zap.Stringer("rule", key),
		zap.Int64("mapId", saved.ID()))

	return saved, nil
}

// ChangeRuleStatus sets the status of the latest mapping of key. A mapping
// is only reactivated when no other mapping of the key is active.
func (c *catalog) ChangeRuleStatus(
	ctx context.Context,
	key RuleKey,
	status string,
	actor domain.Actor,
) (_ *domain.ValidationMap, err error) {
	ctx, done := c.track(ctx, "ChangeRuleStatus")
	defer done(&err)

	return c.changeRuleStatus(ctx, key.normalize(), status, actor)
}

// DetachRule deactivates the mapping of key.
func (c *catalog) DetachRule(ctx context.Context, key RuleKey, actor domain.Actor) (_ *domain.ValidationMap, err error) {
	ctx, done := c.track(ctx, "DetachRule")
	defer done(&err)

	return c.changeRuleStatus(ctx, key.normalize(), string(domain.StatusInactive), actor)
}

func (c *catalog) changeRuleStatus(
	ctx context.Context,
	key RuleKey,
	status string,
	actor domain.Actor,
) (*domain.ValidationMap, error) {
	var saved *domain.ValidationMap
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		def, err := loadValidation(ctx, tx, key.ValidationCode)
		if err != nil {
			return err
		}

		mapKey := domain.MapKey{SubtypeCode: key.SubtypeCode, Bin: key.Bin, ValidationID: def.ID()}
		latest, err := tx.LatestValidationMapByKey(ctx, mapKey)
		if err != nil {
			return fmt.Errorf("could not get rule mapping: %w", err)
		}
		if latest == nil {
			return domain.FamilyValidationMap.NotFound("rule %s not found", key)
		}

		updated, err := latest.ChangeStatus(status, c.now(), actor)
		if err != nil {
			return err
		}
		if updated.IsActive() && !latest.IsActive() {
			active, err := tx.ActiveValidationMapExists(ctx, mapKey)
			if err != nil {
				return fmt.Errorf("could not check rule mapping: %w", err)
			}
			if active {
				return domain.FamilyValidationMap.AlreadyExists("rule %s is already attached", key)
			}
		}

		saved, err = tx.SaveValidationMap(ctx, updated)
		if err != nil {
			return duplicate(
				fmt.Errorf("could not save rule mapping: %w", err),
				domain.FamilyValidationMap, "rule %s is already attached", key,
			)
		}

		return c.enqueue(ctx, tx, ruleChange(key, events.ActionStatusChanged, saved.Status(), actor))
	}); err != nil {
		return nil, fmt.Errorf("could not change rule status: %w", err)
	}

	logWrite(ctx, "rule status changed", actor,
		zap.Stringer("rule", key),
		zap.String("status", string(saved.Status())))

	return saved, nil
}

// ResolveRules returns the rules of a (subtype, effective BIN) pair ordered
// by priority, then mapping ID. With the default status only definitions
// that are active and effective now are included. Pages are served from the
// rule cache when possible; cache failures only cost a database read.
func (c *catalog) ResolveRules(
	ctx context.Context,
	req ResolveRequest,
	page storage.PageRequest,
) (_ storage.Page[domain.ResolvedRule], err error) {
	ctx, done := c.track(ctx, "ResolveRules")
	defer done(&err)

	status, err := optionalStatus(domain.FamilyValidationMap, req.Status)
	if err != nil {
		return storage.Page[domain.ResolvedRule]{}, err
	}
	if status == "" {
		status = domain.StatusActive
	}

	page = page.Normalize()
	q := storage.ResolveQuery{
		SubtypeCode: strings.TrimSpace(req.SubtypeCode),
		Bin:         binid.NormalizeBin(req.Bin),
		Status:      status,
	}
	if status == domain.StatusActive {
		q.EffectiveAt = c.now()
	}

	cacheKey := rulecache.Key{SubtypeCode: q.SubtypeCode, Bin: q.Bin, Status: status, Page: page}
	cached, version, cacheErr := c.rules.Get(ctx, cacheKey)
	if cacheErr != nil {
		logger.Warn(ctx, "could not read rule cache", zap.Error(cacheErr))
	}
	if cached != nil {
		return *cached, nil
	}

	res, err := c.storage.ResolveValidations(ctx, q, page)
	if err != nil {
		return storage.Page[domain.ResolvedRule]{}, fmt.Errorf("could not resolve rules: %w", err)
	}

	// without an observed version the page could outlive a later invalidation
	if cacheErr == nil {
		if err := c.rules.Put(ctx, cacheKey, version, res); err != nil {
			logger.Warn(ctx, "could not write rule cache", zap.Error(err))
		}
	}

	return res, nil
}

// ListRules returns a page of rule mappings.
func (c *catalog) ListRules(
	ctx context.Context,
	filter storage.ValidationMapFilter,
	page storage.PageRequest,
) (_ storage.Page[domain.ValidationMap], err error) {
	ctx, done := c.track(ctx, "ListRules")
	defer done(&err)

	if filter.Bin != "" {
		filter.Bin = binid.NormalizeBin(filter.Bin)
	}

	res, err := c.storage.ListValidationMaps(ctx, filter, page.Normalize())
	if err != nil {
		return storage.Page[domain.ValidationMap]{}, fmt.Errorf("could not list rules: %w", err)
	}

	return res, nil
}
