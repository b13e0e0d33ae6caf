package domain

import (
	"regexp"
	"strings"
	"time"
)

// ValidationMode selects the shape of the items of a CommercePlan.
type ValidationMode string

const (
	ModeMerchantID ValidationMode = "MERCHANT_ID"
	ModeMCC        ValidationMode = "MCC"
)

// Valid reports whether m is a known mode.
func (m ValidationMode) Valid() bool { return m == ModeMerchantID || m == ModeMCC }

const (
	planCodeMaxLen = 30
	planNameMaxLen = 100
)

var (
	mccRe        = regexp.MustCompile(`^[0-9]{4}$`)
	merchantIDRe = regexp.MustCompile(`^[A-Za-z0-9]{1,15}$`)
)

// CommercePlanRecord is the plain representation of a CommercePlan.
type CommercePlanRecord struct {
	PlanID         int64
	Code           string
	Name           string
	ValidationMode ValidationMode
	Description    string
	Status         Status
	Audit
}

// CommercePlanAttrs are the mutable attributes of a CommercePlan.
type CommercePlanAttrs struct {
	Name           string
	ValidationMode string
	Description    string
}

// CommercePlan is a named allow-list of merchants or MCCs.
type CommercePlan struct {
	rec CommercePlanRecord
}

// NewCommercePlan creates an active plan.
func NewCommercePlan(code string, attrs CommercePlanAttrs, now time.Time, actor Actor) (CommercePlan, error) {
	rec := attrs.apply(CommercePlanRecord{
		Code:   strings.ToUpper(trimmed(code)),
		Status: StatusActive,
		Audit:  newAudit(now, actor),
	})
	if err := validatePlan(rec); err != nil {
		return CommercePlan{}, err
	}

	return CommercePlan{rec: rec}, nil
}

// RehydrateCommercePlan rebuilds a stored plan.
func RehydrateCommercePlan(rec CommercePlanRecord) (CommercePlan, error) {
	if err := validatePlan(rec); err != nil {
		return CommercePlan{}, err
	}

	return CommercePlan{rec: rec}, nil
}

func (a CommercePlanAttrs) apply(rec CommercePlanRecord) CommercePlanRecord {
	rec.Name = trimmed(a.Name)
	rec.ValidationMode = ValidationMode(strings.ToUpper(trimmed(a.ValidationMode)))
	rec.Description = trimmed(a.Description)

	return rec
}

func validatePlan(rec CommercePlanRecord) error {
	v := newViolations(FamilyCommercePlan)

	if rec.Code == "" || len(rec.Code) > planCodeMaxLen || !codeRe.MatchString(rec.Code) {
		v.add("code", "must have between 1 and 30 letters, digits, '_' or '-'")
	}
	v.required("name", rec.Name, planNameMaxLen)
	if !rec.ValidationMode.Valid() {
		v.add("validationMode", "must be MERCHANT_ID or MCC")
	}
	v.optional("description", rec.Description, descriptionMaxLen)
	v.status(rec.Status)
	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the plan state.
func (p CommercePlan) Snapshot() CommercePlanRecord { return p.rec }

// ID returns the store-assigned identifier.
func (p CommercePlan) ID() int64 { return p.rec.PlanID }

// Code returns the business code.
func (p CommercePlan) Code() string { return p.rec.Code }

// Mode returns the validation mode.
func (p CommercePlan) Mode() ValidationMode { return p.rec.ValidationMode }

// Status returns the current status.
func (p CommercePlan) Status() Status { return p.rec.Status }

// IsActive reports whether the plan is active.
func (p CommercePlan) IsActive() bool { return p.rec.Status == StatusActive }

// ModeChanged reports whether attrs re-specify the validation mode.
func (p CommercePlan) ModeChanged(attrs CommercePlanAttrs) bool {
	return attrs.apply(CommercePlanRecord{}).ValidationMode != p.rec.ValidationMode
}

// UpdateBasics replaces name, mode and description. Whether a mode change is
// allowed depends on the items of the plan and is decided by the caller.
func (p CommercePlan) UpdateBasics(attrs CommercePlanAttrs, now time.Time, actor Actor) (CommercePlan, error) {
	rec := attrs.apply(p.rec)
	rec.Audit = rec.Audit.touch(now, actor)
	if err := validatePlan(rec); err != nil {
		return CommercePlan{}, err
	}

	return CommercePlan{rec: rec}, nil
}

// ChangeStatus moves the plan to status, which must be A or I.
func (p CommercePlan) ChangeStatus(status string, now time.Time, actor Actor) (CommercePlan, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return CommercePlan{}, FamilyCommercePlan.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := p.rec
	rec.Status = st
	rec.Audit = rec.Audit.touch(now, actor)

	return CommercePlan{rec: rec}, nil
}

// ValidItemValue reports whether value has the item shape required by mode.
func ValidItemValue(mode ValidationMode, value string) bool {
	switch mode {
	case ModeMCC:
		return mccRe.MatchString(value)
	case ModeMerchantID:
		return merchantIDRe.MatchString(value)
	default:
		return false
	}
}

// PlanItemRecord is the plain representation of a PlanItem.
type PlanItemRecord struct {
	PlanItemID int64
	PlanID     int64
	Value      string
	Status     Status
	Audit
}

// PlanItem is a single MCC or merchant identifier of a plan.
type PlanItem struct {
	rec PlanItemRecord
}

// NewPlanItem creates an active item for plan.
func NewPlanItem(plan CommercePlan, value string, now time.Time, actor Actor) (PlanItem, error) {
	rec := PlanItemRecord{
		PlanID: plan.ID(),
		Value:  trimmed(value),
		Status: StatusActive,
		Audit:  newAudit(now, actor),
	}
	if !ValidItemValue(plan.Mode(), rec.Value) {
		return PlanItem{}, FamilyPlanItem.InvalidData([]string{"value"},
			"value %q is not a valid %s", rec.Value, plan.Mode())
	}
	if err := validatePlanItem(rec); err != nil {
		return PlanItem{}, err
	}

	return PlanItem{rec: rec}, nil
}

// RehydratePlanItem rebuilds a stored item.
func RehydratePlanItem(rec PlanItemRecord) (PlanItem, error) {
	if err := validatePlanItem(rec); err != nil {
		return PlanItem{}, err
	}

	return PlanItem{rec: rec}, nil
}

func validatePlanItem(rec PlanItemRecord) error {
	v := newViolations(FamilyPlanItem)
	if rec.PlanID <= 0 {
		v.add("planId", "is required")
	}
	if rec.Value == "" {
		v.add("value", "is required")
	}
	v.status(rec.Status)
	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the item state.
func (i PlanItem) Snapshot() PlanItemRecord { return i.rec }

// Value returns the MCC or merchant identifier.
func (i PlanItem) Value() string { return i.rec.Value }

// IsActive reports whether the item is active.
func (i PlanItem) IsActive() bool { return i.rec.Status == StatusActive }

// Remove marks the item inactive.
func (i PlanItem) Remove(now time.Time, actor Actor) PlanItem {
	rec := i.rec
	rec.Status = StatusInactive
	rec.Audit = rec.Audit.touch(now, actor)

	return PlanItem{rec: rec}
}

// ItemBatch is the classification of a bulk item request.
type ItemBatch struct {
	// Candidates are well-formed values, each once, in request order.
	Candidates []string
	// Invalid are malformed values, in request order.
	Invalid []string
	// Repeated are values appearing more than once in the request; every
	// repetition after the first is listed.
	Repeated []string
}

// ClassifyItems splits values by shape for mode. Surrounding spaces are
// ignored; the result always accounts for every requested value.
func ClassifyItems(mode ValidationMode, values []string) ItemBatch {
	var b ItemBatch
	seen := make(map[string]struct{}, len(values))

	for _, raw := range values {
		value := trimmed(raw)
		if !ValidItemValue(mode, value) {
			b.Invalid = append(b.Invalid, raw)
			continue
		}
		if _, ok := seen[value]; ok {
			b.Repeated = append(b.Repeated, value)
			continue
		}
		seen[value] = struct{}{}
		b.Candidates = append(b.Candidates, value)
	}

	return b
}

// ItemsResult is the outcome of a bulk item addition.
type ItemsResult struct {
	Requested  int
	Inserted   int
	Duplicates int
	Invalid    int
	// DuplicateValues lists values already present or repeated in the request.
	DuplicateValues []string
	// InvalidValues lists malformed values.
	InvalidValues []string
}

// SubtypePlanLinkRecord is the plain representation of a SubtypePlanLink.
type SubtypePlanLinkRecord struct {
	SubtypeCode string
	PlanID      int64
	Audit
}

// SubtypePlanLink assigns one plan to a subtype.
type SubtypePlanLink struct {
	rec SubtypePlanLinkRecord
}

// NewSubtypePlanLink links plan to subtypeCode.
func NewSubtypePlanLink(subtypeCode string, plan CommercePlan, now time.Time, actor Actor) (SubtypePlanLink, error) {
	rec := SubtypePlanLinkRecord{
		SubtypeCode: trimmed(subtypeCode),
		PlanID:      plan.ID(),
		Audit:       newAudit(now, actor),
	}
	if err := validateLink(rec); err != nil {
		return SubtypePlanLink{}, err
	}

	return SubtypePlanLink{rec: rec}, nil
}

// RehydrateSubtypePlanLink rebuilds a stored link.
func RehydrateSubtypePlanLink(rec SubtypePlanLinkRecord) (SubtypePlanLink, error) {
	if err := validateLink(rec); err != nil {
		return SubtypePlanLink{}, err
	}

	return SubtypePlanLink{rec: rec}, nil
}

func validateLink(rec SubtypePlanLinkRecord) error {
	v := newViolations(FamilySubtypePlan)
	if len(rec.SubtypeCode) != subtypeCodeLen || !alnumRe.MatchString(rec.SubtypeCode) {
		v.add("subtypeCode", "must have exactly 3 alphanumeric characters")
	}
	if rec.PlanID <= 0 {
		v.add("planId", "is required")
	}
	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the link state.
func (l SubtypePlanLink) Snapshot() SubtypePlanLinkRecord { return l.rec }

// PlanID returns the linked plan.
func (l SubtypePlanLink) PlanID() int64 { return l.rec.PlanID }

// Reassign points the link at plan, keeping the creation time.
func (l SubtypePlanLink) Reassign(plan CommercePlan, now time.Time, actor Actor) (SubtypePlanLink, error) {
	rec := l.rec
	rec.PlanID = plan.ID()
	rec.Audit = rec.Audit.touch(now, actor)
	if err := validateLink(rec); err != nil {
		return SubtypePlanLink{}, err
	}

	return SubtypePlanLink{rec: rec}, nil
}
