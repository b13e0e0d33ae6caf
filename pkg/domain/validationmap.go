package domain

import (
	"time"

	"bincatalog/pkg/binid"
)

// MapKey is the natural key of a ValidationMap.
type MapKey struct {
	SubtypeCode  string
	Bin          string
	ValidationID int64
}

// ValidationMapRecord is the plain representation of a ValidationMap.
type ValidationMapRecord struct {
	// MapID is assigned by the store; zero until persisted.
	MapID        int64
	SubtypeCode  string
	Bin          string
	ValidationID int64
	// Priority orders resolution: lower first, ties broken by MapID.
	Priority int
	Status   Status
	// Override replaces the definition value when not zero.
	Override Value
	Audit
}

// Key returns the natural key of the record.
func (r ValidationMapRecord) Key() MapKey {
	return MapKey{SubtypeCode: r.SubtypeCode, Bin: r.Bin, ValidationID: r.ValidationID}
}

// ValidationMap binds a Validation to a (subtype, effective BIN) pair.
type ValidationMap struct {
	rec ValidationMapRecord
}

// NewValidationMap creates an active mapping of def to key. The override, when
// given, must match the data type of def.
func NewValidationMap(
	subtypeCode, bin string,
	def Validation,
	priority int,
	override Value,
	now time.Time,
	actor Actor,
) (ValidationMap, error) {
	rec := ValidationMapRecord{
		SubtypeCode:  trimmed(subtypeCode),
		Bin:          binid.NormalizeBin(bin),
		ValidationID: def.ID(),
		Priority:     priority,
		Status:       StatusActive,
		Override:     override.normalize(def.DataType()),
		Audit:        newAudit(now, actor),
	}

	v := newViolations(FamilyValidationMap)
	rec.Override.check(def.DataType(), false, v)
	validateValidationMapInto(rec, v)
	if err := v.err(); err != nil {
		return ValidationMap{}, err
	}

	return ValidationMap{rec: rec}, nil
}

// RehydrateValidationMap rebuilds a stored mapping.
func RehydrateValidationMap(rec ValidationMapRecord) (ValidationMap, error) {
	v := newViolations(FamilyValidationMap)
	validateValidationMapInto(rec, v)
	if err := v.err(); err != nil {
		return ValidationMap{}, err
	}

	return ValidationMap{rec: rec}, nil
}

func validateValidationMapInto(rec ValidationMapRecord, v *violations) {
	if len(rec.SubtypeCode) != subtypeCodeLen || !alnumRe.MatchString(rec.SubtypeCode) {
		v.add("subtypeCode", "must have exactly 3 alphanumeric characters")
	}
	if len(rec.Bin) != binid.EffectiveLength || !binid.IsNumeric(rec.Bin) {
		v.add("bin", "must be a 9-digit effective BIN")
	}
	if rec.ValidationID <= 0 {
		v.add("validationId", "is required")
	}
	if rec.Priority < 0 {
		v.add("priority", "must not be negative")
	}
	v.status(rec.Status)
	rec.Audit.check(v)
}

// Snapshot returns a copy of the mapping state.
func (m ValidationMap) Snapshot() ValidationMapRecord { return m.rec }

// ID returns the store-assigned identifier.
func (m ValidationMap) ID() int64 { return m.rec.MapID }

// Key returns the natural key.
func (m ValidationMap) Key() MapKey { return m.rec.Key() }

// Status returns the current status.
func (m ValidationMap) Status() Status { return m.rec.Status }

// IsActive reports whether the mapping is active.
func (m ValidationMap) IsActive() bool { return m.rec.Status == StatusActive }

// ChangeStatus moves the mapping to status, which must be A or I.
func (m ValidationMap) ChangeStatus(status string, now time.Time, actor Actor) (ValidationMap, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return ValidationMap{}, FamilyValidationMap.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := m.rec
	rec.Status = st
	rec.Audit = rec.Audit.touch(now, actor)

	return ValidationMap{rec: rec}, nil
}

// ResolvedRule is a Validation as seen through one of its mappings.
type ResolvedRule struct {
	MapID        int64
	ValidationID int64
	Code         string
	Description  string
	DataType     DataType
	// Value is the override when present, otherwise the definition value.
	Value     Value
	Priority  int
	Status    Status
	ValidFrom time.Time
	ValidTo   *time.Time
}

// Resolve combines a mapping with its definition.
func Resolve(m ValidationMapRecord, def ValidationRecord) ResolvedRule {
	value := def.Value
	if !m.Override.IsZero() {
		value = m.Override
	}

	return ResolvedRule{
		MapID:        m.MapID,
		ValidationID: def.ValidationID,
		Code:         def.Code,
		Description:  def.Description,
		DataType:     def.DataType,
		Value:        value,
		Priority:     m.Priority,
		Status:       m.Status,
		ValidFrom:    def.ValidFrom,
		ValidTo:      utcPtr(def.ValidTo),
	}
}
