package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DataType fixes which field of a Value is meaningful.
type DataType string

const (
	DataTypeBool   DataType = "BOOL"
	DataTypeNumber DataType = "NUMBER"
	DataTypeText   DataType = "TEXT"
)

// Valid reports whether d is a known data type.
func (d DataType) Valid() bool {
	return d == DataTypeBool || d == DataTypeNumber || d == DataTypeText
}

// Flag values accepted for BOOL validations.
const (
	FlagYes = "SI"
	FlagNo  = "NO"
)

const (
	validationCodeMaxLen = 50
	valueTextMaxLen      = 255
)

// Value is a typed constant. Only the field selected by the DataType is kept.
type Value struct {
	Flag string
	Num  decimal.NullDecimal
	Text string
}

// IsZero reports whether no field carries a value.
func (v Value) IsZero() bool {
	return v.Flag == "" && !v.Num.Valid && v.Text == ""
}

// normalize keeps only the field meaningful for d.
func (v Value) normalize(d DataType) Value {
	switch d {
	case DataTypeBool:
		return Value{Flag: strings.ToUpper(trimmed(v.Flag))}
	case DataTypeNumber:
		return Value{Num: v.Num}
	case DataTypeText:
		return Value{Text: trimmed(v.Text)}
	default:
		return Value{}
	}
}

// check validates v against d. When required is false a zero value passes.
func (v Value) check(d DataType, required bool, vs *violations) {
	if !required && v.IsZero() {
		return
	}

	switch d {
	case DataTypeBool:
		if v.Flag != FlagYes && v.Flag != FlagNo {
			vs.add("valueFlag", "must be SI or NO")
		}
	case DataTypeNumber:
		if !v.Num.Valid {
			vs.add("valueNum", "is required for NUMBER validations")
		}
	case DataTypeText:
		vs.required("valueText", v.Text, valueTextMaxLen)
	}
}

// ValidationRecord is the plain representation of a Validation.
type ValidationRecord struct {
	ValidationID int64
	Code         string
	Description  string
	DataType     DataType
	Value        Value
	Status       Status
	ValidFrom    time.Time
	// ValidTo is nil for an open-ended window.
	ValidTo *time.Time
	Audit
}

// ValidationAttrs are the inputs of NewValidation.
type ValidationAttrs struct {
	Code        string
	Description string
	DataType    string
	Value       Value
	// ValidFrom defaults to the creation time when zero.
	ValidFrom time.Time
	ValidTo   *time.Time
}

// ValidationUpdate are the mutable attributes of a Validation. The code and
// data type are fixed at creation.
type ValidationUpdate struct {
	Description string
	Value       Value
	ValidFrom   time.Time
	ValidTo     *time.Time
}

// Validation is a named, typed constant with an optional validity window.
type Validation struct {
	rec ValidationRecord
}

// NewValidation creates an active Validation.
func NewValidation(attrs ValidationAttrs, now time.Time, actor Actor) (Validation, error) {
	dt := DataType(strings.ToUpper(trimmed(attrs.DataType)))
	from := attrs.ValidFrom
	if from.IsZero() {
		from = now
	}

	rec := ValidationRecord{
		Code:        strings.ToUpper(trimmed(attrs.Code)),
		Description: trimmed(attrs.Description),
		DataType:    dt,
		Value:       attrs.Value.normalize(dt),
		Status:      StatusActive,
		ValidFrom:   from.UTC(),
		ValidTo:     utcPtr(attrs.ValidTo),
		Audit:       newAudit(now, actor),
	}
	if err := validateValidation(rec); err != nil {
		return Validation{}, err
	}

	return Validation{rec: rec}, nil
}

// RehydrateValidation rebuilds a stored Validation.
func RehydrateValidation(rec ValidationRecord) (Validation, error) {
	rec.ValidTo = utcPtr(rec.ValidTo)
	if err := validateValidation(rec); err != nil {
		return Validation{}, err
	}

	return Validation{rec: rec}, nil
}

func validateValidation(rec ValidationRecord) error {
	v := newViolations(FamilyValidation)

	if rec.Code == "" || len(rec.Code) > validationCodeMaxLen || !codeRe.MatchString(rec.Code) {
		v.add("code", "must have between 1 and 50 letters, digits, '_' or '-'")
	}
	v.optional("description", rec.Description, descriptionMaxLen)
	if !rec.DataType.Valid() {
		v.add("dataType", "must be BOOL, NUMBER or TEXT")
	} else {
		rec.Value.check(rec.DataType, true, v)
	}
	v.status(rec.Status)
	if rec.ValidFrom.IsZero() {
		v.add("validFrom", "is required")
	}
	if rec.ValidTo != nil && rec.ValidTo.Before(rec.ValidFrom) {
		v.add("validTo", "must not precede validFrom")
	}
	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the Validation state.
func (d Validation) Snapshot() ValidationRecord {
	rec := d.rec
	rec.ValidTo = utcPtr(d.rec.ValidTo)

	return rec
}

// ID returns the store-assigned identifier.
func (d Validation) ID() int64 { return d.rec.ValidationID }

// Code returns the business code.
func (d Validation) Code() string { return d.rec.Code }

// DataType returns the value type.
func (d Validation) DataType() DataType { return d.rec.DataType }

// Value returns the defined value.
func (d Validation) Value() Value { return d.rec.Value }

// Status returns the current status.
func (d Validation) Status() Status { return d.rec.Status }

// IsActive reports whether the Validation is active.
func (d Validation) IsActive() bool { return d.rec.Status == StatusActive }

// EffectiveAt reports whether t falls inside the validity window.
func (d Validation) EffectiveAt(t time.Time) bool {
	if t.Before(d.rec.ValidFrom) {
		return false
	}

	return d.rec.ValidTo == nil || !t.After(*d.rec.ValidTo)
}

// UpdateBasics replaces the description, value and validity window.
func (d Validation) UpdateBasics(u ValidationUpdate, now time.Time, actor Actor) (Validation, error) {
	rec := d.Snapshot()
	rec.Description = trimmed(u.Description)
	rec.Value = u.Value.normalize(rec.DataType)
	if !u.ValidFrom.IsZero() {
		rec.ValidFrom = u.ValidFrom.UTC()
	}
	rec.ValidTo = utcPtr(u.ValidTo)
	rec.Audit = rec.Audit.touch(now, actor)

	if err := validateValidation(rec); err != nil {
		return Validation{}, err
	}

	return Validation{rec: rec}, nil
}

// ChangeStatus moves the Validation to status, which must be A or I.
func (d Validation) ChangeStatus(status string, now time.Time, actor Actor) (Validation, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return Validation{}, FamilyValidation.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := d.Snapshot()
	rec.Status = st
	rec.Audit = rec.Audit.touch(now, actor)

	return Validation{rec: rec}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
