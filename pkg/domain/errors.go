package domain

import (
	"bincatalog/pkg/serrors"
)

// Family identifies the aggregate an error belongs to. It prefixes the
// machine-readable code, e.g. BIN_NOT_FOUND.
type Family string

const (
	FamilyBin           Family = "BIN"
	FamilySubtype       Family = "SUBTYPE"
	FamilyAgency        Family = "AGENCY"
	FamilyValidation    Family = "VALIDATION"
	FamilyValidationMap Family = "VALIDATION_MAP"
	FamilyCommercePlan  Family = "COMMERCE_PLAN"
	FamilyPlanItem      Family = "PLAN_ITEM"
	FamilySubtypePlan   Family = "SUBTYPE_PLAN"
)

func (f Family) code(k serrors.Kind) string { return string(f) + "_" + k.Error() }

// InvalidData builds an error for values violating an invariant of the
// aggregate. fields lists every offending field.
func (f Family) InvalidData(fields []string, msgFmt string, args ...any) *serrors.Error {
	return serrors.With(serrors.ErrInvalidData, msgFmt, args...).
		WithCode(f.code(serrors.ErrInvalidData)).
		WithFields(fields...)
}

// AlreadyExists builds an error for a write that would break a uniqueness rule.
func (f Family) AlreadyExists(msgFmt string, args ...any) *serrors.Error {
	return serrors.With(serrors.ErrAlreadyExists, msgFmt, args...).WithCode(f.code(serrors.ErrAlreadyExists))
}

// NotFound builds an error for a missing aggregate.
func (f Family) NotFound(msgFmt string, args ...any) *serrors.Error {
	return serrors.With(serrors.ErrNotFound, msgFmt, args...).WithCode(f.code(serrors.ErrNotFound))
}

// ConflictRule builds an error for a cross-aggregate rule blocking a write.
func (f Family) ConflictRule(msgFmt string, args ...any) *serrors.Error {
	return serrors.With(serrors.ErrConflictRule, msgFmt, args...).WithCode(f.code(serrors.ErrConflictRule))
}
