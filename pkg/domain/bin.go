package domain

import (
	"strings"
	"time"

	"bincatalog/pkg/binid"
)

// TypeBin is the card product family of a BIN.
type TypeBin string

const (
	TypeBinDebit   TypeBin = "DEBITO"
	TypeBinCredit  TypeBin = "CREDITO"
	TypeBinPrepaid TypeBin = "PREPAGO"
)

// Valid reports whether t is a known product family.
func (t TypeBin) Valid() bool {
	return t == TypeBinDebit || t == TypeBinCredit || t == TypeBinPrepaid
}

// YesNo is a Y/N flag.
type YesNo string

const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

const (
	binMinLen         = 6
	binMaxLen         = 9
	binNameMaxLen     = 100
	compensationMaxLn = 20
	descriptionMaxLen = 255
	maxBinExtDigits   = 3
)

// BinRecord is the plain representation of a Bin used for persistence and
// presentation.
type BinRecord struct {
	Bin             string
	Name            string
	TypeBin         TypeBin
	TypeAccount     string
	CompensationCod string
	Description     string
	Status          Status
	UsesBinExt      YesNo
	// BinExtDigits is nil when UsesBinExt is N.
	BinExtDigits *int
	Audit
}

// BinAttrs are the mutable attributes of a Bin.
type BinAttrs struct {
	Name            string
	TypeBin         string
	TypeAccount     string
	CompensationCod string
	Description     string
	UsesBinExt      string
	BinExtDigits    *int
}

// Bin is the root catalog entity, identified by its numeric BIN.
//
// Invariants:
//   - bin has 6 to 9 digits and never changes
//   - name and compensationCod are required; name, compensationCod and
//     description only contain letters, digits and spaces
//   - binExtDigits is 1..3 when usesBinExt is Y and nil when it is N
//   - len(bin) + binExtDigits <= 9
type Bin struct {
	rec BinRecord
}

// NewBin creates an active Bin.
func NewBin(bin string, attrs BinAttrs, now time.Time, actor Actor) (Bin, error) {
	rec := BinRecord{
		Bin:    trimmed(bin),
		Status: StatusActive,
		Audit:  newAudit(now, actor),
	}
	rec = attrs.apply(rec)

	if err := validateBin(rec); err != nil {
		return Bin{}, err
	}

	return Bin{rec: rec}, nil
}

// RehydrateBin rebuilds a stored Bin, re-validating every invariant.
func RehydrateBin(rec BinRecord) (Bin, error) {
	rec.BinExtDigits = copyInt(rec.BinExtDigits)
	if err := validateBin(rec); err != nil {
		return Bin{}, err
	}

	return Bin{rec: rec}, nil
}

func (a BinAttrs) apply(rec BinRecord) BinRecord {
	rec.Name = trimmed(a.Name)
	rec.TypeBin = TypeBin(strings.ToUpper(trimmed(a.TypeBin)))
	rec.TypeAccount = trimmed(a.TypeAccount)
	rec.CompensationCod = trimmed(a.CompensationCod)
	rec.Description = trimmed(a.Description)
	rec.UsesBinExt = YesNo(strings.ToUpper(trimmed(a.UsesBinExt)))
	rec.BinExtDigits = copyInt(a.BinExtDigits)

	return rec
}

func validateBin(rec BinRecord) error {
	v := newViolations(FamilyBin)

	if !binid.IsNumeric(rec.Bin) || len(rec.Bin) < binMinLen || len(rec.Bin) > binMaxLen {
		v.add("bin", "must have between 6 and 9 digits")
	}
	v.plainText("name", rec.Name, true, binNameMaxLen)
	if !rec.TypeBin.Valid() {
		v.add("typeBin", "must be DEBITO, CREDITO or PREPAGO")
	}
	if len(rec.TypeAccount) != 2 || !binid.IsNumeric(rec.TypeAccount) {
		v.add("typeAccount", "must have exactly 2 digits")
	}
	v.plainText("compensationCod", rec.CompensationCod, true, compensationMaxLn)
	v.plainText("description", rec.Description, false, descriptionMaxLen)
	v.status(rec.Status)

	switch rec.UsesBinExt {
	case Yes:
		switch {
		case rec.BinExtDigits == nil:
			v.add("binExtDigits", "is required when usesBinExt is Y")
		case *rec.BinExtDigits < 1 || *rec.BinExtDigits > maxBinExtDigits:
			v.add("binExtDigits", "must be between 1 and 3")
		case len(rec.Bin)+*rec.BinExtDigits > binid.EffectiveLength:
			v.add("binExtDigits", "bin length plus extension digits must not exceed 9")
		}
	case No:
		if rec.BinExtDigits != nil {
			v.add("binExtDigits", "must be empty when usesBinExt is N")
		}
	default:
		v.add("usesBinExt", "must be Y or N")
	}

	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the Bin state.
func (b Bin) Snapshot() BinRecord {
	rec := b.rec
	rec.BinExtDigits = copyInt(b.rec.BinExtDigits)

	return rec
}

// Bin returns the BIN identifier.
func (b Bin) Bin() string { return b.rec.Bin }

// Status returns the current status.
func (b Bin) Status() Status { return b.rec.Status }

// IsActive reports whether the Bin is active.
func (b Bin) IsActive() bool { return b.rec.Status == StatusActive }

// UpdateBasics replaces the mutable attributes. The identifier, status and
// creation time are preserved.
func (b Bin) UpdateBasics(attrs BinAttrs, now time.Time, actor Actor) (Bin, error) {
	rec := attrs.apply(b.Snapshot())
	rec.Audit = rec.Audit.touch(now, actor)
	if err := validateBin(rec); err != nil {
		return Bin{}, err
	}

	return Bin{rec: rec}, nil
}

// ChangeStatus moves the Bin to status, which must be A or I.
func (b Bin) ChangeStatus(status string, now time.Time, actor Actor) (Bin, error) {
	s, ok := ParseStatus(status)
	if !ok {
		return Bin{}, FamilyBin.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := b.Snapshot()
	rec.Status = s
	rec.Audit = rec.Audit.touch(now, actor)

	return Bin{rec: rec}, nil
}

// ExtensionChanged reports whether attrs request an extension configuration
// different from the current one.
func (b Bin) ExtensionChanged(attrs BinAttrs) bool {
	next := attrs.apply(BinRecord{})
	if next.UsesBinExt != b.rec.UsesBinExt {
		return true
	}

	return !equalIntPtr(next.BinExtDigits, b.rec.BinExtDigits)
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}
