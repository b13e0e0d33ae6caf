package domain

import (
	"time"

	"bincatalog/pkg/binid"
)

const (
	subtypeCodeLen     = 3
	subtypeNameMaxLen  = 100
	ownerIDTypeMaxLen  = 10
	ownerIDNumberMaxLn = 20
)

// SubtypeRecord is the plain representation of a Subtype.
type SubtypeRecord struct {
	// SubtypeID is assigned by the store; zero until persisted.
	SubtypeID     int64
	SubtypeCode   string
	Bin           string
	Name          string
	Description   string
	Status        Status
	OwnerIDType   string
	OwnerIDNumber string
	BinExt        string
	BinEfectivo   string
	Audit
}

// SubtypeAttrs are the mutable attributes of a Subtype. BinExt is the raw
// extension, normalized according to the BIN length.
type SubtypeAttrs struct {
	Name          string
	Description   string
	OwnerIDType   string
	OwnerIDNumber string
	BinExt        string
}

// Subtype is a sub-range of a BIN identified by its derived effective BIN.
//
// Invariants:
//   - subtypeCode has exactly 3 alphanumeric characters
//   - bin has 6, 8 or 9 digits
//   - binExt has 3 digits for 6-digit BINs, 1 digit for 8-digit BINs and is
//     empty for 9-digit BINs
//   - binEfectivo always equals binid.ComputeBinEfectivo(bin, binExt)
type Subtype struct {
	rec SubtypeRecord
}

// NewSubtype creates an inactive Subtype. The raw BIN is reduced to its
// digits and the extension is normalized before the effective BIN is derived.
func NewSubtype(code, rawBin string, attrs SubtypeAttrs, now time.Time, actor Actor) (Subtype, error) {
	rec := SubtypeRecord{
		SubtypeCode: trimmed(code),
		Bin:         binid.NormalizeBin(rawBin),
		Status:      StatusInactive,
		Audit:       newAudit(now, actor),
	}

	rec, err := attrs.apply(rec)
	if err != nil {
		return Subtype{}, err
	}
	if err := validateSubtype(rec); err != nil {
		return Subtype{}, err
	}

	return Subtype{rec: rec}, nil
}

// RehydrateSubtype rebuilds a stored Subtype. A stored effective BIN that does
// not match the derivation is rejected, never repaired.
func RehydrateSubtype(rec SubtypeRecord) (Subtype, error) {
	if err := validateSubtype(rec); err != nil {
		return Subtype{}, err
	}

	return Subtype{rec: rec}, nil
}

// apply copies attrs into rec and derives the extension and effective BIN.
func (a SubtypeAttrs) apply(rec SubtypeRecord) (SubtypeRecord, error) {
	rec.Name = trimmed(a.Name)
	rec.Description = trimmed(a.Description)
	rec.OwnerIDType = trimmed(a.OwnerIDType)
	rec.OwnerIDNumber = trimmed(a.OwnerIDNumber)

	if !validSubtypeBinLength(rec.Bin) {
		return rec, FamilySubtype.InvalidData([]string{"bin"}, "bin must have 6, 8 or 9 digits")
	}

	ext, err := binid.NormalizeBinExt(rec.Bin, a.BinExt)
	if err != nil {
		return rec, FamilySubtype.InvalidData([]string{"binExt"}, "%s", err.Error())
	}
	rec.BinExt = ext

	efectivo, err := binid.ComputeBinEfectivo(rec.Bin, ext)
	if err != nil {
		return rec, FamilySubtype.InvalidData([]string{"binExt"}, "%s", err.Error())
	}
	rec.BinEfectivo = efectivo

	return rec, nil
}

func validSubtypeBinLength(bin string) bool {
	return binid.IsNumeric(bin) && (len(bin) == 6 || len(bin) == 8 || len(bin) == 9)
}

func validateSubtype(rec SubtypeRecord) error {
	v := newViolations(FamilySubtype)

	if len(rec.SubtypeCode) != subtypeCodeLen || !alnumRe.MatchString(rec.SubtypeCode) {
		v.add("subtypeCode", "must have exactly 3 alphanumeric characters")
	}
	v.required("name", rec.Name, subtypeNameMaxLen)
	v.optional("description", rec.Description, descriptionMaxLen)
	v.optional("ownerIdType", rec.OwnerIDType, ownerIDTypeMaxLen)
	v.optional("ownerIdNumber", rec.OwnerIDNumber, ownerIDNumberMaxLn)
	v.status(rec.Status)

	if !validSubtypeBinLength(rec.Bin) {
		v.add("bin", "must have 6, 8 or 9 digits")
	} else {
		ext, err := binid.NormalizeBinExt(rec.Bin, rec.BinExt)
		switch {
		case err != nil:
			v.add("binExt", err.Error())
		case ext != rec.BinExt:
			v.add("binExt", "is not in canonical form")
		default:
			efectivo, err := binid.ComputeBinEfectivo(rec.Bin, rec.BinExt)
			if err != nil || efectivo != rec.BinEfectivo {
				v.add("binEfectivo", "does not match the value derived from bin and binExt")
			}
		}
	}

	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the Subtype state.
func (s Subtype) Snapshot() SubtypeRecord { return s.rec }

// ID returns the store-assigned identifier.
func (s Subtype) ID() int64 { return s.rec.SubtypeID }

// Code returns the subtype code.
func (s Subtype) Code() string { return s.rec.SubtypeCode }

// Bin returns the owning BIN.
func (s Subtype) Bin() string { return s.rec.Bin }

// BinExt returns the normalized extension.
func (s Subtype) BinExt() string { return s.rec.BinExt }

// BinEfectivo returns the derived effective BIN.
func (s Subtype) BinEfectivo() string { return s.rec.BinEfectivo }

// Status returns the current status.
func (s Subtype) Status() Status { return s.rec.Status }

// IsActive reports whether the Subtype is active.
func (s Subtype) IsActive() bool { return s.rec.Status == StatusActive }

// UpdateBasics replaces the mutable attributes and re-derives the effective
// BIN. Identity and status are preserved.
func (s Subtype) UpdateBasics(attrs SubtypeAttrs, now time.Time, actor Actor) (Subtype, error) {
	rec, err := attrs.apply(s.rec)
	if err != nil {
		return Subtype{}, err
	}
	rec.Audit = rec.Audit.touch(now, actor)
	if err := validateSubtype(rec); err != nil {
		return Subtype{}, err
	}

	return Subtype{rec: rec}, nil
}

// ChangeStatus moves the Subtype to status, which must be A or I.
func (s Subtype) ChangeStatus(status string, now time.Time, actor Actor) (Subtype, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return Subtype{}, FamilySubtype.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := s.rec
	rec.Status = st
	rec.Audit = rec.Audit.touch(now, actor)

	return Subtype{rec: rec}, nil
}
