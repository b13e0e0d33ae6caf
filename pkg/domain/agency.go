package domain

import (
	"time"
)

const (
	agencyCodeMaxLen = 10
	agencyNameMaxLen = 100
	agencyFieldMaxLn = 100
	agencyPhoneMaxLn = 20
)

// AgencyRecord is the plain representation of an Agency.
type AgencyRecord struct {
	SubtypeCode       string
	AgencyCode        string
	Name              string
	Description       string
	Address           string
	Phone             string
	CustodianName     string
	CustodianIDType   string
	CustodianIDNumber string
	EmbosserCode      string
	EmbosserName      string
	Status            Status
	Audit
}

// AgencyAttrs are the mutable attributes of an Agency.
type AgencyAttrs struct {
	Name              string
	Description       string
	Address           string
	Phone             string
	CustodianName     string
	CustodianIDType   string
	CustodianIDNumber string
	EmbosserCode      string
	EmbosserName      string
}

// AgencyKey identifies an Agency.
type AgencyKey struct {
	SubtypeCode string
	AgencyCode  string
}

// Agency is a physical or organizational unit under a Subtype. Whether it may
// be created or activated depends on its Subtype being active, which is
// checked by the use case.
type Agency struct {
	rec AgencyRecord
}

// NewAgency creates an active Agency.
func NewAgency(key AgencyKey, attrs AgencyAttrs, now time.Time, actor Actor) (Agency, error) {
	rec := attrs.apply(AgencyRecord{
		SubtypeCode: trimmed(key.SubtypeCode),
		AgencyCode:  trimmed(key.AgencyCode),
		Status:      StatusActive,
		Audit:       newAudit(now, actor),
	})
	if err := validateAgency(rec); err != nil {
		return Agency{}, err
	}

	return Agency{rec: rec}, nil
}

// RehydrateAgency rebuilds a stored Agency.
func RehydrateAgency(rec AgencyRecord) (Agency, error) {
	if err := validateAgency(rec); err != nil {
		return Agency{}, err
	}

	return Agency{rec: rec}, nil
}

func (a AgencyAttrs) apply(rec AgencyRecord) AgencyRecord {
	rec.Name = trimmed(a.Name)
	rec.Description = trimmed(a.Description)
	rec.Address = trimmed(a.Address)
	rec.Phone = trimmed(a.Phone)
	rec.CustodianName = trimmed(a.CustodianName)
	rec.CustodianIDType = trimmed(a.CustodianIDType)
	rec.CustodianIDNumber = trimmed(a.CustodianIDNumber)
	rec.EmbosserCode = trimmed(a.EmbosserCode)
	rec.EmbosserName = trimmed(a.EmbosserName)

	return rec
}

func validateAgency(rec AgencyRecord) error {
	v := newViolations(FamilyAgency)

	if len(rec.SubtypeCode) != subtypeCodeLen || !alnumRe.MatchString(rec.SubtypeCode) {
		v.add("subtypeCode", "must have exactly 3 alphanumeric characters")
	}
	if rec.AgencyCode == "" || len(rec.AgencyCode) > agencyCodeMaxLen || !alnumRe.MatchString(rec.AgencyCode) {
		v.add("agencyCode", "must have between 1 and 10 alphanumeric characters")
	}
	v.required("name", rec.Name, agencyNameMaxLen)
	v.optional("description", rec.Description, descriptionMaxLen)
	v.optional("address", rec.Address, descriptionMaxLen)
	v.optional("phone", rec.Phone, agencyPhoneMaxLn)
	v.optional("custodianName", rec.CustodianName, agencyFieldMaxLn)
	v.optional("custodianIdType", rec.CustodianIDType, ownerIDTypeMaxLen)
	v.optional("custodianIdNumber", rec.CustodianIDNumber, ownerIDNumberMaxLn)
	v.optional("embosserCode", rec.EmbosserCode, agencyCodeMaxLen)
	v.optional("embosserName", rec.EmbosserName, agencyFieldMaxLn)
	v.status(rec.Status)
	rec.Audit.check(v)

	return v.err()
}

// Snapshot returns a copy of the Agency state.
func (a Agency) Snapshot() AgencyRecord { return a.rec }

// Key returns the composite identity.
func (a Agency) Key() AgencyKey {
	return AgencyKey{SubtypeCode: a.rec.SubtypeCode, AgencyCode: a.rec.AgencyCode}
}

// Status returns the current status.
func (a Agency) Status() Status { return a.rec.Status }

// IsActive reports whether the Agency is active.
func (a Agency) IsActive() bool { return a.rec.Status == StatusActive }

// UpdateBasics replaces the mutable attributes, keeping status and createdAt.
func (a Agency) UpdateBasics(attrs AgencyAttrs, now time.Time, actor Actor) (Agency, error) {
	rec := attrs.apply(a.rec)
	rec.Audit = rec.Audit.touch(now, actor)
	if err := validateAgency(rec); err != nil {
		return Agency{}, err
	}

	return Agency{rec: rec}, nil
}

// ChangeStatus moves the Agency to status, which must be A or I.
func (a Agency) ChangeStatus(status string, now time.Time, actor Actor) (Agency, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return Agency{}, FamilyAgency.InvalidData([]string{"status"}, "status must be A or I")
	}

	rec := a.rec
	rec.Status = st
	rec.Audit = rec.Audit.touch(now, actor)

	return Agency{rec: rec}, nil
}
