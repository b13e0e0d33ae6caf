package postgres

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"bincatalog/pkg/domain"
)

type PgAudit struct {
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	UpdatedBy sql.NullString `db:"updated_by"`
}

func auditToPg(a domain.Audit) PgAudit {
	id, ok := a.UpdatedBy.ID()

	return PgAudit{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: sql.NullString{String: id, Valid: ok},
	}
}

func (a PgAudit) toDomain() domain.Audit {
	actor := domain.NoActor()
	if a.UpdatedBy.Valid {
		actor = domain.SomeActor(a.UpdatedBy.String)
	}

	return domain.Audit{
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
		UpdatedBy: actor,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type PgBin struct {
	Bin             string         `db:"bin"`
	Name            string         `db:"name"`
	TypeBin         string         `db:"type_bin"`
	TypeAccount     string         `db:"type_account"`
	CompensationCod string         `db:"compensation_cod"`
	Description     sql.NullString `db:"description"`
	Status          string         `db:"status"`
	UsesBinExt      string         `db:"uses_bin_ext"`
	BinExtDigits    sql.NullInt16  `db:"bin_ext_digits"`
	PgAudit
}

func (p *PgBin) ToDomain() (*domain.Bin, error) {
	var digits *int
	if p.BinExtDigits.Valid {
		d := int(p.BinExtDigits.Int16)
		digits = &d
	}

	b, err := domain.RehydrateBin(domain.BinRecord{
		Bin:             p.Bin,
		Name:            p.Name,
		TypeBin:         domain.TypeBin(p.TypeBin),
		TypeAccount:     p.TypeAccount,
		CompensationCod: p.CompensationCod,
		Description:     p.Description.String,
		Status:          domain.Status(p.Status),
		UsesBinExt:      domain.YesNo(p.UsesBinExt),
		BinExtDigits:    digits,
		Audit:           p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &b, nil
}

func (p *PgBin) FromDomain(b domain.Bin) {
	rec := b.Snapshot()
	*p = PgBin{
		Bin:             rec.Bin,
		Name:            rec.Name,
		TypeBin:         string(rec.TypeBin),
		TypeAccount:     rec.TypeAccount,
		CompensationCod: rec.CompensationCod,
		Description:     nullString(rec.Description),
		Status:          string(rec.Status),
		UsesBinExt:      string(rec.UsesBinExt),
		PgAudit:         auditToPg(rec.Audit),
	}
	if rec.BinExtDigits != nil {
		p.BinExtDigits = sql.NullInt16{Int16: int16(*rec.BinExtDigits), Valid: true} //nolint: gosec
	}
}

type PgSubtype struct {
	SubtypeID     int64          `db:"subtype_id" goqu:"skipinsert"`
	SubtypeCode   string         `db:"subtype_code"`
	Bin           string         `db:"bin"`
	Name          string         `db:"name"`
	Description   sql.NullString `db:"description"`
	Status        string         `db:"status"`
	OwnerIDType   sql.NullString `db:"owner_id_type"`
	OwnerIDNumber sql.NullString `db:"owner_id_number"`
	BinExt        string         `db:"bin_ext"`
	BinEfectivo   string         `db:"bin_efectivo"`
	PgAudit
}

func (p *PgSubtype) ToDomain() (*domain.Subtype, error) {
	s, err := domain.RehydrateSubtype(domain.SubtypeRecord{
		SubtypeID:     p.SubtypeID,
		SubtypeCode:   p.SubtypeCode,
		Bin:           p.Bin,
		Name:          p.Name,
		Description:   p.Description.String,
		Status:        domain.Status(p.Status),
		OwnerIDType:   p.OwnerIDType.String,
		OwnerIDNumber: p.OwnerIDNumber.String,
		BinExt:        p.BinExt,
		BinEfectivo:   p.BinEfectivo,
		Audit:         p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &s, nil
}

func (p *PgSubtype) FromDomain(s domain.Subtype) {
	rec := s.Snapshot()
	*p = PgSubtype{
		SubtypeID:     rec.SubtypeID,
		SubtypeCode:   rec.SubtypeCode,
		Bin:           rec.Bin,
		Name:          rec.Name,
		Description:   nullString(rec.Description),
		Status:        string(rec.Status),
		OwnerIDType:   nullString(rec.OwnerIDType),
		OwnerIDNumber: nullString(rec.OwnerIDNumber),
		BinExt:        rec.BinExt,
		BinEfectivo:   rec.BinEfectivo,
		PgAudit:       auditToPg(rec.Audit),
	}
}

type PgAgency struct {
	SubtypeCode       string         `db:"subtype_code"`
	AgencyCode        string         `db:"agency_code"`
	Name              string         `db:"name"`
	Description       sql.NullString `db:"description"`
	Address           sql.NullString `db:"address"`
	Phone             sql.NullString `db:"phone"`
	CustodianName     sql.NullString `db:"custodian_name"`
	CustodianIDType   sql.NullString `db:"custodian_id_type"`
	CustodianIDNumber sql.NullString `db:"custodian_id_number"`
	EmbosserCode      sql.NullString `db:"embosser_code"`
	EmbosserName      sql.NullString `db:"embosser_name"`
	Status            string         `db:"status"`
	PgAudit
}

func (p *PgAgency) ToDomain() (*domain.Agency, error) {
	a, err := domain.RehydrateAgency(domain.AgencyRecord{
		SubtypeCode:       p.SubtypeCode,
		AgencyCode:        p.AgencyCode,
		Name:              p.Name,
		Description:       p.Description.String,
		Address:           p.Address.String,
		Phone:             p.Phone.String,
		CustodianName:     p.CustodianName.String,
		CustodianIDType:   p.CustodianIDType.String,
		CustodianIDNumber: p.CustodianIDNumber.String,
		EmbosserCode:      p.EmbosserCode.String,
		EmbosserName:      p.EmbosserName.String,
		Status:            domain.Status(p.Status),
		Audit:             p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &a, nil
}

func (p *PgAgency) FromDomain(a domain.Agency) {
	rec := a.Snapshot()
	*p = PgAgency{
		SubtypeCode:       rec.SubtypeCode,
		AgencyCode:        rec.AgencyCode,
		Name:              rec.Name,
		Description:       nullString(rec.Description),
		Address:           nullString(rec.Address),
		Phone:             nullString(rec.Phone),
		CustodianName:     nullString(rec.CustodianName),
		CustodianIDType:   nullString(rec.CustodianIDType),
		CustodianIDNumber: nullString(rec.CustodianIDNumber),
		EmbosserCode:      nullString(rec.EmbosserCode),
		EmbosserName:      nullString(rec.EmbosserName),
		Status:            string(rec.Status),
		PgAudit:           auditToPg(rec.Audit),
	}
}

// PgValue is the column triple shared by validations and their mappings.
type PgValue struct {
	ValueFlag sql.NullString      `db:"value_flag"`
	ValueNum  decimal.NullDecimal `db:"value_num"`
	ValueText sql.NullString      `db:"value_text"`
}

func valueToPg(v domain.Value) PgValue {
	return PgValue{
		ValueFlag: nullString(v.Flag),
		ValueNum:  v.Num,
		ValueText: nullString(v.Text),
	}
}

func (p PgValue) toDomain() domain.Value {
	return domain.Value{Flag: p.ValueFlag.String, Num: p.ValueNum, Text: p.ValueText.String}
}

type PgValidation struct {
	ValidationID int64          `db:"validation_id" goqu:"skipinsert"`
	Code         string         `db:"code"`
	Description  sql.NullString `db:"description"`
	DataType     string         `db:"data_type"`
	PgValue
	Status    string       `db:"status"`
	ValidFrom time.Time    `db:"valid_from"`
	ValidTo   sql.NullTime `db:"valid_to"`
	PgAudit
}

func (p *PgValidation) record() domain.ValidationRecord {
	var validTo *time.Time
	if p.ValidTo.Valid {
		t := p.ValidTo.Time.UTC()
		validTo = &t
	}

	return domain.ValidationRecord{
		ValidationID: p.ValidationID,
		Code:         p.Code,
		Description:  p.Description.String,
		DataType:     domain.DataType(p.DataType),
		Value:        p.PgValue.toDomain(),
		Status:       domain.Status(p.Status),
		ValidFrom:    p.ValidFrom.UTC(),
		ValidTo:      validTo,
		Audit:        p.PgAudit.toDomain(),
	}
}

func (p *PgValidation) ToDomain() (*domain.Validation, error) {
	v, err := domain.RehydrateValidation(p.record())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v, nil
}

func (p *PgValidation) FromDomain(v domain.Validation) {
	rec := v.Snapshot()
	*p = PgValidation{
		ValidationID: rec.ValidationID,
		Code:         rec.Code,
		Description:  nullString(rec.Description),
		DataType:     string(rec.DataType),
		PgValue:      valueToPg(rec.Value),
		Status:       string(rec.Status),
		ValidFrom:    rec.ValidFrom,
		PgAudit:      auditToPg(rec.Audit),
	}
	if rec.ValidTo != nil {
		p.ValidTo = sql.NullTime{Time: *rec.ValidTo, Valid: true}
	}
}

type PgValidationMap struct {
	MapID        int64  `db:"map_id" goqu:"skipinsert"`
	SubtypeCode  string `db:"subtype_code"`
	Bin          string `db:"bin"`
	ValidationID int64  `db:"validation_id"`
	Priority     int    `db:"priority"`
	Status       string `db:"status"`
	PgValue
	PgAudit
}

func (p *PgValidationMap) record() domain.ValidationMapRecord {
	return domain.ValidationMapRecord{
		MapID:        p.MapID,
		SubtypeCode:  p.SubtypeCode,
		Bin:          p.Bin,
		ValidationID: p.ValidationID,
		Priority:     p.Priority,
		Status:       domain.Status(p.Status),
		Override:     p.PgValue.toDomain(),
		Audit:        p.PgAudit.toDomain(),
	}
}

func (p *PgValidationMap) ToDomain() (*domain.ValidationMap, error) {
	m, err := domain.RehydrateValidationMap(p.record())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &m, nil
}

func (p *PgValidationMap) FromDomain(m domain.ValidationMap) {
	rec := m.Snapshot()
	*p = PgValidationMap{
		MapID:        rec.MapID,
		SubtypeCode:  rec.SubtypeCode,
		Bin:          rec.Bin,
		ValidationID: rec.ValidationID,
		Priority:     rec.Priority,
		Status:       string(rec.Status),
		PgValue:      valueToPg(rec.Override),
		PgAudit:      auditToPg(rec.Audit),
	}
}

type PgCommercePlan struct {
	PlanID         int64          `db:"plan_id" goqu:"skipinsert"`
	Code           string         `db:"code"`
	Name           string         `db:"name"`
	ValidationMode string         `db:"validation_mode"`
	Description    sql.NullString `db:"description"`
	Status         string         `db:"status"`
	PgAudit
}

func (p *PgCommercePlan) ToDomain() (*domain.CommercePlan, error) {
	plan, err := domain.RehydrateCommercePlan(domain.CommercePlanRecord{
		PlanID:         p.PlanID,
		Code:           p.Code,
		Name:           p.Name,
		ValidationMode: domain.ValidationMode(p.ValidationMode),
		Description:    p.Description.String,
		Status:         domain.Status(p.Status),
		Audit:          p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &plan, nil
}

func (p *PgCommercePlan) FromDomain(plan domain.CommercePlan) {
	rec := plan.Snapshot()
	*p = PgCommercePlan{
		PlanID:         rec.PlanID,
		Code:           rec.Code,
		Name:           rec.Name,
		ValidationMode: string(rec.ValidationMode),
		Description:    nullString(rec.Description),
		Status:         string(rec.Status),
		PgAudit:        auditToPg(rec.Audit),
	}
}

type PgPlanItem struct {
	PlanItemID int64  `db:"plan_item_id" goqu:"skipinsert"`
	PlanID     int64  `db:"plan_id"`
	Value      string `db:"value"`
	Status     string `db:"status"`
	PgAudit
}

func (p *PgPlanItem) ToDomain() (*domain.PlanItem, error) {
	item, err := domain.RehydratePlanItem(domain.PlanItemRecord{
		PlanItemID: p.PlanItemID,
		PlanID:     p.PlanID,
		Value:      p.Value,
		Status:     domain.Status(p.Status),
		Audit:      p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &item, nil
}

func (p *PgPlanItem) FromDomain(item domain.PlanItem) {
	rec := item.Snapshot()
	*p = PgPlanItem{
		PlanItemID: rec.PlanItemID,
		PlanID:     rec.PlanID,
		Value:      rec.Value,
		Status:     string(rec.Status),
		PgAudit:    auditToPg(rec.Audit),
	}
}

type PgSubtypePlan struct {
	SubtypeCode string `db:"subtype_code"`
	PlanID      int64  `db:"plan_id"`
	PgAudit
}

func (p *PgSubtypePlan) ToDomain() (*domain.SubtypePlanLink, error) {
	link, err := domain.RehydrateSubtypePlanLink(domain.SubtypePlanLinkRecord{
		SubtypeCode: p.SubtypeCode,
		PlanID:      p.PlanID,
		Audit:       p.toDomain(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &link, nil
}

func (p *PgSubtypePlan) FromDomain(link domain.SubtypePlanLink) {
	rec := link.Snapshot()
	*p = PgSubtypePlan{
		SubtypeCode: rec.SubtypeCode,
		PlanID:      rec.PlanID,
		PgAudit:     auditToPg(rec.Audit),
	}
}

// toDomainAll converts rows with conv, failing on the first corrupt row.
func toDomainAll[R any, D any](rows []R, conv func(*R) (*D, error)) ([]D, error) {
	out := make([]D, 0, len(rows))
	for i := range rows {
		d, err := conv(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}
