package v1handler

import (
	"time"

	"github.com/shopspring/decimal"

	"bincatalog/pkg/domain"
)

type auditResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

func toAudit(a domain.Audit) auditResponse {
	return auditResponse{
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: a.UpdatedBy.String(),
	}
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// bins

type binAttrsRequest struct {
	Name            string `json:"name"            validate:"required"`
	TypeBin         string `json:"typeBin"         validate:"required"`
	TypeAccount     string `json:"typeAccount"`
	CompensationCod string `json:"compensationCod"`
	Description     string `json:"description"`
	UsesBinExt      string `json:"usesBinExt"      validate:"required"`
	BinExtDigits    *int   `json:"binExtDigits"`
}

func (b binAttrsRequest) attrs() domain.BinAttrs {
	return domain.BinAttrs{
		Name:            b.Name,
		TypeBin:         b.TypeBin,
		TypeAccount:     b.TypeAccount,
		CompensationCod: b.CompensationCod,
		Description:     b.Description,
		UsesBinExt:      b.UsesBinExt,
		BinExtDigits:    b.BinExtDigits,
	}
}

type createBinRequest struct {
	Bin string `json:"bin" validate:"required,numeric"`
	binAttrsRequest
}

type binResponse struct {
	Bin             string `json:"bin"`
	Name            string `json:"name"`
	TypeBin         string `json:"typeBin"`
	TypeAccount     string `json:"typeAccount,omitempty"`
	CompensationCod string `json:"compensationCod,omitempty"`
	Description     string `json:"description,omitempty"`
	Status          string `json:"status"`
	UsesBinExt      string `json:"usesBinExt"`
	BinExtDigits    *int   `json:"binExtDigits,omitempty"`
	auditResponse
}

func toBin(b domain.Bin) binResponse {
	rec := b.Snapshot()

	return binResponse{
		Bin:             rec.Bin,
		Name:            rec.Name,
		TypeBin:         string(rec.TypeBin),
		TypeAccount:     rec.TypeAccount,
		CompensationCod: rec.CompensationCod,
		Description:     rec.Description,
		Status:          string(rec.Status),
		UsesBinExt:      string(rec.UsesBinExt),
		BinExtDigits:    rec.BinExtDigits,
		auditResponse:   toAudit(rec.Audit),
	}
}

// subtypes

type subtypeAttrsRequest struct {
	Name          string `json:"name"          validate:"required"`
	Description   string `json:"description"`
	OwnerIDType   string `json:"ownerIdType"`
	OwnerIDNumber string `json:"ownerIdNumber"`
	BinExt        string `json:"binExt"`
}

func (s subtypeAttrsRequest) attrs() domain.SubtypeAttrs {
	return domain.SubtypeAttrs{
		Name:          s.Name,
		Description:   s.Description,
		OwnerIDType:   s.OwnerIDType,
		OwnerIDNumber: s.OwnerIDNumber,
		BinExt:        s.BinExt,
	}
}

type createSubtypeRequest struct {
	SubtypeCode string `json:"subtypeCode" validate:"required"`
	Bin         string `json:"bin"         validate:"required,numeric"`
	subtypeAttrsRequest
}

type subtypeResponse struct {
	SubtypeID     int64  `json:"subtypeId"`
	SubtypeCode   string `json:"subtypeCode"`
	Bin           string `json:"bin"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	OwnerIDType   string `json:"ownerIdType,omitempty"`
	OwnerIDNumber string `json:"ownerIdNumber,omitempty"`
	BinExt        string `json:"binExt,omitempty"`
	BinEfectivo   string `json:"binEfectivo"`
	auditResponse
}

func toSubtype(s domain.Subtype) subtypeResponse {
	rec := s.Snapshot()

	return subtypeResponse{
		SubtypeID:     rec.SubtypeID,
		SubtypeCode:   rec.SubtypeCode,
		Bin:           rec.Bin,
		Name:          rec.Name,
		Description:   rec.Description,
		Status:        string(rec.Status),
		OwnerIDType:   rec.OwnerIDType,
		OwnerIDNumber: rec.OwnerIDNumber,
		BinExt:        rec.BinExt,
		BinEfectivo:   rec.BinEfectivo,
		auditResponse: toAudit(rec.Audit),
	}
}

// agencies

type agencyAttrsRequest struct {
	Name              string `json:"name"              validate:"required"`
	Description       string `json:"description"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	CustodianName     string `json:"custodianName"`
	CustodianIDType   string `json:"custodianIdType"`
	CustodianIDNumber string `json:"custodianIdNumber"`
	EmbosserCode      string `json:"embosserCode"`
	EmbosserName      string `json:"embosserName"`
}

func (a agencyAttrsRequest) attrs() domain.AgencyAttrs {
	return domain.AgencyAttrs{
		Name:              a.Name,
		Description:       a.Description,
		Address:           a.Address,
		Phone:             a.Phone,
		CustodianName:     a.CustodianName,
		CustodianIDType:   a.CustodianIDType,
		CustodianIDNumber: a.CustodianIDNumber,
		EmbosserCode:      a.EmbosserCode,
		EmbosserName:      a.EmbosserName,
	}
}

type createAgencyRequest struct {
	AgencyCode string `json:"agencyCode" validate:"required"`
	agencyAttrsRequest
}

type agencyResponse struct {
	SubtypeCode       string `json:"subtypeCode"`
	AgencyCode        string `json:"agencyCode"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Address           string `json:"address,omitempty"`
	Phone             string `json:"phone,omitempty"`
	CustodianName     string `json:"custodianName,omitempty"`
	CustodianIDType   string `json:"custodianIdType,omitempty"`
	CustodianIDNumber string `json:"custodianIdNumber,omitempty"`
	EmbosserCode      string `json:"embosserCode,omitempty"`
	EmbosserName      string `json:"embosserName,omitempty"`
	Status            string `json:"status"`
	auditResponse
}

func toAgency(a domain.Agency) agencyResponse {
	rec := a.Snapshot()

	return agencyResponse{
		SubtypeCode:       rec.SubtypeCode,
		AgencyCode:        rec.AgencyCode,
		Name:              rec.Name,
		Description:       rec.Description,
		Address:           rec.Address,
		Phone:             rec.Phone,
		CustodianName:     rec.CustodianName,
		CustodianIDType:   rec.CustodianIDType,
		CustodianIDNumber: rec.CustodianIDNumber,
		EmbosserCode:      rec.EmbosserCode,
		EmbosserName:      rec.EmbosserName,
		Status:            string(rec.Status),
		auditResponse:     toAudit(rec.Audit),
	}
}

// validations

// valueDTO carries the one field matching the data type of a validation.
type valueDTO struct {
	Flag   string           `json:"flag,omitempty"`
	Number *decimal.Decimal `json:"number,omitempty"`
	Text   string           `json:"text,omitempty"`
}

func (v *valueDTO) value() domain.Value {
	if v == nil {
		return domain.Value{}
	}

	out := domain.Value{Flag: v.Flag, Text: v.Text}
	if v.Number != nil {
		out.Num = decimal.NewNullDecimal(*v.Number)
	}

	return out
}

func toValue(v domain.Value) *valueDTO {
	if v.IsZero() {
		return nil
	}

	out := &valueDTO{Flag: v.Flag, Text: v.Text}
	if v.Num.Valid {
		num := v.Num.Decimal
		out.Number = &num
	}

	return out
}

type createValidationRequest struct {
	Code        string     `json:"code"        validate:"required"`
	Description string     `json:"description"`
	DataType    string     `json:"dataType"    validate:"required,oneof=BOOL NUMBER TEXT"`
	Value       valueDTO   `json:"value"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
}

func (c createValidationRequest) attrs() domain.ValidationAttrs {
	attrs := domain.ValidationAttrs{
		Code:        c.Code,
		Description: c.Description,
		DataType:    c.DataType,
		Value:       c.Value.value(),
		ValidTo:     c.ValidTo,
	}
	if c.ValidFrom != nil {
		attrs.ValidFrom = *c.ValidFrom
	}

	return attrs
}

type updateValidationRequest struct {
	Description string     `json:"description"`
	Value       valueDTO   `json:"value"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
}

func (u updateValidationRequest) update() domain.ValidationUpdate {
	update := domain.ValidationUpdate{
		Description: u.Description,
		Value:       u.Value.value(),
		ValidTo:     u.ValidTo,
	}
	if u.ValidFrom != nil {
		update.ValidFrom = *u.ValidFrom
	}

	return update
}

type validationResponse struct {
	ValidationID int64      `json:"validationId"`
	Code         string     `json:"code"`
	Description  string     `json:"description,omitempty"`
	DataType     string     `json:"dataType"`
	Value        *valueDTO  `json:"value,omitempty"`
	Status       string     `json:"status"`
	ValidFrom    time.Time  `json:"validFrom"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
	auditResponse
}

func toValidation(v domain.Validation) validationResponse {
	rec := v.Snapshot()

	return validationResponse{
		ValidationID:  rec.ValidationID,
		Code:          rec.Code,
		Description:   rec.Description,
		DataType:      string(rec.DataType),
		Value:         toValue(rec.Value),
		Status:        string(rec.Status),
		ValidFrom:     rec.ValidFrom,
		ValidTo:       rec.ValidTo,
		auditResponse: toAudit(rec.Audit),
	}
}

// rules

type attachRuleRequest struct {
	ValidationCode string    `json:"validationCode" validate:"required"`
	Priority       int       `json:"priority"       validate:"gte=0"`
	Override       *valueDTO `json:"override"`
}

type ruleResponse struct {
	MapID        int64     `json:"mapId"`
	SubtypeCode  string    `json:"subtypeCode"`
	Bin          string    `json:"bin"`
	ValidationID int64     `json:"validationId"`
	Priority     int       `json:"priority"`
	Status       string    `json:"status"`
	Override     *valueDTO `json:"override,omitempty"`
	auditResponse
}

func toRule(m domain.ValidationMap) ruleResponse {
	rec := m.Snapshot()

	return ruleResponse{
		MapID:         rec.MapID,
		SubtypeCode:   rec.SubtypeCode,
		Bin:           rec.Bin,
		ValidationID:  rec.ValidationID,
		Priority:      rec.Priority,
		Status:        string(rec.Status),
		Override:      toValue(rec.Override),
		auditResponse: toAudit(rec.Audit),
	}
}

type resolvedRuleResponse struct {
	MapID        int64      `json:"mapId"`
	ValidationID int64      `json:"validationId"`
	Code         string     `json:"code"`
	Description  string     `json:"description,omitempty"`
	DataType     string     `json:"dataType"`
	Value        *valueDTO  `json:"value,omitempty"`
	Priority     int        `json:"priority"`
	Status       string     `json:"status"`
	ValidFrom    time.Time  `json:"validFrom"`
	ValidTo      *time.Time `json:"validTo,omitempty"`
}

func toResolvedRule(r domain.ResolvedRule) resolvedRuleResponse {
	return resolvedRuleResponse{
		MapID:        r.MapID,
		ValidationID: r.ValidationID,
		Code:         r.Code,
		Description:  r.Description,
		DataType:     string(r.DataType),
		Value:        toValue(r.Value),
		Priority:     r.Priority,
		Status:       string(r.Status),
		ValidFrom:    r.ValidFrom,
		ValidTo:      r.ValidTo,
	}
}

// plans

type planAttrsRequest struct {
	Name           string `json:"name"           validate:"required"`
	ValidationMode string `json:"validationMode" validate:"required,oneof=MERCHANT_ID MCC"`
	Description    string `json:"description"`
}

func (p planAttrsRequest) attrs() domain.CommercePlanAttrs {
	return domain.CommercePlanAttrs{
		Name:           p.Name,
		ValidationMode: p.ValidationMode,
		Description:    p.Description,
	}
}

type createPlanRequest struct {
	Code string `json:"code" validate:"required"`
	planAttrsRequest
}

type planResponse struct {
	PlanID         int64  `json:"planId"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	ValidationMode string `json:"validationMode"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status"`
	auditResponse
}

func toPlan(p domain.CommercePlan) planResponse {
	rec := p.Snapshot()

	return planResponse{
		PlanID:         rec.PlanID,
		Code:           rec.Code,
		Name:           rec.Name,
		ValidationMode: string(rec.ValidationMode),
		Description:    rec.Description,
		Status:         string(rec.Status),
		auditResponse:  toAudit(rec.Audit),
	}
}

type addItemsRequest struct {
	Values []string `json:"values" validate:"required,min=1,max=1000"`
}

type itemsResultResponse struct {
	Requested       int      `json:"requested"`
	Inserted        int      `json:"inserted"`
	Duplicates      int      `json:"duplicates"`
	Invalid         int      `json:"invalid"`
	DuplicateValues []string `json:"duplicateValues"`
	InvalidValues   []string `json:"invalidValues"`
}

func toItemsResult(r domain.ItemsResult) itemsResultResponse {
	return itemsResultResponse{
		Requested:       r.Requested,
		Inserted:        r.Inserted,
		Duplicates:      r.Duplicates,
		Invalid:         r.Invalid,
		DuplicateValues: nonNil(r.DuplicateValues),
		InvalidValues:   nonNil(r.InvalidValues),
	}
}

type planItemResponse struct {
	PlanItemID int64  `json:"planItemId"`
	PlanID     int64  `json:"planId"`
	Value      string `json:"value"`
	Status     string `json:"status"`
	auditResponse
}

func toPlanItem(i domain.PlanItem) planItemResponse {
	rec := i.Snapshot()

	return planItemResponse{
		PlanItemID:    rec.PlanItemID,
		PlanID:        rec.PlanID,
		Value:         rec.Value,
		Status:        string(rec.Status),
		auditResponse: toAudit(rec.Audit),
	}
}

type assignPlanRequest struct {
	PlanCode string `json:"planCode" validate:"required"`
}

type subtypePlanResponse struct {
	SubtypeCode string `json:"subtypeCode"`
	PlanID      int64  `json:"planId"`
	auditResponse
}

func toSubtypePlan(l domain.SubtypePlanLink) subtypePlanResponse {
	rec := l.Snapshot()

	return subtypePlanResponse{
		SubtypeCode:   rec.SubtypeCode,
		PlanID:        rec.PlanID,
		auditResponse: toAudit(rec.Audit),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
