package storage

import (
	"context"
	"time"

	"bincatalog/pkg/domain"
)

// Lookups returning a pointer return nil, nil when nothing matches. Save
// methods upsert and return the row as stored, including generated fields.
// Unique violations surface as ErrDuplicate.

// BinFilter narrows ListBins. Zero fields do not filter.
type BinFilter struct {
	Status  domain.Status
	TypeBin domain.TypeBin
}

// BinStorage persists Bin aggregates.
type BinStorage interface {
	BinByCode(ctx context.Context, bin string) (*domain.Bin, error)
	BinExists(ctx context.Context, bin string) (bool, error)
	// BinIsActive reports false for unknown BINs.
	BinIsActive(ctx context.Context, bin string) (bool, error)
	SaveBin(ctx context.Context, bin domain.Bin) (*domain.Bin, error)
	ListBins(ctx context.Context, filter BinFilter, page PageRequest) (Page[domain.Bin], error)
}

// SubtypeFilter narrows ListSubtypes. Zero fields do not filter.
type SubtypeFilter struct {
	Bin    string
	Status domain.Status
}

// SubtypeStorage persists Subtype aggregates.
type SubtypeStorage interface {
	SubtypeByCode(ctx context.Context, code string) (*domain.Subtype, error)
	SubtypeExists(ctx context.Context, code string) (bool, error)
	// SubtypeIsActive reports false for unknown subtypes.
	SubtypeIsActive(ctx context.Context, code string) (bool, error)
	// SubtypeByBinAndExt returns the subtype registered for the (bin, binExt) pair.
	SubtypeByBinAndExt(ctx context.Context, bin, binExt string) (*domain.Subtype, error)
	AnySubtypeReferencesBin(ctx context.Context, bin string) (bool, error)
	SaveSubtype(ctx context.Context, subtype domain.Subtype) (*domain.Subtype, error)
	ListSubtypes(ctx context.Context, filter SubtypeFilter, page PageRequest) (Page[domain.Subtype], error)
}

// AgencyFilter narrows ListAgencies. Zero fields do not filter.
type AgencyFilter struct {
	SubtypeCode string
	Status      domain.Status
}

// AgencyStorage persists Agency aggregates.
type AgencyStorage interface {
	AgencyByKey(ctx context.Context, key domain.AgencyKey) (*domain.Agency, error)
	AgencyExists(ctx context.Context, key domain.AgencyKey) (bool, error)
	ActiveAgencyCountForSubtype(ctx context.Context, subtypeCode string) (int64, error)
	SaveAgency(ctx context.Context, agency domain.Agency) (*domain.Agency, error)
	ListAgencies(ctx context.Context, filter AgencyFilter, page PageRequest) (Page[domain.Agency], error)
}

// ValidationFilter narrows ListValidations. Zero fields do not filter.
type ValidationFilter struct {
	Status   domain.Status
	DataType domain.DataType
}

// ValidationStorage persists Validation definitions.
type ValidationStorage interface {
	ValidationByCode(ctx context.Context, code string) (*domain.Validation, error)
	ValidationByID(ctx context.Context, id int64) (*domain.Validation, error)
	ValidationExistsByCode(ctx context.Context, code string) (bool, error)
	SaveValidation(ctx context.Context, validation domain.Validation) (*domain.Validation, error)
	ListValidations(ctx context.Context, filter ValidationFilter, page PageRequest) (Page[domain.Validation], error)
}

// ValidationMapFilter narrows ListValidationMaps. Zero fields do not filter.
type ValidationMapFilter struct {
	SubtypeCode string
	Bin         string
	Status      domain.Status
}

// ResolveQuery selects the rules mapped to a (subtype, effective BIN) pair.
type ResolveQuery struct {
	SubtypeCode string
	Bin         string
	// Status filters mappings by their status.
	Status domain.Status
	// EffectiveAt, when not zero, keeps only active definitions whose
	// validity window contains it.
	EffectiveAt time.Time
}

// ValidationMapStorage persists rule mappings and serves rule resolution.
type ValidationMapStorage interface {
	ActiveValidationMapExists(ctx context.Context, key domain.MapKey) (bool, error)
	// ActiveValidationMapCount counts the active mappings of a (subtype,
	// effective BIN) pair.
	ActiveValidationMapCount(ctx context.Context, subtypeCode, bin string) (int64, error)
	// LatestValidationMapByKey returns the most recent mapping for key,
	// whatever its status.
	LatestValidationMapByKey(ctx context.Context, key domain.MapKey) (*domain.ValidationMap, error)
	// SaveValidationMap inserts mappings without an ID and updates the others.
	SaveValidationMap(ctx context.Context, m domain.ValidationMap) (*domain.ValidationMap, error)
	// ResolveValidations orders by priority, then map ID.
	ResolveValidations(ctx context.Context, q ResolveQuery, page PageRequest) (Page[domain.ResolvedRule], error)
	ListValidationMaps(
		ctx context.Context,
		filter ValidationMapFilter,
		page PageRequest,
	) (Page[domain.ValidationMap], error)
}

// PlanFilter narrows ListPlans. Zero fields do not filter.
type PlanFilter struct {
	Status domain.Status
	Mode   domain.ValidationMode
}

// CommercePlanStorage persists CommercePlan aggregates.
type CommercePlanStorage interface {
	PlanByCode(ctx context.Context, code string) (*domain.CommercePlan, error)
	PlanByID(ctx context.Context, id int64) (*domain.CommercePlan, error)
	SavePlan(ctx context.Context, plan domain.CommercePlan) (*domain.CommercePlan, error)
	ListPlans(ctx context.Context, filter PlanFilter, page PageRequest) (Page[domain.CommercePlan], error)
	ActivePlanItemCount(ctx context.Context, planID int64) (int64, error)
}

// PlanItemStorage persists PlanItem aggregates.
type PlanItemStorage interface {
	// ActivePlanItemValues returns which of values are active items of the plan.
	ActivePlanItemValues(ctx context.Context, planID int64, values []string) ([]string, error)
	// InsertPlanItems inserts new items and reactivates removed ones, and
	// returns the values it wrote. Items already active are left untouched
	// and not returned.
	InsertPlanItems(ctx context.Context, items ...domain.PlanItem) ([]string, error)
	ActivePlanItemByValue(ctx context.Context, planID int64, value string) (*domain.PlanItem, error)
	SavePlanItem(ctx context.Context, item domain.PlanItem) (*domain.PlanItem, error)
	ListPlanItems(
		ctx context.Context,
		planID int64,
		status domain.Status,
		page PageRequest,
	) (Page[domain.PlanItem], error)
}

// SubtypePlanStorage persists the plan assigned to each subtype.
type SubtypePlanStorage interface {
	SubtypePlanBySubtype(ctx context.Context, subtypeCode string) (*domain.SubtypePlanLink, error)
	// SaveSubtypePlan replaces any previous link of the subtype.
	SaveSubtypePlan(ctx context.Context, link domain.SubtypePlanLink) (*domain.SubtypePlanLink, error)
}
