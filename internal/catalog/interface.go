package catalog

import (
	"context"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

// RuleKey identifies a rule mapping by its natural key, the validation being
// named by code.
type RuleKey struct {
	SubtypeCode    string
	Bin            string
	ValidationCode string
}

// AttachRule is the input of Catalog.AttachRule.
type AttachRule struct {
	RuleKey
	Priority int
	// Override replaces the definition value for this mapping when not zero.
	Override domain.Value
}

// ResolveRequest selects the rules of a (subtype, effective BIN) pair.
type ResolveRequest struct {
	SubtypeCode string
	Bin         string
	// Status of the mappings; A when empty. Only the default status limits
	// the result to active definitions effective now.
	Status string
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	CreateBin(ctx context.Context, bin string, attrs domain.BinAttrs, actor domain.Actor) (*domain.Bin, error)
	GetBin(ctx context.Context, bin string) (*domain.Bin, error)
	ListBins(ctx context.Context, filter storage.BinFilter, page storage.PageRequest) (storage.Page[domain.Bin], error)
	UpdateBin(ctx context.Context, bin string, attrs domain.BinAttrs, actor domain.Actor) (*domain.Bin, error)
	ChangeBinStatus(ctx context.Context, bin, status string, actor domain.Actor) (*domain.Bin, error)

	CreateSubtype(
		ctx context.Context,
		code, bin string,
		attrs domain.SubtypeAttrs,
		actor domain.Actor,
	) (*domain.Subtype, error)
	GetSubtype(ctx context.Context, code string) (*domain.Subtype, error)
	ListSubtypes(
		ctx context.Context,
		filter storage.SubtypeFilter,
		page storage.PageRequest,
	) (storage.Page[domain.Subtype], error)
	UpdateSubtype(ctx context.Context, code string, attrs domain.SubtypeAttrs, actor domain.Actor) (*domain.Subtype, error)
	ChangeSubtypeStatus(ctx context.Context, code, status string, actor domain.Actor) (*domain.Subtype, error)

	CreateAgency(
		ctx context.Context,
		key domain.AgencyKey,
		attrs domain.AgencyAttrs,
		actor domain.Actor,
	) (*domain.Agency, error)
	GetAgency(ctx context.Context, key domain.AgencyKey) (*domain.Agency, error)
	ListAgencies(
		ctx context.Context,
		filter storage.AgencyFilter,
		page storage.PageRequest,
	) (storage.Page[domain.Agency], error)
	UpdateAgency(
		ctx context.Context,
		key domain.AgencyKey,
		attrs domain.AgencyAttrs,
		actor domain.Actor,
	) (*domain.Agency, error)
	ChangeAgencyStatus(ctx context.Context, key domain.AgencyKey, status string, actor domain.Actor) (*domain.Agency, error)

	CreateValidation(ctx context.Context, attrs domain.ValidationAttrs, actor domain.Actor) (*domain.Validation, error)
	GetValidation(ctx context.Context, code string) (*domain.Validation, error)
	ListValidations(
		ctx context.Context,
		filter storage.ValidationFilter,
		page storage.PageRequest,
	) (storage.Page[domain.Validation], error)
	UpdateValidation(
		ctx context.Context,
		code string,
		update domain.ValidationUpdate,
		actor domain.Actor,
	) (*domain.Validation, error)
	ChangeValidationStatus(ctx context.Context, code, status string, actor domain.Actor) (*domain.Validation, error)

	AttachRule(ctx context.Context, in AttachRule, actor domain.Actor) (*domain.ValidationMap, error)
	ChangeRuleStatus(ctx context.Context, key RuleKey, status string, actor domain.Actor) (*domain.ValidationMap, error)
	DetachRule(ctx context.Context, key RuleKey, actor domain.Actor) (*domain.ValidationMap, error)
	ResolveRules(
		ctx context.Context,
		req ResolveRequest,
		page storage.PageRequest,
	) (storage.Page[domain.ResolvedRule], error)
	ListRules(
		ctx context.Context,
		filter storage.ValidationMapFilter,
		page storage.PageRequest,
	) (storage.Page[domain.ValidationMap], error)

	CreatePlan(
		ctx context.Context,
		code string,
		attrs domain.CommercePlanAttrs,
		actor domain.Actor,
	) (*domain.CommercePlan, error)
	GetPlan(ctx context.Context, code string) (*domain.CommercePlan, error)
	ListPlans(
		ctx context.Context,
		filter storage.PlanFilter,
		page storage.PageRequest,
	) (storage.Page[domain.CommercePlan], error)
	UpdatePlan(
		ctx context.Context,
		code string,
		attrs domain.CommercePlanAttrs,
		actor domain.Actor,
	) (*domain.CommercePlan, error)
	ChangePlanStatus(ctx context.Context, code, status string, actor domain.Actor) (*domain.CommercePlan, error)
	AddPlanItems(ctx context.Context, planCode string, values []string, actor domain.Actor) (domain.ItemsResult, error)
	RemovePlanItem(ctx context.Context, planCode, value string, actor domain.Actor) (*domain.PlanItem, error)
	ListPlanItems(
		ctx context.Context,
		planCode, status string,
		page storage.PageRequest,
	) (storage.Page[domain.PlanItem], error)
	AssignPlan(ctx context.Context, subtypeCode, planCode string, actor domain.Actor) (*domain.SubtypePlanLink, error)
	GetSubtypePlan(ctx context.Context, subtypeCode string) (*domain.SubtypePlanLink, error)
}
