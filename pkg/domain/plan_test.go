package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/serrors"
)

func storedPlan(t *testing.T, mode string) domain.CommercePlan {
	t.Helper()

	p, err := domain.NewCommercePlan("gold", domain.CommercePlanAttrs{Name: "Gold", ValidationMode: mode}, t0, domain.NoActor())
	require.NoError(t, err)

	rec := p.Snapshot()
	rec.PlanID = 3
	p, err = domain.RehydrateCommercePlan(rec)
	require.NoError(t, err)

	return p
}

func TestNewCommercePlan(t *testing.T) {
	p := storedPlan(t, "mcc")
	require.Equal(t, "GOLD", p.Code())
	require.Equal(t, domain.ModeMCC, p.Mode())
	require.True(t, p.IsActive())

	_, err := domain.NewCommercePlan("", domain.CommercePlanAttrs{ValidationMode: "BOTH"}, t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Equal(t, "COMMERCE_PLAN_INVALID_DATA", serrors.CodeOf(err))
	require.ElementsMatch(t, []string{"code", "name", "validationMode"}, serrors.FieldsOf(err))
}

func TestCommercePlanModeChanged(t *testing.T) {
	p := storedPlan(t, "MCC")

	require.False(t, p.ModeChanged(domain.CommercePlanAttrs{Name: "x", ValidationMode: "mcc"}))
	require.True(t, p.ModeChanged(domain.CommercePlanAttrs{Name: "x", ValidationMode: "MERCHANT_ID"}))

	updated, err := p.UpdateBasics(domain.CommercePlanAttrs{Name: "Gold+", ValidationMode: "MERCHANT_ID"}, t0.Add(time.Hour), domain.NoActor())
	require.NoError(t, err)
	require.Equal(t, domain.ModeMerchantID, updated.Mode())
	require.Equal(t, "GOLD", updated.Code())
}

func TestValidItemValue(t *testing.T) {
	require.True(t, domain.ValidItemValue(domain.ModeMCC, "5411"))
	require.False(t, domain.ValidItemValue(domain.ModeMCC, "541"))
	require.False(t, domain.ValidItemValue(domain.ModeMCC, "54a1"))
	require.True(t, domain.ValidItemValue(domain.ModeMerchantID, "MERCH0001"))
	require.False(t, domain.ValidItemValue(domain.ModeMerchantID, "1234567890123456"))
	require.False(t, domain.ValidItemValue(domain.ModeMerchantID, "M-1"))
}

func TestClassifyItems(t *testing.T) {
	b := domain.ClassifyItems(domain.ModeMCC, []string{"5411", " 5812 ", "54", "5411", "abcd", "5812"})

	require.Equal(t, []string{"5411", "5812"}, b.Candidates)
	require.Equal(t, []string{"54", "abcd"}, b.Invalid)
	require.Equal(t, []string{"5411", "5812"}, b.Repeated)
	require.Equal(t, 6, len(b.Candidates)+len(b.Invalid)+len(b.Repeated))
}

func TestPlanItem(t *testing.T) {
	p := storedPlan(t, "MCC")

	item, err := domain.NewPlanItem(p, "5411", t0, domain.NoActor())
	require.NoError(t, err)
	require.True(t, item.IsActive())
	require.Equal(t, int64(3), item.Snapshot().PlanID)

	removed := item.Remove(t0.Add(time.Minute), domain.SomeActor("ops"))
	require.False(t, removed.IsActive())
	require.True(t, item.IsActive())

	_, err = domain.NewPlanItem(p, "MERCH01", t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Equal(t, "PLAN_ITEM_INVALID_DATA", serrors.CodeOf(err))
}

func TestSubtypePlanLinkReassign(t *testing.T) {
	gold := storedPlan(t, "MCC")

	rec := gold.Snapshot()
	rec.PlanID = 9
	silver, err := domain.RehydrateCommercePlan(rec)
	require.NoError(t, err)

	link, err := domain.NewSubtypePlanLink("ABC", gold, t0, domain.NoActor())
	require.NoError(t, err)
	require.Equal(t, int64(3), link.PlanID())

	moved, err := link.Reassign(silver, t0.Add(time.Hour), domain.SomeActor("ops"))
	require.NoError(t, err)
	require.Equal(t, int64(9), moved.PlanID())
	require.Equal(t, t0, moved.Snapshot().CreatedAt)
	require.Equal(t, t0.Add(time.Hour), moved.Snapshot().UpdatedAt)

	_, err = domain.NewSubtypePlanLink("ABCD", gold, t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Equal(t, "SUBTYPE_PLAN_INVALID_DATA", serrors.CodeOf(err))
}
