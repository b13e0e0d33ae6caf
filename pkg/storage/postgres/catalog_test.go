package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func TestPgSQL_Bins(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := seedBin(t, pg, "123456")
	require.Equal(t, now, stored.Snapshot().CreatedAt)
	require.Equal(t, "seed", stored.Snapshot().UpdatedBy.String())

	t.Run("existence checks", func(t *testing.T) {
		exists, err := pg.BinExists(ctx, "123456")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = pg.BinExists(ctx, "999999")
		require.NoError(t, err)
		require.False(t, exists)

		active, err := pg.BinIsActive(ctx, "999999")
		require.NoError(t, err)
		require.False(t, active)
	})

	t.Run("upsert keeps created_at", func(t *testing.T) {
		attrs := domain.BinAttrs{
			Name: "Renamed", TypeBin: "CREDITO", TypeAccount: "01", CompensationCod: "CMP",
			UsesBinExt: "Y", BinExtDigits: intPtr(2),
		}
		updated, err := stored.UpdateBasics(attrs, now.Add(time.Hour), domain.NoActor())
		require.NoError(t, err)
		updated, err = updated.ChangeStatus("I", now.Add(time.Hour), domain.NoActor())
		require.NoError(t, err)

		saved, err := pg.SaveBin(ctx, updated)
		require.NoError(t, err)
		rec := saved.Snapshot()
		require.Equal(t, "Renamed", rec.Name)
		require.Equal(t, 2, *rec.BinExtDigits)
		require.Equal(t, now, rec.CreatedAt)
		require.Equal(t, now.Add(time.Hour), rec.UpdatedAt)
		require.False(t, rec.UpdatedBy.IsSet())

		active, err := pg.BinIsActive(ctx, "123456")
		require.NoError(t, err)
		require.False(t, active)
	})

	t.Run("list", func(t *testing.T) {
		seedBin(t, pg, "222222")
		seedBin(t, pg, "333333")

		page, err := pg.ListBins(ctx, storage.BinFilter{Status: domain.StatusActive}, storage.PageRequest{Page: 1, Size: 1})
		require.NoError(t, err)
		require.EqualValues(t, 2, page.Total)
		require.Len(t, page.Items, 1)
		require.Equal(t, "222222", page.Items[0].Bin())

		page, err = pg.ListBins(ctx, storage.BinFilter{Status: domain.StatusActive}, storage.PageRequest{Page: 2, Size: 1})
		require.NoError(t, err)
		require.Equal(t, "333333", page.Items[0].Bin())
	})
}

func TestPgSQL_Subtypes(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	seedBin(t, pg, "123456")
	seedBin(t, pg, "123456789")

	abc := seedSubtype(t, pg, "ABC", "123456", "789", false)
	require.NotZero(t, abc.ID())
	require.Equal(t, "123456789", abc.BinEfectivo())

	t.Run("existence checks", func(t *testing.T) {
		refs, err := pg.AnySubtypeReferencesBin(ctx, "123456")
		require.NoError(t, err)
		require.True(t, refs)

		refs, err = pg.AnySubtypeReferencesBin(ctx, "123456789")
		require.NoError(t, err)
		require.False(t, refs)

		active, err := pg.SubtypeIsActive(ctx, "ABC")
		require.NoError(t, err)
		require.False(t, active)

		found, err := pg.SubtypeByBinAndExt(ctx, "123456", "789")
		require.NoError(t, err)
		require.Equal(t, "ABC", found.Code())

		missing, err := pg.SubtypeByCode(ctx, "ZZZ")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		dup, err := domain.NewSubtype("XYZ", "123456", domain.SubtypeAttrs{Name: "dup", BinExt: "789"}, now, domain.NoActor())
		require.NoError(t, err)

		_, err = pg.SaveSubtype(ctx, dup)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("nine digit bins take one subtype", func(t *testing.T) {
		seedSubtype(t, pg, "N01", "123456789", "", true)

		dup, err := domain.NewSubtype("N02", "123456789", domain.SubtypeAttrs{Name: "dup"}, now, domain.NoActor())
		require.NoError(t, err)

		_, err = pg.SaveSubtype(ctx, dup)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("update keeps id", func(t *testing.T) {
		active, err := abc.ChangeStatus("A", now.Add(time.Minute), domain.SomeActor("ops"))
		require.NoError(t, err)

		saved, err := pg.SaveSubtype(ctx, active)
		require.NoError(t, err)
		require.Equal(t, abc.ID(), saved.ID())
		require.True(t, saved.IsActive())
	})
}

func TestPgSQL_Agencies(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	seedBin(t, pg, "123456")
	seedSubtype(t, pg, "ABC", "123456", "1", true)

	for _, code := range []string{"AG1", "AG2"} {
		a, err := domain.NewAgency(domain.AgencyKey{SubtypeCode: "ABC", AgencyCode: code},
			domain.AgencyAttrs{Name: "Agency " + code, EmbosserName: "Acme"}, now, domain.NoActor())
		require.NoError(t, err)
		_, err = pg.SaveAgency(ctx, a)
		require.NoError(t, err)
	}

	count, err := pg.ActiveAgencyCountForSubtype(ctx, "ABC")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	key := domain.AgencyKey{SubtypeCode: "ABC", AgencyCode: "AG1"}
	a, err := pg.AgencyByKey(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "Acme", a.Snapshot().EmbosserName)

	off, err := a.ChangeStatus("I", now.Add(time.Minute), domain.NoActor())
	require.NoError(t, err)
	_, err = pg.SaveAgency(ctx, off)
	require.NoError(t, err)

	count, err = pg.ActiveAgencyCountForSubtype(ctx, "ABC")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	page, err := pg.ListAgencies(ctx, storage.AgencyFilter{SubtypeCode: "ABC"}, storage.PageRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Equal(t, "AG1", page.Items[0].Key().AgencyCode)
}

func saveValidation(t *testing.T, pg interface {
	SaveValidation(context.Context, domain.Validation) (*domain.Validation, error)
}, attrs domain.ValidationAttrs) domain.Validation {
	t.Helper()

	v, err := domain.NewValidation(attrs, now, domain.NoActor())
	require.NoError(t, err)
	stored, err := pg.SaveValidation(context.Background(), v)
	require.NoError(t, err)

	return *stored
}

func TestPgSQL_ValidationMaps(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	seedBin(t, pg, "123456")
	seedSubtype(t, pg, "ABC", "123456", "789", true)

	v1 := saveValidation(t, pg, domain.ValidationAttrs{Code: "V1", DataType: "BOOL", Value: domain.Value{Flag: "SI"}})
	expired := now.Add(-time.Minute)
	v2 := saveValidation(t, pg, domain.ValidationAttrs{
		Code: "V2", DataType: "NUMBER",
		Value:     domain.Value{Num: decimal.NewNullDecimal(decimal.NewFromInt(100))},
		ValidFrom: now.Add(-time.Hour), ValidTo: &expired,
	})
	v3 := saveValidation(t, pg, domain.ValidationAttrs{Code: "V3", DataType: "TEXT", Value: domain.Value{Text: "online"}})

	byCode, err := pg.ValidationByCode(ctx, "V1")
	require.NoError(t, err)
	require.Equal(t, v1.ID(), byCode.ID())

	attach := func(def domain.Validation, priority int, override domain.Value) domain.ValidationMap {
		m, err := domain.NewValidationMap("ABC", "123456789", def, priority, override, now, domain.NoActor())
		require.NoError(t, err)
		stored, err := pg.SaveValidationMap(ctx, m)
		require.NoError(t, err)

		return *stored
	}

	m1 := attach(v1, 5, domain.Value{})
	attach(v2, 0, domain.Value{})
	attach(v3, 1, domain.Value{Text: "offline"})

	t.Run("second active mapping is rejected", func(t *testing.T) {
		exists, err := pg.ActiveValidationMapExists(ctx, m1.Key())
		require.NoError(t, err)
		require.True(t, exists)

		m, err := domain.NewValidationMap("ABC", "123456789", v1, 0, domain.Value{}, now, domain.NoActor())
		require.NoError(t, err)
		_, err = pg.SaveValidationMap(ctx, m)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("active mappings per pair", func(t *testing.T) {
		count, err := pg.ActiveValidationMapCount(ctx, "ABC", "123456789")
		require.NoError(t, err)
		require.EqualValues(t, 3, count)

		count, err = pg.ActiveValidationMapCount(ctx, "ABC", "123456000")
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("resolve effective rules", func(t *testing.T) {
		page, err := pg.ResolveValidations(ctx, storage.ResolveQuery{
			SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive, EffectiveAt: now,
		}, storage.PageRequest{})
		require.NoError(t, err)
		require.EqualValues(t, 2, page.Total)
		require.Equal(t, "V3", page.Items[0].Code)
		require.Equal(t, "offline", page.Items[0].Value.Text)
		require.Equal(t, "V1", page.Items[1].Code)
		require.Equal(t, domain.FlagYes, page.Items[1].Value.Flag)
	})

	t.Run("resolve without window", func(t *testing.T) {
		page, err := pg.ResolveValidations(ctx, storage.ResolveQuery{
			SubtypeCode: "ABC", Bin: "123456789", Status: domain.StatusActive,
		}, storage.PageRequest{})
		require.NoError(t, err)
		require.EqualValues(t, 3, page.Total)
		require.Equal(t, "V2", page.Items[0].Code)
		require.True(t, page.Items[0].Value.Num.Decimal.Equal(decimal.NewFromInt(100)))
	})

	t.Run("deactivate then attach again", func(t *testing.T) {
		off, err := m1.ChangeStatus("I", now.Add(time.Minute), domain.NoActor())
		require.NoError(t, err)
		_, err = pg.SaveValidationMap(ctx, off)
		require.NoError(t, err)

		again := attach(v1, 2, domain.Value{})
		require.Greater(t, again.ID(), m1.ID())

		latest, err := pg.LatestValidationMapByKey(ctx, m1.Key())
		require.NoError(t, err)
		require.Equal(t, again.ID(), latest.ID())

		page, err := pg.ListValidationMaps(ctx, storage.ValidationMapFilter{SubtypeCode: "ABC"}, storage.PageRequest{})
		require.NoError(t, err)
		require.EqualValues(t, 4, page.Total)
	})
}

func TestPgSQL_Plans(t *testing.T) {
	t.Parallel()

	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	newPlan := func(code string) domain.CommercePlan {
		p, err := domain.NewCommercePlan(code, domain.CommercePlanAttrs{Name: code, ValidationMode: "MCC"}, now, domain.NoActor())
		require.NoError(t, err)
		stored, err := pg.SavePlan(ctx, p)
		require.NoError(t, err)

		return *stored
	}
	gold := newPlan("GOLD")
	silver := newPlan("SILVER")

	items := func(values ...string) []domain.PlanItem {
		out := make([]domain.PlanItem, 0, len(values))
		for _, v := range values {
			item, err := domain.NewPlanItem(gold, v, now, domain.NoActor())
			require.NoError(t, err)
			out = append(out, item)
		}

		return out
	}

	inserted, err := pg.InsertPlanItems(ctx, items("5411", "5812")...)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"5411", "5812"}, inserted)

	present, err := pg.ActivePlanItemValues(ctx, gold.ID(), []string{"5411", "7011"})
	require.NoError(t, err)
	require.Equal(t, []string{"5411"}, present)

	item, err := pg.ActivePlanItemByValue(ctx, gold.ID(), "5411")
	require.NoError(t, err)
	_, err = pg.SavePlanItem(ctx, item.Remove(now.Add(time.Minute), domain.NoActor()))
	require.NoError(t, err)

	count, err := pg.ActivePlanItemCount(ctx, gold.ID())
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// removed values come back, active ones are not counted
	inserted, err = pg.InsertPlanItems(ctx, items("5411", "5812")...)
	require.NoError(t, err)
	require.Equal(t, []string{"5411"}, inserted)

	page, err := pg.ListPlanItems(ctx, gold.ID(), domain.StatusActive, storage.PageRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)

	seedBin(t, pg, "123456")
	seedSubtype(t, pg, "ABC", "123456", "1", true)

	link, err := domain.NewSubtypePlanLink("ABC", gold, now, domain.NoActor())
	require.NoError(t, err)
	_, err = pg.SaveSubtypePlan(ctx, link)
	require.NoError(t, err)

	moved, err := link.Reassign(silver, now.Add(time.Hour), domain.NoActor())
	require.NoError(t, err)
	_, err = pg.SaveSubtypePlan(ctx, moved)
	require.NoError(t, err)

	current, err := pg.SubtypePlanBySubtype(ctx, "ABC")
	require.NoError(t, err)
	require.Equal(t, silver.ID(), current.PlanID())
	require.Equal(t, now, current.Snapshot().CreatedAt)
}
