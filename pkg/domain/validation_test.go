package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/serrors"
)

func boolValidation(t *testing.T) domain.Validation {
	t.Helper()

	v, err := domain.NewValidation(domain.ValidationAttrs{
		Code:     "v1",
		DataType: "BOOL",
		Value:    domain.Value{Flag: "si", Text: "ignored"},
	}, t0, domain.NoActor())
	require.NoError(t, err)

	rec := v.Snapshot()
	rec.ValidationID = 7
	v, err = domain.RehydrateValidation(rec)
	require.NoError(t, err)

	return v
}

func TestNewValidationDefaults(t *testing.T) {
	v := boolValidation(t)

	rec := v.Snapshot()
	require.Equal(t, "V1", rec.Code)
	require.Equal(t, domain.StatusActive, rec.Status)
	require.Equal(t, t0, rec.ValidFrom)
	require.Nil(t, rec.ValidTo)
	require.Equal(t, domain.Value{Flag: domain.FlagYes}, rec.Value)
}

func TestNewValidationInvalid(t *testing.T) {
	before := t0.Add(-time.Hour)

	cases := []struct {
		name  string
		attrs domain.ValidationAttrs
		field string
	}{
		{name: "missing code", attrs: domain.ValidationAttrs{DataType: "TEXT", Value: domain.Value{Text: "x"}}, field: "code"},
		{name: "bad data type", attrs: domain.ValidationAttrs{Code: "X", DataType: "DATE"}, field: "dataType"},
		{name: "bad flag", attrs: domain.ValidationAttrs{Code: "X", DataType: "BOOL", Value: domain.Value{Flag: "YES"}}, field: "valueFlag"},
		{name: "missing number", attrs: domain.ValidationAttrs{Code: "X", DataType: "NUMBER", Value: domain.Value{Text: "1"}}, field: "valueNum"},
		{name: "missing text", attrs: domain.ValidationAttrs{Code: "X", DataType: "TEXT"}, field: "valueText"},
		{
			name: "window inverted",
			attrs: domain.ValidationAttrs{
				Code: "X", DataType: "TEXT", Value: domain.Value{Text: "x"},
				ValidFrom: t0, ValidTo: &before,
			},
			field: "validTo",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewValidation(tc.attrs, t0, domain.NoActor())
			require.ErrorIs(t, err, serrors.ErrInvalidData)
			require.Equal(t, "VALIDATION_INVALID_DATA", serrors.CodeOf(err))
			require.Contains(t, serrors.FieldsOf(err), tc.field)
		})
	}
}

func TestValidationEffectiveAt(t *testing.T) {
	to := t0.Add(24 * time.Hour)
	v, err := domain.NewValidation(domain.ValidationAttrs{
		Code:      "LIMIT",
		DataType:  "NUMBER",
		Value:     domain.Value{Num: decimal.NewNullDecimal(decimal.RequireFromString("150.25"))},
		ValidFrom: t0,
		ValidTo:   &to,
	}, t0, domain.NoActor())
	require.NoError(t, err)

	require.False(t, v.EffectiveAt(t0.Add(-time.Second)))
	require.True(t, v.EffectiveAt(t0))
	require.True(t, v.EffectiveAt(to))
	require.False(t, v.EffectiveAt(to.Add(time.Second)))
	require.True(t, v.Value().Num.Decimal.Equal(decimal.RequireFromString("150.25")))
}

func TestValidationUpdateBasicsKeepsType(t *testing.T) {
	v := boolValidation(t)

	updated, err := v.UpdateBasics(domain.ValidationUpdate{
		Description: "card present",
		Value:       domain.Value{Flag: "NO"},
	}, t0.Add(time.Hour), domain.SomeActor("ops"))
	require.NoError(t, err)
	require.Equal(t, domain.DataTypeBool, updated.DataType())
	require.Equal(t, domain.FlagNo, updated.Value().Flag)
	require.Equal(t, t0, updated.Snapshot().ValidFrom)
	require.Equal(t, int64(7), updated.ID())

	_, err = v.UpdateBasics(domain.ValidationUpdate{Value: domain.Value{Text: "x"}}, t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Contains(t, serrors.FieldsOf(err), "valueFlag")
}

func TestNewValidationMap(t *testing.T) {
	def := boolValidation(t)

	m, err := domain.NewValidationMap("ABC", "123456789", def, 0, domain.Value{}, t0, domain.NoActor())
	require.NoError(t, err)
	require.True(t, m.IsActive())
	require.Equal(t, domain.MapKey{SubtypeCode: "ABC", Bin: "123456789", ValidationID: 7}, m.Key())

	_, err = domain.NewValidationMap("ABC", "123456", def, 0, domain.Value{}, t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Equal(t, "VALIDATION_MAP_INVALID_DATA", serrors.CodeOf(err))
	require.Contains(t, serrors.FieldsOf(err), "bin")

	_, err = domain.NewValidationMap("ABC", "123456789", def, -1, domain.Value{}, t0, domain.NoActor())
	require.Contains(t, serrors.FieldsOf(err), "priority")

	// overrides follow the type of the definition
	_, err = domain.NewValidationMap("ABC", "123456789", def, 0, domain.Value{Flag: "MAYBE"}, t0, domain.NoActor())
	require.Contains(t, serrors.FieldsOf(err), "valueFlag")
}

func TestResolveUsesOverride(t *testing.T) {
	def := boolValidation(t)

	plain, err := domain.NewValidationMap("ABC", "123456789", def, 1, domain.Value{}, t0, domain.NoActor())
	require.NoError(t, err)
	r := domain.Resolve(plain.Snapshot(), def.Snapshot())
	require.Equal(t, domain.FlagYes, r.Value.Flag)
	require.Equal(t, int64(7), r.ValidationID)
	require.Equal(t, 1, r.Priority)

	overridden, err := domain.NewValidationMap("ABC", "123456789", def, 1, domain.Value{Flag: "no"}, t0, domain.NoActor())
	require.NoError(t, err)
	r = domain.Resolve(overridden.Snapshot(), def.Snapshot())
	require.Equal(t, domain.FlagNo, r.Value.Flag)
}

func TestValidationMapChangeStatus(t *testing.T) {
	m, err := domain.NewValidationMap("ABC", "123456789", boolValidation(t), 0, domain.Value{}, t0, domain.NoActor())
	require.NoError(t, err)

	off, err := m.ChangeStatus("I", t0.Add(time.Minute), domain.NoActor())
	require.NoError(t, err)
	require.False(t, off.IsActive())
	require.True(t, m.IsActive())

	_, err = m.ChangeStatus("Z", t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
}
