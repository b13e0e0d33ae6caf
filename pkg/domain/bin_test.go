package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/serrors"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func binAttrs() domain.BinAttrs {
	return domain.BinAttrs{
		Name:            "Visa Classic",
		TypeBin:         "debito",
		TypeAccount:     "01",
		CompensationCod: "CMP01",
		Description:     "Main debit range",
		UsesBinExt:      "N",
	}
}

func TestNewBin(t *testing.T) {
	b, err := domain.NewBin("123456", binAttrs(), t0, domain.SomeActor("alice"))
	require.NoError(t, err)

	rec := b.Snapshot()
	require.Equal(t, "123456", rec.Bin)
	require.Equal(t, domain.TypeBinDebit, rec.TypeBin)
	require.Equal(t, domain.StatusActive, rec.Status)
	require.Equal(t, domain.No, rec.UsesBinExt)
	require.Nil(t, rec.BinExtDigits)
	require.Equal(t, t0, rec.CreatedAt)
	require.Equal(t, t0, rec.UpdatedAt)
	require.Equal(t, "alice", rec.UpdatedBy.String())
}

func TestNewBinInvalid(t *testing.T) {
	cases := []struct {
		name   string
		bin    string
		mutate func(a *domain.BinAttrs)
		field  string
	}{
		{name: "short bin", bin: "12345", mutate: func(*domain.BinAttrs) {}, field: "bin"},
		{name: "long bin", bin: "1234567890", mutate: func(*domain.BinAttrs) {}, field: "bin"},
		{name: "non numeric bin", bin: "12345a", mutate: func(*domain.BinAttrs) {}, field: "bin"},
		{name: "bad type", bin: "123456", mutate: func(a *domain.BinAttrs) { a.TypeBin = "GOLD" }, field: "typeBin"},
		{name: "bad account", bin: "123456", mutate: func(a *domain.BinAttrs) { a.TypeAccount = "1" }, field: "typeAccount"},
		{name: "symbols in name", bin: "123456", mutate: func(a *domain.BinAttrs) { a.Name = "Visa*" }, field: "name"},
		{name: "missing compensation", bin: "123456", mutate: func(a *domain.BinAttrs) { a.CompensationCod = " " }, field: "compensationCod"},
		{
			name:   "digits without extension",
			bin:    "123456",
			mutate: func(a *domain.BinAttrs) { a.BinExtDigits = intPtr(2) },
			field:  "binExtDigits",
		},
		{
			name:   "extension without digits",
			bin:    "123456",
			mutate: func(a *domain.BinAttrs) { a.UsesBinExt = "Y" },
			field:  "binExtDigits",
		},
		{
			name: "too many extension digits",
			bin:  "123456",
			mutate: func(a *domain.BinAttrs) {
				a.UsesBinExt = "Y"
				a.BinExtDigits = intPtr(4)
			},
			field: "binExtDigits",
		},
		{
			name: "extension overflows effective length",
			bin:  "12345678",
			mutate: func(a *domain.BinAttrs) {
				a.UsesBinExt = "Y"
				a.BinExtDigits = intPtr(2)
			},
			field: "binExtDigits",
		},
		{name: "bad flag", bin: "123456", mutate: func(a *domain.BinAttrs) { a.UsesBinExt = "S" }, field: "usesBinExt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := binAttrs()
			tc.mutate(&attrs)

			_, err := domain.NewBin(tc.bin, attrs, t0, domain.NoActor())
			require.ErrorIs(t, err, serrors.ErrInvalidData)
			require.Equal(t, "BIN_INVALID_DATA", serrors.CodeOf(err))
			require.Contains(t, serrors.FieldsOf(err), tc.field)
		})
	}
}

func TestBinExtensionLimits(t *testing.T) {
	attrs := binAttrs()
	attrs.UsesBinExt = "y"
	attrs.BinExtDigits = intPtr(3)

	b, err := domain.NewBin("123456", attrs, t0, domain.NoActor())
	require.NoError(t, err)
	require.Equal(t, domain.Yes, b.Snapshot().UsesBinExt)
	require.Equal(t, 3, *b.Snapshot().BinExtDigits)

	attrs.BinExtDigits = intPtr(1)
	_, err = domain.NewBin("12345678", attrs, t0, domain.NoActor())
	require.NoError(t, err)
}

func TestBinUpdateBasics(t *testing.T) {
	b, err := domain.NewBin("123456", binAttrs(), t0, domain.NoActor())
	require.NoError(t, err)
	b, err = b.ChangeStatus("I", t0.Add(time.Minute), domain.NoActor())
	require.NoError(t, err)

	attrs := binAttrs()
	attrs.Name = "Renamed"
	later := t0.Add(time.Hour)

	updated, err := b.UpdateBasics(attrs, later, domain.SomeActor("bob"))
	require.NoError(t, err)

	rec := updated.Snapshot()
	require.Equal(t, "Renamed", rec.Name)
	require.Equal(t, domain.StatusInactive, rec.Status)
	require.Equal(t, t0, rec.CreatedAt)
	require.Equal(t, later, rec.UpdatedAt)
	require.Equal(t, "bob", rec.UpdatedBy.String())

	// the original value is untouched
	require.Equal(t, "Visa Classic", b.Snapshot().Name)
}

func TestBinChangeStatus(t *testing.T) {
	b, err := domain.NewBin("123456", binAttrs(), t0, domain.NoActor())
	require.NoError(t, err)

	same, err := b.ChangeStatus("A", t0.Add(time.Second), domain.NoActor())
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, same.Status())
	require.True(t, same.Snapshot().UpdatedAt.After(b.Snapshot().UpdatedAt))

	// a clock going backwards never rewinds updatedAt
	back, err := same.ChangeStatus("i", t0.Add(-time.Hour), domain.NoActor())
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, back.Status())
	require.Equal(t, same.Snapshot().UpdatedAt, back.Snapshot().UpdatedAt)

	_, err = b.ChangeStatus("X", t0, domain.NoActor())
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Equal(t, []string{"status"}, serrors.FieldsOf(err))
}

func TestBinExtensionChanged(t *testing.T) {
	attrs := binAttrs()
	attrs.UsesBinExt = "Y"
	attrs.BinExtDigits = intPtr(1)
	b, err := domain.NewBin("123456", attrs, t0, domain.NoActor())
	require.NoError(t, err)

	require.False(t, b.ExtensionChanged(attrs))

	attrs.BinExtDigits = intPtr(2)
	require.True(t, b.ExtensionChanged(attrs))

	attrs.UsesBinExt = "N"
	attrs.BinExtDigits = nil
	require.True(t, b.ExtensionChanged(attrs))
}

func TestRehydrateBinRejectsCorruptRows(t *testing.T) {
	b, err := domain.NewBin("123456", binAttrs(), t0, domain.NoActor())
	require.NoError(t, err)

	rec := b.Snapshot()
	_, err = domain.RehydrateBin(rec)
	require.NoError(t, err)

	rec.UsesBinExt = domain.Yes
	_, err = domain.RehydrateBin(rec)
	require.ErrorIs(t, err, serrors.ErrInvalidData)

	rec = b.Snapshot()
	rec.UpdatedAt = rec.CreatedAt.Add(-time.Second)
	_, err = domain.RehydrateBin(rec)
	require.ErrorIs(t, err, serrors.ErrInvalidData)
	require.Contains(t, serrors.FieldsOf(err), "updatedAt")
}
