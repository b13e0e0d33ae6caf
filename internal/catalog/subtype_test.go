package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/serrors"
	"bincatalog/pkg/storage"
	mockstorage "bincatalog/pkg/storage/mock"
)

func saveSubtypeEcho(tx *mockstorage.MockAllStorage) {
	tx.EXPECT().SaveSubtype(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.Subtype) (*domain.Subtype, error) { return &s, nil },
	)
}

func TestCatalog_CreateSubtype_DerivesEffectiveBin(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	bin := storedBin(t, "123456", binAttrs("Y", intPtr(3)), domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(bin, nil)
		tx.EXPECT().SubtypeExists(gomock.Any(), "ABC").Return(false, nil)
		tx.EXPECT().SubtypeByBinAndExt(gomock.Any(), "123456", "789").Return(nil, nil)
		saveSubtypeEcho(tx)
		expectJob(t, tx, events.EntitySubtype, events.ActionCreated)
	})

	s, err := c.CreateSubtype(context.Background(), "ABC", "123456", subtypeAttrs("789"), ops)
	require.NoError(t, err)
	require.Equal(t, "123456789", s.BinEfectivo())
	require.Equal(t, domain.StatusInactive, s.Status())

	// the same (bin, binExt) pair under another code is a duplicate
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(bin, nil)
		tx.EXPECT().SubtypeExists(gomock.Any(), "XYZ").Return(false, nil)
		tx.EXPECT().SubtypeByBinAndExt(gomock.Any(), "123456", "789").Return(s, nil)
	})

	_, err = c.CreateSubtype(context.Background(), "XYZ", "123456", subtypeAttrs("789"), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "SUBTYPE_ALREADY_EXISTS")
}

func TestCatalog_CreateSubtype_BinRules(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(nil, nil)
	})
	_, err := c.CreateSubtype(context.Background(), "ABC", "123456", subtypeAttrs("789"), ops)
	requireCode(t, err, serrors.ErrNotFound, "BIN_NOT_FOUND")

	inactive := storedBin(t, "123456", binAttrs("N", nil), domain.StatusInactive)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(inactive, nil)
	})
	_, err = c.CreateSubtype(context.Background(), "ABC", "123456", subtypeAttrs("789"), ops)
	requireCode(t, err, serrors.ErrConflictRule, "SUBTYPE_CONFLICT_RULE")
}

func TestCatalog_CreateSubtype_CodeTaken(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	bin := storedBin(t, "123456789", binAttrs("N", nil), domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456789").Return(bin, nil)
		tx.EXPECT().SubtypeExists(gomock.Any(), "ABC").Return(true, nil)
	})
	_, err := c.CreateSubtype(context.Background(), "ABC", "123456789", subtypeAttrs(""), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "SUBTYPE_ALREADY_EXISTS")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456789").Return(bin, nil)
		tx.EXPECT().SubtypeExists(gomock.Any(), "ABC").Return(false, nil)
		tx.EXPECT().SubtypeByBinAndExt(gomock.Any(), "123456789", "").Return(nil, nil)
		tx.EXPECT().SaveSubtype(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("could not save subtype: %w (subtypes_bin_ext_key)", storage.ErrDuplicate))
	})
	_, err = c.CreateSubtype(context.Background(), "ABC", "123456789", subtypeAttrs(""), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "SUBTYPE_ALREADY_EXISTS")
}

func TestCatalog_CreateSubtype_InvalidExtension(t *testing.T) {
	_, _, c := newTestCatalog(t, nil)

	_, err := c.CreateSubtype(context.Background(), "ABC", "123456789", subtypeAttrs("1"), ops)
	requireCode(t, err, serrors.ErrInvalidData, "SUBTYPE_INVALID_DATA")
	require.Contains(t, serrors.FieldsOf(err), "binExt")
}

func TestCatalog_UpdateSubtype_RechecksChangedPair(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedSubtype(t, "ABC", "123456", "789", domain.StatusActive)
	other := storedSubtype(t, "XYZ", "123456", "012", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().ActiveValidationMapCount(gomock.Any(), "ABC", "123456789").Return(int64(0), nil)
		tx.EXPECT().SubtypeByBinAndExt(gomock.Any(), "123456", "012").Return(other, nil)
	})
	_, err := c.UpdateSubtype(context.Background(), "ABC", subtypeAttrs("12"), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "SUBTYPE_ALREADY_EXISTS")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().ActiveValidationMapCount(gomock.Any(), "ABC", "123456789").Return(int64(0), nil)
		tx.EXPECT().SubtypeByBinAndExt(gomock.Any(), "123456", "345").Return(nil, nil)
		saveSubtypeEcho(tx)
		expectJob(t, tx, events.EntitySubtype, events.ActionUpdated)
	})
	updated, err := c.UpdateSubtype(context.Background(), "ABC", subtypeAttrs("345"), ops)
	require.NoError(t, err)
	require.Equal(t, "123456345", updated.BinEfectivo())
	require.Equal(t, domain.StatusActive, updated.Status())
}

func TestCatalog_UpdateSubtype_ExtensionFixedWhileRulesActive(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedSubtype(t, "ABC", "123456", "789", domain.StatusActive)

	// no pair check and no save
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().ActiveValidationMapCount(gomock.Any(), "ABC", "123456789").Return(int64(2), nil)
	})

	_, err := c.UpdateSubtype(context.Background(), "ABC", subtypeAttrs("345"), ops)
	requireCode(t, err, serrors.ErrConflictRule, "SUBTYPE_CONFLICT_RULE")
}

func TestCatalog_UpdateSubtype_SamePairSkipsCheck(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedSubtype(t, "ABC", "123456", "789", domain.StatusInactive)

	attrs := subtypeAttrs("789")
	attrs.Name = "Premium Plus"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		saveSubtypeEcho(tx)
		expectJob(t, tx, events.EntitySubtype, events.ActionUpdated)
	})

	updated, err := c.UpdateSubtype(context.Background(), "ABC", attrs, ops)
	require.NoError(t, err)
	require.Equal(t, "Premium Plus", updated.Snapshot().Name)
}

func TestCatalog_ChangeSubtypeStatus_Activation(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedSubtype(t, "ABC", "123456", "789", domain.StatusInactive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().BinIsActive(gomock.Any(), "123456").Return(false, nil)
	})
	_, err := c.ChangeSubtypeStatus(context.Background(), "ABC", "A", ops)
	requireCode(t, err, serrors.ErrConflictRule, "SUBTYPE_CONFLICT_RULE")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().BinIsActive(gomock.Any(), "123456").Return(true, nil)
		saveSubtypeEcho(tx)
		expectJob(t, tx, events.EntitySubtype, events.ActionStatusChanged)
	})
	active, err := c.ChangeSubtypeStatus(context.Background(), "ABC", "A", ops)
	require.NoError(t, err)
	require.True(t, active.IsActive())
}

func TestCatalog_ChangeSubtypeStatus_DeactivationKeepsAgencies(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedSubtype(t, "ABC", "123456", "789", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(stored, nil)
		tx.EXPECT().ActiveAgencyCountForSubtype(gomock.Any(), "ABC").Return(int64(2), nil)
		saveSubtypeEcho(tx)
		expectJob(t, tx, events.EntitySubtype, events.ActionStatusChanged)
		// agencies are never touched
		tx.EXPECT().SaveAgency(gomock.Any(), gomock.Any()).Times(0)
	})

	inactive, err := c.ChangeSubtypeStatus(context.Background(), "ABC", "I", ops)
	require.NoError(t, err)
	require.False(t, inactive.IsActive())
}

func TestCatalog_GetSubtype_NotFound(t *testing.T) {
	_, st, c := newTestCatalog(t, nil)

	st.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(nil, nil)

	_, err := c.GetSubtype(context.Background(), " ABC ")
	requireCode(t, err, serrors.ErrNotFound, "SUBTYPE_NOT_FOUND")
}
