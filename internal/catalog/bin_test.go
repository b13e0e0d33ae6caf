package catalog_test

import (
	"context"
	"errors"
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

func saveBinEcho(tx *mockstorage.MockAllStorage) {
	tx.EXPECT().SaveBin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Bin) (*domain.Bin, error) { return &b, nil },
	)
}

func TestCatalog_CreateBin(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinExists(gomock.Any(), "123456").Return(false, nil)
		saveBinEcho(tx)
		expectJob(t, tx, events.EntityBin, events.ActionCreated)
	})

	b, err := c.CreateBin(context.Background(), " 123456 ", binAttrs("N", nil), ops)
	require.NoError(t, err)
	require.Equal(t, "123456", b.Bin())
	require.Equal(t, domain.StatusActive, b.Status())
	require.Equal(t, t0, b.Snapshot().CreatedAt)
	require.Equal(t, "ops", b.Snapshot().UpdatedBy.String())
}

func TestCatalog_CreateBin_Invalid(t *testing.T) {
	_, _, c := newTestCatalog(t, nil)

	// no storage calls are expected
	_, err := c.CreateBin(context.Background(), "12345", binAttrs("N", nil), ops)
	requireCode(t, err, serrors.ErrInvalidData, "BIN_INVALID_DATA")
	require.Contains(t, serrors.FieldsOf(err), "bin")
}

func TestCatalog_CreateBin_AlreadyExists(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinExists(gomock.Any(), "123456").Return(true, nil)
	})
	_, err := c.CreateBin(context.Background(), "123456", binAttrs("N", nil), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "BIN_ALREADY_EXISTS")

	// a concurrent insert is reported the same way
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinExists(gomock.Any(), "123456").Return(false, nil)
		tx.EXPECT().SaveBin(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("could not save bin: %w (bins_pkey)", storage.ErrDuplicate))
	})
	_, err = c.CreateBin(context.Background(), "123456", binAttrs("N", nil), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "BIN_ALREADY_EXISTS")
}

func TestCatalog_CreateBin_PropagatesErrors(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinExists(gomock.Any(), "123456").Return(false, errors.New("conn reset"))
	})
	_, err := c.CreateBin(context.Background(), "123456", binAttrs("N", nil), ops)
	require.Error(t, err)
	require.Equal(t, "INTERNAL", serrors.CodeOf(err))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinExists(gomock.Any(), "123456").Return(false, nil)
		saveBinEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
	})
	_, err = c.CreateBin(context.Background(), "123456", binAttrs("N", nil), ops)
	require.ErrorContains(t, err, "could not add change job")
}

func TestCatalog_GetBin_NotFound(t *testing.T) {
	_, st, c := newTestCatalog(t, nil)

	st.EXPECT().BinByCode(gomock.Any(), "654321").Return(nil, nil)

	_, err := c.GetBin(context.Background(), "654321")
	requireCode(t, err, serrors.ErrNotFound, "BIN_NOT_FOUND")
}

func TestCatalog_ListBins_NormalizesPage(t *testing.T) {
	_, st, c := newTestCatalog(t, nil)

	filter := storage.BinFilter{Status: domain.StatusActive}
	st.EXPECT().ListBins(gomock.Any(), filter, storage.PageRequest{Page: 1, Size: storage.DefaultPageSize}).
		Return(storage.Page[domain.Bin]{Total: 0}, nil)

	_, err := c.ListBins(context.Background(), filter, storage.PageRequest{})
	require.NoError(t, err)
}

func TestCatalog_UpdateBin_ExtensionChange(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedBin(t, "123456", binAttrs("Y", intPtr(1)), domain.StatusActive)

	// 1 -> 2 extension digits is refused while a subtype refers to the BIN
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(stored, nil)
		tx.EXPECT().AnySubtypeReferencesBin(gomock.Any(), "123456").Return(true, nil)
	})
	_, err := c.UpdateBin(context.Background(), "123456", binAttrs("Y", intPtr(2)), ops)
	requireCode(t, err, serrors.ErrConflictRule, "BIN_CONFLICT_RULE")

	// and allowed without one
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(stored, nil)
		tx.EXPECT().AnySubtypeReferencesBin(gomock.Any(), "123456").Return(false, nil)
		saveBinEcho(tx)
		expectJob(t, tx, events.EntityBin, events.ActionUpdated)
	})
	updated, err := c.UpdateBin(context.Background(), "123456", binAttrs("Y", intPtr(2)), ops)
	require.NoError(t, err)
	require.Equal(t, 2, *updated.Snapshot().BinExtDigits)
}

func TestCatalog_UpdateBin_SameExtensionSkipsReferenceCheck(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedBin(t, "123456", binAttrs("Y", intPtr(1)), domain.StatusInactive)

	attrs := binAttrs("Y", intPtr(1))
	attrs.Name = "Visa Gold"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(stored, nil)
		saveBinEcho(tx)
		expectJob(t, tx, events.EntityBin, events.ActionUpdated)
	})

	updated, err := c.UpdateBin(context.Background(), "123456", attrs, ops)
	require.NoError(t, err)
	require.Equal(t, "Visa Gold", updated.Snapshot().Name)
	require.Equal(t, domain.StatusInactive, updated.Status())
}

func TestCatalog_UpdateBin_NotFound(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(nil, nil)
	})

	_, err := c.UpdateBin(context.Background(), "123456", binAttrs("N", nil), ops)
	requireCode(t, err, serrors.ErrNotFound, "BIN_NOT_FOUND")
}

func TestCatalog_ChangeBinStatus(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedBin(t, "123456", binAttrs("N", nil), domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(stored, nil)
		saveBinEcho(tx)
		expectJob(t, tx, events.EntityBin, events.ActionStatusChanged)
	})
	updated, err := c.ChangeBinStatus(context.Background(), "123456", "i", ops)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, updated.Status())
	require.Equal(t, t0, updated.Snapshot().UpdatedAt)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().BinByCode(gomock.Any(), "123456").Return(stored, nil)
	})
	_, err = c.ChangeBinStatus(context.Background(), "123456", "X", ops)
	requireCode(t, err, serrors.ErrInvalidData, "BIN_INVALID_DATA")
}
