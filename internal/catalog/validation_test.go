package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/serrors"
	"bincatalog/pkg/storage"
	mockstorage "bincatalog/pkg/storage/mock"
)

func saveValidationEcho(tx *mockstorage.MockAllStorage, id int64) {
	tx.EXPECT().SaveValidation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v domain.Validation) (*domain.Validation, error) {
			rec := v.Snapshot()
			if rec.ValidationID == 0 {
				rec.ValidationID = id
			}
			saved, err := domain.RehydrateValidation(rec)

			return &saved, err
		},
	)
}

func TestCatalog_CreateValidation(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationExistsByCode(gomock.Any(), "MAX_AMOUNT").Return(false, nil)
		saveValidationEcho(tx, 9)
		expectJob(t, tx, events.EntityValidation, events.ActionCreated)
	})

	v, err := c.CreateValidation(context.Background(), domain.ValidationAttrs{
		Code:     "max_amount",
		DataType: "number",
		Value:    domain.Value{Num: decimal.NewNullDecimal(decimal.RequireFromString("1500.50"))},
	}, ops)
	require.NoError(t, err)
	require.Equal(t, int64(9), v.ID())
	require.Equal(t, "MAX_AMOUNT", v.Code())
	require.Equal(t, domain.DataTypeNumber, v.DataType())
	require.True(t, v.IsActive())
	// the window opens at creation time by default
	require.Equal(t, t0, v.Snapshot().ValidFrom)
	require.Equal(t, "1500.5", v.Value().Num.Decimal.String())
}

func TestCatalog_CreateValidation_Invalid(t *testing.T) {
	_, _, c := newTestCatalog(t, nil)

	_, err := c.CreateValidation(context.Background(), domain.ValidationAttrs{
		Code:     "V1",
		DataType: "BOOL",
		Value:    domain.Value{Flag: "MAYBE"},
	}, ops)
	requireCode(t, err, serrors.ErrInvalidData, "VALIDATION_INVALID_DATA")
	require.Contains(t, serrors.FieldsOf(err), "valueFlag")

	validFrom := t0
	validTo := t0.Add(-time.Hour)
	_, err = c.CreateValidation(context.Background(), domain.ValidationAttrs{
		Code:      "V1",
		DataType:  "TEXT",
		Value:     domain.Value{Text: "x"},
		ValidFrom: validFrom,
		ValidTo:   &validTo,
	}, ops)
	requireCode(t, err, serrors.ErrInvalidData, "VALIDATION_INVALID_DATA")
	require.Contains(t, serrors.FieldsOf(err), "validTo")
}

func TestCatalog_CreateValidation_AlreadyExists(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	attrs := domain.ValidationAttrs{Code: "V1", DataType: "BOOL", Value: domain.Value{Flag: "SI"}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationExistsByCode(gomock.Any(), "V1").Return(true, nil)
	})
	_, err := c.CreateValidation(context.Background(), attrs, ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "VALIDATION_ALREADY_EXISTS")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationExistsByCode(gomock.Any(), "V1").Return(false, nil)
		tx.EXPECT().SaveValidation(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("could not save validation: %w", storage.ErrDuplicate))
	})
	_, err = c.CreateValidation(context.Background(), attrs, ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "VALIDATION_ALREADY_EXISTS")
}

func TestCatalog_UpdateValidation(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedValidation(t, "V1", domain.StatusActive)

	validTo := t0.Add(24 * time.Hour)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationByCode(gomock.Any(), "V1").Return(stored, nil)
		saveValidationEcho(tx, 0)
		expectJob(t, tx, events.EntityValidation, events.ActionUpdated)
	})

	updated, err := c.UpdateValidation(context.Background(), "v1", domain.ValidationUpdate{
		Description: "blocks contactless",
		Value:       domain.Value{Flag: "no"},
		ValidTo:     &validTo,
	}, ops)
	require.NoError(t, err)
	require.Equal(t, int64(7), updated.ID())
	require.Equal(t, "NO", updated.Value().Flag)
	require.Equal(t, domain.DataTypeBool, updated.DataType())
	require.Equal(t, validTo, *updated.Snapshot().ValidTo)
	// validFrom is kept when not given
	require.Equal(t, stored.Snapshot().ValidFrom, updated.Snapshot().ValidFrom)
}

func TestCatalog_UpdateValidation_WrongValueType(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedValidation(t, "V1", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationByCode(gomock.Any(), "V1").Return(stored, nil)
	})

	// a BOOL definition keeps only the flag, so a text value leaves it empty
	_, err := c.UpdateValidation(context.Background(), "V1", domain.ValidationUpdate{
		Value: domain.Value{Text: "SI"},
	}, ops)
	requireCode(t, err, serrors.ErrInvalidData, "VALIDATION_INVALID_DATA")
}

func TestCatalog_ChangeValidationStatus(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedValidation(t, "V1", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationByCode(gomock.Any(), "V1").Return(stored, nil)
		saveValidationEcho(tx, 0)
		expectJob(t, tx, events.EntityValidation, events.ActionStatusChanged)
	})

	updated, err := c.ChangeValidationStatus(context.Background(), "V1", "I", ops)
	require.NoError(t, err)
	require.False(t, updated.IsActive())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ValidationByCode(gomock.Any(), "V2").Return(nil, nil)
	})
	_, err = c.ChangeValidationStatus(context.Background(), "V2", "A", ops)
	requireCode(t, err, serrors.ErrNotFound, "VALIDATION_NOT_FOUND")
}

func TestCatalog_ListValidations(t *testing.T) {
	_, st, c := newTestCatalog(t, nil)
	stored := storedValidation(t, "V1", domain.StatusActive)

	filter := storage.ValidationFilter{DataType: domain.DataTypeBool}
	st.EXPECT().ListValidations(gomock.Any(), filter, storage.PageRequest{Page: 2, Size: 10}).
		Return(storage.Page[domain.Validation]{Items: []domain.Validation{*stored}, Total: 11}, nil)

	res, err := c.ListValidations(context.Background(), filter, storage.PageRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, int64(11), res.Total)
}
