package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bincatalog/internal/catalog"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/events"
	"bincatalog/pkg/serrors"
	mockstorage "bincatalog/pkg/storage/mock"
)

var agencyKey = domain.AgencyKey{SubtypeCode: "ABC", AgencyCode: "AG01"}

func agencyAttrs() domain.AgencyAttrs {
	return domain.AgencyAttrs{Name: "Lima Centro", Address: "Av. Arequipa 100", Phone: "014445555"}
}

func storedAgency(t *testing.T, status domain.Status) *domain.Agency {
	t.Helper()

	a, err := domain.NewAgency(agencyKey, agencyAttrs(), t0.Add(-time.Hour), domain.NoActor())
	require.NoError(t, err)
	a, err = a.ChangeStatus(string(status), t0.Add(-time.Hour), domain.NoActor())
	require.NoError(t, err)

	return &a
}

func saveAgencyEcho(tx *mockstorage.MockAllStorage) {
	tx.EXPECT().SaveAgency(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.Agency) (*domain.Agency, error) { return &a, nil },
	)
}

func TestCatalog_CreateAgency(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	subtype := storedSubtype(t, "ABC", "123456", "789", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(subtype, nil)
		tx.EXPECT().AgencyExists(gomock.Any(), agencyKey).Return(false, nil)
		saveAgencyEcho(tx)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				change := args.(catalog.ChangeJobArgs).Change
				require.Equal(t, events.EntityAgency, change.Entity)
				require.Equal(t, "ABC/AG01", change.Key)
				require.Equal(t, "ABC", change.SubtypeCode)

				return true, nil
			},
		)
	})

	a, err := c.CreateAgency(context.Background(), domain.AgencyKey{SubtypeCode: " ABC", AgencyCode: "AG01 "}, agencyAttrs(), ops)
	require.NoError(t, err)
	require.Equal(t, agencyKey, a.Key())
	require.True(t, a.IsActive())
}

func TestCatalog_CreateAgency_SubtypeRules(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(nil, nil)
	})
	_, err := c.CreateAgency(context.Background(), agencyKey, agencyAttrs(), ops)
	requireCode(t, err, serrors.ErrNotFound, "SUBTYPE_NOT_FOUND")

	inactive := storedSubtype(t, "ABC", "123456", "789", domain.StatusInactive)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(inactive, nil)
	})
	_, err = c.CreateAgency(context.Background(), agencyKey, agencyAttrs(), ops)
	requireCode(t, err, serrors.ErrConflictRule, "AGENCY_CONFLICT_RULE")
}

func TestCatalog_CreateAgency_AlreadyExists(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	subtype := storedSubtype(t, "ABC", "123456", "789", domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SubtypeByCode(gomock.Any(), "ABC").Return(subtype, nil)
		tx.EXPECT().AgencyExists(gomock.Any(), agencyKey).Return(true, nil)
	})

	_, err := c.CreateAgency(context.Background(), agencyKey, agencyAttrs(), ops)
	requireCode(t, err, serrors.ErrAlreadyExists, "AGENCY_ALREADY_EXISTS")
}

func TestCatalog_CreateAgency_Invalid(t *testing.T) {
	_, _, c := newTestCatalog(t, nil)

	_, err := c.CreateAgency(context.Background(), domain.AgencyKey{SubtypeCode: "ABC", AgencyCode: "AG-01"}, domain.AgencyAttrs{}, ops)
	requireCode(t, err, serrors.ErrInvalidData, "AGENCY_INVALID_DATA")
	require.ElementsMatch(t, []string{"agencyCode", "name"}, serrors.FieldsOf(err))
}

func TestCatalog_UpdateAgency(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedAgency(t, domain.StatusInactive)

	attrs := agencyAttrs()
	attrs.EmbosserCode = "EMB1"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgencyByKey(gomock.Any(), agencyKey).Return(stored, nil)
		saveAgencyEcho(tx)
		expectJob(t, tx, events.EntityAgency, events.ActionUpdated)
	})

	updated, err := c.UpdateAgency(context.Background(), agencyKey, attrs, ops)
	require.NoError(t, err)
	require.Equal(t, "EMB1", updated.Snapshot().EmbosserCode)
	require.Equal(t, domain.StatusInactive, updated.Status())
}

func TestCatalog_ChangeAgencyStatus_Activation(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedAgency(t, domain.StatusInactive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgencyByKey(gomock.Any(), agencyKey).Return(stored, nil)
		tx.EXPECT().SubtypeIsActive(gomock.Any(), "ABC").Return(false, nil)
	})
	_, err := c.ChangeAgencyStatus(context.Background(), agencyKey, "A", ops)
	requireCode(t, err, serrors.ErrConflictRule, "AGENCY_CONFLICT_RULE")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgencyByKey(gomock.Any(), agencyKey).Return(stored, nil)
		tx.EXPECT().SubtypeIsActive(gomock.Any(), "ABC").Return(true, nil)
		saveAgencyEcho(tx)
		expectJob(t, tx, events.EntityAgency, events.ActionStatusChanged)
	})
	active, err := c.ChangeAgencyStatus(context.Background(), agencyKey, "A", ops)
	require.NoError(t, err)
	require.True(t, active.IsActive())
}

func TestCatalog_ChangeAgencyStatus_DeactivationSkipsSubtype(t *testing.T) {
	ctrl, st, c := newTestCatalog(t, nil)
	stored := storedAgency(t, domain.StatusActive)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().AgencyByKey(gomock.Any(), agencyKey).Return(stored, nil)
		saveAgencyEcho(tx)
		expectJob(t, tx, events.EntityAgency, events.ActionStatusChanged)
	})

	inactive, err := c.ChangeAgencyStatus(context.Background(), agencyKey, "I", ops)
	require.NoError(t, err)
	require.False(t, inactive.IsActive())
}

func TestCatalog_GetAgency_NotFound(t *testing.T) {
	_, st, c := newTestCatalog(t, nil)

	st.EXPECT().AgencyByKey(gomock.Any(), agencyKey).Return(nil, nil)

	_, err := c.GetAgency(context.Background(), domain.AgencyKey{SubtypeCode: "ABC ", AgencyCode: " AG01"})
	requireCode(t, err, serrors.ErrNotFound, "AGENCY_NOT_FOUND")
}
