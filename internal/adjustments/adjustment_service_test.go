package adjustments

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventory/pkg/models"
)

type MockAdjustmentStore struct {
	mock.Mock
}

func (m *MockAdjustmentStore) PersistAdjustment(adjustment models.StockAdjustment) (int, error) {
	args := m.Called(adjustment)
	return args.Int(0), args.Error(1)
}

type MockAssetMutator struct {
	mock.Mock
}

func (m *MockAssetMutator) GetAsset(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetMutator) RemoveAsset(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetMutator) UpdateAssetStatus(id int, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(actor, action, details string, assetID *int, assetName *string) {
	m.Called(actor, action, details, assetID, assetName)
}

func newAdjustmentServiceForTest() (*AdjustmentService, *MockAdjustmentStore, *MockAssetMutator, *MockRecorder) {
	store := new(MockAdjustmentStore)
	assets := new(MockAssetMutator)
	recorder := new(MockRecorder)

	service := NewAdjustmentService(store, assets, recorder)
	service.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }

	return service, store, assets, recorder
}

func laptop() *models.Asset {
	return &models.Asset{
		ID:           5,
		AssetName:    "Laptop",
		SerialNumber: "SN1",
		Category:     "ICT",
		Subcategory:  "Computing",
		Department:   "Registrar",
		Location:     "Room 101",
		Custodian:    "Jane Dela Cruz",
		Status:       "Available",
	}
}

func TestApplyLostDeletesAsset(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.MatchedBy(func(a models.StockAdjustment) bool {
		// the adjustment carries a snapshot of the asset, not a join
		return a.AssetID == 5 && a.AssetName == "Laptop" && a.SerialNumber == "SN1" &&
			a.Department == "Registrar" && a.AdjustmentType == "Lost" && a.AdjustmentDate == "2025-06-01"
	})).Return(31, nil).Once()
	assets.On("RemoveAsset", 5).Return(int64(1), nil).Once()
	recorder.On("Record", "system", "update", mock.Anything, mock.Anything, mock.Anything).Once()

	id, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Lost",
		Reason:         "Missing after inventory count",
		AdjustmentDate: "2025-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, 31, id)

	store.AssertExpectations(t)
	assets.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestApplyDamagedDeletesAsset(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.Anything).Return(32, nil).Once()
	assets.On("RemoveAsset", 5).Return(int64(1), nil).Once()
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	_, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Damaged",
		Reason:         "Dropped during transfer",
	})

	assert.NoError(t, err)
	assets.AssertExpectations(t)
}

func TestApplyDisposalSetsRemovedStatus(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.Anything).Return(33, nil).Once()
	assets.On("UpdateAssetStatus", 5, "Removed").Return(nil).Once()
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	_, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Disposal",
		Reason:         "End of service life",
	})

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "RemoveAsset", mock.Anything)
	assets.AssertExpectations(t)
}

func TestApplyInformationalTypeTouchesNothing(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.Anything).Return(34, nil).Once()
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	_, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Maintenance",
		Reason:         "Scheduled cleaning",
	})

	assert.NoError(t, err)
	assets.AssertNotCalled(t, "RemoveAsset", mock.Anything)
	assets.AssertNotCalled(t, "UpdateAssetStatus", mock.Anything, mock.Anything)
}

func TestApplyValidation(t *testing.T) {
	service, store, _, _ := newAdjustmentServiceForTest()

	_, err := service.Apply(models.AdjustmentRequest{AdjustmentType: "Lost", Reason: "x"})
	assert.ErrorIs(t, err, ErrAssetIDRequired)

	_, err = service.Apply(models.AdjustmentRequest{AssetID: 5, Reason: "x"})
	assert.ErrorIs(t, err, ErrTypeRequired)

	_, err = service.Apply(models.AdjustmentRequest{AssetID: 5, AdjustmentType: "Shrinkage", Reason: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adjustment type")

	_, err = service.Apply(models.AdjustmentRequest{AssetID: 5, AdjustmentType: "Lost", Reason: "  "})
	assert.ErrorIs(t, err, ErrReasonRequired)

	// nothing persisted for any rejected request
	store.AssertNotCalled(t, "PersistAdjustment", mock.Anything)
}

func TestApplyDefaultsAdjustmentDateToToday(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.MatchedBy(func(a models.StockAdjustment) bool {
		return a.AdjustmentDate == "2025-06-15"
	})).Return(35, nil).Once()
	recorder.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	_, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Other",
		Reason:         "Annotation",
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestApplySideEffectFailureSurfacesWithAdjustmentID(t *testing.T) {
	service, store, assets, recorder := newAdjustmentServiceForTest()

	assets.On("GetAsset", 5).Return(laptop(), nil).Once()
	store.On("PersistAdjustment", mock.Anything).Return(36, nil).Once()
	assets.On("RemoveAsset", 5).Return(int64(0), errors.New("connection reset")).Once()

	id, err := service.Apply(models.AdjustmentRequest{
		AssetID:        5,
		AdjustmentType: "Lost",
		Reason:         "Missing",
	})

	// the adjustment is committed; the failed delete is surfaced, not
	// compensated, and the listing filter hides the orphaned asset
	assert.Error(t, err)
	assert.Equal(t, 36, id)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyUnknownAsset(t *testing.T) {
	service, store, assets, _ := newAdjustmentServiceForTest()

	assets.On("GetAsset", 99).Return(nil, nil).Once()

	_, err := service.Apply(models.AdjustmentRequest{
		AssetID:        99,
		AdjustmentType: "Lost",
		Reason:         "Missing",
	})

	assert.ErrorIs(t, err, ErrAssetNotFound)
	store.AssertNotCalled(t, "PersistAdjustment", mock.Anything)
}
