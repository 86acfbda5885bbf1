package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"inventory/pkg/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AppendHistory(entry models.HistoryEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func TestRecord(t *testing.T) {
	store := new(MockStore)
	recorder := NewRecorder(store, zap.NewNop())
	recorder.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

	assetID := 42
	assetName := "Laptop"

	store.On("AppendHistory", models.HistoryEntry{
		Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Actor:     "system",
		Action:    "add",
		Details:   "Added asset: Laptop",
		AssetID:   &assetID,
		AssetName: &assetName,
	}).Return(nil).Once()

	recorder.Record("system", "add", "Added asset: Laptop", &assetID, &assetName)

	store.AssertExpectations(t)
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	store := new(MockStore)
	recorder := NewRecorder(store, zap.NewNop())

	store.On("AppendHistory", mock.Anything).Return(errors.New("connection reset")).Once()

	assert.NotPanics(t, func() {
		recorder.Record("system", "update", "Updated asset: Printer", nil, nil)
	})

	store.AssertExpectations(t)
}
