package adjustments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventory/pkg/models"
)

func setupTestRouter(service *AdjustmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	handler := NewAdjustmentHandler(service, nil)
	router.POST("/adjustments", handler.CreateAdjustment)
	return router
}

func postAdjustment(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/adjustments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateAdjustmentReturnsCreated(t *testing.T) {
	store := new(MockAdjustmentStore)
	assets := new(MockAssetMutator)
	history := new(MockRecorder)
	router := setupTestRouter(NewAdjustmentService(store, assets, history))

	asset := &models.Asset{ID: 12, AssetName: "Projector"}
	assets.On("GetAsset", 12).Return(asset, nil)
	store.On("PersistAdjustment", mock.Anything).Return(55, nil)
	assets.On("RemoveAsset", 12).Return(int64(1), nil)
	history.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	resp := postAdjustment(router, models.AdjustmentRequest{
		AssetID:        12,
		AdjustmentType: "Lost",
		Reason:         "Missing since audit",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, float64(55), body["id"])
}

func TestCreateAdjustmentRejectsUnknownType(t *testing.T) {
	router := setupTestRouter(NewAdjustmentService(new(MockAdjustmentStore), new(MockAssetMutator), new(MockRecorder)))

	resp := postAdjustment(router, models.AdjustmentRequest{
		AssetID:        12,
		AdjustmentType: "Shrinkage",
		Reason:         "Audit",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid adjustment type")
}

func TestCreateAdjustmentUnknownAssetReturnsNotFound(t *testing.T) {
	store := new(MockAdjustmentStore)
	assets := new(MockAssetMutator)
	router := setupTestRouter(NewAdjustmentService(store, assets, new(MockRecorder)))

	assets.On("GetAsset", 99).Return(nil, nil)

	resp := postAdjustment(router, models.AdjustmentRequest{
		AssetID:        99,
		AdjustmentType: "Lost",
		Reason:         "Missing",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateAdjustmentSideEffectFailureReportsCommittedID(t *testing.T) {
	store := new(MockAdjustmentStore)
	assets := new(MockAssetMutator)
	router := setupTestRouter(NewAdjustmentService(store, assets, new(MockRecorder)))

	asset := &models.Asset{ID: 12, AssetName: "Projector"}
	assets.On("GetAsset", 12).Return(asset, nil)
	store.On("PersistAdjustment", mock.Anything).Return(56, nil)
	assets.On("RemoveAsset", 12).Return(int64(0), assert.AnError)

	resp := postAdjustment(router, models.AdjustmentRequest{
		AssetID:        12,
		AdjustmentType: "Damaged",
		Reason:         "Beyond repair",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, float64(56), body["id"])
}
