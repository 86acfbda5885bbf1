package rollups

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func deleteCategory(store *MockRollupStore, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	handler := NewRollupHandler(NewRollupService(store), nil)
	router.DELETE("/categories/:id", handler.DeleteCategory)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDeleteCategoryRemovesRowAndDetachesAssets(t *testing.T) {
	store := new(MockRollupStore)
	store.On("RemoveCategoryCascade", 5).Return(int64(1), nil).Once()

	resp := deleteCategory(store, "/categories/5")

	assert.Equal(t, http.StatusOK, resp.Code)
	store.AssertExpectations(t)
}

func TestDeleteCategoryUnknownIDReturnsNotFound(t *testing.T) {
	store := new(MockRollupStore)
	store.On("RemoveCategoryCascade", 99).Return(int64(0), nil).Once()

	resp := deleteCategory(store, "/categories/99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteCategoryStoreFailureReturnsServerError(t *testing.T) {
	store := new(MockRollupStore)
	store.On("RemoveCategoryCascade", 5).Return(int64(0), errors.New("deadlock")).Once()

	resp := deleteCategory(store, "/categories/5")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
