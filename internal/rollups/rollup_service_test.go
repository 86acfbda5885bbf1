package rollups

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventory/pkg/models"
)

type MockRollupStore struct {
	mock.Mock
}

func (m *MockRollupStore) PruneDepartments() error {
	return m.Called().Error(0)
}

func (m *MockRollupStore) PruneCategories() error {
	return m.Called().Error(0)
}

func (m *MockRollupStore) GetDepartments(order string) ([]models.DepartmentRollup, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DepartmentRollup), args.Error(1)
}

func (m *MockRollupStore) GetCategories(order string) ([]models.CategoryRollup, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryRollup), args.Error(1)
}

func (m *MockRollupStore) CountDepartmentAssets(department string) (int, int, error) {
	args := m.Called(department)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockRollupStore) CountCategoryAssets(category string) (int, int, error) {
	args := m.Called(category)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockRollupStore) UpdateDepartmentCounts(id, totalAssets, personnel int) error {
	return m.Called(id, totalAssets, personnel).Error(0)
}

func (m *MockRollupStore) UpdateCategoryCounts(id, assetCount, subcategories int) error {
	return m.Called(id, assetCount, subcategories).Error(0)
}

func (m *MockRollupStore) RemoveCategoryCascade(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func TestListDepartmentsPrunesRecomputesAndPersists(t *testing.T) {
	store := new(MockRollupStore)
	service := NewRollupService(store)

	// department "B" had a rollup row but no assets: pruned before listing
	store.On("PruneDepartments").Return(nil).Once()
	store.On("GetDepartments", "asc").Return([]models.DepartmentRollup{
		{ID: 1, Department: "A", TotalAssets: 99},
	}, nil).Once()
	store.On("CountDepartmentAssets", "A").Return(3, 2, nil).Once()
	store.On("UpdateDepartmentCounts", 1, 3, 2).Return(nil).Once()

	departments, err := service.ListDepartments("asc")

	assert.NoError(t, err)
	assert.Len(t, departments, 1)
	assert.Equal(t, "A", departments[0].Department)
	assert.Equal(t, 3, departments[0].TotalAssets)
	assert.Equal(t, 2, departments[0].AssignedPersonnelCount)

	store.AssertExpectations(t)
}

func TestListDepartmentsPruneFailurePropagates(t *testing.T) {
	store := new(MockRollupStore)
	service := NewRollupService(store)

	store.On("PruneDepartments").Return(errors.New("deadlock")).Once()

	_, err := service.ListDepartments("asc")

	assert.Error(t, err)
	store.AssertNotCalled(t, "GetDepartments", mock.Anything)
}

func TestListCategories(t *testing.T) {
	store := new(MockRollupStore)
	service := NewRollupService(store)

	store.On("PruneCategories").Return(nil).Once()
	store.On("GetCategories", "desc").Return([]models.CategoryRollup{
		{ID: 4, CategoryName: "ICT"},
		{ID: 5, CategoryName: "Furniture"},
	}, nil).Once()
	store.On("CountCategoryAssets", "ICT").Return(7, 3, nil).Once()
	store.On("CountCategoryAssets", "Furniture").Return(2, 1, nil).Once()
	store.On("UpdateCategoryCounts", 4, 7, 3).Return(nil).Once()
	store.On("UpdateCategoryCounts", 5, 2, 1).Return(nil).Once()

	categories, err := service.ListCategories("desc")

	assert.NoError(t, err)
	assert.Equal(t, 7, categories[0].AssetCount)
	assert.Equal(t, 3, categories[0].Subcategories)

	store.AssertExpectations(t)
}

func TestDeleteCategoryCascadesThroughStore(t *testing.T) {
	store := new(MockRollupStore)
	service := NewRollupService(store)

	store.On("RemoveCategoryCascade", 5).Return(int64(1), nil).Once()

	affected, err := service.DeleteCategory(5)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	store.AssertExpectations(t)
}

func TestDeleteCategoryPropagatesStoreFailure(t *testing.T) {
	store := new(MockRollupStore)
	service := NewRollupService(store)

	store.On("RemoveCategoryCascade", 5).Return(int64(0), errors.New("deadlock")).Once()

	_, err := service.DeleteCategory(5)

	assert.Error(t, err)
}
