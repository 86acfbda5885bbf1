package rollups

import (
	"inventory/pkg/models"
)

// RollupStore is the persistence surface for the maintainer; satisfied by
// *RollupRepository.
type RollupStore interface {
	PruneDepartments() error
	PruneCategories() error
	GetDepartments(order string) ([]models.DepartmentRollup, error)
	GetCategories(order string) ([]models.CategoryRollup, error)
	CountDepartmentAssets(department string) (int, int, error)
	CountCategoryAssets(category string) (int, int, error)
	UpdateDepartmentCounts(id, totalAssets, personnel int) error
	UpdateCategoryCounts(id, assetCount, subcategories int) error
	RemoveCategoryCascade(id int) (int64, error)
}

// RollupService keeps the derived department/category counters fresh. The
// prune+recompute+persist sequence runs on every listing fetch, so the
// counters are exact as of the most recent fetch and merely stale, never
// corrupt, in between: every value is idempotently derivable from the
// asset table, which is why concurrent fetches can race without locking.
type RollupService struct {
	store RollupStore
}

func NewRollupService(store RollupStore) *RollupService {
	return &RollupService{store: store}
}

func (s *RollupService) ListDepartments(order string) ([]models.DepartmentRollup, error) {
	if err := s.store.PruneDepartments(); err != nil {
		return nil, err
	}

	departments, err := s.store.GetDepartments(order)
	if err != nil {
		return nil, err
	}

	for i := range departments {
		totalAssets, personnel, err := s.store.CountDepartmentAssets(departments[i].Department)
		if err != nil {
			return nil, err
		}

		if err := s.store.UpdateDepartmentCounts(departments[i].ID, totalAssets, personnel); err != nil {
			return nil, err
		}

		departments[i].TotalAssets = totalAssets
		departments[i].AssignedPersonnelCount = personnel
	}

	return departments, nil
}

// DeleteCategory removes the rollup row and detaches referencing assets
// in one transactional sweep.
func (s *RollupService) DeleteCategory(id int) (int64, error) {
	return s.store.RemoveCategoryCascade(id)
}

func (s *RollupService) ListCategories(order string) ([]models.CategoryRollup, error) {
	if err := s.store.PruneCategories(); err != nil {
		return nil, err
	}

	categories, err := s.store.GetCategories(order)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		assetCount, subcategories, err := s.store.CountCategoryAssets(categories[i].CategoryName)
		if err != nil {
			return nil, err
		}

		if err := s.store.UpdateCategoryCounts(categories[i].ID, assetCount, subcategories); err != nil {
			return nil, err
		}

		categories[i].AssetCount = assetCount
		categories[i].Subcategories = subcategories
	}

	return categories, nil
}
