package rollups

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"inventory/internal/repository"
	custom_error "inventory/pkg/errors"
	"inventory/pkg/models"
)

type RollupRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *RollupRepository {
	return &RollupRepository{
		repository: r,
	}
}

// referencedValues is the distinct non-empty values of an asset column;
// rollup rows outside this set are prune targets.
func (r *RollupRepository) referencedValues(column string) *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		From("assets").
		SelectDistinct(column).
		Where(
			goqu.C(column).IsNotNull(),
			goqu.C(column).Neq(""),
		)
}

func (r *RollupRepository) PruneDepartments() error {
	_, err := r.repository.GoquDBWrapper.
		Delete("departments").
		Where(goqu.C("department").NotIn(r.referencedValues("department"))).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to prune department rollups: %w", err)
	}

	return nil
}

func (r *RollupRepository) PruneCategories() error {
	_, err := r.repository.GoquDBWrapper.
		Delete("categories").
		Where(goqu.C("category_name").NotIn(r.referencedValues("category"))).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to prune category rollups: %w", err)
	}

	return nil
}

func (r *RollupRepository) GetDepartments(order string) ([]models.DepartmentRollup, error) {
	query := r.repository.GoquDBWrapper.From("departments")
	if order == "desc" {
		query = query.Order(goqu.I("department").Desc())
	} else {
		query = query.Order(goqu.I("department").Asc())
	}

	var departments []models.DepartmentRollup
	if err := query.Executor().ScanStructs(&departments); err != nil {
		return nil, fmt.Errorf("unable to select departments: %w", err)
	}

	return departments, nil
}

func (r *RollupRepository) GetCategories(order string) ([]models.CategoryRollup, error) {
	query := r.repository.GoquDBWrapper.From("categories")
	if order == "desc" {
		query = query.Order(goqu.I("category_name").Desc())
	} else {
		query = query.Order(goqu.I("category_name").Asc())
	}

	var categories []models.CategoryRollup
	if err := query.Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("unable to select categories: %w", err)
	}

	return categories, nil
}

// CountDepartmentAssets returns the total asset count and the distinct
// non-empty custodian count for one department.
func (r *RollupRepository) CountDepartmentAssets(department string) (int, int, error) {
	var totalAssets int
	_, err := r.repository.GoquDBWrapper.
		From("assets").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{"department": department}).
		Executor().
		ScanVal(&totalAssets)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count assets for department %q: %w", department, err)
	}

	var personnel int
	_, err = r.repository.GoquDBWrapper.
		From("assets").
		Select(goqu.L("COUNT(DISTINCT custodian)")).
		Where(
			goqu.Ex{"department": department},
			goqu.C("custodian").IsNotNull(),
			goqu.C("custodian").Neq(""),
		).
		Executor().
		ScanVal(&personnel)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count personnel for department %q: %w", department, err)
	}

	return totalAssets, personnel, nil
}

// CountCategoryAssets returns the asset count and the distinct non-empty
// subcategory count for one category.
func (r *RollupRepository) CountCategoryAssets(category string) (int, int, error) {
	var assetCount int
	_, err := r.repository.GoquDBWrapper.
		From("assets").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{"category": category}).
		Executor().
		ScanVal(&assetCount)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count assets for category %q: %w", category, err)
	}

	var subcategories int
	_, err = r.repository.GoquDBWrapper.
		From("assets").
		Select(goqu.L("COUNT(DISTINCT subcategory)")).
		Where(
			goqu.Ex{"category": category},
			goqu.C("subcategory").IsNotNull(),
			goqu.C("subcategory").Neq(""),
		).
		Executor().
		ScanVal(&subcategories)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count subcategories for category %q: %w", category, err)
	}

	return assetCount, subcategories, nil
}

func (r *RollupRepository) UpdateDepartmentCounts(id, totalAssets, personnel int) error {
	_, err := r.repository.GoquDBWrapper.
		Update("departments").
		Set(goqu.Record{
			"total_assets":             totalAssets,
			"assigned_personnel_count": personnel,
			"updated_at":               goqu.L("NOW()"),
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update department rollup %d: %w", id, err)
	}

	return nil
}

func (r *RollupRepository) UpdateCategoryCounts(id, assetCount, subcategories int) error {
	_, err := r.repository.GoquDBWrapper.
		Update("categories").
		Set(goqu.Record{
			"asset_count":   assetCount,
			"subcategories": subcategories,
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update category rollup %d: %w", id, err)
	}

	return nil
}

// EnsureDepartment inserts a rollup row for the name unless one exists.
// Satisfies assets.DepartmentEnsurer.
func (r *RollupRepository) EnsureDepartment(name string) error {
	var id int
	found, err := r.repository.GoquDBWrapper.
		From("departments").
		Select("id").
		Where(goqu.Ex{"department": name}).
		Executor().
		ScanVal(&id)
	if err != nil {
		return fmt.Errorf("failed to look up department %q: %w", name, err)
	}
	if found {
		return nil
	}

	_, err = r.repository.GoquDBWrapper.
		Insert("departments").
		Rows(goqu.Record{"department": name}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to create department %q: %w", name, err)
	}

	return nil
}

func (r *RollupRepository) PersistDepartment(req models.DepartmentRequest) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("departments").
		Rows(goqu.Record{"department": req.Name, "description": req.Description}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return 0, custom_error.WrapDBError("duplicate department", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert department: %w", err)
	}

	return id, nil
}

func (r *RollupRepository) UpdateDepartment(id int, req models.DepartmentRequest) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Update("departments").
		Set(goqu.Record{
			"department":  req.Name,
			"description": req.Description,
			"updated_at":  goqu.L("NOW()"),
		}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to update department %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *RollupRepository) RemoveDepartment(id int) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Delete("departments").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete department %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *RollupRepository) PersistCategory(req models.CategoryRequest) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("categories").
		Rows(goqu.Record{
			"category_name": req.Name,
			"description":   req.Description,
			"date_created":  goqu.L("NOW()"),
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return 0, custom_error.WrapDBError("duplicate category", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	return id, nil
}

func (r *RollupRepository) UpdateCategory(id int, req models.CategoryRequest) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Update("categories").
		Set(goqu.Record{"category_name": req.Name, "description": req.Description}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to update category %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *RollupRepository) GetCategoryName(id int) (string, error) {
	var name string
	found, err := r.repository.GoquDBWrapper.
		From("categories").
		Select("category_name").
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanVal(&name)
	if err != nil {
		return "", fmt.Errorf("failed to look up category %d: %w", id, err)
	}
	if !found {
		return "", nil
	}

	return name, nil
}

// RemoveCategoryCascade deletes the category row and blanks the category
// field on any asset still referencing it. Both statements run in one
// transaction: a deleted category must not resurrect on the next rollup
// pass, and no asset may keep pointing at a name that no longer exists.
func (r *RollupRepository) RemoveCategoryCascade(id int) (int64, error) {
	name, err := r.GetCategoryName(id)
	if err != nil {
		return 0, err
	}

	var affected int64
	err = repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		res, err := tx.
			Delete("categories").
			Where(goqu.Ex{"id": id}).
			Executor().
			Exec()
		if err != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}

		affected, err = res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 || name == "" {
			return nil
		}

		_, err = tx.
			Update("assets").
			Set(goqu.Record{"category": ""}).
			Where(goqu.Ex{"category": name}).
			Executor().
			Exec()
		if err != nil {
			return fmt.Errorf("failed to detach assets from category %q: %w", name, err)
		}

		return nil
	})

	return affected, err
}
