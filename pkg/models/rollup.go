package models

import "time"

// DepartmentRollup is a derived row keyed by department name. TotalAssets
// and AssignedPersonnelCount are recomputed from the asset table on every
// listing fetch; rows with no referencing asset are pruned.
type DepartmentRollup struct {
	ID                     int        `json:"id" db:"id"`
	Department             string     `json:"department" db:"department"`
	Description            string     `json:"description" db:"description"`
	TotalAssets            int        `json:"total_assets" db:"total_assets"`
	AssignedPersonnelCount int        `json:"assigned_personnel_count" db:"assigned_personnel_count"`
	CreatedAt              *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// CategoryRollup is the analogous derived row keyed by category name.
// Subcategories holds the count of distinct non-empty subcategory values
// among the category's assets.
type CategoryRollup struct {
	ID            int        `json:"id" db:"id"`
	CategoryName  string     `json:"category_name" db:"category_name"`
	Description   string     `json:"description" db:"description"`
	AssetCount    int        `json:"asset_count" db:"asset_count"`
	Subcategories int        `json:"subcategories" db:"subcategories"`
	DateCreated   *time.Time `json:"date_created,omitempty" db:"date_created"`
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
