package dashboard

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"inventory/internal/repository"
)

type DashboardRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *DashboardRepository {
	return &DashboardRepository{
		repository: r,
	}
}

func (r *DashboardRepository) CountAssets() (int, error) {
	return r.countAssets(goqu.Ex{})
}

func (r *DashboardRepository) CountAssetsByStatus(status string) (int, error) {
	return r.countAssets(goqu.Ex{"status": status})
}

func (r *DashboardRepository) countAssets(where goqu.Ex) (int, error) {
	query := r.repository.GoquDBWrapper.
		From("assets").
		Select(goqu.COUNT("*")).
		Where(where)

	var count int
	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("unable to count assets: %w", err)
	}

	return count, nil
}
