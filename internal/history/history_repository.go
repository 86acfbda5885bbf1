package history

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"inventory/internal/repository"
	"inventory/pkg/models"
)

type HistoryRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *HistoryRepository {
	return &HistoryRepository{
		repository: r,
	}
}

func (r *HistoryRepository) GetHistory(limit int) ([]models.HistoryEntry, error) {
	query := r.repository.GoquDBWrapper.
		From("history").
		Order(goqu.I("timestamp").Desc(), goqu.I("id").Desc())

	if limit > 0 {
		query = query.Limit(uint(limit))
	}

	var entries []models.HistoryEntry
	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("unable to select history entries: %w", err)
	}

	return entries, nil
}
