package adjustments

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"inventory/internal/repository"
	"inventory/pkg/models"
)

type AdjustmentRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AdjustmentRepository {
	return &AdjustmentRepository{
		repository: r,
	}
}

func (r *AdjustmentRepository) GetAdjustments() ([]models.StockAdjustment, error) {
	var adjustments []models.StockAdjustment
	err := r.repository.GoquDBWrapper.
		From("stock_adjustments").
		Order(goqu.I("adjustment_date").Desc()).
		Executor().
		ScanStructs(&adjustments)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock adjustments: %w", err)
	}

	return adjustments, nil
}

func (r *AdjustmentRepository) PersistAdjustment(adjustment models.StockAdjustment) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("stock_adjustments").
		Rows(goqu.Record{
			"asset_id":        adjustment.AssetID,
			"asset_name":      adjustment.AssetName,
			"serial_number":   adjustment.SerialNumber,
			"category":        adjustment.Category,
			"subcategory":     adjustment.Subcategory,
			"department":      adjustment.Department,
			"location":        adjustment.Location,
			"custodian":       adjustment.Custodian,
			"adjustment_type": adjustment.AdjustmentType,
			"reason":          adjustment.Reason,
			"adjustment_date": adjustment.AdjustmentDate,
			"remarks":         adjustment.Remarks,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert stock adjustment: %w", err)
	}

	return id, nil
}

func (r *AdjustmentRepository) RemoveAdjustment(id int) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Delete("stock_adjustments").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete stock adjustment %d: %w", id, err)
	}

	return res.RowsAffected()
}
