package acquisitions

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"

	"inventory/internal/repository"
	"inventory/pkg/dates"
	"inventory/pkg/models"
)

type AcquisitionRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AcquisitionRepository {
	return &AcquisitionRepository{
		repository: r,
	}
}

// totalCost recomputes quantity × unit cost; whatever the caller sent for
// total_cost is discarded.
func totalCost(quantity int, unitCost *float64) *float64 {
	if unitCost == nil {
		return nil
	}
	total, _ := decimal.NewFromFloat(*unitCost).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		Float64()
	return &total
}

func acquisitionRecord(req models.AcquisitionRequest) goqu.Record {
	return goqu.Record{
		"asset_name":       req.AssetName,
		"category":         req.Category,
		"subcategory":      req.Subcategory,
		"quantity":         req.Quantity,
		"supplier":         req.Supplier,
		"acquisition_date": dates.Normalize(req.AcquisitionDate),
		"unit_cost":        req.UnitCost.Value,
		"total_cost":       totalCost(req.Quantity, req.UnitCost.Value),
		"document_number":  req.DocumentNumber,
		"remarks":          req.Remarks,
	}
}

func (r *AcquisitionRepository) GetAcquisitions() ([]models.Acquisition, error) {
	var acquisitions []models.Acquisition
	err := r.repository.GoquDBWrapper.
		From("asset_acquisitions").
		Order(goqu.I("acquisition_date").Desc()).
		Executor().
		ScanStructs(&acquisitions)
	if err != nil {
		return nil, fmt.Errorf("unable to select acquisitions: %w", err)
	}

	return acquisitions, nil
}

func (r *AcquisitionRepository) GetAcquisition(id int) (*models.Acquisition, error) {
	var acquisition models.Acquisition
	found, err := r.repository.GoquDBWrapper.
		From("asset_acquisitions").
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStruct(&acquisition)
	if err != nil {
		return nil, fmt.Errorf("unable to select acquisition %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	return &acquisition, nil
}

func (r *AcquisitionRepository) PersistAcquisition(req models.AcquisitionRequest) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("asset_acquisitions").
		Rows(acquisitionRecord(req)).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert acquisition record: %w", err)
	}

	return id, nil
}

func (r *AcquisitionRepository) UpdateAcquisition(id int, req models.AcquisitionRequest) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Update("asset_acquisitions").
		Set(acquisitionRecord(req)).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to update acquisition %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *AcquisitionRepository) RemoveAcquisition(id int) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Delete("asset_acquisitions").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete acquisition %d: %w", id, err)
	}

	return res.RowsAffected()
}

// FindDateByDocumentNumber returns the acquisition date for a document
// number, or "" when no row matches. Satisfies assets.AcquisitionDateSync.
func (r *AcquisitionRepository) FindDateByDocumentNumber(documentNumber string) (string, error) {
	var date string
	found, err := r.repository.GoquDBWrapper.
		From("asset_acquisitions").
		Select("acquisition_date").
		Where(goqu.Ex{"document_number": documentNumber}).
		Limit(1).
		Executor().
		ScanVal(&date)
	if err != nil {
		return "", fmt.Errorf("failed to look up acquisition date for %q: %w", documentNumber, err)
	}
	if !found {
		return "", nil
	}

	return dates.Normalize(date), nil
}

func (r *AcquisitionRepository) UpdateDateByDocumentNumber(documentNumber, date string) error {
	_, err := r.repository.GoquDBWrapper.
		Update("asset_acquisitions").
		Set(goqu.Record{"acquisition_date": date}).
		Where(goqu.Ex{"document_number": documentNumber}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to sync acquisition date for %q: %w", documentNumber, err)
	}

	return nil
}
