package assets

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"inventory/internal/repository"
	custom_error "inventory/pkg/errors"
	"inventory/pkg/models"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{
		repository: r,
	}
}

func assetRecord(a models.Asset) goqu.Record {
	return goqu.Record{
		"asset_name":               a.AssetName,
		"category":                 a.Category,
		"subcategory":              a.Subcategory,
		"serial_number":            a.SerialNumber,
		"department":               a.Department,
		"location":                 a.Location,
		"custodian":                a.Custodian,
		"status":                   a.Status,
		"purchase_cost":            a.PurchaseCost,
		"acquisition_date":         a.AcquisitionDate,
		"date_supplied":            a.DateSupplied,
		"description":              a.Description,
		"useful_life":              a.UsefulLife,
		"depreciation_method":      a.DepreciationMethod,
		"annual_depreciation":      a.AnnualDepreciation,
		"accumulated_depreciation": a.AccumulatedDepreciation,
		"book_value":               a.BookValue,
		"supplier":                 a.Supplier,
		"supplier_contact_person":  a.SupplierContactPerson,
		"supplier_contact_number":  a.SupplierContactNumber,
		"supplier_email":           a.SupplierEmail,
		"supplier_address":         a.SupplierAddress,
		"document_number":          a.DocumentNumber,
		"remarks":                  a.Remarks,
		"warranty_details":         a.WarrantyDetails,
	}
}

// retiredAssetIDs is the ids of assets carrying a Lost or Damaged
// adjustment. The adjustment flow also hard-deletes those rows, but the
// insert and the delete are separate statements; this subquery keeps an
// orphaned row out of active listings if the delete never landed.
func (r *AssetsRepository) retiredAssetIDs() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		From("stock_adjustments").
		Select("asset_id").
		Where(goqu.L("LOWER(adjustment_type)").In("lost", "damaged"))
}

func (r *AssetsRepository) GetActiveAssets() ([]models.Asset, error) {
	query := r.repository.GoquDBWrapper.
		From("assets").
		Where(goqu.C("id").NotIn(r.retiredAssetIDs())).
		Order(goqu.I("created_at").Desc())

	var assets []models.Asset
	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	return assets, nil
}

func (r *AssetsRepository) GetAsset(id int) (*models.Asset, error) {
	var asset models.Asset
	found, err := r.repository.GoquDBWrapper.
		From("assets").
		Where(goqu.Ex{"id": id}).
		Executor().
		ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	return &asset, nil
}

func (r *AssetsRepository) PersistAsset(asset models.Asset) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("assets").
		Rows(assetRecord(asset)).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return 0, custom_error.WrapDBError("duplicate value on asset insert", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert asset record: %w", err)
	}

	return id, nil
}

func (r *AssetsRepository) UpdateAsset(id int, asset models.Asset) (int64, error) {
	record := assetRecord(asset)
	record["updated_at"] = goqu.L("NOW()")

	res, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to update asset %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *AssetsRepository) UpdateAssetStatus(id int, status string) error {
	_, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(goqu.Record{"status": status, "updated_at": goqu.L("NOW()")}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update status of asset %d: %w", id, err)
	}

	return nil
}

func (r *AssetsRepository) RemoveAsset(id int) (int64, error) {
	res, err := r.repository.GoquDBWrapper.
		Delete("assets").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return 0, fmt.Errorf("failed to delete asset %d: %w", id, err)
	}

	return res.RowsAffected()
}

func (r *AssetsRepository) UpdateCustodian(assetID int, custodian string) error {
	_, err := r.repository.GoquDBWrapper.
		Update("assets").
		Set(goqu.Record{"custodian": custodian, "updated_at": goqu.L("NOW()")}).
		Where(goqu.Ex{"id": assetID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update custodian of asset %d: %w", assetID, err)
	}

	return nil
}
