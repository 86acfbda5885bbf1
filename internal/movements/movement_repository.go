package movements

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"inventory/internal/repository"
	"inventory/pkg/dates"
	"inventory/pkg/models"
)

type MovementRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *MovementRepository {
	return &MovementRepository{
		repository: r,
	}
}

func (r *MovementRepository) GetMovements() ([]models.InventoryMovement, error) {
	query := r.repository.GoquDBWrapper.
		From(goqu.T("inventory_movements").As("im")).
		LeftJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"im.asset_id": goqu.I("a.id")}),
		).
		Select(
			goqu.I("im.id").As("id"),
			goqu.I("im.asset_id").As("asset_id"),
			goqu.COALESCE(goqu.I("a.asset_name"), "").As("asset_name"),
			goqu.COALESCE(goqu.I("a.serial_number"), "").As("serial_number"),
			goqu.I("im.movement_date").As("movement_date"),
			goqu.I("im.movement_type").As("movement_type"),
			goqu.I("im.from_location").As("from_location"),
			goqu.I("im.to_location").As("to_location"),
			goqu.I("im.from_custodian").As("from_custodian"),
			goqu.I("im.to_custodian").As("to_custodian"),
			goqu.I("im.from_department").As("from_department"),
			goqu.I("im.to_department").As("to_department"),
			goqu.I("im.performed_by").As("performed_by"),
			goqu.I("im.remarks").As("remarks"),
			goqu.I("im.created_at").As("created_at"),
		).
		Order(goqu.I("im.movement_date").Desc())

	var movements []models.InventoryMovement
	if err := query.Executor().ScanStructs(&movements); err != nil {
		return nil, fmt.Errorf("unable to select inventory movements: %w", err)
	}

	return movements, nil
}

func (r *MovementRepository) PersistMovement(req models.MovementRequest) (int, error) {
	query := r.repository.GoquDBWrapper.
		Insert("inventory_movements").
		Rows(goqu.Record{
			"asset_id":        req.AssetID,
			"movement_date":   dates.Normalize(req.MovementDate),
			"movement_type":   req.MovementType,
			"from_location":   req.FromLocation,
			"to_location":     req.ToLocation,
			"from_custodian":  req.FromCustodian,
			"to_custodian":    req.ToCustodian,
			"from_department": req.FromDepartment,
			"to_department":   req.ToDepartment,
			"performed_by":    req.PerformedBy,
			"remarks":         req.Remarks,
		}).
		Returning("id")

	var id int
	if _, err := query.Executor().ScanVal(&id); err != nil {
		return 0, fmt.Errorf("failed to insert inventory movement: %w", err)
	}

	return id, nil
}
