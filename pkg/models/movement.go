package models

import "time"

// InventoryMovement documents a relocation or custodian change for one
// asset. Inserting a movement with a ToCustodian also reassigns the
// asset's custodian.
type InventoryMovement struct {
	ID             int        `json:"id" db:"id"`
	AssetID        int        `json:"asset_id" db:"asset_id"`
	AssetName      string     `json:"asset_name" db:"asset_name"`
	SerialNumber   string     `json:"serial_number" db:"serial_number"`
	MovementDate   string     `json:"movement_date" db:"movement_date"`
	MovementType   string     `json:"movement_type" db:"movement_type"`
	FromLocation   string     `json:"from_location" db:"from_location"`
	ToLocation     string     `json:"to_location" db:"to_location"`
	FromCustodian  string     `json:"from_custodian" db:"from_custodian"`
	ToCustodian    string     `json:"to_custodian" db:"to_custodian"`
	FromDepartment string     `json:"from_department" db:"from_department"`
	ToDepartment   string     `json:"to_department" db:"to_department"`
	PerformedBy    string     `json:"performed_by" db:"performed_by"`
	Remarks        string     `json:"remarks" db:"remarks"`
	CreatedAt      *time.Time `json:"created_at,omitempty" db:"created_at"`
}

type MovementRequest struct {
	AssetID        int    `json:"asset_id" binding:"required"`
	MovementDate   string `json:"movement_date"`
	MovementType   string `json:"movement_type" binding:"required"`
	FromLocation   string `json:"from_location"`
	ToLocation     string `json:"to_location"`
	FromCustodian  string `json:"from_custodian"`
	ToCustodian    string `json:"to_custodian"`
	FromDepartment string `json:"from_department"`
	ToDepartment   string `json:"to_department"`
	PerformedBy    string `json:"performed_by"`
	Remarks        string `json:"remarks"`
}
