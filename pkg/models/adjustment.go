package models

import "time"

// StockAdjustment records one lifecycle event against an asset. The asset
// descriptive fields are a snapshot taken at adjustment time, not a live
// join, so later asset edits never rewrite history.
type StockAdjustment struct {
	ID             int        `json:"id" db:"id"`
	AssetID        int        `json:"asset_id" db:"asset_id"`
	AssetName      string     `json:"asset_name" db:"asset_name"`
	SerialNumber   string     `json:"serial_number" db:"serial_number"`
	Category       string     `json:"category" db:"category"`
	Subcategory    string     `json:"subcategory" db:"subcategory"`
	Department     string     `json:"department" db:"department"`
	Location       string     `json:"location" db:"location"`
	Custodian      string     `json:"custodian" db:"custodian"`
	AdjustmentType string     `json:"adjustment_type" db:"adjustment_type"`
	Reason         string     `json:"reason" db:"reason"`
	AdjustmentDate string     `json:"adjustment_date" db:"adjustment_date"`
	Remarks        string     `json:"remarks" db:"remarks"`
	CreatedAt      *time.Time `json:"created_at,omitempty" db:"created_at"`
}

type AdjustmentRequest struct {
	AssetID        int    `json:"asset_id"`
	AdjustmentType string `json:"adjustment_type"`
	Reason         string `json:"reason"`
	AdjustmentDate string `json:"adjustment_date"`
	Remarks        string `json:"remarks"`
	CreatedBy      string `json:"created_by"`
}
