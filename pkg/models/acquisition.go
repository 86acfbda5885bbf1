package models

import "time"

// Acquisition is a purchase event for one or more identical asset units.
// TotalCost is always recomputed as quantity × unit cost on insert and
// update; a caller-supplied value is discarded.
type Acquisition struct {
	ID              int        `json:"id" db:"id"`
	AssetName       string     `json:"asset_name" db:"asset_name"`
	Category        string     `json:"category" db:"category"`
	Subcategory     string     `json:"subcategory" db:"subcategory"`
	Quantity        int        `json:"quantity" db:"quantity"`
	Supplier        string     `json:"supplier" db:"supplier"`
	AcquisitionDate string     `json:"acquisition_date" db:"acquisition_date"`
	UnitCost        *float64   `json:"unit_cost" db:"unit_cost"`
	TotalCost       *float64   `json:"total_cost" db:"total_cost"`
	DocumentNumber  string     `json:"document_number" db:"document_number"`
	Remarks         string     `json:"remarks" db:"remarks"`
	CreatedAt       *time.Time `json:"created_at,omitempty" db:"created_at"`
}

// AcquisitionRequest is the inbound payload for creating or updating an
// acquisition. Quantity must be at least 1: it is the number of physical
// units the expansion workflow will fan out into.
type AcquisitionRequest struct {
	AssetName       string  `json:"asset_name" binding:"required"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	Quantity        int     `json:"quantity" binding:"required,gte=1"`
	Supplier        string  `json:"supplier"`
	AcquisitionDate string  `json:"acquisition_date"`
	UnitCost        Numeric `json:"unit_cost"`
	DocumentNumber  string  `json:"document_number"`
	Remarks         string  `json:"remarks"`
}
