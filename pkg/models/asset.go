package models

import "time"

// Asset is one physically tracked inventory item. The depreciation trio
// (AnnualDepreciation, AccumulatedDepreciation, BookValue) is derived and
// recomputed from purchase cost, useful life and acquisition date on every
// read; stored values are a cache, never authoritative.
type Asset struct {
	ID                      int      `json:"id" db:"id"`
	AssetName               string   `json:"asset_name" db:"asset_name"`
	Category                string   `json:"category" db:"category"`
	Subcategory             string   `json:"subcategory" db:"subcategory"`
	SerialNumber            string   `json:"serial_number" db:"serial_number"`
	Department              string   `json:"department" db:"department"`
	Location                string   `json:"location" db:"location"`
	Custodian               string   `json:"custodian" db:"custodian"`
	Status                  string   `json:"status" db:"status"`
	PurchaseCost            *float64 `json:"purchase_cost" db:"purchase_cost"`
	AcquisitionDate         string   `json:"acquisition_date" db:"acquisition_date"`
	DateSupplied            string   `json:"date_supplied" db:"date_supplied"`
	Description             string   `json:"description" db:"description"`
	UsefulLife              *float64 `json:"useful_life" db:"useful_life"`
	DepreciationMethod      string   `json:"depreciation_method" db:"depreciation_method"`
	AnnualDepreciation      *float64 `json:"annual_depreciation" db:"annual_depreciation"`
	AccumulatedDepreciation *float64 `json:"accumulated_depreciation" db:"accumulated_depreciation"`
	BookValue               *float64 `json:"book_value" db:"book_value"`
	Supplier                string   `json:"supplier" db:"supplier"`
	SupplierContactPerson   string   `json:"supplier_contact_person" db:"supplier_contact_person"`
	SupplierContactNumber   string   `json:"supplier_contact_number" db:"supplier_contact_number"`
	SupplierEmail           string   `json:"supplier_email" db:"supplier_email"`
	SupplierAddress         string   `json:"supplier_address" db:"supplier_address"`
	DocumentNumber          string   `json:"document_number" db:"document_number"`
	Remarks                 string   `json:"remarks" db:"remarks"`
	WarrantyDetails         string   `json:"warranty_details" db:"warranty_details"`
	CreatedAt               *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// AssetInput is the raw payload arriving over the request channel. The UI
// historically sent `name` and `asset_name` interchangeably and numeric
// fields as numbers, quoted strings or empty strings; Numeric and the
// record builder absorb those variants in one place.
type AssetInput struct {
	Name                  string  `json:"name"`
	AssetName             string  `json:"asset_name"`
	Category              string  `json:"category"`
	Subcategory           string  `json:"subcategory"`
	SerialNumber          string  `json:"serial_number"`
	Department            string  `json:"department"`
	Location              string  `json:"location"`
	Custodian             string  `json:"custodian"`
	Status                string  `json:"status"`
	PurchaseCost          Numeric `json:"purchase_cost"`
	AcquisitionDate       string  `json:"acquisition_date"`
	DateSupplied          string  `json:"date_supplied"`
	Description           string  `json:"description"`
	UsefulLife            Numeric `json:"useful_life"`
	DepreciationMethod    string  `json:"depreciation_method"`
	Supplier              string  `json:"supplier"`
	SupplierContactPerson string  `json:"supplier_contact_person"`
	SupplierContactNumber string  `json:"supplier_contact_number"`
	SupplierEmail         string  `json:"supplier_email"`
	SupplierAddress       string  `json:"supplier_address"`
	DocumentNumber        string  `json:"document_number"`
	Remarks               string  `json:"remarks"`
	WarrantyDetails       string  `json:"warranty_details"`
}

func (a *Asset) CreateLogView() HistoryEntry {
	id := a.ID
	name := a.AssetName
	return HistoryEntry{
		AssetID:   &id,
		AssetName: &name,
	}
}
