package assets

import (
	"strings"
	"time"

	"inventory/internal/depreciation"
	"inventory/pkg/dates"
	"inventory/pkg/models"
)

// BuildForSave assembles a persist-ready asset from raw channel input.
// It is the single point where the historical name/asset_name split is
// reconciled (asset_name wins when both are present), where empty numeric
// fields become nil instead of 0, and where the derived depreciation trio
// is overwritten from the engine regardless of what the caller sent.
// Overrides are merged last. No I/O.
func BuildForSave(raw models.AssetInput, extra map[string]string, asOf time.Time) models.Asset {
	name := raw.AssetName
	if name == "" {
		name = raw.Name
	}

	status := raw.Status
	if status == "" {
		status = "Available"
	}

	method := raw.DepreciationMethod
	if method == "" {
		method = "Straight-Line"
	}

	// dates collapse to "" when missing, unlike the numeric fields which
	// collapse to nil; "unknown cost" and "no date entered" are distinct
	// states upstream and stay distinct here
	acquisitionDate := dates.Normalize(raw.AcquisitionDate)
	dateSupplied := dates.Normalize(raw.DateSupplied)

	dep := depreciation.Calculate(raw.PurchaseCost.Value, raw.UsefulLife.Value, acquisitionDate, asOf)

	asset := models.Asset{
		AssetName:               name,
		Category:                raw.Category,
		Subcategory:             raw.Subcategory,
		SerialNumber:            raw.SerialNumber,
		Department:              raw.Department,
		Location:                raw.Location,
		Custodian:               raw.Custodian,
		Status:                  status,
		PurchaseCost:            raw.PurchaseCost.Value,
		AcquisitionDate:         acquisitionDate,
		DateSupplied:            dateSupplied,
		Description:             raw.Description,
		UsefulLife:              raw.UsefulLife.Value,
		DepreciationMethod:      method,
		AnnualDepreciation:      dep.Annual,
		AccumulatedDepreciation: dep.Accumulated,
		BookValue:               dep.BookValue,
		Supplier:                raw.Supplier,
		SupplierContactPerson:   raw.SupplierContactPerson,
		SupplierContactNumber:   raw.SupplierContactNumber,
		SupplierEmail:           raw.SupplierEmail,
		SupplierAddress:         raw.SupplierAddress,
		DocumentNumber:          raw.DocumentNumber,
		Remarks:                 raw.Remarks,
		WarrantyDetails:         raw.WarrantyDetails,
	}

	for key, value := range extra {
		applyOverride(&asset, key, value)
	}

	return asset
}

// applyOverride handles the keys callers actually inject (resolved
// custodian, placement fields). Unknown keys are ignored.
func applyOverride(asset *models.Asset, key, value string) {
	switch strings.ToLower(key) {
	case "custodian":
		asset.Custodian = value
	case "department":
		asset.Department = value
	case "location":
		asset.Location = value
	case "status":
		asset.Status = value
	case "serial_number":
		asset.SerialNumber = value
	case "document_number":
		asset.DocumentNumber = value
	case "remarks":
		asset.Remarks = value
	}
}
