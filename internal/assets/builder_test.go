package assets

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inventory/pkg/models"
)

var buildAsOf = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func numeric(v float64) models.Numeric { return models.NumericFrom(v) }

func TestBuildForSaveNameReconciliation(t *testing.T) {
	// only name set: it becomes asset_name
	built := BuildForSave(models.AssetInput{Name: "Projector"}, nil, buildAsOf)
	assert.Equal(t, "Projector", built.AssetName)

	// both set: asset_name wins
	built = BuildForSave(models.AssetInput{Name: "Projector", AssetName: "Projector X200"}, nil, buildAsOf)
	assert.Equal(t, "Projector X200", built.AssetName)
}

func TestBuildForSaveDefaults(t *testing.T) {
	built := BuildForSave(models.AssetInput{Name: "Chair"}, nil, buildAsOf)

	assert.Equal(t, "Available", built.Status)
	assert.Equal(t, "Straight-Line", built.DepreciationMethod)
	assert.Equal(t, "", built.AcquisitionDate)
	assert.Equal(t, "", built.DateSupplied)
	assert.Nil(t, built.PurchaseCost)
	assert.Nil(t, built.UsefulLife)
}

func TestBuildForSaveEmptyNumericsBecomeNil(t *testing.T) {
	var input models.AssetInput
	payload := `{"name":"Desk","purchase_cost":"","useful_life":""}`
	assert.NoError(t, json.Unmarshal([]byte(payload), &input))

	built := BuildForSave(input, nil, buildAsOf)

	assert.Nil(t, built.PurchaseCost)
	assert.Nil(t, built.UsefulLife)
	assert.Nil(t, built.AnnualDepreciation)
	assert.Nil(t, built.AccumulatedDepreciation)
	assert.Nil(t, built.BookValue)
}

func TestBuildForSaveAcceptsQuotedNumbers(t *testing.T) {
	var input models.AssetInput
	payload := `{"name":"Desk","purchase_cost":"500","useful_life":5}`
	assert.NoError(t, json.Unmarshal([]byte(payload), &input))

	built := BuildForSave(input, nil, buildAsOf)

	assert.Equal(t, 500.0, *built.PurchaseCost)
	assert.Equal(t, 100.0, *built.AnnualDepreciation)
}

func TestBuildForSaveOverwritesCallerDepreciation(t *testing.T) {
	input := models.AssetInput{
		Name:            "Laptop",
		PurchaseCost:    numeric(1500),
		UsefulLife:      numeric(5),
		AcquisitionDate: "2022-01-10",
	}

	built := BuildForSave(input, nil, buildAsOf)

	// recomputation is authoritative regardless of payload contents
	assert.Equal(t, 300.0, *built.AnnualDepreciation)
	assert.Equal(t, 900.0, *built.AccumulatedDepreciation)
	assert.Equal(t, 600.0, *built.BookValue)
}

func TestBuildForSaveNormalizesDates(t *testing.T) {
	input := models.AssetInput{
		Name:            "Scanner",
		AcquisitionDate: "2024-01-10T08:30:00Z",
		DateSupplied:    "2024-02-01 09:00:00",
	}

	built := BuildForSave(input, nil, buildAsOf)

	assert.Equal(t, "2024-01-10", built.AcquisitionDate)
	assert.Equal(t, "2024-02-01", built.DateSupplied)
}

func TestBuildForSaveExtraMergesLast(t *testing.T) {
	input := models.AssetInput{
		Name:      "Printer",
		Custodian: "entered by hand",
		Location:  "Room 101",
	}

	built := BuildForSave(input, map[string]string{
		"custodian": "Jane Dela Cruz",
		"unknown":   "ignored",
	}, buildAsOf)

	assert.Equal(t, "Jane Dela Cruz", built.Custodian)
	assert.Equal(t, "Room 101", built.Location)
}
