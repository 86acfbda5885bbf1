// Package depreciation computes straight-line depreciation schedules.
// Calculate is pure and deterministic for a fixed asOf; the stored
// depreciation columns on an asset row are only a cache of the most recent
// computation, recomputed on every read and save.
package depreciation

import (
	"time"

	"github.com/shopspring/decimal"

	"inventory/pkg/dates"
)

// Result holds the derived trio. All three are nil when no schedule can be
// computed (missing or zero cost/life).
type Result struct {
	Annual      *float64
	Accumulated *float64
	BookValue   *float64
}

// Calculate derives the annual depreciation, the accumulated depreciation
// as of asOf, and the remaining book value.
//
// Years elapsed is an anniversary count: whole calendar years between the
// acquisition date and asOf, decremented by one when asOf's month/day
// precedes the acquisition anniversary, clamped to [0, usefulLife]. An
// empty or unparseable acquisition date counts as zero years.
//
// Negative or implausible inputs are not rejected; clamping the book value
// at zero and the elapsed years to the useful life is the only guard. That
// mirrors the upstream data, where validation lived in the UI.
func Calculate(purchaseCost, usefulLife *float64, acquisitionDate string, asOf time.Time) Result {
	if purchaseCost == nil || usefulLife == nil || *purchaseCost == 0 || *usefulLife == 0 {
		return Result{}
	}

	cost := decimal.NewFromFloat(*purchaseCost)
	life := decimal.NewFromFloat(*usefulLife)

	annual := cost.Div(life).Round(2)

	elapsed := yearsElapsed(acquisitionDate, asOf, *usefulLife)
	accumulated := annual.Mul(decimal.NewFromFloat(elapsed)).Round(2)

	book := cost.Sub(accumulated).Round(2)
	if book.IsNegative() {
		book = decimal.Zero
	}

	annualF, _ := annual.Float64()
	accumulatedF, _ := accumulated.Float64()
	bookF, _ := book.Float64()

	return Result{
		Annual:      &annualF,
		Accumulated: &accumulatedF,
		BookValue:   &bookF,
	}
}

func yearsElapsed(acquisitionDate string, asOf time.Time, usefulLife float64) float64 {
	acq, ok := dates.Parse(acquisitionDate)
	if !ok {
		return 0
	}

	years := asOf.Year() - acq.Year()
	if asOf.Month() < acq.Month() ||
		(asOf.Month() == acq.Month() && asOf.Day() < acq.Day()) {
		years--
	}

	elapsed := float64(years)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > usefulLife {
		elapsed = usefulLife
	}
	return elapsed
}
