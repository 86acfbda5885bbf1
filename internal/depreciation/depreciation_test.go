package depreciation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

var asOf = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestCalculate(t *testing.T) {
	// acquired 2022-01-10, 3 full anniversaries have passed by 2025-06-15
	res := Calculate(f(1500), f(5), "2022-01-10", asOf)

	assert.Equal(t, 300.0, *res.Annual)
	assert.Equal(t, 900.0, *res.Accumulated)
	assert.Equal(t, 600.0, *res.BookValue)
}

func TestCalculateAnniversaryNotYetReached(t *testing.T) {
	// acquired 2022-08-01: the 2025 anniversary is still ahead of asOf
	res := Calculate(f(1500), f(5), "2022-08-01", asOf)

	assert.Equal(t, 300.0, *res.Annual)
	assert.Equal(t, 600.0, *res.Accumulated)
	assert.Equal(t, 900.0, *res.BookValue)
}

func TestCalculateSameMonthDayBoundary(t *testing.T) {
	// anniversary exactly on asOf counts as a completed year
	res := Calculate(f(1000), f(10), "2024-06-15", asOf)
	assert.Equal(t, 100.0, *res.Accumulated)

	// one day later than asOf's day: not yet
	res = Calculate(f(1000), f(10), "2024-06-16", asOf)
	assert.Equal(t, 0.0, *res.Accumulated)
}

func TestCalculateClampsToUsefulLife(t *testing.T) {
	// 20 years after acquisition on a 5-year life: fully depreciated
	res := Calculate(f(1000), f(5), "2005-01-01", asOf)

	assert.Equal(t, 200.0, *res.Annual)
	assert.Equal(t, 1000.0, *res.Accumulated)
	assert.Equal(t, 0.0, *res.BookValue)
	assert.LessOrEqual(t, *res.Accumulated, 1000.0)
}

func TestCalculateBookValueNeverNegative(t *testing.T) {
	// rounding of annual up can overshoot the cost near end of life
	res := Calculate(f(100), f(3), "2000-01-01", asOf)

	assert.Equal(t, 33.33, *res.Annual)
	assert.GreaterOrEqual(t, *res.BookValue, 0.0)
}

func TestCalculateMissingInputs(t *testing.T) {
	cases := []struct {
		name string
		cost *float64
		life *float64
	}{
		{"nil cost", nil, f(5)},
		{"nil life", f(1000), nil},
		{"zero cost", f(0), f(5)},
		{"zero life", f(1000), f(0)},
		{"both nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Calculate(tc.cost, tc.life, "2022-01-10", asOf)
			assert.Nil(t, res.Annual)
			assert.Nil(t, res.Accumulated)
			assert.Nil(t, res.BookValue)
		})
	}
}

func TestCalculateNoAcquisitionDate(t *testing.T) {
	res := Calculate(f(1000), f(5), "", asOf)

	assert.Equal(t, 200.0, *res.Annual)
	assert.Equal(t, 0.0, *res.Accumulated)
	assert.Equal(t, 1000.0, *res.BookValue)

	// unparseable behaves the same as missing
	res = Calculate(f(1000), f(5), "last tuesday", asOf)
	assert.Equal(t, 0.0, *res.Accumulated)
}

func TestCalculateFutureAcquisitionDate(t *testing.T) {
	res := Calculate(f(1000), f(5), "2030-01-01", asOf)
	assert.Equal(t, 0.0, *res.Accumulated)
	assert.Equal(t, 1000.0, *res.BookValue)
}

func TestCalculateIsIdempotent(t *testing.T) {
	a := Calculate(f(1234.56), f(7), "2021-03-09", asOf)
	b := Calculate(f(1234.56), f(7), "2021-03-09", asOf)

	assert.Equal(t, *a.Annual, *b.Annual)
	assert.Equal(t, *a.Accumulated, *b.Accumulated)
	assert.Equal(t, *a.BookValue, *b.BookValue)
}

func TestCalculateInvariantsOverLifetime(t *testing.T) {
	cost, life := 987.65, 4.0
	acq := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)

	for yearOffset := 0; yearOffset <= 8; yearOffset++ {
		at := acq.AddDate(yearOffset, 1, 0)
		res := Calculate(f(cost), f(life), "2020-02-29", at)

		assert.LessOrEqual(t, *res.Accumulated, cost)
		assert.GreaterOrEqual(t, *res.BookValue, 0.0)
	}
}
