package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func yearsAfter(t0 time.Time, years float64) time.Time {
	return t0.Add(time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
}

func TestComputeBookValue_MidLife(t *testing.T) {
	t0 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	bv := ComputeBookValue(
		decimal.NewFromInt(10000),
		decimal.NewFromInt(1000),
		5,
		t0,
		yearsAfter(t0, 2.5),
	)

	assert.Equal(t, "4500.00", bv.AccumulatedDepreciation.StringFixed(2))
	assert.Equal(t, "5500.00", bv.BookValue.StringFixed(2))
	assert.False(t, bv.FullyDepreciated)
}

func TestComputeBookValue_BeforePurchase(t *testing.T) {
	t0 := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	bv := ComputeBookValue(
		decimal.NewFromInt(10000),
		decimal.NewFromInt(1000),
		5,
		t0,
		t0.AddDate(-1, 0, 0),
	)

	assert.True(t, bv.AccumulatedDepreciation.IsZero())
	assert.Equal(t, "10000.00", bv.BookValue.StringFixed(2))
	assert.True(t, bv.YearsElapsed.IsZero())
	assert.False(t, bv.FullyDepreciated)
}

func TestComputeBookValue_BeyondLifeClampsToResidual(t *testing.T) {
	t0 := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	bv := ComputeBookValue(
		decimal.NewFromInt(10000),
		decimal.NewFromInt(1000),
		5,
		t0,
		yearsAfter(t0, 12),
	)

	assert.Equal(t, "9000.00", bv.AccumulatedDepreciation.StringFixed(2))
	assert.Equal(t, "1000.00", bv.BookValue.StringFixed(2))
	assert.True(t, bv.FullyDepreciated)
}

func TestComputeBookValue_ExactlyAtEndOfLife(t *testing.T) {
	t0 := time.Date(2018, 3, 15, 0, 0, 0, 0, time.UTC)
	bv := ComputeBookValue(
		decimal.NewFromInt(7500),
		decimal.Zero,
		3,
		t0,
		yearsAfter(t0, 3),
	)

	assert.Equal(t, "7500.00", bv.AccumulatedDepreciation.StringFixed(2))
	assert.Equal(t, "0.00", bv.BookValue.StringFixed(2))
	assert.True(t, bv.FullyDepreciated)
}

func TestComputeBookValue_ZeroResidualFullWriteOff(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	bv := ComputeBookValue(
		decimal.NewFromInt(1200),
		decimal.Zero,
		4,
		t0,
		yearsAfter(t0, 1),
	)

	assert.Equal(t, "300.00", bv.AccumulatedDepreciation.StringFixed(2))
	assert.Equal(t, "900.00", bv.BookValue.StringFixed(2))
}

func TestComputeBookValue_NeverBelowResidual(t *testing.T) {
	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, years := range []float64{0, 0.1, 1, 4.99, 5, 5.01, 50} {
		bv := ComputeBookValue(
			decimal.NewFromInt(10000),
			decimal.NewFromInt(2000),
			5,
			t0,
			yearsAfter(t0, years),
		)
		assert.True(t, bv.BookValue.GreaterThanOrEqual(decimal.NewFromInt(2000)),
			"book value fell below residual at %.2f years", years)
		assert.True(t, bv.BookValue.LessThanOrEqual(decimal.NewFromInt(10000)),
			"book value exceeded purchase at %.2f years", years)
	}
}
