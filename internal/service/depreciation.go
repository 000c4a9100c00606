package service

// depreciation.go — straight-line book value calculation.
// The original product duplicated this formula in a database function and in
// three front-end components; here it lives once and everything (asset
// responses, exports, dashboard, disposal) derives from it.

import (
	"time"

	"github.com/shopspring/decimal"
)

const daysPerYear = 365.25

// BookValue is the derived depreciation state of an asset at a point in time.
type BookValue struct {
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
	YearsElapsed            decimal.Decimal `json:"years_elapsed"`
	FullyDepreciated        bool            `json:"fully_depreciated"`
}

// ComputeBookValue applies straight-line depreciation:
//
//	annual       = (purchase - residual) / usefulLifeYears
//	depreciation = annual * min(yearsElapsed, usefulLifeYears), floored at 0
//	bookValue    = max(residual, purchase - depreciation)
//
// usefulLifeYears must be validated > 0 by the caller; the formula itself
// never divides by zero because invalid inputs are rejected at the boundary.
func ComputeBookValue(purchase, residual decimal.Decimal, usefulLifeYears int, purchaseDate, asOf time.Time) BookValue {
	life := decimal.NewFromInt(int64(usefulLifeYears))

	yearsElapsed := decimal.NewFromFloat(asOf.Sub(purchaseDate).Hours() / (daysPerYear * 24))
	if yearsElapsed.IsNegative() {
		yearsElapsed = decimal.Zero
	}

	effective := yearsElapsed
	if effective.GreaterThan(life) {
		effective = life
	}

	annual := purchase.Sub(residual).Div(life)
	dep := annual.Mul(effective)
	if dep.IsNegative() {
		dep = decimal.Zero
	}

	book := purchase.Sub(dep)
	if book.LessThan(residual) {
		book = residual
		dep = purchase.Sub(residual)
	}

	return BookValue{
		AccumulatedDepreciation: dep.Round(2),
		BookValue:               book.Round(2),
		YearsElapsed:            yearsElapsed.Round(4),
		FullyDepreciated:        !effective.LessThan(life),
	}
}
