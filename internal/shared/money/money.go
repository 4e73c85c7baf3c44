// Package money holds the rounding policy shared by every payroll
// computation: two fractional digits, half-up.
package money

import "github.com/shopspring/decimal"

const Places = 2

var sixty = decimal.NewFromInt(60)

// Round rounds half away from zero, which is half-up for the non-negative
// amounts the engine produces.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

func HoursFromMinutes(minutes int64) decimal.Decimal {
	return Round(decimal.NewFromInt(minutes).Div(sixty))
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// String formats with exactly two fractional digits.
func String(d decimal.Decimal) string {
	return d.StringFixed(Places)
}
