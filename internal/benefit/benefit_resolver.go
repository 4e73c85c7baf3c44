// Package benefit turns the benefits attached to a position into the
// itemised allowances a payroll carries.
package benefit

import (
	"strings"

	"go-payroll/internal/position"

	"github.com/shopspring/decimal"
)

const (
	RiceSubsidy       = "Rice Subsidy"
	PhoneAllowance    = "Phone Allowance"
	ClothingAllowance = "Clothing Allowance"
)

// Breakdown itemises the three known allowances. Any other benefit only
// contributes to Total.
type Breakdown struct {
	RiceSubsidy       decimal.Decimal
	PhoneAllowance    decimal.Decimal
	ClothingAllowance decimal.Decimal
	Total             decimal.Decimal
	Lines             []position.BenefitLine
}

func Zero() Breakdown {
	return Breakdown{
		RiceSubsidy:       decimal.Zero,
		PhoneAllowance:    decimal.Zero,
		ClothingAllowance: decimal.Zero,
		Total:             decimal.Zero,
	}
}

// Resolve is pure: names are matched case-insensitively and surrounding
// whitespace is ignored.
func Resolve(lines []position.BenefitLine) Breakdown {
	b := Zero()
	for _, l := range lines {
		switch strings.ToLower(strings.TrimSpace(l.BenefitName)) {
		case strings.ToLower(RiceSubsidy):
			b.RiceSubsidy = b.RiceSubsidy.Add(l.Value)
		case strings.ToLower(PhoneAllowance):
			b.PhoneAllowance = b.PhoneAllowance.Add(l.Value)
		case strings.ToLower(ClothingAllowance):
			b.ClothingAllowance = b.ClothingAllowance.Add(l.Value)
		}
		b.Total = b.Total.Add(l.Value)
	}
	b.Lines = lines
	return b
}
