package deduction

import (
	"sort"

	"go-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

type style int

const (
	styleFixed style = iota
	styleFlatRate
	styleProgressive
)

var styles = map[string]style{
	TypeSSS:            styleFixed,
	TypePhilHealth:     styleFlatRate,
	TypePagIbig:        styleFlatRate,
	TypeWithholdingTax: styleProgressive,
}

// RuleTable is an immutable snapshot of the global brackets, sorted
// ascending by lower limit within each type. It is safe for concurrent use.
type RuleTable struct {
	brackets       map[string][]DeductionRule
	pagIbigCeiling decimal.Decimal
}

func NewRuleTable(rules []DeductionRule, pagIbigCeiling decimal.Decimal) RuleTable {
	brackets := make(map[string][]DeductionRule)
	for _, r := range rules {
		if r.PayrollID != nil {
			continue
		}
		brackets[r.TypeName] = append(brackets[r.TypeName], r)
	}
	for _, rs := range brackets {
		sort.SliceStable(rs, func(i, j int) bool {
			return rs[i].LowerLimit.LessThan(rs[j].LowerLimit)
		})
	}
	return RuleTable{brackets: brackets, pagIbigCeiling: pagIbigCeiling}
}

func (t RuleTable) Len() int {
	n := 0
	for _, rs := range t.brackets {
		n += len(rs)
	}
	return n
}

// Resolve returns the contribution owed on amount. ok is false when no
// bracket matched, in which case the amount is zero.
func (t RuleTable) Resolve(typeName string, amount decimal.Decimal) (decimal.Decimal, bool) {
	rule, ok := t.match(typeName, amount)
	if !ok {
		return decimal.Zero, false
	}

	switch styles[typeName] {
	case styleFlatRate:
		v := money.Round(amount.Mul(rule.Rate))
		if typeName == TypePagIbig && t.pagIbigCeiling.IsPositive() {
			v = money.Min(v, t.pagIbigCeiling)
		}
		return v, true
	case styleProgressive:
		excess := amount.Sub(rule.LowerLimit)
		return money.Round(rule.BaseTax.Add(excess.Mul(rule.Rate))), true
	default:
		return rule.FixedAmount, true
	}
}

// Statutory applies the contribution types to the basic salary and the
// withholding tax to the gross income.
func (t RuleTable) Statutory(basic, gross decimal.Decimal) Statutory {
	var s Statutory
	resolve := func(typeName string, amount decimal.Decimal) decimal.Decimal {
		v, ok := t.Resolve(typeName, amount)
		if !ok {
			s.Gaps = append(s.Gaps, typeName)
		}
		return v
	}

	s.SSS = resolve(TypeSSS, basic)
	s.PhilHealth = resolve(TypePhilHealth, basic)
	s.PagIbig = resolve(TypePagIbig, basic)
	s.WithholdingTax = resolve(TypeWithholdingTax, gross)
	s.Total = money.Sum(s.SSS, s.PhilHealth, s.PagIbig, s.WithholdingTax)
	return s
}

// match picks the first bracket in ascending order that contains amount.
func (t RuleTable) match(typeName string, amount decimal.Decimal) (DeductionRule, bool) {
	for _, r := range t.brackets[typeName] {
		if r.Contains(amount) {
			return r, true
		}
	}
	return DeductionRule{}, false
}
