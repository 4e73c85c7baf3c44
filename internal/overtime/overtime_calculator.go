package overtime

import (
	"sort"

	"go-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

type Calculator struct {
	Multiplier decimal.Decimal
}

func NewCalculator(multiplier decimal.Decimal) Calculator {
	return Calculator{Multiplier: multiplier}
}

// Pay converts the summed minutes to hours first, then prices them.
func (c Calculator) Pay(totalMinutes int64, hourlyRate decimal.Decimal) decimal.Decimal {
	if totalMinutes <= 0 {
		return decimal.Zero
	}
	hours := money.HoursFromMinutes(totalMinutes)
	return money.Round(hours.Mul(hourlyRate).Mul(c.Multiplier))
}

// Summarize prices the approved requests and spreads the total over them.
func (c Calculator) Summarize(requests []OvertimeRequest, hourlyRate decimal.Decimal) Summary {
	lines := make([]Line, 0, len(requests))
	var total int64
	for _, r := range requests {
		m := r.Minutes()
		total += m
		lines = append(lines, Line{
			RequestID: r.ID,
			Minutes:   m,
			Hours:     money.HoursFromMinutes(m),
		})
	}

	pay := c.Pay(total, hourlyRate)
	return Summary{
		Minutes: total,
		Hours:   money.HoursFromMinutes(total),
		Pay:     pay,
		Lines:   Allocate(lines, pay),
	}
}

// Allocate splits total across lines in proportion to their minutes using
// the largest remainder method in whole cents: every line gets the floor of
// its share and the leftover cents go to the largest fractional parts, ties
// to the earlier line. Amounts are never negative and add up to total.
func Allocate(lines []Line, total decimal.Decimal) []Line {
	if len(lines) == 0 {
		return lines
	}

	var minutes int64
	for _, l := range lines {
		minutes += l.Minutes
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	if minutes == 0 || !total.IsPositive() {
		for i := range out {
			out[i].Amount = decimal.Zero
		}
		return out
	}

	cents := money.Round(total).Shift(2).IntPart()
	remainders := make([]int64, len(out))
	var allocated int64
	for i, l := range out {
		share := cents * l.Minutes
		floor := share / minutes
		remainders[i] = share % minutes
		allocated += floor
		out[i].Amount = decimal.New(floor, -2)
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, i := range order[:cents-allocated] {
		out[i].Amount = out[i].Amount.Add(decimal.New(1, -2))
	}
	return out
}
