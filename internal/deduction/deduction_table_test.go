package deduction_test

import (
	"testing"

	"go-payroll/internal/deduction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultTable(t *testing.T) deduction.RuleTable {
	t.Helper()
	rules, err := deduction.DefaultRules()
	require.NoError(t, err)
	return deduction.NewRuleTable(rules, dec("100.00"))
}

func TestRuleTable_WithholdingTaxBoundaries(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		income string
		want   string
	}{
		{"0.00", "0.00"},
		{"20833.00", "0.00"},
		{"20834.00", "0.20"},
		{"27450.00", "1323.40"},
		{"33333.00", "2500.00"},
		{"33334.00", "2500.25"},
		{"66667.00", "10833.50"},
		{"100000.00", "20833.23"},
		{"700000.00", "212499.88"},
	}

	for _, tt := range tests {
		t.Run(tt.income, func(t *testing.T) {
			got, ok := table.Resolve(deduction.TypeWithholdingTax, dec(tt.income))
			assert.True(t, ok)
			assert.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestRuleTable_SSS(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		salary string
		want   string
	}{
		{"3000.00", "180.00"},
		{"4249.99", "180.00"},
		{"4250.00", "202.50"},
		{"25000.00", "1125.00"},
		{"29749.99", "1327.50"},
		{"150000.00", "1350.00"},
	}

	for _, tt := range tests {
		t.Run(tt.salary, func(t *testing.T) {
			got, ok := table.Resolve(deduction.TypeSSS, dec(tt.salary))
			assert.True(t, ok)
			assert.True(t, got.Equal(dec(tt.want)), "got %s", got)
		})
	}
}

func TestRuleTable_FlatRates(t *testing.T) {
	table := defaultTable(t)

	philhealth, ok := table.Resolve(deduction.TypePhilHealth, dec("25000.00"))
	assert.True(t, ok)
	assert.True(t, philhealth.Equal(dec("687.50")))

	capped, _ := table.Resolve(deduction.TypePagIbig, dec("25000.00"))
	assert.True(t, capped.Equal(dec("100.00")))

	under, _ := table.Resolve(deduction.TypePagIbig, dec("4000.00"))
	assert.True(t, under.Equal(dec("80.00")))
}

func TestRuleTable_UnmatchedBracketIsZero(t *testing.T) {
	table := deduction.NewRuleTable([]deduction.DeductionRule{
		{TypeName: deduction.TypeSSS, LowerLimit: dec("1000"), UpperLimit: dec("2000"), FixedAmount: dec("50")},
	}, dec("100"))

	got, ok := table.Resolve(deduction.TypeSSS, dec("2500"))
	assert.False(t, ok)
	assert.True(t, got.IsZero())

	s := table.Statutory(dec("2500"), dec("2500"))
	assert.Equal(t, []string{deduction.TypeSSS, deduction.TypePhilHealth, deduction.TypePagIbig, deduction.TypeWithholdingTax}, s.Gaps)
	assert.True(t, s.Total.IsZero())
}

func TestRuleTable_RoundingHalfUp(t *testing.T) {
	table := deduction.NewRuleTable([]deduction.DeductionRule{
		{TypeName: deduction.TypePhilHealth, LowerLimit: dec("0"), UpperLimit: dec("1000000"), Rate: dec("0.01")},
		{TypeName: deduction.TypeWithholdingTax, LowerLimit: dec("0"), UpperLimit: dec("1000000"), Rate: dec("0.5")},
	}, dec("100"))

	up, _ := table.Resolve(deduction.TypePhilHealth, dec("400.50"))
	assert.Equal(t, "4.01", up.StringFixed(2))
	down, _ := table.Resolve(deduction.TypePhilHealth, dec("400.40"))
	assert.Equal(t, "4.00", down.StringFixed(2))

	up, _ = table.Resolve(deduction.TypeWithholdingTax, dec("8.01"))
	assert.Equal(t, "4.01", up.StringFixed(2))
	down, _ = table.Resolve(deduction.TypeWithholdingTax, dec("8.008"))
	assert.Equal(t, "4.00", down.StringFixed(2))
}

func TestRuleTable_IgnoresPayrollSpecificRules(t *testing.T) {
	payrollID := uuid.New()
	table := deduction.NewRuleTable([]deduction.DeductionRule{
		{TypeName: deduction.TypeSSS, LowerLimit: dec("0"), UpperLimit: dec("100000"), FixedAmount: dec("999"), PayrollID: &payrollID},
		{TypeName: deduction.TypeSSS, LowerLimit: dec("0"), UpperLimit: dec("100000"), FixedAmount: dec("500")},
	}, dec("100"))

	got, _ := table.Resolve(deduction.TypeSSS, dec("25000"))
	assert.True(t, got.Equal(dec("500")))
	assert.Equal(t, 1, table.Len())
}

func TestRuleTable_FirstAscendingMatchWins(t *testing.T) {
	table := deduction.NewRuleTable([]deduction.DeductionRule{
		{TypeName: deduction.TypeWithholdingTax, LowerLimit: dec("100"), UpperLimit: dec("200"), BaseTax: dec("10"), Rate: dec("0.1")},
		{TypeName: deduction.TypeWithholdingTax, LowerLimit: dec("0"), UpperLimit: dec("100"), Rate: dec("0")},
	}, dec("100"))

	got, _ := table.Resolve(deduction.TypeWithholdingTax, dec("100"))
	assert.True(t, got.IsZero(), "shared boundary belongs to the lower bracket")
}

func TestRuleTable_Statutory_Scenario(t *testing.T) {
	table := defaultTable(t)

	s := table.Statutory(dec("25000.00"), dec("27450.00"))

	assert.Equal(t, "1125.00", s.SSS.StringFixed(2))
	assert.Equal(t, "687.50", s.PhilHealth.StringFixed(2))
	assert.Equal(t, "100.00", s.PagIbig.StringFixed(2))
	assert.Equal(t, "1323.40", s.WithholdingTax.StringFixed(2))
	assert.Equal(t, "3235.90", s.Total.StringFixed(2))
	assert.Empty(t, s.Gaps)
}
