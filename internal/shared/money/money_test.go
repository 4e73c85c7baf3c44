package money_test

import (
	"testing"

	"go-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4.005", "4.01"},
		{"4.004", "4.00"},
		{"1323.395", "1323.40"},
		{"0.0049", "0.00"},
		{"687.5", "687.50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.String(money.Round(d(tt.in))))
		})
	}
}

func TestHoursFromMinutes(t *testing.T) {
	assert.Equal(t, "2.00", money.String(money.HoursFromMinutes(120)))
	assert.Equal(t, "0.33", money.String(money.HoursFromMinutes(20)))
	assert.Equal(t, "0.67", money.String(money.HoursFromMinutes(40)))
	assert.Equal(t, "0.00", money.String(money.HoursFromMinutes(0)))
}

func TestSumMinMax(t *testing.T) {
	assert.True(t, money.Sum(d("1.10"), d("2.20"), d("3.30")).Equal(d("6.60")))
	assert.True(t, money.Sum().IsZero())
	assert.True(t, money.Min(d("500"), d("100")).Equal(d("100")))
	assert.True(t, money.Max(d("-1"), decimal.Zero).IsZero())
}
