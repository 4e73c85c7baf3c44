package deduction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeSSS            = "SSS"
	TypePhilHealth     = "PhilHealth"
	TypePagIbig        = "PagIbig"
	TypeWithholdingTax = "WithholdingTax"
)

// DeductionRule is one bracket. Rules with a PayrollID are payroll specific
// overrides and never take part in global resolution.
type DeductionRule struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TypeName    string          `gorm:"type:varchar(30);not null;index"`
	LowerLimit  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UpperLimit  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	BaseTax     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Rate        decimal.Decimal `gorm:"type:numeric(8,6);not null;default:0"`
	FixedAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PayrollID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contains is inclusive on both limits.
func (r DeductionRule) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(r.LowerLimit) && amount.LessThanOrEqual(r.UpperLimit)
}

// Statutory is the four-way split of an employee's deductions.
type Statutory struct {
	SSS            decimal.Decimal
	PhilHealth     decimal.Decimal
	PagIbig        decimal.Decimal
	WithholdingTax decimal.Decimal
	Total          decimal.Decimal
	// Gaps names the types for which no bracket matched.
	Gaps []string
}
