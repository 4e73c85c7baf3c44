package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusProbationary = "PROBATIONARY"
	StatusRegular      = "REGULAR"
	StatusTerminated   = "TERMINATED"
)

// Employee is owned by the HR store; the payroll engine only reads it.
type Employee struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string          `gorm:"type:varchar(30);uniqueIndex"`
	FullName       string          `gorm:"size:255;not null"`
	PositionID     *uuid.UUID      `gorm:"type:uuid;index"`
	BasicSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HourlyRate     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;default:'PROBATIONARY';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPayrollEligible reports whether both money inputs of the computation are
// present. A zero salary or rate is a data problem, not a zero payslip.
func (e Employee) IsPayrollEligible() bool {
	return e.BasicSalary.IsPositive() && e.HourlyRate.IsPositive()
}
