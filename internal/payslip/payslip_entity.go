package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SourceRecompute = "recompute"
	SourcePayroll   = "payroll"
)

// Payslip is a printable snapshot keyed by the same (employee, period) pair
// as Payroll. It is not a child of Payroll and is never regenerated.
type Payslip struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_employee_period"`
	PayPeriodID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_employee_period"`
	Employee          *PayslipEmployee  `gorm:"foreignKey:EmployeeID;references:ID"`
	PayPeriod         *PayslipPayPeriod `gorm:"foreignKey:PayPeriodID;references:ID"`
	BasicSalary       decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	DailyRate         decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	DaysWorked        int64             `gorm:"not null;default:0"`
	OvertimeMinutes   int64             `gorm:"not null;default:0"`
	OvertimePay       decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	RiceSubsidy       decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	PhoneAllowance    decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	ClothingAllowance decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	TotalBenefit      decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	SSS               decimal.Decimal   `gorm:"column:sss;type:numeric(14,2);not null;default:0"`
	PhilHealth        decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	PagIbig           decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	WithholdingTax    decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeduction    decimal.Decimal   `gorm:"type:numeric(14,2);not null;default:0"`
	GrossIncome       decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	TakeHomePay       decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	Source            string            `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PayslipEmployee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (PayslipEmployee) TableName() string {
	return "employees"
}

type PayslipPayPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:name"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
}

func (PayslipPayPeriod) TableName() string {
	return "pay_periods"
}
