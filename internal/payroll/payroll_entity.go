package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payroll is the per employee, per period aggregate. The pair
// (employee_id, pay_period_id) is unique at the storage layer.
type Payroll struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	PayPeriodID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period;index"`
	Employee        *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	BasicSalary     decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	OvertimeMinutes int64            `gorm:"not null;default:0"`
	OvertimePay     decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	TotalBenefit    decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	GrossIncome     decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	SSS             decimal.Decimal  `gorm:"column:sss;type:numeric(14,2);not null;default:0"`
	PhilHealth      decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	PagIbig         decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	WithholdingTax  decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeduction  decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary       decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PayrollEmployee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

type PayrollAttendance struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AttendanceID uuid.UUID       `gorm:"type:uuid;not null"`
	HoursWorked  decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
}

type PayrollBenefit struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BenefitTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	BenefitName   string          `gorm:"size:120;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

type PayrollLeave struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	LeaveRequestID uuid.UUID       `gorm:"type:uuid;not null"`
	Hours          decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
}

type PayrollOvertime struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	OvertimeRequestID uuid.UUID       `gorm:"type:uuid;not null"`
	Minutes           int64           `gorm:"not null;default:0"`
	Hours             decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

// Details groups the four child tables of one payroll.
type Details struct {
	Attendance []PayrollAttendance
	Benefits   []PayrollBenefit
	Leaves     []PayrollLeave
	Overtime   []PayrollOvertime
}

func (d Details) Len() int {
	return len(d.Attendance) + len(d.Benefits) + len(d.Leaves) + len(d.Overtime)
}

// Summary is the read side aggregation for one pay period.
type Summary struct {
	PayPeriodID      string          `json:"pay_period_id"`
	EmployeeCount    int64           `json:"employee_count"`
	TotalGrossIncome decimal.Decimal `json:"total_gross_income"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalBenefits    decimal.Decimal `json:"total_benefits"`
}
