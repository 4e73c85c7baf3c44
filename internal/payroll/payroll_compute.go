package payroll

import (
	"go-payroll/internal/deduction"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input is everything the money math needs, already loaded.
type Input struct {
	BasicSalary     decimal.Decimal
	OvertimeMinutes int64
	OvertimePay     decimal.Decimal
	TotalBenefit    decimal.Decimal
	Rules           deduction.RuleTable
}

type Computation struct {
	BasicSalary     decimal.Decimal
	OvertimeMinutes int64
	OvertimePay     decimal.Decimal
	TotalBenefit    decimal.Decimal
	GrossIncome     decimal.Decimal
	Deductions      deduction.Statutory
	NetSalary       decimal.Decimal
}

// Compute derives gross, deductions and net. Contributions are taken on the
// basic salary and withholding tax on the gross income.
func Compute(in Input) Computation {
	gross := money.Round(money.Sum(in.BasicSalary, in.OvertimePay, in.TotalBenefit))
	statutory := in.Rules.Statutory(in.BasicSalary, gross)

	return Computation{
		BasicSalary:     in.BasicSalary,
		OvertimeMinutes: in.OvertimeMinutes,
		OvertimePay:     in.OvertimePay,
		TotalBenefit:    in.TotalBenefit,
		GrossIncome:     gross,
		Deductions:      statutory,
		NetSalary:       gross.Sub(statutory.Total),
	}
}

func (c Computation) ToPayroll(employeeID, payPeriodID uuid.UUID) Payroll {
	return Payroll{
		ID:              uuid.New(),
		EmployeeID:      employeeID,
		PayPeriodID:     payPeriodID,
		BasicSalary:     c.BasicSalary,
		OvertimeMinutes: c.OvertimeMinutes,
		OvertimePay:     c.OvertimePay,
		TotalBenefit:    c.TotalBenefit,
		GrossIncome:     c.GrossIncome,
		SSS:             c.Deductions.SSS,
		PhilHealth:      c.Deductions.PhilHealth,
		PagIbig:         c.Deductions.PagIbig,
		WithholdingTax:  c.Deductions.WithholdingTax,
		TotalDeduction:  c.Deductions.Total,
		NetSalary:       c.NetSalary,
	}
}

// Reconciles checks the two aggregate identities of a stored payroll.
func (p Payroll) Reconciles() bool {
	gross := money.Sum(p.BasicSalary, p.OvertimePay, p.TotalBenefit)
	deductions := money.Sum(p.SSS, p.PhilHealth, p.PagIbig, p.WithholdingTax)
	return p.GrossIncome.Equal(gross) &&
		p.TotalDeduction.Equal(deductions) &&
		p.NetSalary.Equal(p.GrossIncome.Sub(p.TotalDeduction))
}
