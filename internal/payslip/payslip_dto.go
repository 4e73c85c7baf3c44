package payslip

import (
	"time"

	"go-payroll/internal/shared/money"
)

type GeneratePayslipRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PayPeriodID string `json:"pay_period_id" binding:"required,uuid"`
}

type PayslipResponse struct {
	ID                string `json:"id"`
	EmployeeID        string `json:"employee_id"`
	EmployeeNumber    string `json:"employee_number,omitempty"`
	EmployeeName      string `json:"employee_name,omitempty"`
	PayPeriodID       string `json:"pay_period_id"`
	PayPeriodName     string `json:"pay_period_name,omitempty"`
	BasicSalary       string `json:"basic_salary"`
	DailyRate         string `json:"daily_rate"`
	DaysWorked        int64  `json:"days_worked"`
	OvertimeMinutes   int64  `json:"overtime_minutes"`
	OvertimePay       string `json:"overtime_pay"`
	RiceSubsidy       string `json:"rice_subsidy"`
	PhoneAllowance    string `json:"phone_allowance"`
	ClothingAllowance string `json:"clothing_allowance"`
	TotalBenefit      string `json:"total_benefit"`
	SSS               string `json:"sss"`
	PhilHealth        string `json:"philhealth"`
	PagIbig           string `json:"pagibig"`
	WithholdingTax    string `json:"withholding_tax"`
	TotalDeduction    string `json:"total_deduction"`
	GrossIncome       string `json:"gross_income"`
	TakeHomePay       string `json:"take_home_pay"`
	Source            string `json:"source"`
	CreatedAt         string `json:"created_at"`
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                p.ID.String(),
		EmployeeID:        p.EmployeeID.String(),
		PayPeriodID:       p.PayPeriodID.String(),
		BasicSalary:       money.String(p.BasicSalary),
		DailyRate:         money.String(p.DailyRate),
		DaysWorked:        p.DaysWorked,
		OvertimeMinutes:   p.OvertimeMinutes,
		OvertimePay:       money.String(p.OvertimePay),
		RiceSubsidy:       money.String(p.RiceSubsidy),
		PhoneAllowance:    money.String(p.PhoneAllowance),
		ClothingAllowance: money.String(p.ClothingAllowance),
		TotalBenefit:      money.String(p.TotalBenefit),
		SSS:               money.String(p.SSS),
		PhilHealth:        money.String(p.PhilHealth),
		PagIbig:           money.String(p.PagIbig),
		WithholdingTax:    money.String(p.WithholdingTax),
		TotalDeduction:    money.String(p.TotalDeduction),
		GrossIncome:       money.String(p.GrossIncome),
		TakeHomePay:       money.String(p.TakeHomePay),
		Source:            p.Source,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeNumber = p.Employee.EmployeeNumber
		resp.EmployeeName = p.Employee.FullName
	}
	if p.PayPeriod != nil {
		resp.PayPeriodName = p.PayPeriod.Name
	}
	return resp
}
