package payroll

import (
	"time"

	"go-payroll/internal/shared/money"
)

// GenerationResult reports a generation run. Generated counts only rows
// created by this run.
type GenerationResult struct {
	PayPeriodID      string            `json:"pay_period_id"`
	WithDetails      bool              `json:"with_details"`
	Candidates       int               `json:"candidates"`
	Generated        int               `json:"generated"`
	AlreadyGenerated int               `json:"already_generated"`
	Ineligible       int               `json:"ineligible"`
	Failures         []EmployeeFailure `json:"failures"`
}

type EmployeeFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type DeleteResult struct {
	PayPeriodID     string `json:"pay_period_id"`
	PayrollsDeleted int64  `json:"payrolls_deleted"`
	DetailsDeleted  int64  `json:"details_deleted"`
}

type RequestPayslipsResult struct {
	PayPeriodID string `json:"pay_period_id"`
	Requested   int    `json:"requested"`
}

type PayrollResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeNumber  string `json:"employee_number,omitempty"`
	EmployeeName    string `json:"employee_name,omitempty"`
	PayPeriodID     string `json:"pay_period_id"`
	BasicSalary     string `json:"basic_salary"`
	OvertimeMinutes int64  `json:"overtime_minutes"`
	OvertimePay     string `json:"overtime_pay"`
	TotalBenefit    string `json:"total_benefit"`
	GrossIncome     string `json:"gross_income"`
	SSS             string `json:"sss"`
	PhilHealth      string `json:"philhealth"`
	PagIbig         string `json:"pagibig"`
	WithholdingTax  string `json:"withholding_tax"`
	TotalDeduction  string `json:"total_deduction"`
	NetSalary       string `json:"net_salary"`
	CreatedAt       string `json:"created_at"`
}

type BreakdownResponse struct {
	Payroll    PayrollResponse      `json:"payroll"`
	Attendance []AttendanceLineResp `json:"attendance"`
	Benefits   []BenefitLineResp    `json:"benefits"`
	Leaves     []LeaveLineResp      `json:"leaves"`
	Overtime   []OvertimeLineResp   `json:"overtime"`
}

type AttendanceLineResp struct {
	AttendanceID string `json:"attendance_id"`
	HoursWorked  string `json:"hours_worked"`
}

type BenefitLineResp struct {
	BenefitTypeID string `json:"benefit_type_id"`
	Name          string `json:"name"`
	Amount        string `json:"amount"`
}

type LeaveLineResp struct {
	LeaveRequestID string `json:"leave_request_id"`
	Hours          string `json:"hours"`
}

type OvertimeLineResp struct {
	OvertimeRequestID string `json:"overtime_request_id"`
	Minutes           int64  `json:"minutes"`
	Hours             string `json:"hours"`
	Amount            string `json:"amount"`
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:              p.ID.String(),
		EmployeeID:      p.EmployeeID.String(),
		PayPeriodID:     p.PayPeriodID.String(),
		BasicSalary:     money.String(p.BasicSalary),
		OvertimeMinutes: p.OvertimeMinutes,
		OvertimePay:     money.String(p.OvertimePay),
		TotalBenefit:    money.String(p.TotalBenefit),
		GrossIncome:     money.String(p.GrossIncome),
		SSS:             money.String(p.SSS),
		PhilHealth:      money.String(p.PhilHealth),
		PagIbig:         money.String(p.PagIbig),
		WithholdingTax:  money.String(p.WithholdingTax),
		TotalDeduction:  money.String(p.TotalDeduction),
		NetSalary:       money.String(p.NetSalary),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeNumber = p.Employee.EmployeeNumber
		resp.EmployeeName = p.Employee.FullName
	}
	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapToBreakdown(p Payroll, d Details) BreakdownResponse {
	resp := BreakdownResponse{
		Payroll:    mapToResponse(p),
		Attendance: make([]AttendanceLineResp, 0, len(d.Attendance)),
		Benefits:   make([]BenefitLineResp, 0, len(d.Benefits)),
		Leaves:     make([]LeaveLineResp, 0, len(d.Leaves)),
		Overtime:   make([]OvertimeLineResp, 0, len(d.Overtime)),
	}
	for _, a := range d.Attendance {
		resp.Attendance = append(resp.Attendance, AttendanceLineResp{
			AttendanceID: a.AttendanceID.String(),
			HoursWorked:  money.String(a.HoursWorked),
		})
	}
	for _, b := range d.Benefits {
		resp.Benefits = append(resp.Benefits, BenefitLineResp{
			BenefitTypeID: b.BenefitTypeID.String(),
			Name:          b.BenefitName,
			Amount:        money.String(b.Amount),
		})
	}
	for _, l := range d.Leaves {
		resp.Leaves = append(resp.Leaves, LeaveLineResp{
			LeaveRequestID: l.LeaveRequestID.String(),
			Hours:          money.String(l.Hours),
		})
	}
	for _, o := range d.Overtime {
		resp.Overtime = append(resp.Overtime, OvertimeLineResp{
			OvertimeRequestID: o.OvertimeRequestID.String(),
			Minutes:           o.Minutes,
			Hours:             money.String(o.Hours),
			Amount:            money.String(o.Amount),
		})
	}
	return resp
}
