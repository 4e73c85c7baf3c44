package payroll

import (
	"context"
	"errors"

	"go-payroll/internal/attendance"
	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/position"
	positionerrors "go-payroll/internal/position/errors"

	"github.com/google/uuid"
)

// Evaluation is one employee's computed payroll plus the ledger rows it
// was derived from.
type Evaluation struct {
	Computation Computation
	Benefits    benefit.Breakdown
	Overtime    overtime.Summary
	Attendance  []attendance.Attendance
	Leaves      []leave.LeaveRequest
}

// Engine loads an employee's inputs for a period and runs Compute. It is
// shared by payroll generation and payslip recomputation so both follow the
// same rules.
type Engine struct {
	benefits   benefit.Service
	overtime   overtime.Service
	positions  position.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	cfg        config.PayrollConfig
}

func NewEngine(
	benefits benefit.Service,
	overtimeService overtime.Service,
	positions position.Repository,
	attendanceRepo attendance.Repository,
	leaves leave.Repository,
	cfg config.PayrollConfig,
) *Engine {
	return &Engine{
		benefits:   benefits,
		overtime:   overtimeService,
		positions:  positions,
		attendance: attendanceRepo,
		leaves:     leaves,
		cfg:        cfg,
	}
}

// Evaluate computes the payroll. Ledger rows for the detail tables are only
// loaded when withLedgers is set.
func (e *Engine) Evaluate(
	ctx context.Context,
	emp employee.Employee,
	period payperiod.PayPeriod,
	rules deduction.RuleTable,
	withLedgers bool,
) (Evaluation, error) {
	var ev Evaluation
	employeeID := emp.ID.String()

	benefits, err := e.benefits.ResolveBenefits(ctx, emp.PositionID)
	if err != nil {
		return Evaluation{}, err
	}
	ev.Benefits = benefits

	eligible, err := e.overtimeEligible(ctx, emp.PositionID)
	if err != nil {
		return Evaluation{}, err
	}
	if eligible {
		ev.Overtime, err = e.overtime.ComputeOvertimePay(ctx, employeeID, period.StartDate, period.EndDate, emp.HourlyRate)
		if err != nil {
			return Evaluation{}, err
		}
	}

	ev.Computation = Compute(Input{
		BasicSalary:     emp.BasicSalary,
		OvertimeMinutes: ev.Overtime.Minutes,
		OvertimePay:     ev.Overtime.Pay,
		TotalBenefit:    benefits.Total,
		Rules:           rules,
	})

	if withLedgers {
		ev.Attendance, err = e.attendance.ListByEmployeeInRange(ctx, employeeID, period.StartDate, period.EndDate)
		if err != nil {
			return Evaluation{}, err
		}
		ev.Leaves, err = e.leaves.ListApprovedOverlapping(ctx, employeeID, period.StartDate, period.EndDate)
		if err != nil {
			return Evaluation{}, err
		}
	}

	return ev, nil
}

// DaysWorked counts attendance rows with both punches.
func (e *Engine) DaysWorked(ctx context.Context, employeeID string, period payperiod.PayPeriod) (int64, error) {
	return e.attendance.CountCompleteDays(ctx, employeeID, period.StartDate, period.EndDate)
}

func (e *Engine) overtimeEligible(ctx context.Context, positionID *uuid.UUID) (bool, error) {
	if !e.cfg.OvertimeRankAndFileOnly {
		return true, nil
	}
	if positionID == nil {
		return false, nil
	}
	p, err := e.positions.FindByID(ctx, positionID.String())
	if errors.Is(err, positionerrors.ErrPositionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.IsRankAndFile(), nil
}

// BuildDetails turns an evaluation into the four detail row sets.
func BuildDetails(payrollID uuid.UUID, period payperiod.PayPeriod, ev Evaluation) Details {
	var d Details

	for _, a := range ev.Attendance {
		d.Attendance = append(d.Attendance, PayrollAttendance{
			ID:           uuid.New(),
			PayrollID:    payrollID,
			AttendanceID: a.ID,
			HoursWorked:  a.HoursWorked(),
		})
	}
	for _, b := range ev.Benefits.Lines {
		d.Benefits = append(d.Benefits, PayrollBenefit{
			ID:            uuid.New(),
			PayrollID:     payrollID,
			BenefitTypeID: b.BenefitTypeID,
			BenefitName:   b.BenefitName,
			Amount:        b.Value,
		})
	}
	for _, l := range ev.Leaves {
		d.Leaves = append(d.Leaves, PayrollLeave{
			ID:             uuid.New(),
			PayrollID:      payrollID,
			LeaveRequestID: l.ID,
			Hours:          l.OverlapHours(period.StartDate, period.EndDate),
		})
	}
	for _, o := range ev.Overtime.Lines {
		d.Overtime = append(d.Overtime, PayrollOvertime{
			ID:                uuid.New(),
			PayrollID:         payrollID,
			OvertimeRequestID: o.RequestID,
			Minutes:           o.Minutes,
			Hours:             o.Hours,
			Amount:            o.Amount,
		})
	}
	return d
}
