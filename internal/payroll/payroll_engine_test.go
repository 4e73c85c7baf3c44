package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/position"
	positionerrors "go-payroll/internal/position/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBenefits struct {
	breakdown benefit.Breakdown
}

func (f fakeBenefits) ResolveBenefits(ctx context.Context, positionID *uuid.UUID) (benefit.Breakdown, error) {
	return f.breakdown, nil
}

type fakeOvertime struct {
	calls   int
	summary overtime.Summary
}

func (f *fakeOvertime) ComputeOvertimePay(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal) (overtime.Summary, error) {
	f.calls++
	return f.summary, nil
}

type fakePositions struct {
	byID map[string]*position.Position
}

func (f fakePositions) FindByID(ctx context.Context, id string) (*position.Position, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, positionerrors.ErrPositionNotFound
}

func (f fakePositions) FindBenefits(ctx context.Context, positionID string) ([]position.BenefitLine, error) {
	return nil, nil
}

type fakeAttendance struct {
	rows     []attendance.Attendance
	complete int64
}

func (f fakeAttendance) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return f.rows, nil
}

func (f fakeAttendance) CountCompleteDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return f.complete, nil
}

type fakeLeaves struct {
	rows []leave.LeaveRequest
}

func (f fakeLeaves) ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return f.rows, nil
}

func engineFixture() (payperiod.PayPeriod, employee.Employee, benefit.Breakdown, overtime.Summary) {
	period := payperiod.PayPeriod{
		ID:        uuid.New(),
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	positionID := uuid.New()
	emp := employee.Employee{
		ID:          uuid.New(),
		PositionID:  &positionID,
		BasicSalary: decimal.NewFromInt(25000),
		HourlyRate:  decimal.NewFromInt(150),
	}
	benefits := benefit.Breakdown{
		RiceSubsidy:    decimal.NewFromInt(1500),
		PhoneAllowance: decimal.NewFromInt(500),
		Total:          decimal.NewFromInt(2000),
		Lines: []position.BenefitLine{
			{BenefitTypeID: uuid.New(), BenefitName: benefit.RiceSubsidy, Value: decimal.NewFromInt(1500)},
			{BenefitTypeID: uuid.New(), BenefitName: benefit.PhoneAllowance, Value: decimal.NewFromInt(500)},
		},
	}
	ot := overtime.Summary{
		Minutes: 120,
		Hours:   decimal.NewFromInt(2),
		Pay:     decimal.NewFromInt(450),
		Lines:   []overtime.Line{{RequestID: uuid.New(), Minutes: 120, Hours: decimal.NewFromInt(2), Amount: decimal.NewFromInt(450)}},
	}
	return period, emp, benefits, ot
}

func TestEngine_Evaluate(t *testing.T) {
	ctx := context.Background()
	period, emp, benefits, ot := engineFixture()

	in := period.StartDate.Add(8 * time.Hour)
	out := period.StartDate.Add(17 * time.Hour)
	attendanceRows := []attendance.Attendance{{ID: uuid.New(), EmployeeID: emp.ID, AttendanceDate: period.StartDate, TimeIn: &in, TimeOut: &out}}
	leaveRows := []leave.LeaveRequest{{
		ID:             uuid.New(),
		EmployeeID:     emp.ID,
		StartDate:      period.EndDate.AddDate(0, 0, -1),
		EndDate:        period.EndDate.AddDate(0, 0, 2),
		ApprovalStatus: leave.StatusApproved,
	}}

	ots := &fakeOvertime{summary: ot}
	engine := payroll.NewEngine(
		fakeBenefits{breakdown: benefits},
		ots,
		fakePositions{},
		fakeAttendance{rows: attendanceRows, complete: 1},
		fakeLeaves{rows: leaveRows},
		config.DefaultPayrollConfig(),
	)

	t.Run("without ledgers", func(t *testing.T) {
		ev, err := engine.Evaluate(ctx, emp, period, defaultRules(t), false)
		require.NoError(t, err)

		assert.Equal(t, "24214.10", ev.Computation.NetSalary.StringFixed(2))
		assert.Empty(t, ev.Attendance)
		assert.Empty(t, ev.Leaves)
	})

	t.Run("with ledgers builds every detail table", func(t *testing.T) {
		ev, err := engine.Evaluate(ctx, emp, period, defaultRules(t), true)
		require.NoError(t, err)

		payrollID := uuid.New()
		d := payroll.BuildDetails(payrollID, period, ev)

		require.Len(t, d.Attendance, 1)
		assert.Equal(t, "8.00", d.Attendance[0].HoursWorked.StringFixed(2))
		require.Len(t, d.Benefits, 2)
		require.Len(t, d.Leaves, 1)
		// Only the last two days of the leave fall inside the period.
		assert.True(t, d.Leaves[0].Hours.Equal(decimal.NewFromInt(16)))
		require.Len(t, d.Overtime, 1)
		assert.True(t, d.Overtime[0].Amount.Equal(ev.Computation.OvertimePay))
		assert.Equal(t, 6, d.Len())
		for _, b := range d.Benefits {
			assert.Equal(t, payrollID, b.PayrollID)
		}
	})
}

func TestEngine_RankAndFileOvertimeGate(t *testing.T) {
	ctx := context.Background()
	period, emp, benefits, ot := engineFixture()

	cfg := config.DefaultPayrollConfig()
	cfg.OvertimeRankAndFileOnly = true

	tests := []struct {
		name      string
		position  *position.Position
		wantCalls int
	}{
		{
			name:      "rank and file position earns overtime",
			position:  &position.Position{ID: *emp.PositionID, Title: "Rank and File Associate"},
			wantCalls: 1,
		},
		{
			name:      "managerial position does not",
			position:  &position.Position{ID: *emp.PositionID, Title: "Account Manager"},
			wantCalls: 0,
		},
		{
			name:      "unknown position does not",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions := fakePositions{byID: map[string]*position.Position{}}
			if tt.position != nil {
				positions.byID[tt.position.ID.String()] = tt.position
			}
			ots := &fakeOvertime{summary: ot}
			engine := payroll.NewEngine(fakeBenefits{breakdown: benefits}, ots, positions, fakeAttendance{}, fakeLeaves{}, cfg)

			ev, err := engine.Evaluate(ctx, emp, period, defaultRules(t), false)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCalls, ots.calls)
			if tt.wantCalls == 0 {
				assert.True(t, ev.Computation.OvertimePay.IsZero())
				assert.Equal(t, "27000.00", ev.Computation.GrossIncome.StringFixed(2))
			}
		})
	}
}

func TestEngine_DaysWorked(t *testing.T) {
	period, emp, _, _ := engineFixture()
	engine := payroll.NewEngine(fakeBenefits{}, &fakeOvertime{}, fakePositions{}, fakeAttendance{complete: 9}, fakeLeaves{}, config.DefaultPayrollConfig())

	days, err := engine.DaysWorked(context.Background(), emp.ID.String(), period)

	require.NoError(t, err)
	assert.Equal(t, int64(9), days)
}
