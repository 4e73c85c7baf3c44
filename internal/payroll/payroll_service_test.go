package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	deductionMock "go-payroll/internal/deduction/mock"
	"go-payroll/internal/employee"
	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	payperiodMock "go-payroll/internal/payperiod/mock"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type payrollServiceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	repo       *payrollMock.MockRepository
	employees  *employeeMock.MockRepository
	periods    *payperiodMock.MockRepository
	deductions *deductionMock.MockService
	evaluator  *payrollMock.MockEvaluator
	outbox     *kafkaMock.MockOutboxRepository
	rdb        *redis.Client
	redisMock  redismock.ClientMock
	service    payroll.Service
	period     payperiod.PayPeriod
	rules      deduction.RuleTable
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()

	rules, err := deduction.DefaultRules()
	require.NoError(t, err)

	deps := &payrollServiceDeps{
		db:         db,
		sqlMock:    sqlMock,
		repo:       payrollMock.NewMockRepository(ctrl),
		employees:  employeeMock.NewMockRepository(ctrl),
		periods:    payperiodMock.NewMockRepository(ctrl),
		deductions: deductionMock.NewMockService(ctrl),
		evaluator:  payrollMock.NewMockEvaluator(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
		rdb:        rdb,
		redisMock:  redisMock,
		period: payperiod.PayPeriod{
			ID:        uuid.New(),
			Name:      "2024-06 first half",
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		rules: deduction.NewRuleTable(rules, decimal.NewFromInt(100)),
	}

	cfg := config.DefaultPayrollConfig()
	cfg.GenerationWorkers = 1

	deps.service = payroll.NewService(payroll.Dependencies{
		DB:         db,
		Repo:       deps.repo,
		Employees:  deps.employees,
		Periods:    deps.periods,
		Deductions: deps.deductions,
		Evaluator:  deps.evaluator,
		Outbox:     deps.outbox,
		Redis:      rdb,
		Config:     cfg,
		SummaryTTL: time.Minute,
	})
	return deps
}

func (d *payrollServiceDeps) expectPeriod() {
	d.periods.EXPECT().FindByID(gomock.Any(), d.period.ID.String()).Return(&d.period, nil)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newEmployee(basic, rate string) employee.Employee {
	return employee.Employee{
		ID:          uuid.New(),
		FullName:    "Juan Dela Cruz",
		BasicSalary: decimal.RequireFromString(basic),
		HourlyRate:  decimal.RequireFromString(rate),
		Status:      employee.StatusRegular,
	}
}

func scenarioEvaluation(t *testing.T, rules deduction.RuleTable) payroll.Evaluation {
	t.Helper()
	return payroll.Evaluation{
		Computation: payroll.Compute(payroll.Input{
			BasicSalary:     decimal.RequireFromString("25000"),
			OvertimeMinutes: 120,
			OvertimePay:     decimal.RequireFromString("450"),
			TotalBenefit:    decimal.RequireFromString("2000"),
			Rules:           rules,
		}),
	}
}

func TestPayrollService_GeneratePayroll(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	eligible := newEmployee("25000", "150")
	noRate := newEmployee("25000", "0")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{eligible, noRate}, nil)

	deps.repo.EXPECT().Exists(gomock.Any(), eligible.ID.String(), deps.period.ID.String()).Return(false, nil)
	deps.evaluator.EXPECT().
		Evaluate(gomock.Any(), eligible, deps.period, deps.rules, false).
		Return(scenarioEvaluation(t, deps.rules), nil)

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
		assert.Equal(t, eligible.ID, p.EmployeeID)
		assert.Equal(t, deps.period.ID, p.PayPeriodID)
		assert.Equal(t, "27450.00", p.GrossIncome.StringFixed(2))
		assert.Equal(t, "3235.90", p.TotalDeduction.StringFixed(2))
		assert.Equal(t, "24214.10", p.NetSalary.StringFixed(2))
		assert.True(t, p.Reconciles())
		return nil
	})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
		assert.Equal(t, events.PayrollGeneratedTopic, ev.Topic)
		assert.Equal(t, events.PayrollGeneratedEventType, ev.EventType)

		var payload events.PayrollGeneratedEvent
		require.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, "24214.10", payload.NetSalary)
		return nil
	})
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(1)

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, 1, res.Generated)
	assert.Equal(t, 1, res.Ineligible)
	assert.Equal(t, 0, res.AlreadyGenerated)
	assert.Empty(t, res.Failures)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_SecondRunSkipsExisting(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	emp := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{emp}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), emp.ID.String(), deps.period.ID.String()).Return(true, nil)

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 0, res.Generated)
	assert.Equal(t, 1, res.AlreadyGenerated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_ConcurrentInsertCountsAsExisting(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	emp := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{emp}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), emp, deps.period, deps.rules, false).
		Return(scenarioEvaluation(t, deps.rules), nil)

	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(payrollerrors.ErrPayrollAlreadyExists.With(errors.New("duplicate key")))

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 0, res.Generated)
	assert.Equal(t, 1, res.AlreadyGenerated)
	assert.Empty(t, res.Failures)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_FailureDoesNotStopRun(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	broken := newEmployee("25000", "150")
	healthy := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{broken, healthy}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	deps.evaluator.EXPECT().Evaluate(gomock.Any(), broken, deps.period, deps.rules, false).
		Return(payroll.Evaluation{}, errors.New("attendance store unavailable"))
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), healthy, deps.period, deps.rules, false).
		Return(scenarioEvaluation(t, deps.rules), nil)

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(0)

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, broken.ID.String(), res.Failures[0].EmployeeID)
	assert.Contains(t, res.Failures[0].Reason, "attendance store unavailable")
}

func TestPayrollService_GeneratePayroll_DetailFailureRollsBackEmployee(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	broken := newEmployee("25000", "150")
	healthy := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{broken, healthy}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), deps.period, deps.rules, true).
		Return(scenarioEvaluation(t, deps.rules), nil).Times(2)

	expectTx(t, deps.sqlMock, false)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.repo.EXPECT().CreateDetails(gomock.Any(), gomock.Any()).Return(errors.New("insert payroll_benefits failed"))
	deps.repo.EXPECT().CreateDetails(gomock.Any(), gomock.Any()).Return(nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(0)

	res, err := deps.service.GeneratePayrollWithDetails(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, broken.ID.String(), res.Failures[0].EmployeeID)
	assert.Contains(t, res.Failures[0].Reason, "insert payroll_benefits failed")
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_OutboxFailureRollsBackEmployee(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	broken := newEmployee("25000", "150")
	healthy := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{broken, healthy}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any(), deps.period, deps.rules, false).
		Return(scenarioEvaluation(t, deps.rules), nil).Times(2)

	expectTx(t, deps.sqlMock, false)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).Times(2)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox insert failed"))
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(0)

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, broken.ID.String(), res.Failures[0].EmployeeID)
	assert.Contains(t, res.Failures[0].Reason, "outbox insert failed")
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_CallerCancellationDoesNotFailRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps := setupPayrollServiceTest(t)
	emp := newEmployee("25000", "150")

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{emp}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), emp, deps.period, deps.rules, false).
		Return(scenarioEvaluation(t, deps.rules), nil)

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(1)

	res, err := deps.service.GeneratePayroll(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Generated)
	assert.Empty(t, res.Failures)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayrollWithDetails(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	emp := newEmployee("25000", "150")

	ev := scenarioEvaluation(t, deps.rules)
	ev.Overtime.Lines = []overtime.Line{{RequestID: uuid.New(), Minutes: 120, Hours: decimal.NewFromInt(2), Amount: decimal.NewFromInt(450)}}

	deps.expectPeriod()
	deps.deductions.EXPECT().LoadTable(gomock.Any()).Return(deps.rules, nil)
	deps.employees.EXPECT().FindPayrollCandidates(gomock.Any()).Return([]employee.Employee{emp}, nil)
	deps.repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	deps.evaluator.EXPECT().Evaluate(gomock.Any(), emp, deps.period, deps.rules, true).Return(ev, nil)

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	var payrollID uuid.UUID
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *payroll.Payroll) error {
		payrollID = p.ID
		return nil
	})
	deps.repo.EXPECT().CreateDetails(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d payroll.Details) error {
		require.Len(t, d.Overtime, 1)
		assert.Equal(t, payrollID, d.Overtime[0].PayrollID)
		return nil
	})
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	deps.redisMock.ExpectDel("payroll:summary:" + deps.period.ID.String()).SetVal(0)

	res, err := deps.service.GeneratePayrollWithDetails(ctx, deps.period.ID.String())

	require.NoError(t, err)
	assert.True(t, res.WithDetails)
	assert.Equal(t, 1, res.Generated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePayroll_UnknownPeriod(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		deps.periods.EXPECT().FindByID(gomock.Any(), id).Return(nil, payperioderrors.ErrPayPeriodNotFound)

		_, err := deps.service.GeneratePayroll(ctx, id)
		assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deps.service.GeneratePayroll(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, payperioderrors.ErrInvalidPayPeriodID)
	})
}

func TestPayrollService_GetSummary(t *testing.T) {
	ctx := context.Background()
	key := func(d *payrollServiceDeps) string { return "payroll:summary:" + d.period.ID.String() }

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		summary := payroll.Summary{
			PayPeriodID:      deps.period.ID.String(),
			EmployeeCount:    1,
			TotalGrossIncome: decimal.RequireFromString("27450"),
			TotalNetSalary:   decimal.RequireFromString("24214.10"),
			TotalDeductions:  decimal.RequireFromString("3235.90"),
			TotalBenefits:    decimal.RequireFromString("2000"),
		}
		payload, _ := json.Marshal(summary)

		deps.expectPeriod()
		deps.redisMock.ExpectGet(key(deps)).RedisNil()
		deps.repo.EXPECT().Summarize(gomock.Any(), deps.period.ID.String()).Return(summary, nil)
		deps.redisMock.ExpectSet(key(deps), payload, time.Minute).SetVal("OK")

		got, err := deps.service.GetSummary(ctx, deps.period.ID.String())

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.EmployeeCount)
		assert.True(t, got.TotalNetSalary.Equal(summary.TotalNetSalary))
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		cached := `{"pay_period_id":"` + deps.period.ID.String() + `","employee_count":3,"total_gross_income":"1","total_net_salary":"1","total_deductions":"0","total_benefits":"0"}`

		deps.expectPeriod()
		deps.redisMock.ExpectGet(key(deps)).SetVal(cached)

		got, err := deps.service.GetSummary(ctx, deps.period.ID.String())

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.EmployeeCount)
	})
}

func TestPayrollService_DeleteByPeriod(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	periodID := deps.period.ID.String()

	deps.expectPeriod()
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().DeleteDetailsByPeriod(gomock.Any(), periodID).Return(int64(7), nil)
	deps.repo.EXPECT().DeleteByPeriod(gomock.Any(), periodID).Return(int64(2), nil)
	deps.redisMock.ExpectDel("payroll:summary:" + periodID).SetVal(1)

	res, err := deps.service.DeleteByPeriod(ctx, periodID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.PayrollsDeleted)
	assert.Equal(t, int64(7), res.DetailsDeleted)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_DeleteByPeriod_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	periodID := deps.period.ID.String()

	deps.expectPeriod()
	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().DeleteDetailsByPeriod(gomock.Any(), periodID).Return(int64(3), nil)
	deps.repo.EXPECT().DeleteByPeriod(gomock.Any(), periodID).Return(int64(0), errors.New("lock timeout"))

	_, err := deps.service.DeleteByPeriod(ctx, periodID)

	assert.Error(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_RequestPayslips(t *testing.T) {
	ctx := context.Background()

	t.Run("queues one event per payroll", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		payrolls := []payroll.Payroll{
			{ID: uuid.New(), EmployeeID: uuid.New(), PayPeriodID: deps.period.ID},
			{ID: uuid.New(), EmployeeID: uuid.New(), PayPeriodID: deps.period.ID},
		}

		deps.expectPeriod()
		deps.repo.EXPECT().ListByPeriod(gomock.Any(), deps.period.ID.String()).Return(payrolls, nil)
		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.PayslipRequestedTopic, ev.Topic)
			return nil
		}).Times(2)

		res, err := deps.service.RequestPayslips(ctx, deps.period.ID.String())

		require.NoError(t, err)
		assert.Equal(t, 2, res.Requested)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("nothing generated", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.expectPeriod()
		deps.repo.EXPECT().ListByPeriod(gomock.Any(), deps.period.ID.String()).Return(nil, nil)

		_, err := deps.service.RequestPayslips(ctx, deps.period.ID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrNoPayrollsForPeriod)
	})
}

func TestPayrollService_GetBreakdown(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	p := scenarioEvaluation(t, deps.rules).Computation.ToPayroll(uuid.New(), deps.period.ID)
	benefitTypeID := uuid.New()

	deps.repo.EXPECT().FindByID(gomock.Any(), p.ID.String()).Return(&p, nil)
	deps.repo.EXPECT().FindDetails(gomock.Any(), p.ID.String()).Return(payroll.Details{
		Benefits: []payroll.PayrollBenefit{{ID: uuid.New(), PayrollID: p.ID, BenefitTypeID: benefitTypeID, BenefitName: "Rice Subsidy", Amount: decimal.NewFromInt(1500)}},
	}, nil)

	got, err := deps.service.GetBreakdown(ctx, p.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "24214.10", got.Payroll.NetSalary)
	require.Len(t, got.Benefits, 1)
	assert.Equal(t, "1500.00", got.Benefits[0].Amount)
	assert.Empty(t, got.Overtime)

	_, err = deps.service.GetBreakdown(ctx, "bad")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayrollID)
}

func TestPayrollService_ExportRegister(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	p := scenarioEvaluation(t, deps.rules).Computation.ToPayroll(uuid.New(), deps.period.ID)
	p.Employee = &payroll.PayrollEmployee{ID: p.EmployeeID, EmployeeNumber: "EMP-001", FullName: "Juan Dela Cruz"}

	deps.expectPeriod()
	deps.repo.EXPECT().ListByPeriod(gomock.Any(), deps.period.ID.String()).Return([]payroll.Payroll{p}, nil)

	out, err := deps.service.ExportRegister(ctx, deps.period.ID.String())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Register", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee No.", header)

	name, _ := f.GetCellValue("Register", "B2")
	assert.Equal(t, "Juan Dela Cruz", name)
	net, _ := f.GetCellValue("Register", "M2")
	assert.Equal(t, "24214.1", net)
	total, _ := f.GetCellValue("Register", "B3")
	assert.Equal(t, "TOTAL", total)
}

func TestPayrollService_ExportRegister_TotalsRow(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	first := scenarioEvaluation(t, deps.rules).Computation.ToPayroll(uuid.New(), deps.period.ID)
	second := scenarioEvaluation(t, deps.rules).Computation.ToPayroll(uuid.New(), deps.period.ID)
	second.OvertimeMinutes = 30

	deps.expectPeriod()
	deps.repo.EXPECT().ListByPeriod(gomock.Any(), deps.period.ID.String()).Return([]payroll.Payroll{first, second}, nil)

	out, err := deps.service.ExportRegister(ctx, deps.period.ID.String())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"B4", "TOTAL"},
		{"C4", "50000"},
		{"D4", "150"},
		{"G4", "54900"},
		{"M4", "48428.2"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Register", tt.cell)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.cell)
	}
}
