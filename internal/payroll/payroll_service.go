package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	aggregateTypePayroll  = "payroll"
	summaryCacheKeyPrefix = "payroll:summary:"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GeneratePayroll(ctx context.Context, payPeriodID string) (GenerationResult, error)
	GeneratePayrollWithDetails(ctx context.Context, payPeriodID string) (GenerationResult, error)
	GetSummary(ctx context.Context, payPeriodID string) (Summary, error)
	DeleteByPeriod(ctx context.Context, payPeriodID string) (DeleteResult, error)
	ListByPeriod(ctx context.Context, payPeriodID string) ([]PayrollResponse, error)
	GetBreakdown(ctx context.Context, payrollID string) (BreakdownResponse, error)
	RequestPayslips(ctx context.Context, payPeriodID string) (RequestPayslipsResult, error)
	ExportRegister(ctx context.Context, payPeriodID string) ([]byte, error)
}

// Evaluator computes one employee's payroll for a period.
type Evaluator interface {
	Evaluate(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod, rules deduction.RuleTable, withLedgers bool) (Evaluation, error)
}

type Dependencies struct {
	DB         *sql.DB
	Repo       Repository
	Employees  employee.Repository
	Periods    payperiod.Repository
	Deductions deduction.Service
	Evaluator  Evaluator
	Outbox     kafka.OutboxRepository
	Redis      *redis.Client
	Config     config.PayrollConfig
	SummaryTTL time.Duration
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	periods    payperiod.Repository
	deductions deduction.Service
	evaluator  Evaluator
	outbox     kafka.OutboxRepository
	rdb        *redis.Client
	cfg        config.PayrollConfig
	summaryTTL time.Duration
	runs       singleflight.Group
	logger     *zap.Logger
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		employees:  deps.Employees,
		periods:    deps.Periods,
		deductions: deps.Deductions,
		evaluator:  deps.Evaluator,
		outbox:     deps.Outbox,
		rdb:        deps.Redis,
		cfg:        deps.Config,
		summaryTTL: deps.SummaryTTL,
		logger:     l,
	}
}

func (s *service) GeneratePayroll(ctx context.Context, payPeriodID string) (GenerationResult, error) {
	return s.generate(ctx, payPeriodID, false)
}

func (s *service) GeneratePayrollWithDetails(ctx context.Context, payPeriodID string) (GenerationResult, error) {
	return s.generate(ctx, payPeriodID, true)
}

type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeExisting
	outcomeIneligible
)

// generate coalesces concurrent runs for the same period inside this
// process. Across processes the unique index on (employee, period) decides.
// The shared run is detached from the first caller's cancellation so a
// disconnecting client cannot fail the employees of every waiting caller.
func (s *service) generate(ctx context.Context, payPeriodID string, withDetails bool) (GenerationResult, error) {
	key := payPeriodID
	if withDetails {
		key += ":details"
	}
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.runs.Do(key, func() (any, error) {
		return s.run(runCtx, payPeriodID, withDetails)
	})
	if shared {
		s.logger.Debug("generation run shared with a concurrent caller", zap.String("pay_period_id", payPeriodID))
	}
	if err != nil {
		return GenerationResult{}, err
	}
	return v.(GenerationResult), nil
}

func (s *service) run(ctx context.Context, payPeriodID string, withDetails bool) (GenerationResult, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("pay_period_id", payPeriodID))

	period, err := s.loadPeriod(ctx, payPeriodID)
	if err != nil {
		log.Warn("generation aborted, pay period unavailable", zap.Error(err))
		return GenerationResult{}, err
	}

	rules, err := s.deductions.LoadTable(ctx)
	if err != nil {
		return GenerationResult{}, err
	}

	candidates, err := s.employees.FindPayrollCandidates(ctx)
	if err != nil {
		log.Error("load payroll candidates failed", zap.Error(err))
		return GenerationResult{}, err
	}

	result := GenerationResult{
		PayPeriodID: payPeriodID,
		WithDetails: withDetails,
		Candidates:  len(candidates),
		Failures:    []EmployeeFailure{},
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.workers())

	for _, emp := range candidates {
		emp := emp
		g.Go(func() error {
			out, err := s.generateOne(ctx, *period, emp, rules, withDetails)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Error("payroll generation failed for employee",
					zap.String("employee_id", emp.ID.String()),
					zap.String("request_id", contextutil.GetRequestID(ctx)),
					zap.Error(err),
				)
				result.Failures = append(result.Failures, EmployeeFailure{
					EmployeeID:   emp.ID.String(),
					EmployeeName: emp.FullName,
					Reason:       err.Error(),
				})
				return nil
			}
			switch out {
			case outcomeGenerated:
				result.Generated++
			case outcomeExisting:
				result.AlreadyGenerated++
			case outcomeIneligible:
				result.Ineligible++
			}
			return nil
		})
	}
	_ = g.Wait()

	if result.Generated > 0 {
		s.invalidateSummary(ctx, payPeriodID)
	}

	log.Info("payroll generation finished",
		zap.Bool("with_details", withDetails),
		zap.Int("candidates", result.Candidates),
		zap.Int("generated", result.Generated),
		zap.Int("already_generated", result.AlreadyGenerated),
		zap.Int("ineligible", result.Ineligible),
		zap.Int("failed", len(result.Failures)),
	)
	return result, nil
}

// generateOne writes the payroll, its details and the generated event in a
// single transaction.
func (s *service) generateOne(
	ctx context.Context,
	period payperiod.PayPeriod,
	emp employee.Employee,
	rules deduction.RuleTable,
	withDetails bool,
) (outcome, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("employee_id", emp.ID.String()),
		zap.String("pay_period_id", period.ID.String()),
	)

	if !emp.IsPayrollEligible() {
		log.Warn("employee skipped, basic salary or hourly rate is not positive")
		return outcomeIneligible, nil
	}

	exists, err := s.repo.Exists(ctx, emp.ID.String(), period.ID.String())
	if err != nil {
		return 0, err
	}
	if exists {
		log.Debug("payroll already generated, skipping")
		return outcomeExisting, nil
	}

	ev, err := s.evaluator.Evaluate(ctx, emp, period, rules, withDetails)
	if err != nil {
		return 0, err
	}
	if gaps := ev.Computation.Deductions.Gaps; len(gaps) > 0 {
		log.Warn("no deduction bracket matched, contribution set to zero", zap.Strings("types", gaps))
	}

	p := ev.Computation.ToPayroll(emp.ID, period.ID)
	event, err := kafka.NewOutboxEvent(ctx, aggregateTypePayroll, p.ID.String(),
		events.PayrollGeneratedEventType, events.PayrollGeneratedTopic,
		events.PayrollGeneratedEvent{
			EventType:   events.PayrollGeneratedEventType,
			PayrollID:   p.ID.String(),
			EmployeeID:  emp.ID.String(),
			PayPeriodID: period.ID.String(),
			GrossIncome: p.GrossIncome.StringFixed(2),
			NetSalary:   p.NetSalary.StringFixed(2),
			OccurredAt:  time.Now().UTC(),
		})
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, &p); err != nil {
		if errors.Is(err, payrollerrors.ErrPayrollAlreadyExists) {
			log.Debug("payroll inserted concurrently, skipping")
			return outcomeExisting, nil
		}
		return 0, err
	}

	if withDetails {
		if err := qtx.CreateDetails(ctx, BuildDetails(p.ID, period, ev)); err != nil {
			return 0, err
		}
	}

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Debug("payroll generated",
		zap.String("payroll_id", p.ID.String()),
		zap.String("gross_income", p.GrossIncome.StringFixed(2)),
		zap.String("net_salary", p.NetSalary.StringFixed(2)),
	)
	return outcomeGenerated, nil
}

func (s *service) GetSummary(ctx context.Context, payPeriodID string) (Summary, error) {
	if _, err := s.loadPeriod(ctx, payPeriodID); err != nil {
		return Summary{}, err
	}

	key := summaryCacheKeyPrefix + payPeriodID
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var summary Summary
			if json.Unmarshal(cached, &summary) == nil {
				return summary, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read summary cache failed", zap.String("key", key), zap.Error(err))
		}
	}

	summary, err := s.repo.Summarize(ctx, payPeriodID)
	if err != nil {
		return Summary{}, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.summaryTTL).Err(); err != nil {
				s.logger.Warn("write summary cache failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return summary, nil
}

// DeleteByPeriod removes the detail rows and then the payrolls of a period
// in one transaction. Payslips are not touched.
func (s *service) DeleteByPeriod(ctx context.Context, payPeriodID string) (DeleteResult, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("pay_period_id", payPeriodID))

	if _, err := s.loadPeriod(ctx, payPeriodID); err != nil {
		return DeleteResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeleteResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	details, err := qtx.DeleteDetailsByPeriod(ctx, payPeriodID)
	if err != nil {
		log.Error("delete payroll details failed", zap.Error(err))
		return DeleteResult{}, err
	}
	payrolls, err := qtx.DeleteByPeriod(ctx, payPeriodID)
	if err != nil {
		log.Error("delete payrolls failed", zap.Error(err))
		return DeleteResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeleteResult{}, err
	}

	s.invalidateSummary(ctx, payPeriodID)
	log.Info("payrolls deleted for period",
		zap.Int64("payrolls", payrolls),
		zap.Int64("details", details),
	)
	return DeleteResult{PayPeriodID: payPeriodID, PayrollsDeleted: payrolls, DetailsDeleted: details}, nil
}

func (s *service) ListByPeriod(ctx context.Context, payPeriodID string) ([]PayrollResponse, error) {
	if _, err := s.loadPeriod(ctx, payPeriodID); err != nil {
		return nil, err
	}
	payrolls, err := s.repo.ListByPeriod(ctx, payPeriodID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payrolls), nil
}

func (s *service) GetBreakdown(ctx context.Context, payrollID string) (BreakdownResponse, error) {
	if _, err := uuid.Parse(payrollID); err != nil {
		return BreakdownResponse{}, payrollerrors.ErrInvalidPayrollID
	}
	p, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		return BreakdownResponse{}, err
	}
	details, err := s.repo.FindDetails(ctx, payrollID)
	if err != nil {
		return BreakdownResponse{}, err
	}
	return mapToBreakdown(*p, details), nil
}

// RequestPayslips queues one payslip request per payroll of the period. The
// consumer builds the payslips asynchronously.
func (s *service) RequestPayslips(ctx context.Context, payPeriodID string) (RequestPayslipsResult, error) {
	if _, err := s.loadPeriod(ctx, payPeriodID); err != nil {
		return RequestPayslipsResult{}, err
	}

	payrolls, err := s.repo.ListByPeriod(ctx, payPeriodID)
	if err != nil {
		return RequestPayslipsResult{}, err
	}
	if len(payrolls) == 0 {
		return RequestPayslipsResult{}, payrollerrors.ErrNoPayrollsForPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RequestPayslipsResult{}, err
	}
	defer tx.Rollback()

	outbox := s.outbox.WithTx(tx)
	now := time.Now().UTC()
	for _, p := range payrolls {
		event, err := kafka.NewOutboxEvent(ctx, aggregateTypePayroll, p.ID.String(),
			events.PayslipRequestedEventType, events.PayslipRequestedTopic,
			events.PayslipRequestedEvent{
				EventType:   events.PayslipRequestedEventType,
				PayrollID:   p.ID.String(),
				EmployeeID:  p.EmployeeID.String(),
				PayPeriodID: p.PayPeriodID.String(),
				OccurredAt:  now,
			})
		if err != nil {
			return RequestPayslipsResult{}, err
		}
		if err := outbox.Create(ctx, event); err != nil {
			return RequestPayslipsResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RequestPayslipsResult{}, err
	}
	return RequestPayslipsResult{PayPeriodID: payPeriodID, Requested: len(payrolls)}, nil
}

func (s *service) loadPeriod(ctx context.Context, payPeriodID string) (*payperiod.PayPeriod, error) {
	if _, err := uuid.Parse(payPeriodID); err != nil {
		return nil, payperioderrors.ErrInvalidPayPeriodID
	}
	period, err := s.periods.FindByID(ctx, payPeriodID)
	if err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *service) invalidateSummary(ctx context.Context, payPeriodID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, summaryCacheKeyPrefix+payPeriodID).Err(); err != nil {
		s.logger.Warn("invalidate summary cache failed",
			zap.String("pay_period_id", payPeriodID),
			zap.Error(err),
		)
	}
}

func (s *service) workers() int {
	if s.cfg.GenerationWorkers < 1 {
		return 1
	}
	return s.cfg.GenerationWorkers
}
