package payslip

import (
	"context"
	"errors"

	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/payperiod"
	payperioderrors "go-payroll/internal/payperiod/errors"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/position"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GeneratePayslip(ctx context.Context, employeeID, payPeriodID string) (PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	RenderText(ctx context.Context, id string) (string, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

// Engine is the part of the payroll engine a payslip needs.
type Engine interface {
	Evaluate(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod, rules deduction.RuleTable, withLedgers bool) (payroll.Evaluation, error)
	DaysWorked(ctx context.Context, employeeID string, period payperiod.PayPeriod) (int64, error)
}

type Dependencies struct {
	Repo       Repository
	Employees  employee.Repository
	Periods    payperiod.Repository
	Payrolls   payroll.Repository
	Deductions deduction.Service
	Benefits   benefit.Service
	Engine     Engine
	Config     config.PayrollConfig
}

type service struct {
	repo       Repository
	employees  employee.Repository
	periods    payperiod.Repository
	payrolls   payroll.Repository
	deductions deduction.Service
	benefits   benefit.Service
	engine     Engine
	cfg        config.PayrollConfig
	logger     *zap.Logger
}

func NewService(deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		repo:       deps.Repo,
		employees:  deps.Employees,
		periods:    deps.Periods,
		payrolls:   deps.Payrolls,
		deductions: deps.Deductions,
		benefits:   deps.Benefits,
		engine:     deps.Engine,
		cfg:        deps.Config,
		logger:     l,
	}
}

// GeneratePayslip returns the stored payslip for the pair when there is one.
// Otherwise it builds a snapshot, inserts it unless a concurrent caller won
// the slot, and returns whatever row is stored.
func (s *service) GeneratePayslip(ctx context.Context, employeeID, payPeriodID string) (PayslipResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("employee_id", employeeID),
		zap.String("pay_period_id", payPeriodID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(payPeriodID); err != nil {
		return PayslipResponse{}, payperioderrors.ErrInvalidPayPeriodID
	}

	existing, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, payPeriodID)
	if err == nil {
		log.Debug("payslip already exists, returning stored snapshot")
		return mapToResponse(*existing), nil
	}
	if !errors.Is(err, paysliperrors.ErrPayslipNotFound) {
		return PayslipResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return PayslipResponse{}, err
	}
	period, err := s.periods.FindByID(ctx, payPeriodID)
	if err != nil {
		return PayslipResponse{}, err
	}

	// A payslip is a view of a generated payroll in either mode; recompute
	// only re-derives the amounts.
	pr, err := s.payrolls.FindByEmployeeAndPeriod(ctx, employeeID, payPeriodID)
	if errors.Is(err, payrollerrors.ErrPayrollNotFound) {
		return PayslipResponse{}, paysliperrors.ErrPayrollRequired
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	var p Payslip
	switch s.cfg.PayslipSource {
	case config.PayslipSourcePayroll:
		p, err = s.fromPayroll(ctx, *emp, *period, *pr)
	default:
		p, err = s.recompute(ctx, *emp, *period)
	}
	if err != nil {
		return PayslipResponse{}, err
	}

	p.DailyRate = s.dailyRate(emp.BasicSalary)
	p.DaysWorked = s.daysWorked(ctx, log, employeeID, *period)

	inserted, err := s.repo.CreateIfAbsent(ctx, &p)
	if err != nil {
		log.Error("insert payslip failed", zap.Error(err))
		return PayslipResponse{}, err
	}
	if !inserted {
		log.Debug("payslip inserted concurrently, returning winner")
	}

	stored, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, payPeriodID)
	if err != nil {
		return PayslipResponse{}, err
	}

	log.Info("payslip generated",
		zap.String("payslip_id", stored.ID.String()),
		zap.String("source", stored.Source),
		zap.Bool("inserted", inserted),
	)
	return mapToResponse(*stored), nil
}

func (s *service) recompute(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod) (Payslip, error) {
	rules, err := s.deductions.LoadTable(ctx)
	if err != nil {
		return Payslip{}, err
	}
	ev, err := s.engine.Evaluate(ctx, emp, period, rules, false)
	if err != nil {
		return Payslip{}, err
	}

	c := ev.Computation
	return Payslip{
		ID:                uuid.New(),
		EmployeeID:        emp.ID,
		PayPeriodID:       period.ID,
		BasicSalary:       c.BasicSalary,
		OvertimeMinutes:   c.OvertimeMinutes,
		OvertimePay:       c.OvertimePay,
		RiceSubsidy:       ev.Benefits.RiceSubsidy,
		PhoneAllowance:    ev.Benefits.PhoneAllowance,
		ClothingAllowance: ev.Benefits.ClothingAllowance,
		TotalBenefit:      c.TotalBenefit,
		SSS:               c.Deductions.SSS,
		PhilHealth:        c.Deductions.PhilHealth,
		PagIbig:           c.Deductions.PagIbig,
		WithholdingTax:    c.Deductions.WithholdingTax,
		TotalDeduction:    c.Deductions.Total,
		GrossIncome:       c.GrossIncome,
		TakeHomePay:       c.NetSalary,
		Source:            SourceRecompute,
	}, nil
}

// fromPayroll copies the stored aggregate. Benefits are itemised from the
// payroll's detail rows, or from the position when details were not written.
func (s *service) fromPayroll(ctx context.Context, emp employee.Employee, period payperiod.PayPeriod, pr payroll.Payroll) (Payslip, error) {
	details, err := s.payrolls.FindDetails(ctx, pr.ID.String())
	if err != nil {
		return Payslip{}, err
	}

	var benefits benefit.Breakdown
	if len(details.Benefits) > 0 {
		lines := make([]position.BenefitLine, 0, len(details.Benefits))
		for _, b := range details.Benefits {
			lines = append(lines, position.BenefitLine{
				BenefitTypeID: b.BenefitTypeID,
				BenefitName:   b.BenefitName,
				Value:         b.Amount,
			})
		}
		benefits = benefit.Resolve(lines)
	} else {
		benefits, err = s.benefits.ResolveBenefits(ctx, emp.PositionID)
		if err != nil {
			return Payslip{}, err
		}
	}

	return Payslip{
		ID:                uuid.New(),
		EmployeeID:        emp.ID,
		PayPeriodID:       period.ID,
		BasicSalary:       pr.BasicSalary,
		OvertimeMinutes:   pr.OvertimeMinutes,
		OvertimePay:       pr.OvertimePay,
		RiceSubsidy:       benefits.RiceSubsidy,
		PhoneAllowance:    benefits.PhoneAllowance,
		ClothingAllowance: benefits.ClothingAllowance,
		TotalBenefit:      pr.TotalBenefit,
		SSS:               pr.SSS,
		PhilHealth:        pr.PhilHealth,
		PagIbig:           pr.PagIbig,
		WithholdingTax:    pr.WithholdingTax,
		TotalDeduction:    pr.TotalDeduction,
		GrossIncome:       pr.GrossIncome,
		TakeHomePay:       pr.NetSalary,
		Source:            SourcePayroll,
	}, nil
}

func (s *service) dailyRate(basic decimal.Decimal) decimal.Decimal {
	days := s.cfg.PayslipWorkingDays
	if days < 1 {
		days = config.DefaultPayrollConfig().PayslipWorkingDays
	}
	return money.Round(basic.Div(decimal.NewFromInt(int64(days))))
}

// daysWorked falls back to the configured working days when attendance
// cannot be counted.
func (s *service) daysWorked(ctx context.Context, log *zap.Logger, employeeID string, period payperiod.PayPeriod) int64 {
	days, err := s.engine.DaysWorked(ctx, employeeID, period)
	if err != nil {
		log.Warn("count attendance days failed, using default working days",
			zap.Int("default_days", s.cfg.PayslipWorkingDays),
			zap.Error(err),
		)
		return int64(s.cfg.PayslipWorkingDays)
	}
	return days
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) RenderText(ctx context.Context, id string) (string, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return FormatText(*p), nil
}

func (s *service) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := RenderPDF(*p)
	if err != nil {
		s.logger.Error("render payslip pdf failed", zap.String("payslip_id", id), zap.Error(err))
		return nil, paysliperrors.ErrRenderPDF.With(err)
	}
	return out, nil
}

func (s *service) find(ctx context.Context, id string) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, paysliperrors.ErrInvalidPayslipID
	}
	return s.repo.FindByID(ctx, id)
}
