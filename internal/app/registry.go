package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/benefit"
	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
	"go-payroll/internal/position"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services is the wired service graph shared by the API and the consumer.
type services struct {
	deduction deduction.Service
	payPeriod payperiod.Service
	payroll   payroll.Service
	payslip   payslip.Service
}

func buildServices(
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) services {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	overtimeRepo := overtime.NewRepository(gormDB)
	payPeriodRepo := payperiod.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)

	// --- Services ---
	benefitService := benefit.NewService(positionRepo, logger)
	deductionService := deduction.NewService(deductionRepo, cfg.Payroll.PagIbigCeiling, logger)
	overtimeService := overtime.NewService(
		overtimeRepo,
		overtime.NewCalculator(cfg.Payroll.OvertimeMultiplier),
		logger,
	)
	engine := payroll.NewEngine(
		benefitService,
		overtimeService,
		positionRepo,
		attendanceRepo,
		leaveRepo,
		cfg.Payroll,
	)

	payrollService := payroll.NewService(payroll.Dependencies{
		DB:         db,
		Repo:       payrollRepo,
		Employees:  employeeRepo,
		Periods:    payPeriodRepo,
		Deductions: deductionService,
		Evaluator:  engine,
		Outbox:     outboxRepo,
		Redis:      rdb,
		Config:     cfg.Payroll,
		SummaryTTL: cfg.Redis.SummaryCacheTTL,
	}, logger)

	payslipService := payslip.NewService(payslip.Dependencies{
		Repo:       payslipRepo,
		Employees:  employeeRepo,
		Periods:    payPeriodRepo,
		Payrolls:   payrollRepo,
		Deductions: deductionService,
		Benefits:   benefitService,
		Engine:     engine,
		Config:     cfg.Payroll,
	}, logger)

	return services{
		deduction: deductionService,
		payPeriod: payperiod.NewService(payPeriodRepo),
		payroll:   payrollService,
		payslip:   payslipService,
	}
}

func registerModules(router *gin.Engine, svc services, rdb *redis.Client) {
	// --- Handlers ---
	payPeriodHandler := payperiod.NewHandler(svc.payPeriod)
	payrollHandler := payroll.NewHandlerWithRedis(svc.payroll, rdb)
	payslipHandler := payslip.NewHandler(svc.payslip)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		payperiod.RegisterRoutes(api, payPeriodHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		payslip.RegisterRoutes(api, payslipHandler)
	}
}
