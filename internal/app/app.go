package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-payroll/internal/attendance"
	"go-payroll/internal/config"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/overtime"
	"go-payroll/internal/payperiod"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
	"go-payroll/internal/position"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, prepares the schema and mounts every
// route on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if rdb == nil {
		logger.Warn("REDIS_ADDR not set, summary cache and idempotency disabled")
	}

	closeAll := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	svc := buildServices(sqlDB, gormDB, rdb, cfg, logger)

	// 2. Schema and reference data
	if err := prepareDatabase(context.Background(), gormDB, svc.deduction, cfg, logger); err != nil {
		closeAll()
		return nil, err
	}

	// 3. Middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
		middleware.RateLimitByIP(rate.Limit(cfg.RateRPS), cfg.RateBurst),
	)

	// 4. Register Modules & Routes
	registerModules(router, svc, rdb)

	return closeAll, nil
}

func prepareDatabase(
	ctx context.Context,
	gormDB *gorm.DB,
	deductions deduction.Service,
	cfg config.Config,
	logger *zap.Logger,
) error {
	if cfg.AutoMigrate {
		if err := migrate(gormDB); err != nil {
			return err
		}
		logger.Info("database schema migrated")
	}

	if cfg.SeedDeductionRules {
		n, err := deductions.Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed deduction rules: %w", err)
		}
		if n > 0 {
			logger.Info("deduction rules seeded", zap.Int("rules", n))
		}
	}
	return nil
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	err := gormDB.AutoMigrate(
		&position.PositionDepartment{},
		&position.Position{},
		&position.BenefitType{},
		&position.PositionBenefit{},
		&employee.Employee{},
		&payperiod.PayPeriod{},
		&attendance.Attendance{},
		&leave.LeaveType{},
		&leave.LeaveRequest{},
		&overtime.OvertimeRequest{},
		&deduction.DeductionRule{},
		&payroll.Payroll{},
		&payroll.PayrollAttendance{},
		&payroll.PayrollBenefit{},
		&payroll.PayrollLeave{},
		&payroll.PayrollOvertime{},
		&payslip.Payslip{},
		&kafka.OutboxRecord{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// openDatabase is the connection path of the background binaries.
func openDatabase(cfg config.Config, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}
