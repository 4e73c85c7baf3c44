package overtime

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	ComputeOvertimePay(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal) (Summary, error)
}

type service struct {
	repo       Repository
	calculator Calculator
	logger     *zap.Logger
}

func NewService(repo Repository, calculator Calculator, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	return &service{repo: repo, calculator: calculator, logger: l}
}

func (s *service) ComputeOvertimePay(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal) (Summary, error) {
	requests, err := s.repo.ListApprovedInRange(ctx, employeeID, start, end)
	if err != nil {
		s.logger.Error("list approved overtime failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return Summary{}, err
	}

	summary := s.calculator.Summarize(requests, hourlyRate)
	s.logger.Debug("overtime computed",
		zap.String("employee_id", employeeID),
		zap.Int("requests", len(requests)),
		zap.Int64("minutes", summary.Minutes),
		zap.String("pay", summary.Pay.StringFixed(2)),
	)
	return summary, nil
}
