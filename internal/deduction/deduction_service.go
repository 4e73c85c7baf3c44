package deduction

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	// LoadTable reads the global brackets once; callers keep the table for
	// the duration of a run.
	LoadTable(ctx context.Context) (RuleTable, error)
	Seed(ctx context.Context) (int, error)
}

type service struct {
	repo           Repository
	pagIbigCeiling decimal.Decimal
	logger         *zap.Logger
}

func NewService(repo Repository, pagIbigCeiling decimal.Decimal, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{repo: repo, pagIbigCeiling: pagIbigCeiling, logger: l}
}

func (s *service) LoadTable(ctx context.Context) (RuleTable, error) {
	rules, err := s.repo.ListGlobal(ctx)
	if err != nil {
		s.logger.Error("load deduction rules failed", zap.Error(err))
		return RuleTable{}, err
	}
	table := NewRuleTable(rules, s.pagIbigCeiling)
	if table.Len() == 0 {
		s.logger.Warn("deduction rule table is empty, every deduction resolves to zero")
	}
	return table, nil
}

// Seed inserts the embedded brackets when the table is empty and returns
// how many rows were written.
func (s *service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Debug("deduction rules already present", zap.Int64("rows", count))
		return 0, nil
	}

	rules, err := DefaultRules()
	if err != nil {
		return 0, err
	}
	if err := s.repo.CreateBatch(ctx, rules); err != nil {
		s.logger.Error("seed deduction rules failed", zap.Error(err))
		return 0, err
	}
	s.logger.Info("deduction rules seeded", zap.Int("rows", len(rules)))
	return len(rules), nil
}
