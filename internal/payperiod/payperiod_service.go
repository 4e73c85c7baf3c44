package payperiod

import (
	"context"

	payperioderrors "go-payroll/internal/payperiod/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, id string) (PayPeriodResponse, error)
	GetAll(ctx context.Context) ([]PayPeriodResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (PayPeriodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidPayPeriodID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayPeriodResponse{}, err
	}
	return toResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayPeriodResponse, error) {
	periods, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PayPeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, toResponse(p))
	}
	return out, nil
}
