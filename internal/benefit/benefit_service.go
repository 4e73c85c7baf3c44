package benefit

import (
	"context"
	"errors"

	"go-payroll/internal/position"
	positionerrors "go-payroll/internal/position/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=benefit_service.go -destination=mock/benefit_service_mock.go -package=mock
type Service interface {
	ResolveBenefits(ctx context.Context, positionID *uuid.UUID) (Breakdown, error)
}

type service struct {
	positions position.Repository
	logger    *zap.Logger
}

func NewService(positions position.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{positions: positions, logger: l}
}

// ResolveBenefits yields the zero breakdown for a missing or unknown
// position. Only storage failures are returned as errors.
func (s *service) ResolveBenefits(ctx context.Context, positionID *uuid.UUID) (Breakdown, error) {
	if positionID == nil {
		return Zero(), nil
	}

	lines, err := s.positions.FindBenefits(ctx, positionID.String())
	if errors.Is(err, positionerrors.ErrPositionNotFound) {
		return Zero(), nil
	}
	if err != nil {
		s.logger.Error("find position benefits failed",
			zap.String("position_id", positionID.String()),
			zap.Error(err),
		)
		return Breakdown{}, err
	}

	return Resolve(lines), nil
}
