package overtime

import (
	"context"
	"time"

	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]OvertimeRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListApprovedInRange matches on the day the request starts.
func (r *repository) ListApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]OvertimeRequest, error) {
	var rows []OvertimeRequest
	err := r.db.WithContext(ctx).
		Scopes(
			scope.Employee(employeeID),
			scope.Status("approval_status", StatusApproved),
			scope.TimestampOnDays("start_time", start, end),
		).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}
