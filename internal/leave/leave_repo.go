package leave

import (
	"context"
	"time"

	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(
			scope.Employee(employeeID),
			scope.Status("approval_status", StatusApproved),
			scope.Overlapping("start_date", "end_date", start, end),
		).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
