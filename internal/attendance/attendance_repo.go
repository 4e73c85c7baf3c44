package attendance

import (
	"context"
	"time"

	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	CountCompleteDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Scopes(scope.Employee(employeeID), scope.DateWithin("attendance_date", start, end)).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountCompleteDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Scopes(scope.Employee(employeeID), scope.DateWithin("attendance_date", start, end), completePunches).
		Count(&count).Error
	return count, err
}

func completePunches(db *gorm.DB) *gorm.DB {
	return db.Where("time_in IS NOT NULL").Where("time_out IS NOT NULL")
}
