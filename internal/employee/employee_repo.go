package employee

import (
	"context"
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindPayrollCandidates(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindPayrollCandidates returns everyone who is not terminated. Salary
// eligibility is decided by the caller so it can report the skipped rows.
func (r *repository) FindPayrollCandidates(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("status <> ?", StatusTerminated).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
