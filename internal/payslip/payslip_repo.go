package payslip

import (
	"context"
	"errors"

	paysliperrors "go-payroll/internal/payslip/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, payPeriodID string) (*Payslip, error)
	CreateIfAbsent(ctx context.Context, p *Payslip) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("PayPeriod").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, paysliperrors.ErrPayslipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, payPeriodID string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("PayPeriod").
		Where("employee_id = ? AND pay_period_id = ?", employeeID, payPeriodID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, paysliperrors.ErrPayslipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateIfAbsent reports false when another writer already holds the
// (employee, period) slot.
func (r *repository) CreateIfAbsent(ctx context.Context, p *Payslip) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Employee", "PayPeriod").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "pay_period_id"}},
			DoNothing: true,
		}).
		Create(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
