package payperiod

import (
	"context"
	"errors"

	payperioderrors "go-payroll/internal/payperiod/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*PayPeriod, error)
	List(ctx context.Context) ([]PayPeriod, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayPeriod, error) {
	var p PayPeriod
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payperioderrors.ErrPayPeriodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&periods).Error
	return periods, err
}
