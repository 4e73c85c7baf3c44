package deduction

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	ListGlobal(ctx context.Context) ([]DeductionRule, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, rules []DeductionRule) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListGlobal(ctx context.Context) ([]DeductionRule, error) {
	var rules []DeductionRule
	err := r.db.WithContext(ctx).
		Where("payroll_id IS NULL").
		Order("type_name ASC, lower_limit ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DeductionRule{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateBatch(ctx context.Context, rules []DeductionRule) error {
	return r.db.WithContext(ctx).CreateInBatches(rules, 100).Error
}
