package position

import (
	"context"
	"errors"

	positionerrors "go-payroll/internal/position/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Position, error)
	FindBenefits(ctx context.Context, positionID string) ([]BenefitLine, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var p Position
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, positionerrors.ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindBenefits(ctx context.Context, positionID string) ([]BenefitLine, error) {
	var lines []BenefitLine
	err := r.db.WithContext(ctx).
		Table("position_benefits AS pb").
		Select("pb.position_id, pb.benefit_type_id, bt.name AS benefit_name, pb.value").
		Joins("JOIN benefit_types bt ON bt.id = pb.benefit_type_id").
		Where("pb.position_id = ?", positionID).
		Order("bt.name ASC").
		Scan(&lines).Error
	return lines, err
}
