package payroll

import (
	"context"
	"database/sql"
	"errors"

	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/dbtx"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation = "23505"
	detailBatchSize = 200
)

var detailTables = []string{
	"payroll_attendances",
	"payroll_benefits",
	"payroll_leaves",
	"payroll_overtimes",
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Exists(ctx context.Context, employeeID, payPeriodID string) (bool, error)
	Create(ctx context.Context, p *Payroll) error
	CreateDetails(ctx context.Context, d Details) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, payPeriodID string) (*Payroll, error)
	FindDetails(ctx context.Context, payrollID string) (Details, error)
	ListByPeriod(ctx context.Context, payPeriodID string) ([]Payroll, error)
	Summarize(ctx context.Context, payPeriodID string) (Summary, error)
	DeleteDetailsByPeriod(ctx context.Context, payPeriodID string) (int64, error)
	DeleteByPeriod(ctx context.Context, payPeriodID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Exists(ctx context.Context, employeeID, payPeriodID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND pay_period_id = ?", employeeID, payPeriodID).
		Count(&count).Error
	return count > 0, err
}

// Create maps a unique violation on (employee, period) to
// ErrPayrollAlreadyExists.
func (r *repository) Create(ctx context.Context, p *Payroll) error {
	err := r.db.WithContext(ctx).Omit("Employee").Create(p).Error
	if isUniqueViolation(err) {
		return payrollerrors.ErrPayrollAlreadyExists.With(err)
	}
	return err
}

func (r *repository) CreateDetails(ctx context.Context, d Details) error {
	db := r.db.WithContext(ctx)
	if len(d.Attendance) > 0 {
		if err := db.CreateInBatches(d.Attendance, detailBatchSize).Error; err != nil {
			return err
		}
	}
	if len(d.Benefits) > 0 {
		if err := db.CreateInBatches(d.Benefits, detailBatchSize).Error; err != nil {
			return err
		}
	}
	if len(d.Leaves) > 0 {
		if err := db.CreateInBatches(d.Leaves, detailBatchSize).Error; err != nil {
			return err
		}
	}
	if len(d.Overtime) > 0 {
		if err := db.CreateInBatches(d.Overtime, detailBatchSize).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, payPeriodID string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND pay_period_id = ?", employeeID, payPeriodID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindDetails(ctx context.Context, payrollID string) (Details, error) {
	var d Details
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_id = ?", payrollID).Find(&d.Attendance).Error; err != nil {
		return Details{}, err
	}
	if err := db.Where("payroll_id = ?", payrollID).Order("benefit_name ASC").Find(&d.Benefits).Error; err != nil {
		return Details{}, err
	}
	if err := db.Where("payroll_id = ?", payrollID).Find(&d.Leaves).Error; err != nil {
		return Details{}, err
	}
	if err := db.Where("payroll_id = ?", payrollID).Find(&d.Overtime).Error; err != nil {
		return Details{}, err
	}
	return d, nil
}

func (r *repository) ListByPeriod(ctx context.Context, payPeriodID string) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("pay_period_id = ?", payPeriodID).
		Order("created_at ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) Summarize(ctx context.Context, payPeriodID string) (Summary, error) {
	var s Summary
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Select(`COUNT(*) AS employee_count,
			COALESCE(SUM(gross_income), 0) AS total_gross_income,
			COALESCE(SUM(net_salary), 0) AS total_net_salary,
			COALESCE(SUM(total_deduction), 0) AS total_deductions,
			COALESCE(SUM(total_benefit), 0) AS total_benefits`).
		Where("pay_period_id = ?", payPeriodID).
		Scan(&s).Error
	s.PayPeriodID = payPeriodID
	return s, err
}

// DeleteDetailsByPeriod clears the four child tables of every payroll in
// the period. It must run before DeleteByPeriod.
func (r *repository) DeleteDetailsByPeriod(ctx context.Context, payPeriodID string) (int64, error) {
	var total int64
	for _, table := range detailTables {
		res := r.db.WithContext(ctx).Exec(
			"DELETE FROM "+table+" WHERE payroll_id IN (SELECT id FROM payrolls WHERE pay_period_id = ?)",
			payPeriodID,
		)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected
	}
	return total, nil
}

func (r *repository) DeleteByPeriod(ctx context.Context, payPeriodID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("pay_period_id = ?", payPeriodID).
		Delete(&Payroll{})
	return res.RowsAffected, res.Error
}

// The only unique key a payroll insert can hit besides the random primary
// key is uq_payroll_employee_period.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
