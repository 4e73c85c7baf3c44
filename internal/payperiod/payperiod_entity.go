package payperiod

import (
	"time"

	payperioderrors "go-payroll/internal/payperiod/errors"

	"github.com/google/uuid"
)

type PayPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"size:120;not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PayPeriod) TableName() string {
	return "pay_periods"
}

func (p PayPeriod) Validate() error {
	if p.StartDate.After(p.EndDate) {
		return payperioderrors.ErrInvalidPayPeriodRange
	}
	return nil
}

// Contains compares calendar days only; both ends are inclusive.
func (p PayPeriod) Contains(t time.Time) bool {
	d := day(t)
	return !d.Before(day(p.StartDate)) && !d.After(day(p.EndDate))
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
