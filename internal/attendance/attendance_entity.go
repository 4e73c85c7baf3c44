package attendance

import (
	"time"

	"go-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const lunchBreak = time.Hour

type Attendance struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID      `gorm:"column:employee_id;type:uuid;not null;index:idx_attendances_employee_date"`
	AttendanceDate time.Time      `gorm:"column:attendance_date;type:date;not null;index:idx_attendances_employee_date"`
	TimeIn         *time.Time     `gorm:"column:time_in;type:timestamptz"`
	TimeOut        *time.Time     `gorm:"column:time_out;type:timestamptz"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// Complete reports whether both punches are present.
func (a Attendance) Complete() bool {
	return a.TimeIn != nil && a.TimeOut != nil
}

// HoursWorked is the punch span minus the one hour lunch break, floored at
// zero. Incomplete rows count as zero.
func (a Attendance) HoursWorked() decimal.Decimal {
	if !a.Complete() {
		return decimal.Zero
	}
	span := a.TimeOut.Sub(*a.TimeIn) - lunchBreak
	if span <= 0 {
		return decimal.Zero
	}
	return money.HoursFromMinutes(int64(span / time.Minute))
}
