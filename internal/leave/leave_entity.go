package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

const hoursPerLeaveDay = 8

type LeaveType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"size:60;not null;uniqueIndex"`
}

type LeaveRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID    uuid.UUID `gorm:"type:uuid;not null"`
	StartDate      time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate        time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// OverlapDays counts the calendar days the request shares with [start, end].
func (l LeaveRequest) OverlapDays(start, end time.Time) int {
	from := latest(day(l.StartDate), day(start))
	to := earliest(day(l.EndDate), day(end))
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// OverlapHours credits eight hours per overlapping day.
func (l LeaveRequest) OverlapHours(start, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(l.OverlapDays(start, end) * hoursPerLeaveDay))
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
