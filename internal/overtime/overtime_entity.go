package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type OvertimeRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index:idx_overtime_requests_employee_start"`
	StartTime      time.Time `gorm:"type:timestamptz;not null;index:idx_overtime_requests_employee_start"`
	EndTime        time.Time `gorm:"type:timestamptz;not null"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// Minutes is the whole-minute span of the request; inverted spans count as
// zero.
func (o OvertimeRequest) Minutes() int64 {
	span := o.EndTime.Sub(o.StartTime)
	if span <= 0 {
		return 0
	}
	return int64(span / time.Minute)
}

// Line is one approved request's share of the period's overtime.
type Line struct {
	RequestID uuid.UUID
	Minutes   int64
	Hours     decimal.Decimal
	Amount    decimal.Decimal
}

// Summary is the overtime outcome for one employee and period.
type Summary struct {
	Minutes int64
	Hours   decimal.Decimal
	Pay     decimal.Decimal
	Lines   []Line
}
