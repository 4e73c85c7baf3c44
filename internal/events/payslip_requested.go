package events

import "time"

const (
	PayslipRequestedTopic     = "payroll.payslip.requested.v1"
	PayslipRequestedEventType = "payslip.requested"
)

type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	PayPeriodID string    `json:"pay_period_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
