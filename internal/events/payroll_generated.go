package events

import "time"

const (
	PayrollGeneratedTopic     = "payroll.payroll.generated.v1"
	PayrollGeneratedEventType = "payroll.generated"
)

type PayrollGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	PayPeriodID string    `json:"pay_period_id"`
	GrossIncome string    `json:"gross_income"`
	NetSalary   string    `json:"net_salary"`
	OccurredAt  time.Time `json:"occurred_at"`
}
