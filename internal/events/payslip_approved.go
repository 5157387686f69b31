package events

import "time"

const PayslipApprovedTopic = "hr.payroll.payslip.approved.v1"

// PayslipApprovedEvent is consumed by the mailer service downstream;
// delivery is best-effort via the outbox worker.
type PayslipApprovedEvent struct {
	EventType    string    `json:"event_type"`
	PayslipID    string    `json:"payslip_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeCode string    `json:"employee_code"`
	MonthYear    string    `json:"month_year"`
	NetSalary    string    `json:"net_salary"`
	OccurredAt   time.Time `json:"occurred_at"`
}
