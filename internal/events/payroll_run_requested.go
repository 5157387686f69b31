package events

import "time"

const PayrollRunRequestedTopic = "hr.payroll.run.requested.v1"

// PayrollRunRequestedEvent asks the consumer process to generate the
// whole month's payroll asynchronously.
type PayrollRunRequestedEvent struct {
	EventType   string    `json:"event_type"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
