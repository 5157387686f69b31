package notification

type MessageResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Body       string `json:"body"`
	MonthYear  string `json:"month_year"`
	SentAt     string `json:"sent_at"`
}
