package employment

type CreateEmploymentRequest struct {
	Code       string `json:"code" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary string `json:"base_salary" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
	StartDate  string `json:"start_date" binding:"required"`
}

type UpdateEmploymentRequest struct {
	Code       string `json:"code" binding:"required"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary string `json:"base_salary" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
	StartDate  string `json:"start_date" binding:"required"`
}

type EmploymentResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	BaseSalary string `json:"base_salary"`
	Status     string `json:"status"`
	StartDate  string `json:"start_date"`
}
