package employee

type CreateEmployeeRequest struct {
	Code        string `json:"code"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Status      string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	DateOfBirth string `json:"date_of_birth"`
}

type UpdateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Status      string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
	DateOfBirth string `json:"date_of_birth"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}
