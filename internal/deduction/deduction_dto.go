package deduction

type CreateDeductionRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Percentage string `json:"percentage" binding:"required"`
}

type UpdateDeductionRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Percentage string `json:"percentage" binding:"required"`
}

type DeductionResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
}
