package employmenterrors

import (
	"net/http"

	"github.com/hrh2/erp/internal/shared/apperror"
)

var (
	ErrEmploymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employment not found",
		http.StatusNotFound,
	)
	ErrNoActiveEmployment = apperror.New(
		apperror.CodeNotFound,
		"No active employment found for employee",
		http.StatusNotFound,
	)
	ErrEmploymentCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employment with the same code already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base_salary must be a positive decimal",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
