package errors

import (
	"net/http"

	"github.com/hrh2/erp/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "payslip not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrPayslipAlreadyExists = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "payslip already exists for this employee and period",
		HTTPStatus: http.StatusConflict,
	}

	ErrPayslipAlreadyPaid = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "payslip has already been paid",
		HTTPStatus: http.StatusConflict,
	}

	ErrEmployeeNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "employee not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidMonth = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "month must be between 1 and 12",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidYear = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "year is out of range",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidPayslipID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "payslip id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidEmployeeID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "employee id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidStatus = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "status must be PENDING or PAID",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrDeductionsExceedGross = &apperror.AppError{
		Code:       apperror.CodeInvariantViolation,
		Message:    "total deductions exceed gross salary",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
)
