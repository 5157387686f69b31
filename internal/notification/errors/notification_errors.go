package errors

import (
	"net/http"

	"github.com/hrh2/erp/internal/shared/apperror"
)

var (
	ErrMessageNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "message not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidMessageID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "message id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidEmployeeID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "employee id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
)
