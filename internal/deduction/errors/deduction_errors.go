package deductionerrors

import (
	"net/http"

	"github.com/hrh2/erp/internal/shared/apperror"
)

var (
	ErrDeductionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction not found",
		http.StatusNotFound,
	)
	ErrDeductionCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Deduction with the same code already exists",
		http.StatusConflict,
	)
	ErrDeductionNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Deduction with the same name already exists",
		http.StatusConflict,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"percentage must be a non-negative decimal",
		http.StatusBadRequest,
	)
)
