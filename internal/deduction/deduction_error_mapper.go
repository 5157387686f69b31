package deduction

import (
	"errors"
	"strings"

	deductionerrors "github.com/hrh2/erp/internal/deduction/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deductionerrors.ErrDeductionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_deduction_code":
				return deductionerrors.ErrDeductionCodeAlreadyExists
			case "uq_deduction_name":
				return deductionerrors.ErrDeductionNameAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_deduction_code") {
		return deductionerrors.ErrDeductionCodeAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_deduction_name") {
		return deductionerrors.ErrDeductionNameAlreadyExists
	}

	return err
}
