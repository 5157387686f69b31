package employment

import (
	"errors"
	"strings"

	employmenterrors "github.com/hrh2/erp/internal/employment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employmenterrors.ErrEmploymentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employment_code" {
			return employmenterrors.ErrEmploymentCodeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employment_code") {
		return employmenterrors.ErrEmploymentCodeAlreadyExists
	}

	return err
}
