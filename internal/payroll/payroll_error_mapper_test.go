package payroll

import (
	"errors"
	"fmt"
	"testing"

	payrollerrors "github.com/hrh2/erp/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	t.Run("record not found", func(t *testing.T) {
		err := mapRepositoryError(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
	})

	t.Run("unique index violation becomes conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_payslip_employee_period",
		}

		err := mapRepositoryError(pgErr)
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	})

	t.Run("wrapped unique index violation becomes conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_payslip_employee_period",
		}

		err := mapRepositoryError(fmt.Errorf("create payslip: %w", pgErr))
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	})

	t.Run("duplicate detected from the driver message", func(t *testing.T) {
		err := mapRepositoryError(errors.New(
			`ERROR: duplicate key value violates unique constraint "uq_payslip_employee_period" (SQLSTATE 23505)`,
		))
		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	})

	t.Run("unrelated unique index passes through", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_message_employee_period",
		}

		err := mapRepositoryError(pgErr)
		assert.NotErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	})
}
