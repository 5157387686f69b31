package payroll

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

const payslipColumns = `
        id, employee_id, month, year,
        housing_amount, transport_amount, employee_tax_amount, pension_amount,
        medical_insurance_amount, other_deductions, gross_salary, net_salary,
        status, approved_at, created_at, updated_at`

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, slip *Payslip) error
	Exists(ctx context.Context, employeeID string, month, year int) (bool, error)
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error)
	FindByStatus(ctx context.Context, status string) ([]Payslip, error)
	FindByPeriod(ctx context.Context, month, year int) ([]Payslip, error)
	FindByPeriodAndStatus(ctx context.Context, month, year int, status string) ([]Payslip, error)
	Update(ctx context.Context, slip *Payslip) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Create rides the caller's transaction when one is set, so the
// insert commits or rolls back with the rest of the unit of work.
func (r *repository) Create(ctx context.Context, slip *Payslip) error {
	if r.tx != nil {
		query := `
        INSERT INTO payslips (` + payslipColumns + `
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())
    `
		_, err := r.tx.ExecContext(
			ctx, query,
			slip.ID, slip.EmployeeID, slip.Month, slip.Year,
			slip.HousingAmount, slip.TransportAmount, slip.EmployeeTaxAmount, slip.PensionAmount,
			slip.MedicalInsuranceAmount, slip.OtherDeductions, slip.GrossSalary, slip.NetSalary,
			slip.Status, slip.ApprovedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) Exists(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if r.tx != nil {
		var count int64
		err := r.tx.QueryRowContext(
			ctx,
			`SELECT count(*) FROM payslips WHERE employee_id = $1 AND month = $2 AND year = $3`,
			employeeID, month, year,
		).Scan(&count)
		return count > 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	if r.tx != nil {
		var slip Payslip
		err := r.tx.QueryRowContext(
			ctx,
			`SELECT `+payslipColumns+` FROM payslips WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(
			&slip.ID, &slip.EmployeeID, &slip.Month, &slip.Year,
			&slip.HousingAmount, &slip.TransportAmount, &slip.EmployeeTaxAmount, &slip.PensionAmount,
			&slip.MedicalInsuranceAmount, &slip.OtherDeductions, &slip.GrossSalary, &slip.NetSalary,
			&slip.Status, &slip.ApprovedAt, &slip.CreatedAt, &slip.UpdatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gorm.ErrRecordNotFound
		}
		if err != nil {
			return nil, err
		}
		return &slip, nil
	}

	var slip Payslip
	err := r.db.WithContext(ctx).
		First(&slip, "id = ?", id).Error
	return &slip, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("year DESC, month DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&slip).Error
	return &slip, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("year DESC, month DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByPeriod(ctx context.Context, month, year int) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByPeriodAndStatus(ctx context.Context, month, year int, status string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ? AND status = ?", month, year, status).
		Order("created_at ASC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) Update(ctx context.Context, slip *Payslip) error {
	if r.tx != nil {
		query := `
        UPDATE payslips SET
            housing_amount = $2, transport_amount = $3, employee_tax_amount = $4,
            pension_amount = $5, medical_insurance_amount = $6, other_deductions = $7,
            gross_salary = $8, net_salary = $9, status = $10, approved_at = $11,
            updated_at = now()
        WHERE id = $1
    `
		_, err := r.tx.ExecContext(
			ctx, query,
			slip.ID,
			slip.HousingAmount, slip.TransportAmount, slip.EmployeeTaxAmount,
			slip.PensionAmount, slip.MedicalInsuranceAmount, slip.OtherDeductions,
			slip.GrossSalary, slip.NetSalary, slip.Status, slip.ApprovedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Save(slip).Error
}
