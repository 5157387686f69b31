package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// Payslip is the computed pay statement for one employee and one
// calendar month. Amounts are copied from the catalog at computation
// time; later rule edits never touch an issued payslip.
//
// The composite unique index is the idempotency guarantee: a duplicate
// (employee, month, year) insert fails at the database even when two
// requests race past the exists check.
type Payslip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_payslip_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_payslip_employee_period"`

	HousingAmount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TransportAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EmployeeTaxAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PensionAmount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MedicalInsuranceAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OtherDeductions        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrossSalary            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetSalary              decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApprovedAt *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
