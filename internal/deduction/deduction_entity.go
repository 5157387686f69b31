package deduction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deduction is a named percentage rule applied to base salary. Payslips
// copy the computed amounts, so editing a rule never changes payslips
// that were already issued.
type Deduction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code       string          `gorm:"type:varchar(20);uniqueIndex:uq_deduction_code"`
	Name       string          `gorm:"type:varchar(80);uniqueIndex:uq_deduction_name"`
	Percentage decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
