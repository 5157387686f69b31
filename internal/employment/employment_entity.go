package employment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Employment is one contract between the organisation and an employee.
// At most one per employee may be ACTIVE at a time; the payroll engine
// depends on that.
type Employment struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code       string          `gorm:"type:varchar(20);uniqueIndex:uq_employment_code"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Department string          `gorm:"type:varchar(80)"`
	Position   string          `gorm:"type:varchar(80)"`
	BaseSalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
