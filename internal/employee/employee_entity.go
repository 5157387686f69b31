package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"
)

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_code"`
	FirstName   string    `gorm:"type:varchar(80);not null"`
	LastName    string    `gorm:"type:varchar(80);not null"`
	Email       string    `gorm:"type:varchar(160);uniqueIndex:uq_employee_email"`
	Status      string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	DateOfBirth *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
