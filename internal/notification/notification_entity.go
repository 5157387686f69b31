package notification

import (
	"time"

	"github.com/google/uuid"
)

// Message is the persisted record of an approval notice. The record is
// committed with the outbox event; actual delivery happens downstream.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body       string    `gorm:"type:text;not null"`
	MonthYear  string    `gorm:"type:varchar(10);not null;index"`
	SentAt     time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
