package notification

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, msg *Message) error
	FindAll(ctx context.Context) ([]Message, error)
	FindByID(ctx context.Context, id string) (*Message, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Message, error)
	FindByEmployeeAndMonthYear(ctx context.Context, employeeID, monthYear string) ([]Message, error)
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
// message row commits or rolls back together with the outbox event.
func (r *repository) Create(ctx context.Context, msg *Message) error {
	if r.tx != nil {
		query := `
        INSERT INTO messages (id, employee_id, body, month_year, sent_at, created_at)
        VALUES ($1, $2, $3, $4, $5, now())
    `
		_, err := r.tx.ExecContext(
			ctx, query,
			msg.ID, msg.EmployeeID, msg.Body, msg.MonthYear, msg.SentAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Message, error) {
	var msgs []Message
	err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Message, error) {
	var msg Message
	err := r.db.WithContext(ctx).
		First(&msg, "id = ?", id).Error
	return &msg, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Message, error) {
	var msgs []Message
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("sent_at DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) FindByEmployeeAndMonthYear(ctx context.Context, employeeID, monthYear string) ([]Message, error) {
	var msgs []Message
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month_year = ?", employeeID, monthYear).
		Order("sent_at DESC").
		Find(&msgs).Error
	return msgs, err
}
