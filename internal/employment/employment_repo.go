package employment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employment) error
	FindAll(ctx context.Context) ([]Employment, error)
	FindByID(ctx context.Context, id string) (*Employment, error)
	FindByCode(ctx context.Context, code string) (*Employment, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Employment, error)
	FindActiveByEmployee(ctx context.Context, employeeID string) (*Employment, error)
	Update(ctx context.Context, emp *Employment) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, emp *Employment) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employment, error) {
	var emps []Employment
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employment, error) {
	var emp Employment
	err := r.db.WithContext(ctx).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employment, error) {
	var emp Employment
	err := r.db.WithContext(ctx).
		First(&emp, "code = ?", code).Error
	return &emp, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Employment, error) {
	var emps []Employment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&emps).Error
	return emps, err
}

// FindActiveByEmployee returns the single ACTIVE contract, most recent
// start date winning if data ever violates the one-active invariant.
func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) (*Employment, error) {
	var emp Employment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, StatusActive).
		Order("start_date DESC").
		First(&emp).Error
	return &emp, err
}

func (r *repository) Update(ctx context.Context, emp *Employment) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employment{}, "id = ?", id).Error
}
