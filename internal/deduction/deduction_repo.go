package deduction

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, ded *Deduction) error
	FindAll(ctx context.Context) ([]Deduction, error)
	FindByID(ctx context.Context, id string) (*Deduction, error)
	FindByCode(ctx context.Context, code string) (*Deduction, error)
	FindByName(ctx context.Context, name string) (*Deduction, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, ded *Deduction) error
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

func (r *repository) Create(ctx context.Context, ded *Deduction) error {
	return r.db.WithContext(ctx).Create(ded).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Deduction, error) {
	var deds []Deduction
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&deds).Error
	return deds, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Deduction, error) {
	var ded Deduction
	err := r.db.WithContext(ctx).
		First(&ded, "id = ?", id).Error
	return &ded, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Deduction, error) {
	var ded Deduction
	err := r.db.WithContext(ctx).
		First(&ded, "code = ?", code).Error
	return &ded, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Deduction, error) {
	var ded Deduction
	err := r.db.WithContext(ctx).
		First(&ded, "name = ?", name).Error
	return &ded, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Deduction{}).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, ded *Deduction) error {
	return r.db.WithContext(ctx).Save(ded).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Deduction{}, "id = ?", id).Error
}
