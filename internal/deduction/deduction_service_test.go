package deduction_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/hrh2/erp/internal/deduction"
	deductionerrors "github.com/hrh2/erp/internal/deduction/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDeductionRepository struct {
	withTxFn     func(tx *sql.Tx) deduction.Repository
	createFn     func(ctx context.Context, ded *deduction.Deduction) error
	findAllFn    func(ctx context.Context) ([]deduction.Deduction, error)
	findByIDFn   func(ctx context.Context, id string) (*deduction.Deduction, error)
	findByCodeFn func(ctx context.Context, code string) (*deduction.Deduction, error)
	findByNameFn func(ctx context.Context, name string) (*deduction.Deduction, error)
	countFn      func(ctx context.Context) (int64, error)
	updateFn     func(ctx context.Context, ded *deduction.Deduction) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeDeductionRepository) WithTx(tx *sql.Tx) deduction.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDeductionRepository) Create(ctx context.Context, ded *deduction.Deduction) error {
	if f.createFn != nil {
		return f.createFn(ctx, ded)
	}
	return nil
}

func (f *fakeDeductionRepository) FindAll(ctx context.Context) ([]deduction.Deduction, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDeductionRepository) FindByID(ctx context.Context, id string) (*deduction.Deduction, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeductionRepository) FindByCode(ctx context.Context, code string) (*deduction.Deduction, error) {
	if f.findByCodeFn != nil {
		return f.findByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeductionRepository) FindByName(ctx context.Context, name string) (*deduction.Deduction, error) {
	if f.findByNameFn != nil {
		return f.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDeductionRepository) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func (f *fakeDeductionRepository) Update(ctx context.Context, ded *deduction.Deduction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, ded)
	}
	return nil
}

func (f *fakeDeductionRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type deductionServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service deduction.Service
	repo    *fakeDeductionRepository
}

func setupDeductionServiceTest(t *testing.T) *deductionServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDeductionRepository{}
	svc := deduction.NewService(db, repo)

	return &deductionServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func TestDeductionService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupDeductionServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(ctx, deduction.CreateDeductionRequest{
		Code:       "DED007",
		Name:       "Solidarity Fund",
		Percentage: "1.5",
	})

	assert.NoError(t, err)
	assert.Equal(t, "DED007", resp.Code)
	assert.Equal(t, "1.50", resp.Percentage)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDeductionService_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()

	deps := setupDeductionServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findByNameFn = func(ctx context.Context, name string) (*deduction.Deduction, error) {
		return &deduction.Deduction{ID: uuid.New(), Code: "DED002", Name: name}, nil
	}

	_, err := deps.service.Create(ctx, deduction.CreateDeductionRequest{
		Code:       "DED099",
		Name:       "Pension",
		Percentage: "6.0",
	})

	assert.ErrorIs(t, err, deductionerrors.ErrDeductionNameAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDeductionService_Create_RejectsNegativePercentage(t *testing.T) {
	ctx := context.Background()

	deps := setupDeductionServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Create(ctx, deduction.CreateDeductionRequest{
		Code:       "DED099",
		Name:       "Clawback",
		Percentage: "-5",
	})

	assert.ErrorIs(t, err, deductionerrors.ErrInvalidPercentage)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDeductionService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("installs defaults on an empty catalog", func(t *testing.T) {
		deps := setupDeductionServiceTest(t)
		defer deps.db.Close()

		var created []deduction.Deduction
		deps.repo.createFn = func(ctx context.Context, ded *deduction.Deduction) error {
			created = append(created, *ded)
			return nil
		}

		err := deps.service.Seed(ctx)

		assert.NoError(t, err)
		assert.Len(t, created, 6)
		assert.Equal(t, "Employee Tax", created[0].Name)
		assert.True(t, created[0].Percentage.Equal(decimal.RequireFromString("30.0")))
	})

	t.Run("does nothing on a populated catalog", func(t *testing.T) {
		deps := setupDeductionServiceTest(t)
		defer deps.db.Close()

		deps.repo.countFn = func(ctx context.Context) (int64, error) {
			return 6, nil
		}
		deps.repo.createFn = func(ctx context.Context, ded *deduction.Deduction) error {
			t.Fatal("seed must not insert into a populated catalog")
			return nil
		}

		assert.NoError(t, deps.service.Seed(ctx))
	})
}

func TestDeductionService_Snapshot(t *testing.T) {
	ctx := context.Background()

	deps := setupDeductionServiceTest(t)
	defer deps.db.Close()

	deps.repo.findAllFn = func(ctx context.Context) ([]deduction.Deduction, error) {
		return []deduction.Deduction{
			{Code: "DED002", Name: "Pension", Percentage: decimal.RequireFromString("6.0")},
		}, nil
	}

	snap, err := deps.service.Snapshot(ctx)

	assert.NoError(t, err)
	assert.True(t, snap.Percentage(deduction.KindPension).Equal(decimal.RequireFromString("6.0")))
	assert.True(t, snap.Percentage(deduction.KindHousing).IsZero())
}
