package deduction

import (
	"context"
	"database/sql"
	"errors"

	deductionerrors "github.com/hrh2/erp/internal/deduction/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// seedRules are installed once, when the catalog is empty.
var seedRules = []struct {
	code, name, percentage string
}{
	{"DED001", "Employee Tax", "30.0"},
	{"DED002", "Pension", "6.0"},
	{"DED003", "Medical Insurance", "5.0"},
	{"DED004", "Housing", "14.0"},
	{"DED005", "Transport", "14.0"},
	{"DED006", "Others", "5.0"},
}

type Service interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	GetAll(ctx context.Context) ([]DeductionResponse, error)
	GetByID(ctx context.Context, id string) (DeductionResponse, error)
	GetByCode(ctx context.Context, code string) (DeductionResponse, error)
	GetByName(ctx context.Context, name string) (DeductionResponse, error)
	Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error

	// Snapshot is what the payroll engine reads: the whole catalog
	// frozen into the closed rule-kind set.
	Snapshot(ctx context.Context) (Snapshot, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDeductionRequest,
) (DeductionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	percentage, err := parsePercentage(req.Percentage)
	if err != nil {
		return DeductionResponse{}, err
	}

	if err := s.checkUnique(ctx, qtx, req.Code, req.Name, ""); err != nil {
		return DeductionResponse{}, err
	}

	ded := &Deduction{
		ID:         uuid.New(),
		Code:       req.Code,
		Name:       req.Name,
		Percentage: percentage,
	}

	// the unique indexes remain the backstop against concurrent creates
	if err := qtx.Create(ctx, ded); err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DeductionResponse{}, err
	}

	return mapToResponse(*ded), nil
}

func (s *service) GetAll(ctx context.Context) ([]DeductionResponse, error) {
	deds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(deds), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DeductionResponse, error) {
	ded, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ded), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (DeductionResponse, error) {
	ded, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ded), nil
}

func (s *service) GetByName(ctx context.Context, name string) (DeductionResponse, error) {
	ded, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ded), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDeductionRequest,
) (DeductionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ded, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}

	percentage, err := parsePercentage(req.Percentage)
	if err != nil {
		return DeductionResponse{}, err
	}

	if err := s.checkUnique(ctx, qtx, req.Code, req.Name, id); err != nil {
		return DeductionResponse{}, err
	}

	ded.Code = req.Code
	ded.Name = req.Name
	ded.Percentage = percentage

	if err := qtx.Update(ctx, ded); err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DeductionResponse{}, err
	}

	return mapToResponse(*ded), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// Seed installs the default rules when the catalog is empty. Individual
// insert failures are logged and skipped so startup never aborts over a
// single rule.
func (s *service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedRules {
		percentage, err := decimal.NewFromString(seed.percentage)
		if err != nil {
			s.logger.Error("invalid seed percentage", zap.String("name", seed.name), zap.Error(err))
			continue
		}

		ded := &Deduction{
			ID:         uuid.New(),
			Code:       seed.code,
			Name:       seed.name,
			Percentage: percentage,
		}
		if err := s.repo.Create(ctx, ded); err != nil {
			s.logger.Error("seed deduction failed",
				zap.String("name", seed.name),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	// collapse concurrent snapshot loads (monthly batch calls this once
	// per employee otherwise)
	v, err, _ := s.sf.Do("snapshot", func() (any, error) {
		rules, err := s.repo.FindAll(ctx)
		if err != nil {
			return Snapshot{}, mapRepositoryError(err)
		}
		return BuildSnapshot(rules, s.logger), nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (s *service) checkUnique(ctx context.Context, repo Repository, code, name, excludeID string) error {
	if existing, err := repo.FindByCode(ctx, code); err == nil && existing.ID.String() != excludeID {
		return deductionerrors.ErrDeductionCodeAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing, err := repo.FindByName(ctx, name); err == nil && existing.ID.String() != excludeID {
		return deductionerrors.ErrDeductionNameAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}

func parsePercentage(v string) (decimal.Decimal, error) {
	percentage, err := decimal.NewFromString(v)
	if err != nil || percentage.IsNegative() {
		return decimal.Zero, deductionerrors.ErrInvalidPercentage
	}
	return percentage, nil
}

func mapToResponse(ded Deduction) DeductionResponse {
	return DeductionResponse{
		ID:         ded.ID.String(),
		Code:       ded.Code,
		Name:       ded.Name,
		Percentage: ded.Percentage.StringFixed(2),
	}
}

func mapToListResponse(deds []Deduction) []DeductionResponse {
	resp := make([]DeductionResponse, len(deds))
	for i, ded := range deds {
		resp[i] = mapToResponse(ded)
	}
	return resp
}
