package employment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employmenterrors "github.com/hrh2/erp/internal/employment/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmploymentRequest) (EmploymentResponse, error)
	GetAll(ctx context.Context) ([]EmploymentResponse, error)
	GetByID(ctx context.Context, id string) (EmploymentResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]EmploymentResponse, error)
	Update(ctx context.Context, id string, req UpdateEmploymentRequest) (EmploymentResponse, error)
	Delete(ctx context.Context, id string) error

	// ActiveContractFor is the lookup the payroll engine consumes.
	ActiveContractFor(ctx context.Context, employeeID string) (*Employment, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmploymentRequest,
) (EmploymentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeID, baseSalary, startDate, err := parseEmploymentFields(req.EmployeeID, req.BaseSalary, req.StartDate)
	if err != nil {
		return EmploymentResponse{}, err
	}

	emp := &Employment{
		ID:         uuid.New(),
		Code:       req.Code,
		EmployeeID: employeeID,
		Department: req.Department,
		Position:   req.Position,
		BaseSalary: baseSalary,
		Status:     req.Status,
		StartDate:  startDate,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmploymentResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmploymentResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]EmploymentResponse, error) {
	emps, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(emps), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmploymentRequest,
) (EmploymentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	baseSalary, err := parseBaseSalary(req.BaseSalary)
	if err != nil {
		return EmploymentResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidStartDate
	}

	emp.Code = req.Code
	emp.Department = req.Department
	emp.Position = req.Position
	emp.BaseSalary = baseSalary
	emp.Status = req.Status
	emp.StartDate = startDate

	if err := qtx.Update(ctx, emp); err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	return mapToResponse(*emp), nil
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

func (s *service) ActiveContractFor(ctx context.Context, employeeID string) (*Employment, error) {
	emp, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employmenterrors.ErrNoActiveEmployment
		}
		return nil, err
	}
	return emp, nil
}

func parseEmploymentFields(employeeID, baseSalary, startDate string) (uuid.UUID, decimal.Decimal, time.Time, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, decimal.Zero, time.Time{}, employmenterrors.ErrInvalidEmployeeID
	}

	salary, err := parseBaseSalary(baseSalary)
	if err != nil {
		return uuid.Nil, decimal.Zero, time.Time{}, err
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return uuid.Nil, decimal.Zero, time.Time{}, employmenterrors.ErrInvalidStartDate
	}

	return empID, salary, start, nil
}

func parseBaseSalary(v string) (decimal.Decimal, error) {
	salary, err := decimal.NewFromString(v)
	if err != nil || !salary.IsPositive() {
		return decimal.Zero, employmenterrors.ErrInvalidBaseSalary
	}
	return salary, nil
}

func mapToResponse(emp Employment) EmploymentResponse {
	return EmploymentResponse{
		ID:         emp.ID.String(),
		Code:       emp.Code,
		EmployeeID: emp.EmployeeID.String(),
		Department: emp.Department,
		Position:   emp.Position,
		BaseSalary: emp.BaseSalary.StringFixed(2),
		Status:     emp.Status,
		StartDate:  emp.StartDate.Format("2006-01-02"),
	}
}

func mapToListResponse(emps []Employment) []EmploymentResponse {
	resp := make([]EmploymentResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp
}
