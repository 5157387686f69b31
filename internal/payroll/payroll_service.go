package payroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/hrh2/erp/internal/deduction"
	"github.com/hrh2/erp/internal/employee"
	"github.com/hrh2/erp/internal/employment"
	employmenterrors "github.com/hrh2/erp/internal/employment/errors"
	payrollerrors "github.com/hrh2/erp/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmploymentLookup resolves the active contract whose base salary a
// computation reads. Satisfied by employment.Service.
type EmploymentLookup interface {
	ActiveContractFor(ctx context.Context, employeeID string) (*employment.Employment, error)
}

// DeductionSource supplies the frozen rule percentages for one
// computation. Satisfied by deduction.Service.
type DeductionSource interface {
	Snapshot(ctx context.Context) (deduction.Snapshot, error)
}

// EmployeeDirectory is the slice of the employee store the engine
// needs. Satisfied by employee.Repository.
type EmployeeDirectory interface {
	FindAll(ctx context.Context) ([]employee.Employee, error)
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

// ApprovalNotice carries everything the notifier needs to tell an
// employee their salary went out.
type ApprovalNotice struct {
	PayslipID    string
	EmployeeID   string
	FirstName    string
	EmployeeCode string
	Month        int
	Year         int
	NetSalary    decimal.Decimal
}

// Notifier is invoked after a payslip flips to PAID. Failures are
// logged by the engine and never undo the approval.
type Notifier interface {
	NotifyApproval(ctx context.Context, notice ApprovalNotice) error
}

type Service interface {
	Generate(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)
	GenerateForMonth(ctx context.Context, month, year int) (RunReport, error)
	Approve(ctx context.Context, payslipID string) (PayslipResponse, error)
	ApproveForMonth(ctx context.Context, month, year int) (RunReport, error)

	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]PayslipResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)
	GetByStatus(ctx context.Context, status string) ([]PayslipResponse, error)
	GetByPeriod(ctx context.Context, month, year int) ([]PayslipResponse, error)
	GetByPeriodAndStatus(ctx context.Context, month, year int, status string) ([]PayslipResponse, error)

	DownloadPayslipPDF(ctx context.Context, id string) ([]byte, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	employments EmploymentLookup
	deductions  DeductionSource
	employees   EmployeeDirectory
	notifier    Notifier
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employments EmploymentLookup,
	deductions DeductionSource,
	employees EmployeeDirectory,
	notifier Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		employments: employments,
		deductions:  deductions,
		employees:   employees,
		notifier:    notifier,
		logger:      l,
	}
}

func (s *service) Generate(
	ctx context.Context,
	employeeID string,
	month, year int,
) (PayslipResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return PayslipResponse{}, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayslipResponse{}, err
	}

	return s.generateOne(ctx, emp, month, year)
}

// GenerateForMonth computes payslips for every employee with an active
// contract. The run never fails as a whole; each employee's outcome is
// reported individually.
func (s *service) GenerateForMonth(ctx context.Context, month, year int) (RunReport, error) {
	if err := validatePeriod(month, year); err != nil {
		return RunReport{}, err
	}

	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return RunReport{}, err
	}

	report := RunReport{Month: month, Year: year}
	for i := range emps {
		emp := &emps[i]
		item := RunItem{
			EmployeeID:   emp.ID.String(),
			EmployeeCode: emp.Code,
		}

		resp, err := s.generateOne(ctx, emp, month, year)
		switch {
		case err == nil:
			item.Outcome = OutcomeCreated
			item.PayslipID = resp.ID
			report.Created = append(report.Created, resp)
		case errors.Is(err, payrollerrors.ErrPayslipAlreadyExists):
			item.Outcome = OutcomeSkippedExists
		case errors.Is(err, employmenterrors.ErrNoActiveEmployment):
			item.Outcome = OutcomeSkippedNoContract
		default:
			item.Outcome = OutcomeFailed
			item.Reason = err.Error()
			s.logger.Error("payslip generation failed",
				zap.String("employee_id", item.EmployeeID),
				zap.Int("month", month),
				zap.Int("year", year),
				zap.Error(err),
			)
		}

		report.Items = append(report.Items, item)
	}

	s.logger.Info("payroll run finished",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("employees", len(emps)),
		zap.Int("created", len(report.Created)),
	)

	return report, nil
}

func (s *service) generateOne(
	ctx context.Context,
	emp *employee.Employee,
	month, year int,
) (PayslipResponse, error) {
	// the duplicate check is the idempotency gate and wins over every
	// other failure mode, so it runs before the contract lookup
	exists, err := s.repo.Exists(ctx, emp.ID.String(), month, year)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if exists {
		return PayslipResponse{}, payrollerrors.ErrPayslipAlreadyExists
	}

	contract, err := s.employments.ActiveContractFor(ctx, emp.ID.String())
	if err != nil {
		return PayslipResponse{}, err
	}

	snap, err := s.deductions.Snapshot(ctx)
	if err != nil {
		return PayslipResponse{}, err
	}

	amounts := computeAmounts(contract.BaseSalary, snap)
	if amounts.TotalDeductions.GreaterThan(amounts.Gross) {
		return PayslipResponse{}, payrollerrors.ErrDeductionsExceedGross
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// re-checked under the transaction
	exists, err = qtx.Exists(ctx, emp.ID.String(), month, year)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if exists {
		return PayslipResponse{}, payrollerrors.ErrPayslipAlreadyExists
	}

	slip := &Payslip{
		ID:                     uuid.New(),
		EmployeeID:             emp.ID,
		Month:                  month,
		Year:                   year,
		HousingAmount:          amounts.Housing,
		TransportAmount:        amounts.Transport,
		EmployeeTaxAmount:      amounts.EmployeeTax,
		PensionAmount:          amounts.Pension,
		MedicalInsuranceAmount: amounts.MedicalInsurance,
		OtherDeductions:        amounts.Other,
		GrossSalary:            amounts.Gross,
		NetSalary:              amounts.Net,
		Status:                 StatusPending,
	}

	// the unique index closes the race two concurrent generates leave
	// open between the exists check and the insert
	if err := qtx.Create(ctx, slip); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	return mapToPayslipResponse(*slip), nil
}

func (s *service) Approve(ctx context.Context, payslipID string) (PayslipResponse, error) {
	if _, err := uuid.Parse(payslipID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	slip, err := s.approveOne(ctx, payslipID)
	if err != nil {
		return PayslipResponse{}, err
	}

	s.notifyApproval(ctx, slip)

	return mapToPayslipResponse(*slip), nil
}

// ApproveForMonth flips every PENDING payslip of the period to PAID.
// Like generation, the run reports per-payslip outcomes instead of
// failing as a whole.
func (s *service) ApproveForMonth(ctx context.Context, month, year int) (RunReport, error) {
	if err := validatePeriod(month, year); err != nil {
		return RunReport{}, err
	}

	pending, err := s.repo.FindByPeriodAndStatus(ctx, month, year, StatusPending)
	if err != nil {
		return RunReport{}, mapRepositoryError(err)
	}

	report := RunReport{Month: month, Year: year}
	for i := range pending {
		item := RunItem{
			EmployeeID: pending[i].EmployeeID.String(),
			PayslipID:  pending[i].ID.String(),
		}

		slip, err := s.approveOne(ctx, pending[i].ID.String())
		if err != nil {
			item.Outcome = OutcomeFailed
			item.Reason = err.Error()
			s.logger.Error("payslip approval failed",
				zap.String("payslip_id", item.PayslipID),
				zap.Error(err),
			)
			report.Items = append(report.Items, item)
			continue
		}

		item.Outcome = OutcomeApproved
		report.Created = append(report.Created, mapToPayslipResponse(*slip))
		report.Items = append(report.Items, item)

		s.notifyApproval(ctx, slip)
	}

	s.logger.Info("payroll approval run finished",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("approved", len(report.Created)),
	)

	return report, nil
}

func (s *service) approveOne(ctx context.Context, payslipID string) (*Payslip, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	slip, err := qtx.FindByID(ctx, payslipID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if slip.Status == StatusPaid {
		return nil, payrollerrors.ErrPayslipAlreadyPaid
	}

	now := time.Now()
	slip.Status = StatusPaid
	slip.ApprovedAt = &now

	if err := qtx.Update(ctx, slip); err != nil {
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return slip, nil
}

// notifyApproval runs after the approval commit. A notification
// failure is an operational problem, not a payroll problem, so it is
// logged and swallowed.
func (s *service) notifyApproval(ctx context.Context, slip *Payslip) {
	emp, err := s.employees.FindByID(ctx, slip.EmployeeID.String())
	if err != nil {
		s.logger.Error("load employee for approval notice failed",
			zap.String("payslip_id", slip.ID.String()),
			zap.String("employee_id", slip.EmployeeID.String()),
			zap.Error(err),
		)
		return
	}

	notice := ApprovalNotice{
		PayslipID:    slip.ID.String(),
		EmployeeID:   emp.ID.String(),
		FirstName:    emp.FirstName,
		EmployeeCode: emp.Code,
		Month:        slip.Month,
		Year:         slip.Year,
		NetSalary:    slip.NetSalary,
	}

	if err := s.notifier.NotifyApproval(ctx, notice); err != nil {
		s.logger.Error("approval notice failed",
			zap.String("payslip_id", slip.ID.String()),
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidPayslipID
	}

	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapToPayslipResponse(*slip), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	slips, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToPayslipListResponse(slips), nil
}

func (s *service) GetByEmployeeAndStatus(
	ctx context.Context,
	employeeID, status string,
) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}

	slips, err := s.repo.FindByEmployeeAndStatus(ctx, employeeID, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToPayslipListResponse(slips), nil
}

func (s *service) GetByEmployeeAndPeriod(
	ctx context.Context,
	employeeID string,
	month, year int,
) (PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if err := validatePeriod(month, year); err != nil {
		return PayslipResponse{}, err
	}

	slip, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	return mapToPayslipResponse(*slip), nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]PayslipResponse, error) {
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}

	slips, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToPayslipListResponse(slips), nil
}

func (s *service) GetByPeriod(ctx context.Context, month, year int) ([]PayslipResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	slips, err := s.repo.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToPayslipListResponse(slips), nil
}

func (s *service) GetByPeriodAndStatus(
	ctx context.Context,
	month, year int,
	status string,
) ([]PayslipResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	status, err := normalizeStatus(status)
	if err != nil {
		return nil, err
	}

	slips, err := s.repo.FindByPeriodAndStatus(ctx, month, year, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToPayslipListResponse(slips), nil
}

func (s *service) DownloadPayslipPDF(ctx context.Context, id string) ([]byte, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayslipID
	}

	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	emp, err := s.employees.FindByID(ctx, slip.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	return renderPayslipPDF(slip, emp)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return payrollerrors.ErrInvalidMonth
	}
	if year < 1900 || year > 2200 {
		return payrollerrors.ErrInvalidYear
	}
	return nil
}

func normalizeStatus(status string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case StatusPending:
		return StatusPending, nil
	case StatusPaid:
		return StatusPaid, nil
	default:
		return "", payrollerrors.ErrInvalidStatus
	}
}

func mapToPayslipResponse(slip Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                     slip.ID.String(),
		EmployeeID:             slip.EmployeeID.String(),
		Month:                  slip.Month,
		Year:                   slip.Year,
		HousingAmount:          slip.HousingAmount.StringFixed(2),
		TransportAmount:        slip.TransportAmount.StringFixed(2),
		EmployeeTaxAmount:      slip.EmployeeTaxAmount.StringFixed(2),
		PensionAmount:          slip.PensionAmount.StringFixed(2),
		MedicalInsuranceAmount: slip.MedicalInsuranceAmount.StringFixed(2),
		OtherDeductions:        slip.OtherDeductions.StringFixed(2),
		GrossSalary:            slip.GrossSalary.StringFixed(2),
		NetSalary:              slip.NetSalary.StringFixed(2),
		Status:                 slip.Status,
	}
	if slip.ApprovedAt != nil {
		resp.ApprovedAt = slip.ApprovedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToPayslipListResponse(slips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(slips))
	for i, slip := range slips {
		resp[i] = mapToPayslipResponse(slip)
	}
	return resp
}
