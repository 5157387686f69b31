package payroll_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/hrh2/erp/internal/deduction"
	"github.com/hrh2/erp/internal/employee"
	"github.com/hrh2/erp/internal/employment"
	employmenterrors "github.com/hrh2/erp/internal/employment/errors"
	"github.com/hrh2/erp/internal/payroll"
	payrollerrors "github.com/hrh2/erp/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayslipRepository struct {
	withTxFn                    func(tx *sql.Tx) payroll.Repository
	createFn                    func(ctx context.Context, slip *payroll.Payslip) error
	existsFn                    func(ctx context.Context, employeeID string, month, year int) (bool, error)
	findByIDFn                  func(ctx context.Context, id string) (*payroll.Payslip, error)
	findByEmployeeFn            func(ctx context.Context, employeeID string) ([]payroll.Payslip, error)
	findByEmployeeAndStatusFn   func(ctx context.Context, employeeID, status string) ([]payroll.Payslip, error)
	findByEmployeeAndPeriodFn   func(ctx context.Context, employeeID string, month, year int) (*payroll.Payslip, error)
	findByStatusFn              func(ctx context.Context, status string) ([]payroll.Payslip, error)
	findByPeriodFn              func(ctx context.Context, month, year int) ([]payroll.Payslip, error)
	findByPeriodAndStatusFn     func(ctx context.Context, month, year int, status string) ([]payroll.Payslip, error)
	updateFn                    func(ctx context.Context, slip *payroll.Payslip) error
}

func (f *fakePayslipRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayslipRepository) Create(ctx context.Context, slip *payroll.Payslip) error {
	if f.createFn != nil {
		return f.createFn(ctx, slip)
	}
	return nil
}

func (f *fakePayslipRepository) Exists(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, employeeID, month, year)
	}
	return false, nil
}

func (f *fakePayslipRepository) FindByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayslipRepository) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]payroll.Payslip, error) {
	if f.findByEmployeeAndStatusFn != nil {
		return f.findByEmployeeAndStatusFn(ctx, employeeID, status)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payslip, error) {
	if f.findByEmployeeAndPeriodFn != nil {
		return f.findByEmployeeAndPeriodFn(ctx, employeeID, month, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayslipRepository) FindByStatus(ctx context.Context, status string) ([]payroll.Payslip, error) {
	if f.findByStatusFn != nil {
		return f.findByStatusFn(ctx, status)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByPeriod(ctx context.Context, month, year int) ([]payroll.Payslip, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, month, year)
	}
	return nil, nil
}

func (f *fakePayslipRepository) FindByPeriodAndStatus(ctx context.Context, month, year int, status string) ([]payroll.Payslip, error) {
	if f.findByPeriodAndStatusFn != nil {
		return f.findByPeriodAndStatusFn(ctx, month, year, status)
	}
	return nil, nil
}

func (f *fakePayslipRepository) Update(ctx context.Context, slip *payroll.Payslip) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, slip)
	}
	return nil
}

type fakeEmploymentLookup struct {
	activeContractForFn func(ctx context.Context, employeeID string) (*employment.Employment, error)
}

func (f *fakeEmploymentLookup) ActiveContractFor(ctx context.Context, employeeID string) (*employment.Employment, error) {
	if f.activeContractForFn != nil {
		return f.activeContractForFn(ctx, employeeID)
	}
	return nil, employmenterrors.ErrNoActiveEmployment
}

type fakeDeductionSource struct {
	snapshotFn func(ctx context.Context) (deduction.Snapshot, error)
}

func (f *fakeDeductionSource) Snapshot(ctx context.Context) (deduction.Snapshot, error) {
	if f.snapshotFn != nil {
		return f.snapshotFn(ctx)
	}
	return deduction.Snapshot{}, nil
}

type fakeEmployeeDirectory struct {
	findAllFn  func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeDirectory) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeNotifier struct {
	notifyFn func(ctx context.Context, notice payroll.ApprovalNotice) error
	notices  []payroll.ApprovalNotice
}

func (f *fakeNotifier) NotifyApproval(ctx context.Context, notice payroll.ApprovalNotice) error {
	f.notices = append(f.notices, notice)
	if f.notifyFn != nil {
		return f.notifyFn(ctx, notice)
	}
	return nil
}

type payrollServiceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     payroll.Service
	repo        *fakePayslipRepository
	employments *fakeEmploymentLookup
	deductions  *fakeDeductionSource
	employees   *fakeEmployeeDirectory
	notifier    *fakeNotifier
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &payrollServiceDeps{
		db:          db,
		sqlMock:     sqlMock,
		repo:        &fakePayslipRepository{},
		employments: &fakeEmploymentLookup{},
		deductions:  &fakeDeductionSource{},
		employees:   &fakeEmployeeDirectory{},
		notifier:    &fakeNotifier{},
	}
	deps.service = payroll.NewService(
		db,
		deps.repo,
		deps.employments,
		deps.deductions,
		deps.employees,
		deps.notifier,
	)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func defaultSnapshot() deduction.Snapshot {
	rules := []deduction.Deduction{
		{Name: "Employee Tax", Percentage: decimal.NewFromFloat(30.0)},
		{Name: "Pension", Percentage: decimal.NewFromFloat(6.0)},
		{Name: "Medical Insurance", Percentage: decimal.NewFromFloat(5.0)},
		{Name: "Housing", Percentage: decimal.NewFromFloat(14.0)},
		{Name: "Transport", Percentage: decimal.NewFromFloat(14.0)},
		{Name: "Others", Percentage: decimal.NewFromFloat(5.0)},
	}
	return deduction.BuildSnapshot(rules, nil)
}

func stubEmployee(id uuid.UUID) *employee.Employee {
	return &employee.Employee{
		ID:        id,
		Code:      "EMP001",
		FirstName: "Aline",
		LastName:  "Uwase",
		Email:     "aline@erp.example",
		Status:    employee.StatusActive,
	}
}

func stubContract(employeeID uuid.UUID, baseSalary string) *employment.Employment {
	return &employment.Employment{
		ID:         uuid.New(),
		Code:       "EMC001",
		EmployeeID: employeeID,
		Department: "Finance",
		Position:   "Accountant",
		BaseSalary: decimal.RequireFromString(baseSalary),
		Status:     employment.StatusActive,
	}
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}
	deps.employments.activeContractForFn = func(ctx context.Context, id string) (*employment.Employment, error) {
		return stubContract(employeeID, "1000.00"), nil
	}
	deps.deductions.snapshotFn = func(ctx context.Context) (deduction.Snapshot, error) {
		return defaultSnapshot(), nil
	}
	deps.repo.createFn = func(ctx context.Context, slip *payroll.Payslip) error {
		assert.Equal(t, "140.00", slip.HousingAmount.StringFixed(2))
		assert.Equal(t, "140.00", slip.TransportAmount.StringFixed(2))
		assert.Equal(t, "300.00", slip.EmployeeTaxAmount.StringFixed(2))
		assert.Equal(t, "60.00", slip.PensionAmount.StringFixed(2))
		assert.Equal(t, "50.00", slip.MedicalInsuranceAmount.StringFixed(2))
		assert.Equal(t, "50.00", slip.OtherDeductions.StringFixed(2))
		assert.Equal(t, "1280.00", slip.GrossSalary.StringFixed(2))
		assert.Equal(t, "820.00", slip.NetSalary.StringFixed(2))
		assert.Equal(t, payroll.StatusPending, slip.Status)
		return nil
	}

	resp, err := deps.service.Generate(ctx, employeeID.String(), 8, 2026)

	assert.NoError(t, err)
	assert.Equal(t, "820.00", resp.NetSalary)
	assert.Equal(t, payroll.StatusPending, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_RoundsRateBeforeApplying(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}
	deps.employments.activeContractForFn = func(ctx context.Context, id string) (*employment.Employment, error) {
		return stubContract(employeeID, "100.00"), nil
	}
	deps.deductions.snapshotFn = func(ctx context.Context) (deduction.Snapshot, error) {
		// 33.33% becomes a rate of 0.33, not 0.3333
		return deduction.BuildSnapshot([]deduction.Deduction{
			{Name: "Employee Tax", Percentage: decimal.RequireFromString("33.33")},
		}, nil), nil
	}

	var created *payroll.Payslip
	deps.repo.createFn = func(ctx context.Context, slip *payroll.Payslip) error {
		created = slip
		return nil
	}

	_, err := deps.service.Generate(ctx, employeeID.String(), 1, 2026)

	assert.NoError(t, err)
	assert.Equal(t, "33.00", created.EmployeeTaxAmount.StringFixed(2))
	assert.Equal(t, "100.00", created.GrossSalary.StringFixed(2))
	assert.Equal(t, "67.00", created.NetSalary.StringFixed(2))
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_DuplicatePeriod(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	// the duplicate gate runs before the contract lookup, so no
	// transaction opens and the default lookup (no active contract)
	// is never consulted
	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}
	deps.repo.existsFn = func(ctx context.Context, id string, month, year int) (bool, error) {
		return true, nil
	}
	deps.repo.createFn = func(ctx context.Context, slip *payroll.Payslip) error {
		t.Fatal("nothing may be persisted for a duplicate period")
		return nil
	}

	_, err := deps.service.Generate(ctx, employeeID.String(), 8, 2026)

	assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_DuplicateWinsOverInactiveContract(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}
	deps.employments.activeContractForFn = func(ctx context.Context, id string) (*employment.Employment, error) {
		return nil, employmenterrors.ErrNoActiveEmployment
	}
	deps.repo.existsFn = func(ctx context.Context, id string, month, year int) (bool, error) {
		return true, nil
	}

	_, err := deps.service.Generate(ctx, employeeID.String(), 8, 2026)

	assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	assert.NotErrorIs(t, err, employmenterrors.ErrNoActiveEmployment)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_NoActiveContract(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}

	_, err := deps.service.Generate(ctx, employeeID.String(), 8, 2026)

	assert.ErrorIs(t, err, employmenterrors.ErrNoActiveEmployment)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_DeductionsExceedGross(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}
	deps.employments.activeContractForFn = func(ctx context.Context, id string) (*employment.Employment, error) {
		return stubContract(employeeID, "1000.00"), nil
	}
	deps.deductions.snapshotFn = func(ctx context.Context) (deduction.Snapshot, error) {
		return deduction.BuildSnapshot([]deduction.Deduction{
			{Name: "Employee Tax", Percentage: decimal.RequireFromString("150.00")},
		}, nil), nil
	}
	deps.repo.createFn = func(ctx context.Context, slip *payroll.Payslip) error {
		t.Fatal("nothing may be persisted when the invariant fails")
		return nil
	}

	_, err := deps.service.Generate(ctx, employeeID.String(), 8, 2026)

	assert.ErrorIs(t, err, payrollerrors.ErrDeductionsExceedGross)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_InvalidPeriod(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Generate(ctx, uuid.NewString(), 13, 2026)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

	_, err = deps.service.Generate(ctx, "not-a-uuid", 8, 2026)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
}

func TestPayrollService_GenerateForMonth_PartialOutcomes(t *testing.T) {
	ctx := context.Background()

	okID := uuid.New()
	existsID := uuid.New()
	noContractID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	// only the first employee opens a transaction; the second stops at
	// the duplicate gate and the third at the contract lookup
	expectTx(t, deps.sqlMock, true)

	deps.employees.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{
			{ID: okID, Code: "EMP001", FirstName: "Aline", Status: employee.StatusActive},
			{ID: existsID, Code: "EMP002", FirstName: "Eric", Status: employee.StatusActive},
			{ID: noContractID, Code: "EMP003", FirstName: "Chantal", Status: employee.StatusActive},
		}, nil
	}
	deps.employments.activeContractForFn = func(ctx context.Context, id string) (*employment.Employment, error) {
		if id == noContractID.String() {
			return nil, employmenterrors.ErrNoActiveEmployment
		}
		return stubContract(uuid.MustParse(id), "1000.00"), nil
	}
	deps.deductions.snapshotFn = func(ctx context.Context) (deduction.Snapshot, error) {
		return defaultSnapshot(), nil
	}
	deps.repo.existsFn = func(ctx context.Context, id string, month, year int) (bool, error) {
		return id == existsID.String(), nil
	}

	report, err := deps.service.GenerateForMonth(ctx, 8, 2026)

	assert.NoError(t, err)
	assert.Len(t, report.Created, 1)
	assert.Len(t, report.Items, 3)
	assert.Equal(t, payroll.OutcomeCreated, report.Items[0].Outcome)
	assert.Equal(t, payroll.OutcomeSkippedExists, report.Items[1].Outcome)
	assert.Equal(t, payroll.OutcomeSkippedNoContract, report.Items[2].Outcome)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Approve(t *testing.T) {
	ctx := context.Background()
	payslipID := uuid.New()
	employeeID := uuid.New()

	t.Run("pending becomes paid and notifier fires", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{
				ID:         payslipID,
				EmployeeID: employeeID,
				Month:      8,
				Year:       2026,
				NetSalary:  decimal.RequireFromString("820.00"),
				Status:     payroll.StatusPending,
			}, nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return stubEmployee(employeeID), nil
		}

		resp, err := deps.service.Approve(ctx, payslipID.String())

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.NotEmpty(t, resp.ApprovedAt)
		assert.Len(t, deps.notifier.notices, 1)
		assert.Equal(t, "820.00", deps.notifier.notices[0].NetSalary.StringFixed(2))
		assert.Equal(t, "EMP001", deps.notifier.notices[0].EmployeeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already paid is a conflict", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{
				ID:         payslipID,
				EmployeeID: employeeID,
				Status:     payroll.StatusPaid,
			}, nil
		}

		_, err := deps.service.Approve(ctx, payslipID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyPaid)
		assert.Empty(t, deps.notifier.notices)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown payslip is not found", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Approve(ctx, payslipID.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("notifier failure does not undo the approval", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return &payroll.Payslip{
				ID:         payslipID,
				EmployeeID: employeeID,
				Month:      8,
				Year:       2026,
				NetSalary:  decimal.RequireFromString("820.00"),
				Status:     payroll.StatusPending,
			}, nil
		}
		deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return stubEmployee(employeeID), nil
		}
		deps.notifier.notifyFn = func(ctx context.Context, notice payroll.ApprovalNotice) error {
			return errors.New("broker unreachable")
		}

		resp, err := deps.service.Approve(ctx, payslipID.String())

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_ApproveForMonth(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	expectTx(t, deps.sqlMock, true)

	deps.repo.findByPeriodAndStatusFn = func(ctx context.Context, month, year int, status string) ([]payroll.Payslip, error) {
		assert.Equal(t, payroll.StatusPending, status)
		return []payroll.Payslip{
			{ID: firstID, EmployeeID: employeeID, Month: 8, Year: 2026, NetSalary: decimal.RequireFromString("820.00"), Status: payroll.StatusPending},
			{ID: secondID, EmployeeID: employeeID, Month: 8, Year: 2026, NetSalary: decimal.RequireFromString("540.00"), Status: payroll.StatusPending},
		}, nil
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
		slip := &payroll.Payslip{
			ID:         uuid.MustParse(id),
			EmployeeID: employeeID,
			Month:      8,
			Year:       2026,
			NetSalary:  decimal.RequireFromString("820.00"),
			Status:     payroll.StatusPending,
		}
		return slip, nil
	}
	deps.employees.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return stubEmployee(employeeID), nil
	}

	report, err := deps.service.ApproveForMonth(ctx, 8, 2026)

	assert.NoError(t, err)
	assert.Len(t, report.Created, 2)
	assert.Len(t, report.Items, 2)
	assert.Equal(t, payroll.OutcomeApproved, report.Items[0].Outcome)
	assert.Len(t, deps.notifier.notices, 2)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GetByStatus_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByStatus(ctx, "SHIPPED")

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatus)
}

func TestPayrollService_GetByEmployeeAndPeriod(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	t.Run("returns the period's payslip", func(t *testing.T) {
		slipID := uuid.New()
		deps.repo.findByEmployeeAndPeriodFn = func(ctx context.Context, id string, month, year int) (*payroll.Payslip, error) {
			assert.Equal(t, employeeID.String(), id)
			assert.Equal(t, 8, month)
			assert.Equal(t, 2026, year)
			return &payroll.Payslip{
				ID:         slipID,
				EmployeeID: employeeID,
				Month:      8,
				Year:       2026,
				NetSalary:  decimal.RequireFromString("820.00"),
				Status:     payroll.StatusPending,
			}, nil
		}

		resp, err := deps.service.GetByEmployeeAndPeriod(ctx, employeeID.String(), 8, 2026)

		assert.NoError(t, err)
		assert.Equal(t, slipID.String(), resp.ID)
		assert.Equal(t, "820.00", resp.NetSalary)
	})

	t.Run("no payslip for the period", func(t *testing.T) {
		deps.repo.findByEmployeeAndPeriodFn = nil

		_, err := deps.service.GetByEmployeeAndPeriod(ctx, employeeID.String(), 7, 2026)

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
	})

	t.Run("rejects a bad period", func(t *testing.T) {
		_, err := deps.service.GetByEmployeeAndPeriod(ctx, employeeID.String(), 0, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
	})
}
