package payroll

// run item outcomes
const (
	OutcomeCreated           = "created"
	OutcomeSkippedExists     = "skipped_exists"
	OutcomeSkippedNoContract = "skipped_no_contract"
	OutcomeApproved          = "approved"
	OutcomeFailed            = "failed"
)

type PayslipResponse struct {
	ID                     string `json:"id"`
	EmployeeID             string `json:"employee_id"`
	Month                  int    `json:"month"`
	Year                   int    `json:"year"`
	HousingAmount          string `json:"housing_amount"`
	TransportAmount        string `json:"transport_amount"`
	EmployeeTaxAmount      string `json:"employee_tax_amount"`
	PensionAmount          string `json:"pension_amount"`
	MedicalInsuranceAmount string `json:"medical_insurance_amount"`
	OtherDeductions        string `json:"other_deductions"`
	GrossSalary            string `json:"gross_salary"`
	NetSalary              string `json:"net_salary"`
	Status                 string `json:"status"`
	ApprovedAt             string `json:"approved_at,omitempty"`
}

// RunItem records the outcome for one employee within a monthly run.
type RunItem struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Outcome      string `json:"outcome"`
	PayslipID    string `json:"payslip_id,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// RunReport is the result of a whole-month generate or approve run.
// A run never fails as a whole; per-employee problems land in Items.
type RunReport struct {
	Month   int               `json:"month"`
	Year    int               `json:"year"`
	Created []PayslipResponse `json:"created"`
	Items   []RunItem         `json:"items"`
}
