package payroll

import (
	"github.com/hrh2/erp/internal/deduction"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ruleAmount applies one percentage rule to the base salary. The rate
// is rounded to 2 places before multiplying, then the product is
// rounded to 2 places again. Both steps round half up, so 33.33% of
// 100.00 is 33.00, not 33.33.
func ruleAmount(base decimal.Decimal, percentage decimal.Decimal) decimal.Decimal {
	rate := percentage.DivRound(oneHundred, 2)
	return base.Mul(rate).Round(2)
}

type computedAmounts struct {
	Housing          decimal.Decimal
	Transport        decimal.Decimal
	EmployeeTax      decimal.Decimal
	Pension          decimal.Decimal
	MedicalInsurance decimal.Decimal
	Other            decimal.Decimal
	Gross            decimal.Decimal
	TotalDeductions  decimal.Decimal
	Net              decimal.Decimal
}

// computeAmounts evaluates every rule kind against the base salary.
// Gross is base plus the allowance rules, deductions come off gross.
func computeAmounts(base decimal.Decimal, snap deduction.Snapshot) computedAmounts {
	a := computedAmounts{
		Housing:          ruleAmount(base, snap.Percentage(deduction.KindHousing)),
		Transport:        ruleAmount(base, snap.Percentage(deduction.KindTransport)),
		EmployeeTax:      ruleAmount(base, snap.Percentage(deduction.KindEmployeeTax)),
		Pension:          ruleAmount(base, snap.Percentage(deduction.KindPension)),
		MedicalInsurance: ruleAmount(base, snap.Percentage(deduction.KindMedicalInsurance)),
		Other:            ruleAmount(base, snap.Percentage(deduction.KindOther)),
	}

	a.Gross = base.Add(a.Housing).Add(a.Transport).Round(2)
	a.TotalDeductions = a.EmployeeTax.
		Add(a.Pension).
		Add(a.MedicalInsurance).
		Add(a.Other).
		Round(2)
	a.Net = a.Gross.Sub(a.TotalDeductions)

	return a
}
