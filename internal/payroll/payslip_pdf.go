package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hrh2/erp/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

// renderPayslipPDF produces the downloadable payslip document.
func renderPayslipPDF(slip *Payslip, emp *employee.Employee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Government of Rwanda", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Payslip for %s/%d", monthName(slip.Month), slip.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(50, 8, "Employee", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%s %s (%s)", emp.FirstName, emp.LastName, emp.Code), "", 1, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Status", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, slip.Status, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := []struct {
		label  string
		amount string
	}{
		{"Housing Allowance", slip.HousingAmount.StringFixed(2)},
		{"Transport Allowance", slip.TransportAmount.StringFixed(2)},
		{"Gross Salary", slip.GrossSalary.StringFixed(2)},
		{"Employee Tax", slip.EmployeeTaxAmount.StringFixed(2)},
		{"Pension", slip.PensionAmount.StringFixed(2)},
		{"Medical Insurance", slip.MedicalInsuranceAmount.StringFixed(2)},
		{"Other Deductions", slip.OtherDeductions.StringFixed(2)},
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(120, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row.amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 8, "Net Salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, slip.NetSalary.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return time.Month(month).String()
}
