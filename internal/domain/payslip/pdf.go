package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays the assembled document out as an A4 payslip.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Company.Name)
	pdf.Ln(8)
	if doc.Company.Tagline != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, doc.Company.Tagline)
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip - %s", doc.Period.Label))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	detail := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(50, 6, label)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(45, 6, value)
	}
	detail("Employee No", doc.Employee.EmployeeNumber)
	detail("Pay Point", doc.Employee.PayPoint)
	pdf.Ln(6)
	detail("Name", doc.Employee.Name)
	detail(doc.AnchorCurrency+" Account", doc.Employee.AnchorAccountNumber)
	pdf.Ln(6)
	detail("Department", doc.Employee.Department)
	detail("Bank", doc.Employee.BankName)
	pdf.Ln(6)
	detail("National ID", doc.Employee.NationalID)
	detail("Status", doc.Employee.EmploymentStatus)
	pdf.Ln(6)
	detail("Position", doc.Employee.Position)
	detail(doc.LocalCurrency+" Account", doc.Employee.LocalAccountNumber)
	pdf.Ln(6)
	detail("Branch Code", doc.Employee.BranchCode)
	detail("Type", doc.Employee.EmploymentType)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(95, 7, "Earnings")
	pdf.Cell(95, 7, "Deductions")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 9)
	header := func() {
		pdf.Cell(35, 6, "")
		pdf.Cell(30, 6, doc.AnchorCurrency)
		pdf.Cell(30, 6, doc.LocalCurrency)
	}
	header()
	header()
	pdf.Ln(6)

	rows := len(doc.Earnings)
	if len(doc.Deductions) > rows {
		rows = len(doc.Deductions)
	}
	pdf.SetFont("Helvetica", "", 9)
	for i := 0; i < rows; i++ {
		writeHalf := func(items []LineItem) {
			if i < len(items) {
				item := items[i]
				pdf.Cell(35, 6, item.Label)
				pdf.CellFormat(30, 6, item.Anchor, "", 0, "R", false, 0, "")
				pdf.CellFormat(30, 6, item.Local, "", 0, "R", false, 0, "")
			} else {
				pdf.Cell(95, 6, "")
			}
		}
		writeHalf(doc.Earnings)
		writeHalf(doc.Deductions)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(35, 7, doc.NetPay.Label)
	pdf.CellFormat(30, 7, doc.NetPay.Anchor, "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, doc.NetPay.Local, "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Leave Summary")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.Leave {
		pdf.Cell(35, 6, row.Category)
		pdf.CellFormat(30, 6, fmt.Sprintf("%d days", row.DaysTaken), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
