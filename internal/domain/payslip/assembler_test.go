package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/leave"
	"paydesk/internal/domain/payroll"
)

func testRecord(rate float64) payroll.Record {
	return payroll.Record{
		ID:                 "pay-1",
		EmployeeID:         "emp-1",
		Month:              3,
		Year:               2025,
		BasicSalary:        decimal.NewFromInt(500),
		TransportAllowance: decimal.NewFromInt(50),
		NationalInsurance:  decimal.NewFromInt(20),
		IncomeTax:          decimal.NewFromInt(30),
		ExchangeRate:       decimal.NewFromFloat(rate),
		Status:             payroll.StatusPending,
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:                  "emp-1",
		EmployeeNumber:      "EMP001",
		FirstName:           "Tariro",
		LastName:            "Moyo",
		NationalID:          "63-123456A70",
		Position:            "Accountant",
		Department:          "Finance",
		EmploymentStatus:    employee.EmploymentStatusActive,
		EmploymentType:      "permanent",
		PayPoint:            "Harare",
		BankName:            "CBZ Bank",
		BranchCode:          "6101",
		AnchorAccountNumber: "02124567890",
		LocalAccountNumber:  "02124567891",
	}
}

func testCompany() employee.Company {
	return employee.Company{Name: "Acme Holdings", Tagline: "People first"}
}

func labels(items []LineItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestAssembleRowLayout(t *testing.T) {
	doc := Assemble(testRecord(1350), testEmployee(), testCompany(), leave.Summary{}, "USD", "ZWL")

	require.Equal(t, []string{"Basic", "Transport Allowance", "GROSS"}, labels(doc.Earnings))
	require.Equal(t, []string{"National Insurance", "Income Tax", "TOTAL DEDUCTIONS"}, labels(doc.Deductions))

	require.Equal(t, "550.00", doc.Earnings[2].Anchor)
	require.Equal(t, "50.00", doc.Deductions[2].Anchor)
	require.Equal(t, "500.00", doc.NetPay.Anchor)
	require.Equal(t, "675000.00", doc.NetPay.Local)
	require.True(t, doc.RateAvailable)
	require.Empty(t, doc.Warnings)
}

func TestAssembleIncludesOptionalRowsOnlyWhenNonZero(t *testing.T) {
	rec := testRecord(1350)
	rec.OtherAllowances = decimal.NewFromInt(25)
	rec.OtherDeductions = decimal.NewFromInt(10)

	doc := Assemble(rec, testEmployee(), testCompany(), leave.Summary{}, "USD", "ZWL")

	require.Equal(t, []string{"Basic", "Transport Allowance", "Other Allowances", "GROSS"}, labels(doc.Earnings))
	require.Equal(t, []string{"National Insurance", "Income Tax", "Other Deductions", "TOTAL DEDUCTIONS"}, labels(doc.Deductions))
	require.Equal(t, "575.00", doc.Earnings[3].Anchor)
	require.Equal(t, "60.00", doc.Deductions[3].Anchor)
}

func TestAssembleZeroRateMarksEveryLocalCellUnavailable(t *testing.T) {
	doc := Assemble(testRecord(0), testEmployee(), testCompany(), leave.Summary{}, "USD", "ZWL")

	require.False(t, doc.RateAvailable)
	for _, item := range doc.Earnings {
		require.Equal(t, "N/A", item.Local, "earnings row %s", item.Label)
	}
	for _, item := range doc.Deductions {
		require.Equal(t, "N/A", item.Local, "deduction row %s", item.Label)
	}
	require.Equal(t, "N/A", doc.NetPay.Local)
}

func TestAssembleEmployeeAndLeaveBlocks(t *testing.T) {
	summary := leave.Summary{ApprovedDays: 7, UnpaidDays: 5, SickDays: 2}
	doc := Assemble(testRecord(1350), testEmployee(), testCompany(), summary, "USD", "ZWL")

	require.Equal(t, "Tariro Moyo", doc.Employee.Name)
	require.Equal(t, "EMP001", doc.Employee.EmployeeNumber)
	require.Equal(t, "Harare", doc.Employee.PayPoint)
	require.Equal(t, "CBZ Bank", doc.Employee.BankName)

	require.Equal(t, []LeaveRow{
		{Category: "Annual", DaysTaken: 7},
		{Category: "Unpaid", DaysTaken: 5},
		{Category: "Sick", DaysTaken: 2},
		{Category: "Casual", DaysTaken: 0},
	}, doc.Leave)

	require.Equal(t, "March 2025", doc.Period.Label)
	require.Equal(t, "Acme Holdings", doc.Company.Name)
}

func TestAssembleSurfacesNegativeNetWarning(t *testing.T) {
	rec := testRecord(1350)
	rec.IncomeTax = decimal.NewFromInt(600)

	doc := Assemble(rec, testEmployee(), testCompany(), leave.Summary{}, "USD", "ZWL")
	require.Contains(t, doc.Warnings, payroll.WarningNegativeNet)
	require.Equal(t, "-70.00", doc.NetPay.Anchor)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	doc := Assemble(testRecord(1350), testEmployee(), testCompany(), leave.Summary{UnpaidDays: 5, ApprovedDays: 5}, "USD", "ZWL")

	data, err := RenderPDF(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}
