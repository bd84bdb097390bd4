package payslip

import (
	"time"

	"paydesk/internal/domain/employee"
)

// LineItem is one row of the earnings/deductions table. Anchor and Local are
// rendered to two decimal places; Local carries the explicit unavailable
// marker when the record has no exchange-rate snapshot.
type LineItem struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
	Local  string `json:"local"`
}

// LeaveRow shows days taken in the period for one category. Opening and
// closing balances are not tracked per payslip; only the period's usage is.
type LeaveRow struct {
	Category  string `json:"category"`
	DaysTaken int    `json:"daysTaken"`
}

type Details struct {
	EmployeeNumber      string `json:"employeeNumber"`
	PayPoint            string `json:"payPoint"`
	Name                string `json:"name"`
	AnchorAccountNumber string `json:"anchorAccountNumber"`
	Department          string `json:"department"`
	BankName            string `json:"bankName"`
	NationalID          string `json:"nationalId"`
	EmploymentStatus    string `json:"employmentStatus"`
	Position            string `json:"position"`
	LocalAccountNumber  string `json:"localAccountNumber"`
	BranchCode          string `json:"branchCode"`
	EmploymentType      string `json:"employmentType"`
}

type Period struct {
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Label string `json:"label"`
}

// Document is the fully denormalized payslip read view: one payroll record
// joined with its employee, the company identity and the period's leave
// summary, every monetary figure shown in both currencies.
type Document struct {
	Company        employee.Company `json:"company"`
	Employee       Details          `json:"employee"`
	Period         Period           `json:"period"`
	AnchorCurrency string           `json:"anchorCurrency"`
	LocalCurrency  string           `json:"localCurrency"`
	ExchangeRate   string           `json:"exchangeRate"`
	RateAvailable  bool             `json:"rateAvailable"`
	Earnings       []LineItem       `json:"earnings"`
	Deductions     []LineItem       `json:"deductions"`
	NetPay         LineItem         `json:"netPay"`
	Leave          []LeaveRow       `json:"leave"`
	Warnings       []string         `json:"warnings,omitempty"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}
