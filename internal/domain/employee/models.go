package employee

import "time"

const (
	EmploymentStatusActive     = "active"
	EmploymentStatusSuspended  = "suspended"
	EmploymentStatusTerminated = "terminated"
)

// Employee carries the profile and banking fields the payslip header needs.
// Two account numbers exist per employee: one in the anchor currency and one
// in the local currency.
type Employee struct {
	ID                  string    `json:"id"`
	EmployeeNumber      string    `json:"employeeNumber"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	NationalID          string    `json:"nationalId"`
	Position            string    `json:"position"`
	Department          string    `json:"department"`
	EmploymentStatus    string    `json:"employmentStatus"`
	EmploymentType      string    `json:"employmentType"`
	PayPoint            string    `json:"payPoint"`
	BankName            string    `json:"bankName"`
	BranchCode          string    `json:"branchCode"`
	AnchorAccountNumber string    `json:"anchorAccountNumber"`
	LocalAccountNumber  string    `json:"localAccountNumber"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Company is the static identity block on every payslip header.
type Company struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	Tagline string `json:"tagline"`
}
