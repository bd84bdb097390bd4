package leave

import "time"

const (
	CategorySick   = "sick"
	CategoryCasual = "casual"
	CategoryEarned = "earned"
	CategoryUnpaid = "unpaid"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var Categories = []string{CategorySick, CategoryCasual, CategoryEarned, CategoryUnpaid}

type Request struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Category   string     `json:"category"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Days       int        `json:"days"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	ApproverID string     `json:"approverId,omitempty"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// RequestInput is the raw submission before dates are parsed. Validation
// accumulates every failure rather than stopping at the first.
type RequestInput struct {
	EmployeeID string `json:"employeeId"`
	Category   string `json:"category"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

// Summary holds the per-category approved day counts for one employee-month.
type Summary struct {
	ApprovedDays int `json:"approvedLeaveDays"`
	UnpaidDays   int `json:"unpaidLeaveDays"`
	SickDays     int `json:"sickLeaveDays"`
	CasualDays   int `json:"casualLeaveDays"`
}

// Balance is the running annual position against the configured entitlement.
// Remaining may be negative; over-taken leave is a signal, not an error.
type Balance struct {
	Entitlement int `json:"entitlement"`
	Taken       int `json:"taken"`
	Remaining   int `json:"remaining"`
}

// OverlapPolicy controls how a request spanning a period boundary is
// attributed to the period: its full day count or only the overlapping days.
type OverlapPolicy string

const (
	OverlapFullSpan OverlapPolicy = "full_span"
	OverlapClipped  OverlapPolicy = "clipped"
)

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
