package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusPaid      = "paid"

	WarningNegativeNet = "negative_net"
)

// Record is one employee-month of payroll. Salary components are stored in
// the anchor currency; the exchange-rate snapshot (local units per one anchor
// unit) is captured per record, zero meaning no quote was available. Gross
// and net are always derived from the components, never edited directly.
type Record struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employeeId"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	BasicSalary        decimal.Decimal `json:"basicSalary"`
	TransportAllowance decimal.Decimal `json:"transportAllowance"`
	OtherAllowances    decimal.Decimal `json:"otherAllowances"`
	OvertimePay        decimal.Decimal `json:"overtimePay"`
	NationalInsurance  decimal.Decimal `json:"nationalInsurance"`
	IncomeTax          decimal.Decimal `json:"incomeTax"`
	OtherDeductions    decimal.Decimal `json:"otherDeductions"`
	GrossSalary        decimal.Decimal `json:"grossSalary"`
	NetSalary          decimal.Decimal `json:"netSalary"`
	DaysWorked         int             `json:"daysWorked"`
	DaysAbsent         int             `json:"daysAbsent"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Status             string          `json:"status"`
	PaymentDate        *time.Time      `json:"paymentDate,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// RecordInput is the create/update payload. Monetary fields default to zero
// when absent. Attendance counts are optional; when neither is supplied the
// service derives them from the period's leave summary.
type RecordInput struct {
	EmployeeID         string  `json:"employeeId"`
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	BasicSalary        float64 `json:"basicSalary"`
	TransportAllowance float64 `json:"transportAllowance"`
	OtherAllowances    float64 `json:"otherAllowances"`
	OvertimePay        float64 `json:"overtimePay"`
	NationalInsurance  float64 `json:"nationalInsurance"`
	IncomeTax          float64 `json:"incomeTax"`
	OtherDeductions    float64 `json:"otherDeductions"`
	DaysWorked         *int    `json:"daysWorked,omitempty"`
	DaysAbsent         *int    `json:"daysAbsent,omitempty"`
	ExchangeRate       float64 `json:"exchangeRate"`
	Notes              string  `json:"notes"`
}
