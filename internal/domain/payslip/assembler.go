package payslip

import (
	"fmt"
	"time"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/leave"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/money"
)

const (
	labelBasic           = "Basic"
	labelTransport       = "Transport Allowance"
	labelOtherAllowances = "Other Allowances"
	labelGross           = "GROSS"
	labelNI              = "National Insurance"
	labelIncomeTax       = "Income Tax"
	labelOtherDeductions = "Other Deductions"
	labelTotalDeductions = "TOTAL DEDUCTIONS"
	labelNetPay          = "NET PAY"
)

// Assemble builds the payslip document for one payroll record. All figures
// come from the payroll calculator and the currency converter; this function
// only arranges them into the fixed table layout.
func Assemble(rec payroll.Record, emp employee.Employee, co employee.Company, ls leave.Summary, anchorCurrency, localCurrency string) Document {
	components := payroll.ComponentsOf(rec, anchorCurrency)
	result := payroll.Compute(components)

	row := func(label string, amount money.Money) LineItem {
		return LineItem{
			Label:  label,
			Anchor: amount.String(),
			Local:  money.ToLocal(amount, rec.ExchangeRate, localCurrency).Display(),
		}
	}

	earnings := []LineItem{
		row(labelBasic, components.Basic),
		row(labelTransport, components.TransportAllowance),
	}
	if !components.OtherAllowances.IsZero() {
		earnings = append(earnings, row(labelOtherAllowances, components.OtherAllowances))
	}
	earnings = append(earnings, row(labelGross, result.Gross))

	deductions := []LineItem{
		row(labelNI, components.NationalInsurance),
		row(labelIncomeTax, components.IncomeTax),
	}
	if !components.OtherDeductions.IsZero() {
		deductions = append(deductions, row(labelOtherDeductions, components.OtherDeductions))
	}
	deductions = append(deductions, row(labelTotalDeductions, result.TotalDeductions))

	month := time.Month(rec.Month)
	return Document{
		Company: co,
		Employee: Details{
			EmployeeNumber:      emp.EmployeeNumber,
			PayPoint:            emp.PayPoint,
			Name:                emp.FullName(),
			AnchorAccountNumber: emp.AnchorAccountNumber,
			Department:          emp.Department,
			BankName:            emp.BankName,
			NationalID:          emp.NationalID,
			EmploymentStatus:    emp.EmploymentStatus,
			Position:            emp.Position,
			LocalAccountNumber:  emp.LocalAccountNumber,
			BranchCode:          emp.BranchCode,
			EmploymentType:      emp.EmploymentType,
		},
		Period: Period{
			Month: rec.Month,
			Year:  rec.Year,
			Label: fmt.Sprintf("%s %d", month, rec.Year),
		},
		AnchorCurrency: anchorCurrency,
		LocalCurrency:  localCurrency,
		ExchangeRate:   rec.ExchangeRate.StringFixed(2),
		RateAvailable:  rec.ExchangeRate.Sign() > 0,
		Earnings:       earnings,
		Deductions:     deductions,
		NetPay:         row(labelNetPay, result.Net),
		Leave: []LeaveRow{
			{Category: "Annual", DaysTaken: ls.ApprovedDays},
			{Category: "Unpaid", DaysTaken: ls.UnpaidDays},
			{Category: "Sick", DaysTaken: ls.SickDays},
			{Category: "Casual", DaysTaken: ls.CasualDays},
		},
		Warnings:    result.Warnings,
		GeneratedAt: time.Now().UTC(),
	}
}
