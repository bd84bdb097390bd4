package payroll

import (
	"paydesk/internal/money"
)

// Components are the anchor-currency salary inputs for one employee-month.
// Absent inputs are zero amounts; negative inputs are not rejected here, the
// arithmetic stays defined and upstream validation owns operator error.
type Components struct {
	Basic              money.Money
	TransportAllowance money.Money
	OtherAllowances    money.Money
	Overtime           money.Money
	NationalInsurance  money.Money
	IncomeTax          money.Money
	OtherDeductions    money.Money
}

type Result struct {
	TotalAllowances money.Money
	TotalDeductions money.Money
	Gross           money.Money
	Net             money.Money
	Warnings        []string
}

// Compute applies the payroll formulas in their fixed order. A negative net
// is computed and reported as-is with a warning attached; blocking is the
// caller's policy call.
func Compute(c Components) Result {
	totalAllowances := c.OtherAllowances.Add(c.TransportAllowance)
	totalDeductions := c.OtherDeductions.Add(c.NationalInsurance).Add(c.IncomeTax)
	gross := c.Basic.Add(totalAllowances).Add(c.Overtime)
	net := gross.Sub(totalDeductions)

	var warnings []string
	if net.IsNegative() {
		warnings = append(warnings, WarningNegativeNet)
	}

	return Result{
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		Gross:           gross,
		Net:             net,
		Warnings:        warnings,
	}
}

// ComponentsOf rebuilds the calculator inputs from a stored record, tagging
// every amount with the anchor currency.
func ComponentsOf(rec Record, currency string) Components {
	return Components{
		Basic:              money.New(rec.BasicSalary, currency),
		TransportAllowance: money.New(rec.TransportAllowance, currency),
		OtherAllowances:    money.New(rec.OtherAllowances, currency),
		Overtime:           money.New(rec.OvertimePay, currency),
		NationalInsurance:  money.New(rec.NationalInsurance, currency),
		IncomeTax:          money.New(rec.IncomeTax, currency),
		OtherDeductions:    money.New(rec.OtherDeductions, currency),
	}
}
