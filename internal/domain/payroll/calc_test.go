package payroll

import (
	"testing"

	"paydesk/internal/money"
)

func components(basic, transport, otherAllow, overtime, ni, tax, otherDed float64) Components {
	return Components{
		Basic:              money.FromFloat(basic, "USD"),
		TransportAllowance: money.FromFloat(transport, "USD"),
		OtherAllowances:    money.FromFloat(otherAllow, "USD"),
		Overtime:           money.FromFloat(overtime, "USD"),
		NationalInsurance:  money.FromFloat(ni, "USD"),
		IncomeTax:          money.FromFloat(tax, "USD"),
		OtherDeductions:    money.FromFloat(otherDed, "USD"),
	}
}

func TestCompute(t *testing.T) {
	result := Compute(components(500, 50, 0, 0, 20, 30, 0))

	if got := result.Gross.String(); got != "550.00" {
		t.Fatalf("expected gross 550.00, got %s", got)
	}
	if got := result.TotalDeductions.String(); got != "50.00" {
		t.Fatalf("expected deductions 50.00, got %s", got)
	}
	if got := result.Net.String(); got != "500.00" {
		t.Fatalf("expected net 500.00, got %s", got)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestComputeIdentities(t *testing.T) {
	cases := []Components{
		components(1000, 100, 250.75, 80.25, 45, 120.5, 10),
		components(0, 0, 0, 0, 0, 0, 0),
		components(-100, 20, 0, 0, 5, 0, 0),
		components(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7),
	}
	for _, c := range cases {
		result := Compute(c)

		wantGross := c.Basic.Add(result.TotalAllowances).Add(c.Overtime)
		if !result.Gross.Equal(wantGross) {
			t.Fatalf("gross identity broken: got %s want %s", result.Gross, wantGross)
		}
		wantNet := result.Gross.Sub(result.TotalDeductions)
		if !result.Net.Equal(wantNet) {
			t.Fatalf("net identity broken: got %s want %s", result.Net, wantNet)
		}

		// Identical inputs must give identical outputs, no drift.
		again := Compute(c)
		if !again.Net.Equal(result.Net) || !again.Gross.Equal(result.Gross) {
			t.Fatalf("repeated computation drifted: %s vs %s", again.Net, result.Net)
		}
	}
}

func TestComputeNegativeNetWarns(t *testing.T) {
	result := Compute(components(100, 0, 0, 0, 80, 90, 0))

	if got := result.Net.String(); got != "-70.00" {
		t.Fatalf("expected net -70.00, got %s", got)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != WarningNegativeNet {
		t.Fatalf("expected %q warning, got %v", WarningNegativeNet, result.Warnings)
	}
}

func TestComputeExactDecimals(t *testing.T) {
	result := Compute(components(0.1, 0.2, 0, 0, 0, 0, 0))
	if got := result.Gross.String(); got != "0.30" {
		t.Fatalf("expected gross 0.30, got %s", got)
	}
}
