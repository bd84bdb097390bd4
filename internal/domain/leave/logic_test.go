package leave

import (
	"testing"
	"time"
)

func TestCalculateDays(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	end = time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	days, err = CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)

	_, err := CalculateDays(start, end)
	if err == nil {
		t.Fatal("expected error for invalid range")
	}
}

func TestCalculateDaysAcrossMonths(t *testing.T) {
	start := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 4 {
		t.Fatalf("expected 4 days, got %v", days)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected parse error for empty input")
	}
	parsed, err := ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Day() != 10 {
		t.Fatalf("expected day 10, got %d", parsed.Day())
	}
}

func TestValidateRequest(t *testing.T) {
	issues := ValidateRequest(RequestInput{
		EmployeeID: "emp-1",
		Category:   CategorySick,
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-05",
	})
	if len(issues) != 0 {
		t.Fatalf("expected valid request, got %v", issues)
	}
}

func TestValidateRequestAccumulatesAllIssues(t *testing.T) {
	issues := ValidateRequest(RequestInput{
		Category:  "sabbatical",
		StartDate: "bogus",
		EndDate:   "",
	})
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(issues), issues)
	}
}

func TestValidateRequestEndBeforeStart(t *testing.T) {
	issues := ValidateRequest(RequestInput{
		EmployeeID: "emp-1",
		Category:   CategoryCasual,
		StartDate:  "2025-03-05",
		EndDate:    "2025-03-01",
	})
	if len(issues) == 0 {
		t.Fatal("expected issues for reversed range")
	}
}
