package leave

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CalculateDays returns the inclusive day count between start and end.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// ParseDate accepts RFC3339 or YYYY-MM-DD. A parse failure propagates; it
// never defaults to a zero date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

// ValidateRequest checks a submission and returns every failure found, in
// field order. The request is valid iff the returned slice is empty.
func ValidateRequest(input RequestInput) []string {
	var errs []string

	if strings.TrimSpace(input.EmployeeID) == "" {
		errs = append(errs, "employee is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, "leave category is required")
	} else if !ValidCategory(input.Category) {
		errs = append(errs, "leave category must be one of sick, casual, earned, unpaid")
	}

	start, startErr := ParseDate(input.StartDate)
	if startErr != nil {
		errs = append(errs, "start date must be a valid date in YYYY-MM-DD format")
	}

	end, endErr := ParseDate(input.EndDate)
	if endErr != nil {
		errs = append(errs, "end date must be a valid date in YYYY-MM-DD format")
	} else if startErr == nil && end.Before(start) {
		errs = append(errs, "end date must be on or after start date")
	}

	return errs
}
