package leave

import "time"

// PeriodBounds returns the first and last calendar day of (month, year).
func PeriodBounds(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DaysInMonth returns the calendar day count of (month, year).
func DaysInMonth(month time.Month, year int) int {
	start, end := PeriodBounds(month, year)
	return int(end.Sub(start).Hours()/24) + 1
}

// Summarize aggregates approved requests into per-category day totals for one
// month. A request counts when its [start, end] range overlaps the period.
//
// Under OverlapFullSpan a matching request contributes its full day count
// even when part of it falls outside the month; this overcounts at period
// boundaries but matches how the payslip leave block has always been read.
// OverlapClipped attributes only the days inside the period.
func Summarize(requests []Request, month time.Month, year int, policy OverlapPolicy) Summary {
	periodStart, periodEnd := PeriodBounds(month, year)

	var summary Summary
	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}
		if req.EndDate.Before(periodStart) || req.StartDate.After(periodEnd) {
			continue
		}

		days := req.Days
		if policy == OverlapClipped {
			days = clippedDays(req, periodStart, periodEnd)
		}

		summary.ApprovedDays += days
		switch req.Category {
		case CategoryUnpaid:
			summary.UnpaidDays += days
		case CategorySick:
			summary.SickDays += days
		case CategoryCasual:
			summary.CasualDays += days
		}
	}
	return summary
}

func clippedDays(req Request, periodStart, periodEnd time.Time) int {
	start := req.StartDate
	if start.Before(periodStart) {
		start = periodStart
	}
	end := req.EndDate
	if end.After(periodEnd) {
		end = periodEnd
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return 0
	}
	return days
}
