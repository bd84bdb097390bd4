package leave

// BalanceFor sums the day counts of a year's approved requests against the
// configured annual entitlement. Remaining is not floored at zero: a negative
// balance is the over-leave signal the dashboard surfaces.
func BalanceFor(requests []Request, entitlement int) Balance {
	taken := 0
	for _, req := range requests {
		if req.Status != StatusApproved {
			continue
		}
		taken += req.Days
	}
	return Balance{
		Entitlement: entitlement,
		Taken:       taken,
		Remaining:   entitlement - taken,
	}
}
