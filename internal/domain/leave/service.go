package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

var ErrInvalidState = errors.New("leave request already resolved")

type Service struct {
	store       StoreAPI
	entitlement int
	policy      OverlapPolicy
}

func NewService(store StoreAPI, entitlement int, policy OverlapPolicy) *Service {
	return &Service{store: store, entitlement: entitlement, policy: policy}
}

// Create validates the submission and persists it in the pending state.
// Validation failures come back as the accumulated message list, not an error.
func (s *Service) Create(ctx context.Context, input RequestInput) (Request, []string, error) {
	if issues := ValidateRequest(input); len(issues) > 0 {
		return Request{}, issues, nil
	}

	start, err := ParseDate(input.StartDate)
	if err != nil {
		return Request{}, []string{err.Error()}, nil
	}
	end, err := ParseDate(input.EndDate)
	if err != nil {
		return Request{}, []string{err.Error()}, nil
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return Request{}, []string{err.Error()}, nil
	}

	req := Request{
		EmployeeID: input.EmployeeID,
		Category:   input.Category,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     input.Reason,
		Status:     StatusPending,
	}
	id, err := s.store.Insert(ctx, req)
	if err != nil {
		return Request{}, nil, err
	}
	req.ID = id
	return req, nil, nil
}

func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Request, int, error) {
	return s.store.List(ctx, filter, limit, offset)
}

// Approve resolves a pending request. The day count is recomputed from the
// stored date range at approval time; a hand-edited count never survives.
func (s *Service) Approve(ctx context.Context, id, approverID string) (Request, error) {
	return s.resolve(ctx, id, StatusApproved, approverID)
}

func (s *Service) Reject(ctx context.Context, id, approverID string) (Request, error) {
	return s.resolve(ctx, id, StatusRejected, approverID)
}

func (s *Service) resolve(ctx context.Context, id, status, approverID string) (Request, error) {
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if req.Status != StatusPending {
		return Request{}, ErrInvalidState
	}

	days, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return Request{}, err
	}

	resolvedAt := time.Now().UTC()
	if err := s.store.Resolve(ctx, id, status, approverID, days, resolvedAt); err != nil {
		return Request{}, err
	}

	req.Status = status
	req.ApproverID = approverID
	req.Days = days
	req.ResolvedAt = &resolvedAt
	return req, nil
}

// Delete removes a request. Resolved requests only go away under the admin
// override.
func (s *Service) Delete(ctx context.Context, id string, force bool) error {
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != StatusPending && !force {
		return ErrInvalidState
	}
	return s.store.Delete(ctx, id)
}

// EmployeeLeaveData aggregates the month's approved leave. The lookup is
// best-effort: a store failure degrades to the zero summary so payroll and
// payslip flows keep working.
func (s *Service) EmployeeLeaveData(ctx context.Context, employeeID string, month time.Month, year int) Summary {
	periodStart, periodEnd := PeriodBounds(month, year)
	requests, err := s.store.ListApprovedOverlapping(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		slog.Warn("leave summary fetch failed, using zero values", "employeeId", employeeID, "month", int(month), "year", year, "err", err)
		return Summary{}
	}
	return Summarize(requests, month, year, s.policy)
}

// EmployeeLeaveBalance aggregates the year's approved leave against the
// annual entitlement. Best-effort like EmployeeLeaveData.
func (s *Service) EmployeeLeaveBalance(ctx context.Context, employeeID string, year int) Balance {
	requests, err := s.store.ListApprovedInYear(ctx, employeeID, year)
	if err != nil {
		slog.Warn("leave balance fetch failed, using zero values", "employeeId", employeeID, "year", year, "err", err)
		return Balance{Entitlement: s.entitlement, Remaining: s.entitlement}
	}
	return BalanceFor(requests, s.entitlement)
}
