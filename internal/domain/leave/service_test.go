package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	requests map[string]Request
	nextID   int
	fail     bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: map[string]Request{}}
}

var errStoreDown = errors.New("store unavailable")

func (f *fakeStore) Insert(_ context.Context, req Request) (string, error) {
	if f.fail {
		return "", errStoreDown
	}
	f.nextID++
	id := fmt.Sprintf("req-%d", f.nextID)
	req.ID = id
	req.CreatedAt = time.Now().UTC()
	f.requests[id] = req
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Request, error) {
	if f.fail {
		return Request{}, errStoreDown
	}
	req, ok := f.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (f *fakeStore) List(_ context.Context, filter Filter, limit, offset int) ([]Request, int, error) {
	if f.fail {
		return nil, 0, errStoreDown
	}
	var out []Request
	for _, req := range f.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, req)
	}
	return out, len(out), nil
}

func (f *fakeStore) ListApprovedOverlapping(_ context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Request, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []Request
	for _, req := range f.requests {
		if req.EmployeeID != employeeID || req.Status != StatusApproved {
			continue
		}
		if req.EndDate.Before(periodStart) || req.StartDate.After(periodEnd) {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeStore) ListApprovedInYear(_ context.Context, employeeID string, year int) ([]Request, error) {
	if f.fail {
		return nil, errStoreDown
	}
	var out []Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == StatusApproved && req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeStore) Resolve(_ context.Context, id, status, approverID string, days int, resolvedAt time.Time) error {
	if f.fail {
		return errStoreDown
	}
	req, ok := f.requests[id]
	if !ok {
		return ErrNotFound
	}
	req.Status = status
	req.ApproverID = approverID
	req.Days = days
	req.ResolvedAt = &resolvedAt
	f.requests[id] = req
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if f.fail {
		return errStoreDown
	}
	if _, ok := f.requests[id]; !ok {
		return ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

func newTestService(store StoreAPI) *Service {
	return NewService(store, 21, OverlapFullSpan)
}

func TestServiceCreateComputesDays(t *testing.T) {
	svc := newTestService(newFakeStore())

	req, issues, err := svc.Create(context.Background(), RequestInput{
		EmployeeID: "emp-1",
		Category:   CategoryUnpaid,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-14",
	})
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Equal(t, 5, req.Days)
	require.Equal(t, StatusPending, req.Status)
	require.NotEmpty(t, req.ID)
}

func TestServiceCreateReturnsValidationIssues(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, issues, err := svc.Create(context.Background(), RequestInput{
		EmployeeID: "emp-1",
		Category:   CategorySick,
		StartDate:  "2025-03-14",
		EndDate:    "2025-03-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, issues)
}

func TestServiceApproveIsSingleShot(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, _, err := svc.Create(context.Background(), RequestInput{
		EmployeeID: "emp-1",
		Category:   CategorySick,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
	})
	require.NoError(t, err)

	approvedReq, err := svc.Approve(context.Background(), created.ID, "mgr-1")
	require.NoError(t, err)
	require.Equal(t, StatusApproved, approvedReq.Status)
	require.Equal(t, "mgr-1", approvedReq.ApproverID)
	require.Equal(t, 3, approvedReq.Days)
	require.NotNil(t, approvedReq.ResolvedAt)

	_, err = svc.Reject(context.Background(), created.ID, "mgr-2")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestServiceDeleteRules(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, _, err := svc.Create(context.Background(), RequestInput{
		EmployeeID: "emp-1",
		Category:   CategoryCasual,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-10",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID, "mgr-1")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, false), ErrInvalidState)
	require.NoError(t, svc.Delete(context.Background(), created.ID, true))
}

func TestEmployeeLeaveDataDegradesOnStoreFailure(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	store.fail = true

	summary := svc.EmployeeLeaveData(context.Background(), "emp-1", time.March, 2025)
	require.Equal(t, Summary{}, summary)

	balance := svc.EmployeeLeaveBalance(context.Background(), "emp-1", 2025)
	require.Equal(t, Balance{Entitlement: 21, Remaining: 21}, balance)
}

func TestEmployeeLeaveDataAggregates(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	created, _, err := svc.Create(context.Background(), RequestInput{
		EmployeeID: "emp-1",
		Category:   CategoryUnpaid,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-14",
	})
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), created.ID, "mgr-1")
	require.NoError(t, err)

	summary := svc.EmployeeLeaveData(context.Background(), "emp-1", time.March, 2025)
	require.Equal(t, Summary{ApprovedDays: 5, UnpaidDays: 5}, summary)

	balance := svc.EmployeeLeaveBalance(context.Background(), "emp-1", 2025)
	require.Equal(t, Balance{Entitlement: 21, Taken: 5, Remaining: 16}, balance)
}
