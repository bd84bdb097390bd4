package leavehandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydesk/internal/domain/leave"
	"paydesk/internal/transport/http/middleware"
)

type memStore struct {
	requests map[string]leave.Request
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{requests: make(map[string]leave.Request)}
}

func (m *memStore) Insert(_ context.Context, req leave.Request) (string, error) {
	m.nextID++
	id := fmt.Sprintf("req-%d", m.nextID)
	req.ID = id
	req.CreatedAt = time.Now().UTC()
	m.requests[id] = req
	return id, nil
}

func (m *memStore) Get(_ context.Context, id string) (leave.Request, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrNotFound
	}
	return req, nil
}

func (m *memStore) List(_ context.Context, filter leave.Filter, limit, offset int) ([]leave.Request, int, error) {
	var out []leave.Request
	for _, req := range m.requests {
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

func (m *memStore) ListApprovedOverlapping(_ context.Context, employeeID string, periodStart, periodEnd time.Time) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range m.requests {
		if req.EmployeeID != employeeID || req.Status != leave.StatusApproved {
			continue
		}
		if !req.StartDate.After(periodEnd) && !req.EndDate.Before(periodStart) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *memStore) ListApprovedInYear(_ context.Context, employeeID string, year int) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range m.requests {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved && req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *memStore) Resolve(_ context.Context, id, status, approverID string, days int, resolvedAt time.Time) error {
	req, ok := m.requests[id]
	if !ok {
		return leave.ErrNotFound
	}
	req.Status = status
	req.ApproverID = approverID
	req.Days = days
	req.ResolvedAt = &resolvedAt
	m.requests[id] = req
	return nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	if _, ok := m.requests[id]; !ok {
		return leave.ErrNotFound
	}
	delete(m.requests, id)
	return nil
}

func newTestRouter(store leave.StoreAPI) http.Handler {
	service := leave.NewService(store, 21, leave.OverlapFullSpan)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
		NewHandler(service, nil).RegisterRoutes(r)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateLeaveRequest(t *testing.T) {
	router := newTestRouter(newMemStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests", map[string]string{
		"employeeId": "emp-1",
		"category":   "earned",
		"startDate":  "2025-03-10",
		"endDate":    "2025-03-14",
		"reason":     "family visit",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool          `json:"success"`
		Data    leave.Request `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 5, envelope.Data.Days)
	assert.Equal(t, leave.StatusPending, envelope.Data.Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateLeaveRequestValidation(t *testing.T) {
	router := newTestRouter(newMemStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests", map[string]string{
		"category":  "holiday",
		"startDate": "2025-03-14",
		"endDate":   "2025-03-10",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details struct {
				Fields []struct {
					Reason string `json:"reason"`
				} `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "validation_error", envelope.Error.Code)
	// employee, category and date-order issues all come back in one response
	assert.GreaterOrEqual(t, len(envelope.Error.Details.Fields), 3)
}

func TestApproveThenRejectConflicts(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	created := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests", map[string]string{
		"employeeId": "emp-1",
		"category":   "sick",
		"startDate":  "2025-04-01",
		"endDate":    "2025-04-02",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var envelope struct {
		Data leave.Request `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	id := envelope.Data.ID

	approve := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests/"+id+"/approve", map[string]string{"approverId": "mgr-1"})
	require.Equal(t, http.StatusOK, approve.Code)

	reject := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests/"+id+"/reject", map[string]string{"approverId": "mgr-1"})
	assert.Equal(t, http.StatusConflict, reject.Code)
}

func TestDeleteResolvedNeedsForce(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	created := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests", map[string]string{
		"employeeId": "emp-1",
		"category":   "casual",
		"startDate":  "2025-05-05",
		"endDate":    "2025-05-05",
	})
	var envelope struct {
		Data leave.Request `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &envelope))
	id := envelope.Data.ID

	approve := doJSON(t, router, http.MethodPost, "/api/v1/leave/requests/"+id+"/approve", map[string]string{"approverId": "mgr-1"})
	require.Equal(t, http.StatusOK, approve.Code)

	denied := doJSON(t, router, http.MethodDelete, "/api/v1/leave/requests/"+id, nil)
	assert.Equal(t, http.StatusConflict, denied.Code)

	forced := doJSON(t, router, http.MethodDelete, "/api/v1/leave/requests/"+id+"?force=true", nil)
	assert.Equal(t, http.StatusOK, forced.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	start, _ := leave.ParseDate("2025-03-10")
	end, _ := leave.ParseDate("2025-03-14")
	_, err := store.Insert(context.Background(), leave.Request{
		EmployeeID: "emp-1",
		Category:   leave.CategoryUnpaid,
		StartDate:  start,
		EndDate:    end,
		Days:       5,
		Status:     leave.StatusApproved,
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/leave/summary?employeeId=emp-1&month=3&year=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data leave.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 5, envelope.Data.ApprovedDays)
	assert.Equal(t, 5, envelope.Data.UnpaidDays)
}

func TestSummaryRequiresPeriod(t *testing.T) {
	router := newTestRouter(newMemStore())
	rec := doJSON(t, router, http.MethodGet, "/api/v1/leave/summary?employeeId=emp-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
