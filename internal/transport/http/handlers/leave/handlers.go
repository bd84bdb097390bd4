package leavehandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/audit"
	"paydesk/internal/domain/leave"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

// AuditRecorder is the slice of the audit service handlers depend on, kept
// as an interface so tests can run without a database.
type AuditRecorder interface {
	TryRecord(ctx context.Context, action, entityType, entityID, requestID string, details any)
}

type Handler struct {
	Service *leave.Service
	Audit   AuditRecorder
}

func NewHandler(service *leave.Service, auditSvc AuditRecorder) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleCreateRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.Delete("/requests/{requestID}", h.handleDeleteRequest)
		r.Get("/summary", h.handleSummary)
		r.Get("/balance", h.handleBalance)
	})
}

func (h *Handler) record(r *http.Request, action, entityID string, details any) {
	if h.Audit != nil {
		h.Audit.TryRecord(r.Context(), action, "leave_request", entityID, middleware.GetRequestID(r.Context()), details)
	}
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	filter := leave.Filter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
	}

	requests, total, err := h.Service.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, map[string]any{"items": requests, "total": total}, requestID)
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input leave.RequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	created, issues, err := h.Service.Create(r.Context(), input)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to create leave request", requestID)
		return
	}
	if len(issues) > 0 {
		shared.FailValidation(w, requestID, shared.Messages(issues))
		return
	}

	h.record(r, audit.ActionLeaveCreate, created.ID, created)
	api.Created(w, created, requestID)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	req, err := h.Service.Get(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		if errors.Is(err, leave.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_get_failed", "failed to load leave request", requestID)
		return
	}
	api.Success(w, req, requestID)
}

type resolvePayload struct {
	ApproverID string `json:"approverId"`
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.handleResolve(w, r, leave.StatusApproved)
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	h.handleResolve(w, r, leave.StatusRejected)
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request, status string) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "requestID")

	var payload resolvePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.ApproverID == "" {
		api.Fail(w, http.StatusBadRequest, "approver_required", "approver is required", requestID)
		return
	}

	var (
		resolved leave.Request
		err      error
	)
	if status == leave.StatusApproved {
		resolved, err = h.Service.Approve(r.Context(), id, payload.ApproverID)
	} else {
		resolved, err = h.Service.Reject(r.Context(), id, payload.ApproverID)
	}
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		case errors.Is(err, leave.ErrInvalidState):
			api.Fail(w, http.StatusConflict, "already_resolved", "leave request is already resolved", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_resolve_failed", "failed to resolve leave request", requestID)
		}
		return
	}

	action := audit.ActionLeaveApprove
	if status == leave.StatusRejected {
		action = audit.ActionLeaveReject
	}
	h.record(r, action, resolved.ID, resolved)
	api.Success(w, resolved, requestID)
}

func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "requestID")
	force := r.URL.Query().Get("force") == "true"

	if err := h.Service.Delete(r.Context(), id, force); err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		case errors.Is(err, leave.ErrInvalidState):
			api.Fail(w, http.StatusConflict, "not_pending", "only pending leave requests can be deleted", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_delete_failed", "failed to delete leave request", requestID)
		}
		return
	}

	h.record(r, audit.ActionLeaveDelete, id, nil)
	api.Success(w, map[string]string{"id": id}, requestID)
}

func parsePeriod(r *http.Request) (string, time.Month, int, bool) {
	employeeID := r.URL.Query().Get("employeeId")
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if employeeID == "" || errMonth != nil || errYear != nil || month < 1 || month > 12 {
		return "", 0, 0, false
	}
	return employeeID, time.Month(month), year, true
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, month, year, ok := parsePeriod(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "employeeId, month and year are required", requestID)
		return
	}
	api.Success(w, h.Service.EmployeeLeaveData(r.Context(), employeeID, month, year), requestID)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := r.URL.Query().Get("employeeId")
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if employeeID == "" || err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "employeeId and year are required", requestID)
		return
	}
	api.Success(w, h.Service.EmployeeLeaveBalance(r.Context(), employeeID, year), requestID)
}
