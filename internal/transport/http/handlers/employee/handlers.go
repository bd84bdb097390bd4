package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/employee"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type Handler struct {
	Store employee.StoreAPI
}

func NewHandler(store employee.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
	r.Get("/company", h.handleCompany)
}

func validateEmployee(emp employee.Employee) *shared.Validator {
	v := shared.NewValidator()
	v.Required("employeeNumber", emp.EmployeeNumber, "employee number is required")
	v.Required("firstName", emp.FirstName, "first name is required")
	v.Required("lastName", emp.LastName, "last name is required")
	v.Enum("employmentStatus", emp.EmploymentStatus,
		[]string{employee.EmploymentStatusActive, employee.EmploymentStatusSuspended, employee.EmploymentStatusTerminated},
		"employment status must be active, suspended or terminated")
	return v
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	employees, total, err := h.Store.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, map[string]any{"items": employees, "total": total}, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var emp employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if emp.EmploymentStatus == "" {
		emp.EmploymentStatus = employee.EmploymentStatusActive
	}
	if validateEmployee(emp).Reject(w, requestID) {
		return
	}

	id, err := h.Store.Insert(r.Context(), emp)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}
	emp.ID = id
	api.Created(w, emp, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	emp, err := h.Store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "employeeID")

	var emp employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	emp.ID = id
	if validateEmployee(emp).Reject(w, requestID) {
		return
	}

	if err := h.Store.Update(r.Context(), emp); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "employeeID")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}
	api.Success(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleCompany(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	company, err := h.Store.Company(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_get_failed", "failed to load company profile", requestID)
		return
	}
	api.Success(w, company, requestID)
}
