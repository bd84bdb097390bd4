package payrollhandler

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/audit"
	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/leave"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/payslip"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type AuditRecorder interface {
	TryRecord(ctx context.Context, action, entityType, entityID, requestID string, details any)
}

// LeaveAggregator is the slice of the leave service payslip assembly needs.
type LeaveAggregator interface {
	EmployeeLeaveData(ctx context.Context, employeeID string, month time.Month, year int) leave.Summary
}

type Handler struct {
	Service        *payroll.Service
	Leave          LeaveAggregator
	Employees      employee.StoreAPI
	Audit          AuditRecorder
	AnchorCurrency string
	LocalCurrency  string
}

func NewHandler(service *payroll.Service, leaveSvc LeaveAggregator, employees employee.StoreAPI, auditSvc AuditRecorder, anchorCurrency, localCurrency string) *Handler {
	return &Handler{
		Service:        service,
		Leave:          leaveSvc,
		Employees:      employees,
		Audit:          auditSvc,
		AnchorCurrency: anchorCurrency,
		LocalCurrency:  localCurrency,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/records", h.handleListRecords)
		r.Post("/records", h.handleCreateRecord)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Put("/records/{recordID}", h.handleUpdateRecord)
		r.Delete("/records/{recordID}", h.handleDeleteRecord)
		r.Post("/records/{recordID}/status", h.handleTransitionStatus)
		r.Get("/records/{recordID}/payslip", h.handlePayslip)
		r.Get("/records/{recordID}/payslip.pdf", h.handlePayslipPDF)
		r.Get("/export/register", h.handleExportRegister)
	})
}

func (h *Handler) record(r *http.Request, action, entityID string, details any) {
	if h.Audit != nil {
		h.Audit.TryRecord(r.Context(), action, "payroll_record", entityID, middleware.GetRequestID(r.Context()), details)
	}
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	filter := payroll.Filter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			api.Fail(w, http.StatusBadRequest, "invalid_month", "month must be between 1 and 12", requestID)
			return
		}
		filter.Month = month
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be numeric", requestID)
			return
		}
		filter.Year = year
	}

	records, total, err := h.Service.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list payroll records", requestID)
		return
	}
	api.Success(w, map[string]any{"items": records, "total": total}, requestID)
}

type recordResponse struct {
	Record   payroll.Record `json:"record"`
	Warnings []string       `json:"warnings,omitempty"`
}

func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var input payroll.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	rec, issues, warnings, err := h.Service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicatePeriod) {
			api.Fail(w, http.StatusConflict, "duplicate_period", "a payroll record already exists for this employee and period", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_create_failed", "failed to create payroll record", requestID)
		return
	}
	if len(issues) > 0 {
		shared.FailValidation(w, requestID, shared.Messages(issues))
		return
	}

	h.record(r, audit.ActionPayrollCreate, rec.ID, rec)
	api.Created(w, recordResponse{Record: rec, Warnings: warnings}, requestID)
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_get_failed", "failed to load payroll record", requestID)
		return
	}
	api.Success(w, rec, requestID)
}

func (h *Handler) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "recordID")

	var input payroll.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	rec, issues, warnings, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_update_failed", "failed to update payroll record", requestID)
		return
	}
	if len(issues) > 0 {
		shared.FailValidation(w, requestID, shared.Messages(issues))
		return
	}

	h.record(r, audit.ActionPayrollUpdate, rec.ID, rec)
	api.Success(w, recordResponse{Record: rec, Warnings: warnings}, requestID)
}

func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "recordID")

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "payroll_delete_failed", "failed to delete payroll record", requestID)
		return
	}

	h.record(r, audit.ActionPayrollDelete, id, nil)
	api.Success(w, map[string]string{"id": id}, requestID)
}

type statusPayload struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentDate   string `json:"paymentDate"`
}

func (h *Handler) handleTransitionStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "recordID")

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	var paymentDate *time.Time
	if payload.PaymentDate != "" {
		parsed, err := shared.ParseDate(payload.PaymentDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payment_date", "payment date must be YYYY-MM-DD or RFC3339", requestID)
			return
		}
		paymentDate = &parsed
	}

	rec, err := h.Service.TransitionStatus(r.Context(), id, payload.Status, payload.PaymentMethod, paymentDate)
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
		case errors.Is(err, payroll.ErrInvalidTransition):
			api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "payroll_status_failed", "failed to update payment status", requestID)
		}
		return
	}

	h.record(r, audit.ActionPayrollStatus, rec.ID, map[string]string{"status": rec.Status})
	api.Success(w, rec, requestID)
}

func (h *Handler) assemblePayslip(r *http.Request) (payslip.Document, int, string, string) {
	rec, err := h.Service.Get(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		if errors.Is(err, payroll.ErrNotFound) {
			return payslip.Document{}, http.StatusNotFound, "not_found", "payroll record not found"
		}
		return payslip.Document{}, http.StatusInternalServerError, "payroll_get_failed", "failed to load payroll record"
	}

	emp, err := h.Employees.Get(r.Context(), rec.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return payslip.Document{}, http.StatusNotFound, "employee_not_found", "employee for this record no longer exists"
		}
		return payslip.Document{}, http.StatusInternalServerError, "employee_get_failed", "failed to load employee"
	}

	co, err := h.Employees.Company(r.Context())
	if err != nil {
		return payslip.Document{}, http.StatusInternalServerError, "company_get_failed", "failed to load company profile"
	}

	summary := h.Leave.EmployeeLeaveData(r.Context(), rec.EmployeeID, time.Month(rec.Month), rec.Year)
	doc := payslip.Assemble(rec, emp, co, summary, h.AnchorCurrency, h.LocalCurrency)
	return doc, 0, "", ""
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	doc, status, code, message := h.assemblePayslip(r)
	if code != "" {
		api.Fail(w, status, code, message, requestID)
		return
	}

	h.record(r, audit.ActionPayslipGenerate, chi.URLParam(r, "recordID"), map[string]string{"format": "json"})
	api.Success(w, doc, requestID)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	doc, status, code, message := h.assemblePayslip(r)
	if code != "" {
		api.Fail(w, status, code, message, requestID)
		return
	}

	pdfBytes, err := payslip.RenderPDF(doc)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_render_failed", "failed to render payslip PDF", requestID)
		return
	}

	h.record(r, audit.ActionPayslipGenerate, chi.URLParam(r, "recordID"), map[string]string{"format": "pdf"})

	filename := fmt.Sprintf("payslip-%s-%02d-%d.pdf", doc.Employee.EmployeeNumber, doc.Period.Month, doc.Period.Year)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// handleExportRegister streams the month's payroll register as CSV, one row
// per record with the employee resolved inline.
func (h *Handler) handleExportRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month and year are required", requestID)
		return
	}

	records, _, err := h.Service.List(r.Context(), payroll.Filter{Month: month, Year: year}, 1000, 0)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list payroll records", requestID)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{
		"employee_number", "employee_name", "month", "year", "currency",
		"basic_salary", "gross_salary", "national_insurance", "income_tax",
		"other_deductions", "net_salary", "status",
	})

	for _, rec := range records {
		number, name := rec.EmployeeID, ""
		if emp, err := h.Employees.Get(r.Context(), rec.EmployeeID); err == nil {
			number, name = emp.EmployeeNumber, emp.FullName()
		}
		_ = writer.Write([]string{
			number,
			name,
			strconv.Itoa(rec.Month),
			strconv.Itoa(rec.Year),
			h.AnchorCurrency,
			rec.BasicSalary.StringFixed(2),
			rec.GrossSalary.StringFixed(2),
			rec.NationalInsurance.StringFixed(2),
			rec.IncomeTax.StringFixed(2),
			rec.OtherDeductions.StringFixed(2),
			rec.NetSalary.StringFixed(2),
			rec.Status,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_export_failed", "failed to build payroll register", requestID)
		return
	}

	filename := fmt.Sprintf("payroll-register-%02d-%d.csv", month, year)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
