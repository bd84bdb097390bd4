package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paydesk/internal/domain/leave"
)

var (
	ErrDuplicatePeriod   = errors.New("payroll record already exists for this employee and period")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

// LeaveReader is the slice of the leave service payroll needs: best-effort
// summaries used to suggest attendance counts.
type LeaveReader interface {
	EmployeeLeaveData(ctx context.Context, employeeID string, month time.Month, year int) leave.Summary
}

type Service struct {
	store              StoreAPI
	leave              LeaveReader
	anchorCurrency     string
	defaultWorkingDays int
}

func NewService(store StoreAPI, leaveReader LeaveReader, anchorCurrency string, defaultWorkingDays int) *Service {
	return &Service{
		store:              store,
		leave:              leaveReader,
		anchorCurrency:     anchorCurrency,
		defaultWorkingDays: defaultWorkingDays,
	}
}

func validateInput(input RecordInput) []string {
	var issues []string
	if strings.TrimSpace(input.EmployeeID) == "" {
		issues = append(issues, "employee is required")
	}
	if input.Month < 1 || input.Month > 12 {
		issues = append(issues, "month must be between 1 and 12")
	}
	if input.Year < 2000 || input.Year > 2100 {
		issues = append(issues, "year is out of range")
	}
	if input.ExchangeRate < 0 {
		issues = append(issues, "exchange rate must not be negative")
	}
	return issues
}

// SuggestAttendance derives attendance counts from the period's leave
// summary: unpaid days count as absence against the calendar days of the
// month. With no unpaid leave on file the configured working-day assumption
// stands in.
func SuggestAttendance(summary leave.Summary, month time.Month, year, defaultWorkingDays int) (worked, absent int) {
	if summary.UnpaidDays > 0 {
		absent = summary.UnpaidDays
		worked = leave.DaysInMonth(month, year) - absent
		if worked < 0 {
			worked = 0
		}
		return worked, absent
	}
	return defaultWorkingDays, 0
}

func (s *Service) buildRecord(ctx context.Context, input RecordInput) (Record, []string) {
	rec := Record{
		EmployeeID:         input.EmployeeID,
		Month:              input.Month,
		Year:               input.Year,
		BasicSalary:        decimal.NewFromFloat(input.BasicSalary),
		TransportAllowance: decimal.NewFromFloat(input.TransportAllowance),
		OtherAllowances:    decimal.NewFromFloat(input.OtherAllowances),
		OvertimePay:        decimal.NewFromFloat(input.OvertimePay),
		NationalInsurance:  decimal.NewFromFloat(input.NationalInsurance),
		IncomeTax:          decimal.NewFromFloat(input.IncomeTax),
		OtherDeductions:    decimal.NewFromFloat(input.OtherDeductions),
		ExchangeRate:       decimal.NewFromFloat(input.ExchangeRate),
		Notes:              input.Notes,
	}

	if input.DaysWorked != nil || input.DaysAbsent != nil {
		if input.DaysWorked != nil {
			rec.DaysWorked = *input.DaysWorked
		}
		if input.DaysAbsent != nil {
			rec.DaysAbsent = *input.DaysAbsent
		}
	} else {
		summary := s.leave.EmployeeLeaveData(ctx, input.EmployeeID, time.Month(input.Month), input.Year)
		rec.DaysWorked, rec.DaysAbsent = SuggestAttendance(summary, time.Month(input.Month), input.Year, s.defaultWorkingDays)
	}

	result := Compute(ComponentsOf(rec, s.anchorCurrency))
	rec.GrossSalary = result.Gross.Decimal()
	rec.NetSalary = result.Net.Decimal()
	return rec, result.Warnings
}

// Create computes the derived figures and persists a new pending record. One
// record per (employee, month, year); duplicates are rejected. Returned
// warnings (negative net) inform the caller without blocking.
func (s *Service) Create(ctx context.Context, input RecordInput) (Record, []string, []string, error) {
	if issues := validateInput(input); len(issues) > 0 {
		return Record{}, issues, nil, nil
	}

	exists, err := s.store.ExistsForPeriod(ctx, input.EmployeeID, input.Month, input.Year)
	if err != nil {
		return Record{}, nil, nil, err
	}
	if exists {
		return Record{}, nil, nil, ErrDuplicatePeriod
	}

	rec, warnings := s.buildRecord(ctx, input)
	rec.Status = StatusPending

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return Record{}, nil, nil, err
	}
	rec.ID = id
	return rec, nil, warnings, nil
}

// Update recomputes gross and net from the submitted components; the derived
// fields can never be patched independently.
func (s *Service) Update(ctx context.Context, id string, input RecordInput) (Record, []string, []string, error) {
	if issues := validateInput(input); len(issues) > 0 {
		return Record{}, issues, nil, nil
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, nil, nil, err
	}
	if existing.EmployeeID != input.EmployeeID || existing.Month != input.Month || existing.Year != input.Year {
		return Record{}, []string{"employee and period of an existing record cannot change"}, nil, nil
	}

	rec, warnings := s.buildRecord(ctx, input)
	rec.ID = existing.ID
	rec.Status = existing.Status
	rec.PaymentDate = existing.PaymentDate
	rec.PaymentMethod = existing.PaymentMethod

	if err := s.store.Update(ctx, rec); err != nil {
		return Record{}, nil, nil, err
	}
	return rec, nil, warnings, nil
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter Filter, limit, offset int) ([]Record, int, error) {
	return s.store.List(ctx, filter, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

var statusRank = map[string]int{
	StatusPending:   0,
	StatusProcessed: 1,
	StatusPaid:      2,
}

// TransitionStatus moves a record forward through pending → processed →
// paid. Moving backwards or skipping to an unknown status is rejected.
func (s *Service) TransitionStatus(ctx context.Context, id, status, paymentMethod string, paymentDate *time.Time) (Record, error) {
	rank, ok := statusRank[status]
	if !ok {
		return Record{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if rank <= statusRank[rec.Status] {
		return Record{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, status)
	}

	if status == StatusPaid && paymentDate == nil {
		now := time.Now().UTC()
		paymentDate = &now
	}
	if err := s.store.SetPaymentStatus(ctx, id, status, paymentDate, paymentMethod); err != nil {
		return Record{}, err
	}

	rec.Status = status
	rec.PaymentDate = paymentDate
	if paymentMethod != "" {
		rec.PaymentMethod = paymentMethod
	}
	return rec, nil
}
