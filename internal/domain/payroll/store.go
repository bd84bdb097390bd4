package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payroll record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `id, employee_id, month, year,
  basic_salary, transport_allowance, other_allowances, overtime_pay,
  national_insurance, income_tax, other_deductions,
  gross_salary, net_salary, days_worked, days_absent, exchange_rate,
  status, payment_date, COALESCE(payment_method, ''), COALESCE(notes, ''),
  created_at, updated_at`

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
		&rec.BasicSalary, &rec.TransportAllowance, &rec.OtherAllowances, &rec.OvertimePay,
		&rec.NationalInsurance, &rec.IncomeTax, &rec.OtherDeductions,
		&rec.GrossSalary, &rec.NetSalary, &rec.DaysWorked, &rec.DaysAbsent, &rec.ExchangeRate,
		&rec.Status, &rec.PaymentDate, &rec.PaymentMethod, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) Insert(ctx context.Context, rec Record) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records (
      employee_id, month, year,
      basic_salary, transport_allowance, other_allowances, overtime_pay,
      national_insurance, income_tax, other_deductions,
      gross_salary, net_salary, days_worked, days_absent, exchange_rate,
      status, notes
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
    RETURNING id
  `, rec.EmployeeID, rec.Month, rec.Year,
		rec.BasicSalary, rec.TransportAllowance, rec.OtherAllowances, rec.OvertimePay,
		rec.NationalInsurance, rec.IncomeTax, rec.OtherDeductions,
		rec.GrossSalary, rec.NetSalary, rec.DaysWorked, rec.DaysAbsent, rec.ExchangeRate,
		rec.Status, rec.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payroll_records
    WHERE id = $1
  `, id)
	return scanRecord(row)
}

func (s *Store) List(ctx context.Context, filter Filter, limit, offset int) ([]Record, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND employee_id = $%d", len(args)+1)
		args = append(args, filter.EmployeeID)
	}
	if filter.Month > 0 {
		where += fmt.Sprintf(" AND month = $%d", len(args)+1)
		args = append(args, filter.Month)
	}
	if filter.Year > 0 {
		where += fmt.Sprintf(" AND year = $%d", len(args)+1)
		args = append(args, filter.Year)
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payroll_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + recordColumns + " FROM payroll_records" + where +
		fmt.Sprintf(" ORDER BY year DESC, month DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

func (s *Store) Update(ctx context.Context, rec Record) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_records
    SET basic_salary = $2, transport_allowance = $3, other_allowances = $4, overtime_pay = $5,
        national_insurance = $6, income_tax = $7, other_deductions = $8,
        gross_salary = $9, net_salary = $10, days_worked = $11, days_absent = $12,
        exchange_rate = $13, notes = $14, updated_at = now()
    WHERE id = $1
  `, rec.ID,
		rec.BasicSalary, rec.TransportAllowance, rec.OtherAllowances, rec.OvertimePay,
		rec.NationalInsurance, rec.IncomeTax, rec.OtherDeductions,
		rec.GrossSalary, rec.NetSalary, rec.DaysWorked, rec.DaysAbsent,
		rec.ExchangeRate, rec.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payroll_records WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM payroll_records
    WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeID, month, year).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) SetPaymentStatus(ctx context.Context, id, status string, paymentDate *time.Time, paymentMethod string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payroll_records
    SET status = $2, payment_date = $3, payment_method = NULLIF($4, ''), updated_at = now()
    WHERE id = $1
  `, id, status, paymentDate, paymentMethod)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
