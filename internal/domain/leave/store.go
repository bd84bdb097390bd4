package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("leave request not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const requestColumns = `id, employee_id, category, start_date, end_date, days, reason, status, COALESCE(approver_id::text, ''), resolved_at, created_at`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(&req.ID, &req.EmployeeID, &req.Category, &req.StartDate, &req.EndDate, &req.Days, &req.Reason, &req.Status, &req.ApproverID, &req.ResolvedAt, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	return req, err
}

func (s *Store) Insert(ctx context.Context, req Request) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, category, start_date, end_date, days, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, req.EmployeeID, req.Category, req.StartDate, req.EndDate, req.Days, req.Reason, req.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Request, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE id = $1
  `, id)
	return scanRequest(row)
}

func (s *Store) List(ctx context.Context, filter Filter, limit, offset int) ([]Request, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND employee_id = $%d", len(args)+1)
		args = append(args, filter.EmployeeID)
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, filter.Status)
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM leave_requests"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + requestColumns + " FROM leave_requests" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, req)
	}
	return out, total, rows.Err()
}

func (s *Store) ListApprovedOverlapping(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1 AND status = $2
      AND start_date <= $3 AND end_date >= $4
    ORDER BY start_date
  `, employeeID, StatusApproved, periodEnd, periodStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *Store) ListApprovedInYear(ctx context.Context, employeeID string, year int) ([]Request, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1 AND status = $2
      AND start_date >= $3 AND start_date <= $4
    ORDER BY start_date
  `, employeeID, StatusApproved, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *Store) Resolve(ctx context.Context, id, status, approverID string, days int, resolvedAt time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $2, approver_id = $3, days = $4, resolved_at = $5
    WHERE id = $1
  `, id, status, approverID, days, resolvedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
