package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `id, employee_number, first_name, last_name, national_id,
  position, department, employment_status, employment_type, pay_point,
  bank_name, branch_code, anchor_account_number, local_account_number, created_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName, &emp.NationalID,
		&emp.Position, &emp.Department, &emp.EmploymentStatus, &emp.EmploymentType, &emp.PayPoint,
		&emp.BankName, &emp.BranchCode, &emp.AnchorAccountNumber, &emp.LocalAccountNumber, &emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) Insert(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (
      employee_number, first_name, last_name, national_id,
      position, department, employment_status, employment_type, pay_point,
      bank_name, branch_code, anchor_account_number, local_account_number
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING id
  `, emp.EmployeeNumber, emp.FirstName, emp.LastName, emp.NationalID,
		emp.Position, emp.Department, emp.EmploymentStatus, emp.EmploymentType, emp.PayPoint,
		emp.BankName, emp.BranchCode, emp.AnchorAccountNumber, emp.LocalAccountNumber).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY last_name, first_name
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, emp)
	}
	return out, total, rows.Err()
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET employee_number = $2, first_name = $3, last_name = $4, national_id = $5,
        position = $6, department = $7, employment_status = $8, employment_type = $9,
        pay_point = $10, bank_name = $11, branch_code = $12,
        anchor_account_number = $13, local_account_number = $14
    WHERE id = $1
  `, emp.ID, emp.EmployeeNumber, emp.FirstName, emp.LastName, emp.NationalID,
		emp.Position, emp.Department, emp.EmploymentStatus, emp.EmploymentType,
		emp.PayPoint, emp.BankName, emp.BranchCode,
		emp.AnchorAccountNumber, emp.LocalAccountNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Company(ctx context.Context) (Company, error) {
	var company Company
	err := s.DB.QueryRow(ctx, `
    SELECT name, COALESCE(logo_url, ''), COALESCE(tagline, '')
    FROM company_profile
    ORDER BY created_at
    LIMIT 1
  `).Scan(&company.Name, &company.LogoURL, &company.Tagline)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, nil
	}
	return company, err
}
