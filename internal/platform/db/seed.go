package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/platform/config"
)

// Seed inserts the company identity row and a couple of demo employees so a
// fresh environment renders something. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureCompany(ctx, pool); err != nil {
		return err
	}
	return ensureDemoEmployees(ctx, pool)
}

func ensureCompany(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM company_profile").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO company_profile (name, tagline)
    VALUES ('Acme Holdings', 'People first')
  `)
	return err
}

func ensureDemoEmployees(ctx context.Context, pool *pgxpool.Pool) error {
	employees := []struct {
		number, first, last, position, department, payPoint string
	}{
		{"EMP001", "Tariro", "Moyo", "Accountant", "Finance", "Harare"},
		{"EMP002", "Blessing", "Ncube", "Field Technician", "Operations", "Bulawayo"},
	}
	for _, emp := range employees {
		_, err := pool.Exec(ctx, `
      INSERT INTO employees (employee_number, first_name, last_name, position, department, pay_point)
      VALUES ($1,$2,$3,$4,$5,$6)
      ON CONFLICT (employee_number) DO NOTHING
    `, emp.number, emp.first, emp.last, emp.position, emp.department, emp.payPoint)
		if err != nil {
			return err
		}
	}
	return nil
}
