package payroll

import (
	"context"
	"time"
)

type Filter struct {
	EmployeeID string
	Month      int
	Year       int
	Status     string
}

type StoreAPI interface {
	Insert(ctx context.Context, rec Record) (string, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Record, int, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	SetPaymentStatus(ctx context.Context, id, status string, paymentDate *time.Time, paymentMethod string) error
}
