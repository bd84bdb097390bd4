package leave

import (
	"context"
	"time"
)

type Filter struct {
	EmployeeID string
	Status     string
}

type StoreAPI interface {
	Insert(ctx context.Context, req Request) (string, error)
	Get(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Request, int, error)
	ListApprovedOverlapping(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Request, error)
	ListApprovedInYear(ctx context.Context, employeeID string, year int) ([]Request, error)
	Resolve(ctx context.Context, id, status, approverID string, days int, resolvedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
