package employee

import "context"

type StoreAPI interface {
	Insert(ctx context.Context, emp Employee) (string, error)
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, limit, offset int) ([]Employee, int, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	Company(ctx context.Context) (Company, error)
}
