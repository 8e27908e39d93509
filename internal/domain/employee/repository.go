package employee

import "context"

// EmployeeRepository defines data access methods for employee records
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
}
