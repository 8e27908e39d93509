package custody

import "context"

// CustodyRepository defines data access methods for custody items
type CustodyRepository interface {
	Create(ctx context.Context, item CustodyItem) (CustodyItem, error)
	List(ctx context.Context, employeeID *string) ([]CustodyItem, error)
	UpdateStatus(ctx context.Context, id string, status CustodyStatus) (CustodyItem, error)
}
