package custody

import "context"

// CustodyService defines business logic for asset custody tracking
type CustodyService interface {
	CreateCustodyItem(ctx context.Context, req CreateCustodyRequest) (CustodyResponse, error)
	ListCustodyItems(ctx context.Context, employeeID *string) (ListCustodyResponse, error)
	UpdateCustodyStatus(ctx context.Context, req UpdateCustodyStatusRequest) (CustodyResponse, error)
}
