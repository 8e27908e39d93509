package leave

import "context"

// LeaveService defines business logic for leave requests
type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListLeaveRequests(ctx context.Context) (ListLeaveResponse, error)
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)
}
