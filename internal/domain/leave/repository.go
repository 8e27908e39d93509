package leave

import "context"

// LeaveRepository defines data access methods for leave requests
type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) (LeaveRequest, error)
}
