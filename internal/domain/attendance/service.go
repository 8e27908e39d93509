package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's session for the employee; classifies the row
	// present or late against the configured work-start threshold
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)

	// CheckOut closes today's session and computes worked hours
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)

	// GetTodayStatus reports where the employee is in today's
	// no-record -> checked-in -> checked-out progression
	GetTodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)

	// ListAttendance retrieves ledger rows with optional day/month filter
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// CreateManualRecord tags a day absent or on-leave (admin/HR)
	CreateManualRecord(ctx context.Context, req CreateManualRequest) (AttendanceResponse, error)
}
