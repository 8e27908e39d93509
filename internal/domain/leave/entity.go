package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     LeaveStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee display fields
	EmployeeName       *string
	EmployeeJobTitle   *string
	EmployeeDepartment *string
	EmployeeAvatarURL  *string
}
