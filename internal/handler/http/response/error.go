package response

import (
	"errors"
	"net/http"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/domain/auth"
	"github.com/orbit-hr/hr-backend-go/internal/domain/custody"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/domain/leave"
	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
	"github.com/orbit-hr/hr-backend-go/internal/domain/user"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrNoLinkedEmployee):
		Forbidden(w, "Account has no linked employee record")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		Conflict(w, "No active check-in for today")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this day")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Custody domain errors
	case errors.Is(err, custody.ErrCustodyItemNotFound):
		NotFound(w, "Custody item not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
