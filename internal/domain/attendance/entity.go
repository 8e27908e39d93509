package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the closed set of attendance day classifications.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on-leave"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusOnLeave:
		return true
	}
	return false
}

// Attendance is one ledger row per (employee, calendar day).
// CheckInTime/CheckOutTime are wall-clock times of day ("HH:MM") in the
// server's local clock; WorkedHours is set together with CheckOutTime.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *string
	CheckOutTime *string
	WorkedHours  *decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined employee display fields
	EmployeeName       *string
	EmployeeDepartment *string
	EmployeeAvatarURL  *string
}

// Daily check-in/out state for one (employee, day).
type DayState string

const (
	DayStateNoRecord   DayState = "no-record"
	DayStateCheckedIn  DayState = "checked-in"
	DayStateCheckedOut DayState = "checked-out"
)

// State derives the daily state machine position from the record fields.
func (a Attendance) State() DayState {
	switch {
	case a.CheckOutTime != nil:
		return DayStateCheckedOut
	case a.CheckInTime != nil:
		return DayStateCheckedIn
	}
	return DayStateNoRecord
}
