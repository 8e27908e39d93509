package attendance

import (
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceResponse struct {
	ID                 string           `json:"id"`
	EmployeeID         string           `json:"employee_id"`
	EmployeeName       *string          `json:"employee_name,omitempty"`
	EmployeeDepartment *string          `json:"employee_department,omitempty"`
	EmployeeAvatarURL  *string          `json:"employee_avatar_url,omitempty"`
	Date               string           `json:"date"`
	CheckInTime        *string          `json:"check_in_time,omitempty"`
	CheckOutTime       *string          `json:"check_out_time,omitempty"`
	WorkedHours        *decimal.Decimal `json:"worked_hours,omitempty"`
	Status             string           `json:"status"`
}

type CheckInResponse struct {
	Record AttendanceResponse `json:"record"`
	Time   string             `json:"time"`
}

type CheckOutResponse struct {
	Time        string          `json:"time"`
	WorkedHours decimal.Decimal `json:"worked_hours"`
}

type TodayStatusResponse struct {
	State  DayState            `json:"state"`
	Record *AttendanceResponse `json:"record,omitempty"`
}

// AttendanceFilter narrows list-attendance to one day ("YYYY-MM-DD") or
// one month ("YYYY-MM"). Date wins when both are set.
type AttendanceFilter struct {
	Date  *string `json:"date,omitempty"`
	Month *string `json:"month,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.Month != nil {
		if _, ok := validator.IsValidMonth(*f.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	Data []AttendanceResponse `json:"data"`
}

// CreateManualRequest records an absence or leave day for an employee.
// Check-in and check-out rows are only ever created by the clock
// endpoints; manual entry is restricted to the two day-tag statuses.
type CreateManualRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *CreateManualRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Status != string(StatusAbsent) && r.Status != string(StatusOnLeave) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'absent' or 'on-leave'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
