package payroll

import (
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputePayrollRequest struct {
	Month string `json:"month"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       *string         `json:"employee_name,omitempty"`
	EmployeeDepartment *string         `json:"employee_department,omitempty"`
	Month              string          `json:"month"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	AbsenceDeduction   decimal.Decimal `json:"absence_deduction"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	Status             string          `json:"status"`
}

type ComputePayrollResponse struct {
	Month string `json:"month"`
	// Records actually upserted this run; employees whose attendance
	// could not be read are skipped, not fatal
	Data         []PayrollRecordResponse `json:"data"`
	SkippedCount int                     `json:"skipped_count"`
}

type ListPayrollResponse struct {
	Data []PayrollRecordResponse `json:"data"`
}
