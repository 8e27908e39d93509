package custody

import (
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
)

type CreateCustodyRequest struct {
	EmployeeID   string  `json:"employee_id"`
	ItemName     string  `json:"item_name"`
	Description  *string `json:"description,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateCustodyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ItemName) {
		errs = append(errs, validator.ValidationError{Field: "item_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCustodyStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateCustodyStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(CustodyStatusHeld), string(CustodyStatusReturned)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'in-custody' or 'returned'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustodyResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeDepartment *string `json:"employee_department,omitempty"`
	ItemName           string  `json:"item_name"`
	Description        *string `json:"description,omitempty"`
	SerialNumber       *string `json:"serial_number,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	Status             string  `json:"status"`
	ReceivedDate       string  `json:"received_date"`
	ReturnedDate       *string `json:"returned_date,omitempty"`
}

type ListCustodyResponse struct {
	Data []CustodyResponse `json:"data"`
}
