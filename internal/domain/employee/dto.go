package employee

import (
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName   string           `json:"full_name"`
	JobTitle   string           `json:"job_title"`
	Department string           `json:"department"`
	Email      *string          `json:"email,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Gender     *string          `json:"gender,omitempty"`
	BirthDate  *string          `json:"birth_date,omitempty"`
	HireDate   *string          `json:"hire_date,omitempty"`
	Manager    *string          `json:"manager,omitempty"`
	Status     *string          `json:"status,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	BankName   *string          `json:"bank_name,omitempty"`
	IBAN       *string          `json:"iban,omitempty"`
	AvatarURL  *string          `json:"avatar_url,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{string(GenderMale), string(GenderFemale)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be 'male' or 'female'"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"full_name"`
	JobTitle   string          `json:"job_title"`
	Department string          `json:"department"`
	Email      *string         `json:"email,omitempty"`
	Phone      *string         `json:"phone,omitempty"`
	Address    *string         `json:"address,omitempty"`
	Gender     string          `json:"gender"`
	BirthDate  *string         `json:"birth_date,omitempty"`
	HireDate   *string         `json:"hire_date,omitempty"`
	Manager    *string         `json:"manager,omitempty"`
	Status     string          `json:"status"`
	Salary     decimal.Decimal `json:"salary"`
	BankName   *string         `json:"bank_name,omitempty"`
	IBAN       *string         `json:"iban,omitempty"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
}

type ListEmployeeResponse struct {
	Data []EmployeeResponse `json:"data"`
}
