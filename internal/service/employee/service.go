package employee

import (
	"context"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

const dateLayout = "2006-01-02"

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func stringPtrToDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FullName:   emp.FullName,
		JobTitle:   emp.JobTitle,
		Department: emp.Department,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Address:    emp.Address,
		Gender:     string(emp.Gender),
		BirthDate:  datePtrToString(emp.BirthDate),
		HireDate:   datePtrToString(emp.HireDate),
		Manager:    emp.Manager,
		Status:     string(emp.Status),
		Salary:     emp.Salary,
		BankName:   emp.BankName,
		IBAN:       emp.IBAN,
		AvatarURL:  emp.AvatarURL,
	}
}

// fromRequest maps a validated create/update payload onto an entity,
// filling in the defaults for omitted fields.
func fromRequest(req employee.CreateEmployeeRequest) employee.Employee {
	emp := employee.Employee{
		FullName:   req.FullName,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Gender:     employee.GenderMale,
		BirthDate:  stringPtrToDate(req.BirthDate),
		HireDate:   stringPtrToDate(req.HireDate),
		Manager:    req.Manager,
		Status:     employee.StatusActive,
		Salary:     decimal.Zero,
		BankName:   req.BankName,
		IBAN:       req.IBAN,
		AvatarURL:  req.AvatarURL,
	}
	if req.Gender != nil {
		emp.Gender = employee.Gender(*req.Gender)
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	return emp
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil {
		existing, err := s.EmployeeRepository.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, fromRequest(req))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, toResponse(emp))
	}

	return employee.ListEmployeeResponse{Data: data}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && (existing.Email == nil || *existing.Email != *req.Email) {
		other, err := s.EmployeeRepository.GetByEmail(ctx, *req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if other != nil && other.ID != req.ID {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	emp := fromRequest(req.CreateEmployeeRequest)
	emp.ID = req.ID

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}
