package leave

import (
	"context"

	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/domain/leave"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

func toResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:                 req.ID,
		EmployeeID:         req.EmployeeID,
		EmployeeName:       req.EmployeeName,
		EmployeeJobTitle:   req.EmployeeJobTitle,
		EmployeeDepartment: req.EmployeeDepartment,
		EmployeeAvatarURL:  req.EmployeeAvatarURL,
		Type:               req.Type,
		StartDate:          req.StartDate.Format("2006-01-02"),
		EndDate:            req.EndDate.Format("2006-01-02"),
		Reason:             req.Reason,
		Status:             string(req.Status),
	}
}

// CreateLeaveRequest implements leave.LeaveService. New requests always
// start out pending.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, startOK := validator.IsValidDate(req.StartDate)
	endDate, endOK := validator.IsValidDate(req.EndDate)
	if !startOK || !endOK {
		return leave.LeaveResponse{}, validator.ValidationErrors{
			{Field: "start_date", Message: "must be YYYY-MM-DD"},
		}
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context) (leave.ListLeaveResponse, error) {
	requests, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	data := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		data = append(data, toResponse(req))
	}

	return leave.ListLeaveResponse{Data: data}, nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.UpdateStatus(ctx, req.ID, leave.LeaveStatus(req.Status))
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(updated), nil
}
