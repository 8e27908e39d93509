package custody

import (
	"context"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/custody"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
)

type CustodyServiceImpl struct {
	custody.CustodyRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewCustodyService(
	custodyRepo custody.CustodyRepository,
	employeeRepo employee.EmployeeRepository,
) custody.CustodyService {
	return &CustodyServiceImpl{
		CustodyRepository:  custodyRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

func toResponse(item custody.CustodyItem) custody.CustodyResponse {
	resp := custody.CustodyResponse{
		ID:                 item.ID,
		EmployeeID:         item.EmployeeID,
		EmployeeName:       item.EmployeeName,
		EmployeeDepartment: item.EmployeeDepartment,
		ItemName:           item.ItemName,
		Description:        item.Description,
		SerialNumber:       item.SerialNumber,
		Notes:              item.Notes,
		Status:             string(item.Status),
		ReceivedDate:       item.ReceivedDate.Format("2006-01-02"),
	}
	if item.ReturnedDate != nil {
		returned := item.ReturnedDate.Format("2006-01-02")
		resp.ReturnedDate = &returned
	}
	return resp
}

// CreateCustodyItem implements custody.CustodyService. New items start in
// custody with the received date stamped from the service clock.
func (s *CustodyServiceImpl) CreateCustodyItem(ctx context.Context, req custody.CreateCustodyRequest) (custody.CustodyResponse, error) {
	if err := req.Validate(); err != nil {
		return custody.CustodyResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return custody.CustodyResponse{}, err
	}

	created, err := s.CustodyRepository.Create(ctx, custody.CustodyItem{
		EmployeeID:   req.EmployeeID,
		ItemName:     req.ItemName,
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
		Status:       custody.CustodyStatusHeld,
		ReceivedDate: s.now(),
	})
	if err != nil {
		return custody.CustodyResponse{}, err
	}

	return toResponse(created), nil
}

// ListCustodyItems implements custody.CustodyService.
func (s *CustodyServiceImpl) ListCustodyItems(ctx context.Context, employeeID *string) (custody.ListCustodyResponse, error) {
	items, err := s.CustodyRepository.List(ctx, employeeID)
	if err != nil {
		return custody.ListCustodyResponse{}, err
	}

	data := make([]custody.CustodyResponse, 0, len(items))
	for _, item := range items {
		data = append(data, toResponse(item))
	}

	return custody.ListCustodyResponse{Data: data}, nil
}

// UpdateCustodyStatus implements custody.CustodyService.
func (s *CustodyServiceImpl) UpdateCustodyStatus(ctx context.Context, req custody.UpdateCustodyStatusRequest) (custody.CustodyResponse, error) {
	if err := req.Validate(); err != nil {
		return custody.CustodyResponse{}, err
	}

	updated, err := s.CustodyRepository.UpdateStatus(ctx, req.ID, custody.CustodyStatus(req.Status))
	if err != nil {
		return custody.CustodyResponse{}, err
	}

	return toResponse(updated), nil
}
