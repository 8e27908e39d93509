package payroll

import (
	"context"
	"log/slog"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:    payrollRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

func toResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	return payroll.PayrollRecordResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       rec.EmployeeName,
		EmployeeDepartment: rec.EmployeeDepartment,
		Month:              rec.Month,
		BasicSalary:        rec.BasicSalary,
		OvertimeHours:      rec.OvertimeHours,
		OvertimePay:        rec.OvertimePay,
		AbsenceDeduction:   rec.AbsenceDeduction,
		Bonuses:            rec.Bonuses,
		NetSalary:          rec.NetSalary,
		Status:             string(rec.Status),
	}
}

// ComputePayroll implements payroll.PayrollService. One employee failing to
// compute skips that employee and moves on; the response reports how many
// were skipped.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.ComputePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ComputePayrollResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return payroll.ComputePayrollResponse{}, err
	}

	resp := payroll.ComputePayrollResponse{
		Month: req.Month,
		Data:  make([]payroll.PayrollRecordResponse, 0, len(employees)),
	}

	for _, emp := range employees {
		record, err := s.computeForEmployee(ctx, emp, req.Month)
		if err != nil {
			slog.Error("Failed to compute payroll for employee",
				"employee_id", emp.ID, "month", req.Month, "error", err)
			resp.SkippedCount++
			continue
		}
		resp.Data = append(resp.Data, toResponse(record))
	}

	return resp, nil
}

func (s *PayrollServiceImpl) computeForEmployee(ctx context.Context, emp employee.Employee, month string) (payroll.PayrollRecord, error) {
	rows, err := s.AttendanceRepository.ListByEmployeeAndMonth(ctx, emp.ID, month)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	absenceDays, overtimeHours := payroll.SummarizeAttendance(rows)

	// A recompute keeps whatever bonuses were granted on the existing row,
	// so they have to feed into the recomputed net.
	bonuses := decimal.Zero
	existing, err := s.PayrollRepository.GetByEmployeeAndMonth(ctx, emp.ID, month)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if existing != nil {
		bonuses = existing.Bonuses
	}

	breakdown := payroll.Calculate(emp.Salary, absenceDays, overtimeHours, bonuses)

	return s.PayrollRepository.Upsert(ctx, payroll.PayrollRecord{
		EmployeeID:       emp.ID,
		Month:            month,
		BasicSalary:      emp.Salary,
		OvertimeHours:    overtimeHours,
		OvertimePay:      breakdown.OvertimePay,
		AbsenceDeduction: breakdown.AbsenceDeduction,
		Bonuses:          bonuses,
		NetSalary:        breakdown.NetSalary,
		Status:           payroll.PayrollStatusPending,
	})
}

// ListPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayroll(ctx context.Context, month string) (payroll.ListPayrollResponse, error) {
	filter := payroll.ComputePayrollRequest{Month: month}
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	records, err := s.PayrollRepository.ListByMonth(ctx, month)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	data := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toResponse(rec))
	}

	return payroll.ListPayrollResponse{Data: data}, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.PayrollRepository.MarkPaid(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toResponse(record), nil
}
