package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	workStart string
	now       func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	workStart string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		workStart:            workStart,
		now:                  time.Now,
	}
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		EmployeeName:       a.EmployeeName,
		EmployeeDepartment: a.EmployeeDepartment,
		EmployeeAvatarURL:  a.EmployeeAvatarURL,
		Date:               a.Date.Format("2006-01-02"),
		CheckInTime:        a.CheckInTime,
		CheckOutTime:       a.CheckOutTime,
		WorkedHours:        a.WorkedHours,
		Status:             string(a.Status),
	}
}

// today truncates the service clock to a calendar day.
func (s *AttendanceServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.CheckInResponse{}, err
	}

	today := s.today()
	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	clock := attendance.FormatClock(s.now())
	late, err := attendance.IsLate(clock, s.workStart)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	status := attendance.StatusPresent
	if late {
		status = attendance.StatusLate
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        today,
		CheckInTime: &clock,
		Status:      status,
	})
	if err != nil {
		// Lost a race against a concurrent check-in on the same day.
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		Record: toResponse(record),
		Time:   clock,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, s.today())
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.CheckInTime == nil || record.CheckOutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoActiveCheckIn
	}

	clock := attendance.FormatClock(s.now())
	workedHours, err := attendance.WorkedHours(*record.CheckInTime, clock)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	if err := s.AttendanceRepository.SetCheckOut(ctx, record.ID, clock, workedHours); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{
		Time:        clock,
		WorkedHours: workedHours,
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, s.today())
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.TodayStatusResponse{State: attendance.DayStateNoRecord}, nil
	}

	resp := toResponse(*record)
	return attendance.TodayStatusResponse{
		State:  record.State(),
		Record: &resp,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		data = append(data, toResponse(record))
	}

	return attendance.ListAttendanceResponse{Data: data}, nil
}

// CreateManualRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateManualRecord(ctx context.Context, req attendance.CreateManualRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be YYYY-MM-DD"},
		}
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(record), nil
}
