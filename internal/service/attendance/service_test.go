package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(a.EmployeeID, a.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateRecord
	}
	f.nextID++
	a.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[k] = &a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := f.records[f.key(employeeID, date)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOutTime string, workedHours decimal.Decimal) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.CheckOutTime = &checkOutTime
			rec.WorkedHours = &workedHours
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if filter.Date != nil && rec.Date.Format("2006-01-02") != *filter.Date {
			continue
		}
		if filter.Date == nil && filter.Month != nil && rec.Date.Format("2006-01") != *filter.Month {
			continue
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month string) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Format("2006-01") == month {
			result = append(result, *rec)
		}
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email != nil && *emp.Email == email {
			copied := emp
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func newTestService(attendanceRepo *fakeAttendanceRepo, employeeRepo *fakeEmployeeRepo, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		workStart:            "09:00",
		now:                  func() time.Time { return at },
	}
}

func clockTime(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-03-16 "+clock)
	require.NoError(t, err)
	return parsed
}

func TestCheckIn(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Lina Osman"}

	t.Run("before work start is present", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "08:45"))

		resp, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "08:45", resp.Time)
		assert.Equal(t, "present", resp.Record.Status)
		assert.Equal(t, "2026-03-16", resp.Record.Date)
	})

	t.Run("exactly at work start is present", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "09:00"))

		resp, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "present", resp.Record.Status)
	})

	t.Run("one minute past work start is late", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "09:01"))

		resp, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "late", resp.Record.Status)
	})

	t.Run("second check-in same day is rejected", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, newFakeEmployeeRepo(emp), clockTime(t, "08:45"))

		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), "emp-1")
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
		assert.Len(t, repo.records, 1)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "08:45"))

		_, err := svc.CheckIn(context.Background(), "emp-missing")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestCheckOut(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Lina Osman"}

	t.Run("computes worked hours", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, newFakeEmployeeRepo(emp), clockTime(t, "08:30"))

		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)

		svc.now = func() time.Time { return clockTime(t, "17:00") }
		resp, err := svc.CheckOut(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "17:00", resp.Time)
		assert.Equal(t, "8.5", resp.WorkedHours.String())
	})

	t.Run("without check-in creates nothing", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, newFakeEmployeeRepo(emp), clockTime(t, "17:00"))

		_, err := svc.CheckOut(context.Background(), "emp-1")
		assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
		assert.Empty(t, repo.records)
	})

	t.Run("second check-out is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "08:30"))

		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)

		svc.now = func() time.Time { return clockTime(t, "17:00") }
		_, err = svc.CheckOut(context.Background(), "emp-1")
		require.NoError(t, err)

		_, err = svc.CheckOut(context.Background(), "emp-1")
		assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
	})

	t.Run("overnight checkout yields negative hours", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "22:00"))

		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)

		svc.now = func() time.Time { return clockTime(t, "06:00") }
		resp, err := svc.CheckOut(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "-16", resp.WorkedHours.String())
	})
}

func TestGetTodayStatus(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Lina Osman"}

	t.Run("no record", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "08:00"))

		resp, err := svc.GetTodayStatus(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, attendance.DayStateNoRecord, resp.State)
		assert.Nil(t, resp.Record)
	})

	t.Run("checked in then checked out", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "08:30"))

		_, err := svc.CheckIn(context.Background(), "emp-1")
		require.NoError(t, err)

		resp, err := svc.GetTodayStatus(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, attendance.DayStateCheckedIn, resp.State)
		require.NotNil(t, resp.Record)

		svc.now = func() time.Time { return clockTime(t, "17:00") }
		_, err = svc.CheckOut(context.Background(), "emp-1")
		require.NoError(t, err)

		resp, err = svc.GetTodayStatus(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, attendance.DayStateCheckedOut, resp.State)
	})
}

func TestCreateManualRecord(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Lina Osman"}

	t.Run("tags a day absent", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "10:00"))

		resp, err := svc.CreateManualRecord(context.Background(), attendance.CreateManualRequest{
			EmployeeID: "emp-1",
			Date:       "2026-03-10",
			Status:     "absent",
		})
		require.NoError(t, err)
		assert.Equal(t, "absent", resp.Status)
		assert.Nil(t, resp.CheckInTime)
	})

	t.Run("rejects clock statuses", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "10:00"))

		_, err := svc.CreateManualRecord(context.Background(), attendance.CreateManualRequest{
			EmployeeID: "emp-1",
			Date:       "2026-03-10",
			Status:     "present",
		})
		assert.Error(t, err)
	})

	t.Run("duplicate day is rejected", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), newFakeEmployeeRepo(emp), clockTime(t, "10:00"))

		req := attendance.CreateManualRequest{EmployeeID: "emp-1", Date: "2026-03-10", Status: "on-leave"}
		_, err := svc.CreateManualRecord(context.Background(), req)
		require.NoError(t, err)

		_, err = svc.CreateManualRecord(context.Background(), req)
		assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
	})
}

func TestListAttendance(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Lina Osman"}

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeEmployeeRepo(emp), clockTime(t, "08:30"))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)
	_, err = svc.CreateManualRecord(context.Background(), attendance.CreateManualRequest{
		EmployeeID: "emp-1", Date: "2026-02-10", Status: "absent",
	})
	require.NoError(t, err)

	t.Run("day filter", func(t *testing.T) {
		date := "2026-03-16"
		resp, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{Date: &date})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, date, resp.Data[0].Date)
	})

	t.Run("month filter", func(t *testing.T) {
		month := "2026-02"
		resp, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{Month: &month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "absent", resp.Data[0].Status)
	})

	t.Run("invalid filter", func(t *testing.T) {
		bad := "16-03-2026"
		_, err := svc.ListAttendance(context.Background(), attendance.AttendanceFilter{Date: &bad})
		assert.Error(t, err)
	})
}
