package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/orbit-hr/hr-backend-go/internal/domain/employee"
	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	records map[string]*payroll.PayrollRecord
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]*payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) key(employeeID, month string) string {
	return employeeID + "|" + month
}

func (f *fakePayrollRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*payroll.PayrollRecord, error) {
	if rec, ok := f.records[f.key(employeeID, month)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakePayrollRepo) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	k := f.key(record.EmployeeID, record.Month)
	if existing, ok := f.records[k]; ok {
		existing.BasicSalary = record.BasicSalary
		existing.OvertimeHours = record.OvertimeHours
		existing.OvertimePay = record.OvertimePay
		existing.AbsenceDeduction = record.AbsenceDeduction
		existing.NetSalary = record.NetSalary
		return *existing, nil
	}
	f.nextID++
	record.ID = fmt.Sprintf("pay-%d", f.nextID)
	f.records[k] = &record
	return record, nil
}

func (f *fakePayrollRepo) ListByMonth(ctx context.Context, month string) ([]payroll.PayrollRecord, error) {
	var result []payroll.PayrollRecord
	for _, rec := range f.records {
		if rec.Month == month {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.Status = payroll.PayrollStatusPaid
			return *rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

type fakeAttendanceRepo struct {
	rows    map[string][]attendance.Attendance
	failFor map[string]error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		rows:    make(map[string][]attendance.Attendance),
		failFor: make(map[string]error),
	}
}

func (f *fakeAttendanceRepo) add(employeeID, month string, status attendance.Status, workedHours string) {
	row := attendance.Attendance{EmployeeID: employeeID, Status: status}
	if workedHours != "" {
		wh := decimal.RequireFromString(workedHours)
		row.WorkedHours = &wh
	}
	f.rows[employeeID+"|"+month] = append(f.rows[employeeID+"|"+month], row)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOutTime string, workedHours decimal.Decimal) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndMonth(ctx context.Context, employeeID string, month string) ([]attendance.Attendance, error) {
	if err, ok := f.failFor[employeeID]; ok {
		return nil, err
	}
	return f.rows[employeeID+"|"+month], nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func salary(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func TestComputePayroll(t *testing.T) {
	const month = "2026-02"

	t.Run("overtime pays time and a half", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		attendanceRepo.add("emp-1", month, attendance.StatusPresent, "10")

		svc := NewPayrollService(newFakePayrollRepo(), attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Salary: salary(3000)}},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)

		rec := resp.Data[0]
		assert.Equal(t, "2", rec.OvertimeHours.String())
		assert.Equal(t, "37", rec.OvertimePay.String())
		assert.Equal(t, "0", rec.AbsenceDeduction.String())
		assert.Equal(t, "3037", rec.NetSalary.String())
		assert.Equal(t, "pending", rec.Status)
	})

	t.Run("absences deduct daily rate", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		attendanceRepo.add("emp-1", month, attendance.StatusAbsent, "")
		attendanceRepo.add("emp-1", month, attendance.StatusAbsent, "")

		svc := NewPayrollService(newFakePayrollRepo(), attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Salary: salary(3000)}},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "200", resp.Data[0].AbsenceDeduction.String())
		assert.Equal(t, "2800", resp.Data[0].NetSalary.String())
	})

	t.Run("absence and overtime combine", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		attendanceRepo.add("emp-1", month, attendance.StatusAbsent, "")
		attendanceRepo.add("emp-1", month, attendance.StatusAbsent, "")
		attendanceRepo.add("emp-1", month, attendance.StatusLate, "10")

		svc := NewPayrollService(newFakePayrollRepo(), attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Salary: salary(3000)}},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "2837", resp.Data[0].NetSalary.String())
	})

	t.Run("recompute preserves status and bonuses", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		attendanceRepo.add("emp-1", month, attendance.StatusPresent, "10")

		payrollRepo := newFakePayrollRepo()
		svc := NewPayrollService(payrollRepo, attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Salary: salary(3000)}},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		recID := resp.Data[0].ID

		_, err = svc.MarkPaid(context.Background(), recID)
		require.NoError(t, err)
		payrollRepo.records["emp-1|"+month].Bonuses = salary(150)

		resp, err = svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)

		rec := resp.Data[0]
		assert.Equal(t, recID, rec.ID)
		assert.Equal(t, "paid", rec.Status)
		assert.Equal(t, "150", rec.Bonuses.String())
		assert.Equal(t, "3187", rec.NetSalary.String())
	})

	t.Run("deductions can push net negative", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		for i := 0; i < 40; i++ {
			attendanceRepo.add("emp-1", month, attendance.StatusAbsent, "")
		}

		svc := NewPayrollService(newFakePayrollRepo(), attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{{ID: "emp-1", Salary: salary(1000)}},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "-333", resp.Data[0].NetSalary.String())
	})

	t.Run("failing employee is skipped, not fatal", func(t *testing.T) {
		attendanceRepo := newFakeAttendanceRepo()
		attendanceRepo.add("emp-2", month, attendance.StatusPresent, "8")
		attendanceRepo.failFor["emp-1"] = errors.New("ledger unavailable")

		svc := NewPayrollService(newFakePayrollRepo(), attendanceRepo, &fakeEmployeeRepo{
			employees: []employee.Employee{
				{ID: "emp-1", Salary: salary(3000)},
				{ID: "emp-2", Salary: salary(2400)},
			},
		})

		resp, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: month})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.SkippedCount)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "emp-2", resp.Data[0].EmployeeID)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := NewPayrollService(newFakePayrollRepo(), newFakeAttendanceRepo(), &fakeEmployeeRepo{})

		_, err := svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{Month: "Feb 2026"})
		assert.Error(t, err)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		payrollRepo := newFakePayrollRepo()
		rec, err := payrollRepo.Upsert(context.Background(), payroll.PayrollRecord{
			EmployeeID: "emp-1", Month: "2026-02",
			BasicSalary: salary(3000), NetSalary: salary(3000),
			Status: payroll.PayrollStatusPending,
		})
		require.NoError(t, err)

		svc := NewPayrollService(payrollRepo, newFakeAttendanceRepo(), &fakeEmployeeRepo{})

		resp, err := svc.MarkPaid(context.Background(), rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc := NewPayrollService(newFakePayrollRepo(), newFakeAttendanceRepo(), &fakeEmployeeRepo{})

		_, err := svc.MarkPaid(context.Background(), "missing")
		assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	})
}

func TestListPayroll(t *testing.T) {
	payrollRepo := newFakePayrollRepo()
	_, err := payrollRepo.Upsert(context.Background(), payroll.PayrollRecord{
		EmployeeID: "emp-1", Month: "2026-02",
		BasicSalary: salary(3000), NetSalary: salary(3000),
		Status: payroll.PayrollStatusPending,
	})
	require.NoError(t, err)

	svc := NewPayrollService(payrollRepo, newFakeAttendanceRepo(), &fakeEmployeeRepo{})

	resp, err := svc.ListPayroll(context.Background(), "2026-02")
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	resp, err = svc.ListPayroll(context.Background(), "2026-03")
	require.NoError(t, err)
	assert.Empty(t, resp.Data)

	_, err = svc.ListPayroll(context.Background(), "bad")
	assert.Error(t, err)
}
