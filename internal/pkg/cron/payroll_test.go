package cron

import (
	"context"
	"testing"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollService struct {
	computedMonths []string
}

func (f *fakePayrollService) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.ComputePayrollResponse, error) {
	f.computedMonths = append(f.computedMonths, req.Month)
	return payroll.ComputePayrollResponse{Month: req.Month}, nil
}

func (f *fakePayrollService) ListPayroll(ctx context.Context, month string) (payroll.ListPayrollResponse, error) {
	return payroll.ListPayrollResponse{}, nil
}

func (f *fakePayrollService) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	return payroll.PayrollRecordResponse{}, nil
}

func fixedNow(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func TestComputePreviousMonth(t *testing.T) {
	t.Run("runs on the first of the month", func(t *testing.T) {
		svc := &fakePayrollService{}
		jobs := &PayrollJobs{payrollService: svc, now: fixedNow(t, "2026-03-01")}

		err := jobs.ComputePreviousMonth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-02"}, svc.computedMonths)
	})

	t.Run("crosses a year boundary", func(t *testing.T) {
		svc := &fakePayrollService{}
		jobs := &PayrollJobs{payrollService: svc, now: fixedNow(t, "2026-01-01")}

		err := jobs.ComputePreviousMonth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-12"}, svc.computedMonths)
	})

	t.Run("no-ops mid-month", func(t *testing.T) {
		svc := &fakePayrollService{}
		jobs := &PayrollJobs{payrollService: svc, now: fixedNow(t, "2026-03-15")}

		err := jobs.ComputePreviousMonth(context.Background())
		require.NoError(t, err)
		assert.Empty(t, svc.computedMonths)
	})
}

func TestSchedulerRunOnce(t *testing.T) {
	svc := &fakePayrollService{}
	jobs := &PayrollJobs{payrollService: svc, now: fixedNow(t, "2026-03-01")}

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())

	assert.Equal(t, []string{"2026-02"}, svc.computedMonths)
}
