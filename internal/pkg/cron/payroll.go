package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/orbit-hr/hr-backend-go/internal/domain/payroll"
)

// PayrollJobs closes out the previous month's payroll automatically so
// pay runs do not depend on someone remembering to trigger them.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("compute_previous_month_payroll", 1*time.Hour, j.ComputePreviousMonth)
}

// ComputePreviousMonth recomputes last month's payroll on the first day of
// each month. Recomputation is idempotent for unchanged attendance, so the
// hourly window firing more than once is harmless.
func (j *PayrollJobs) ComputePreviousMonth(ctx context.Context) error {
	now := j.now()
	if now.Day() != 1 {
		return nil
	}

	month := now.AddDate(0, -1, 0).Format("2006-01")

	slog.Info("Cron: Computing previous month's payroll", "month", month)

	resp, err := j.payrollService.ComputePayroll(ctx, payroll.ComputePayrollRequest{Month: month})
	if err != nil {
		return err
	}

	slog.Info("Cron: Payroll computation finished",
		"month", month, "computed", len(resp.Data), "skipped", resp.SkippedCount)
	return nil
}
