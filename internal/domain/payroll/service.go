package payroll

import "context"

// PayrollService defines business logic for payroll operations
type PayrollService interface {
	// ComputePayroll recomputes one payroll row per employee from the
	// month's attendance ledger; idempotent for unchanged attendance
	ComputePayroll(ctx context.Context, req ComputePayrollRequest) (ComputePayrollResponse, error)

	// ListPayroll retrieves the month's payroll rows
	ListPayroll(ctx context.Context, month string) (ListPayrollResponse, error)

	// MarkPaid transitions a payroll record from pending to paid
	MarkPaid(ctx context.Context, id string) (PayrollRecordResponse, error)
}
