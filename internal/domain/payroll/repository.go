package payroll

import "context"

// PayrollRepository defines data access methods for the payroll ledger.
// The (employee_id, month) pair is unique at the store level.
type PayrollRepository interface {
	// GetByEmployeeAndMonth returns the row for one employee-month, or nil
	// when none exists
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*PayrollRecord, error)

	// Upsert inserts the record or, on (employee_id, month) conflict,
	// overwrites the derived fields in place while leaving status and
	// bonuses untouched
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// ListByMonth returns the month's rows with employee display fields,
	// ordered by employee id
	ListByMonth(ctx context.Context, month string) ([]PayrollRecord, error)

	// MarkPaid flips status to paid; ErrPayrollRecordNotFound when the id
	// does not exist
	MarkPaid(ctx context.Context, id string) (PayrollRecord, error)
}
