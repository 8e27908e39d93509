package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRepository defines data access methods for the attendance
// ledger. The (employee_id, date) pair is unique at the store level; Create
// surfaces a constraint violation as ErrAlreadyCheckedIn for clock rows and
// ErrDuplicateRecord for manual rows.
type AttendanceRepository interface {
	// Create inserts a new ledger row
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the row for one employee on one day,
	// or nil when the day has no record
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetCheckOut closes the day's session: sets check-out time and the
	// derived worked hours in a single atomic update
	SetCheckOut(ctx context.Context, id string, checkOutTime string, workedHours decimal.Decimal) error

	// List returns ledger rows with employee display fields,
	// newest created first
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListByEmployeeAndMonth returns all of one employee's rows whose date
	// falls in the "YYYY-MM" month; used by the payroll calculator
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, month string) ([]Attendance, error)
}
