package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "pending"
	PayrollStatusPaid    PayrollStatus = "paid"
)

// PayrollRecord is one ledger row per (employee, "YYYY-MM" month). The
// derived fields are overwritten on every recompute; Status and Bonuses
// survive recomputes and change only through their own operations.
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	Month            string
	BasicSalary      decimal.Decimal
	OvertimeHours    decimal.Decimal
	OvertimePay      decimal.Decimal
	AbsenceDeduction decimal.Decimal
	Bonuses          decimal.Decimal
	NetSalary        decimal.Decimal
	Status           PayrollStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined employee display fields
	EmployeeName       *string
	EmployeeDepartment *string
}
