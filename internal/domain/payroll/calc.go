package payroll

import (
	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Pay rule constants. The daily rate divides the monthly salary by a flat
// 30 regardless of the month's calendar length, and a standard work day is
// 8 hours; hours beyond that pay time-and-a-half.
var (
	payDivisorDays     = decimal.NewFromInt(30)
	workDayHours       = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
)

// Breakdown is the derived money portion of a payroll record.
type Breakdown struct {
	AbsenceDeduction decimal.Decimal
	OvertimePay      decimal.Decimal
	NetSalary        decimal.Decimal
}

// Calculate derives the salary breakdown for one employee-month.
// Deduction and overtime pay are truncated toward zero to whole currency
// units; the net salary is not floored at zero, so deductions larger than
// salary plus overtime produce a negative net.
func Calculate(basicSalary decimal.Decimal, absenceDays int, overtimeHours decimal.Decimal, bonuses decimal.Decimal) Breakdown {
	dailyRate := basicSalary.Div(payDivisorDays)
	hourlyRate := dailyRate.Div(workDayHours)

	absenceDeduction := dailyRate.Mul(decimal.NewFromInt(int64(absenceDays))).Floor()
	overtimePay := overtimeHours.Mul(hourlyRate).Mul(overtimeMultiplier).Floor()
	netSalary := basicSalary.Sub(absenceDeduction).Add(overtimePay).Add(bonuses)

	return Breakdown{
		AbsenceDeduction: absenceDeduction,
		OvertimePay:      overtimePay,
		NetSalary:        netSalary,
	}
}

// SummarizeAttendance aggregates one employee's ledger rows for a month.
// Absence days count only rows explicitly tagged absent; days with no row
// at all do not count. Overtime accumulates max(0, workedHours - 8) over
// present and late rows that have worked hours recorded.
func SummarizeAttendance(rows []attendance.Attendance) (absenceDays int, overtimeHours decimal.Decimal) {
	overtimeHours = decimal.Zero
	for _, row := range rows {
		switch row.Status {
		case attendance.StatusAbsent:
			absenceDays++
		case attendance.StatusPresent, attendance.StatusLate:
			if row.WorkedHours == nil {
				continue
			}
			excess := row.WorkedHours.Sub(workDayHours)
			if excess.IsPositive() {
				overtimeHours = overtimeHours.Add(excess)
			}
		}
	}
	return absenceDays, overtimeHours
}
