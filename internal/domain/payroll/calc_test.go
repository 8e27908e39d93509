package payroll

import (
	"testing"

	"github.com/orbit-hr/hr-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateOvertimeOnly(t *testing.T) {
	// baseSalary 3000, 2 overtime hours:
	// hourlyRate = (3000/30)/8 = 12.5, overtimePay = floor(2*12.5*1.5) = 37
	b := Calculate(dec("3000"), 0, dec("2"), decimal.Zero)

	assert.True(t, b.AbsenceDeduction.IsZero())
	assert.Equal(t, "37", b.OvertimePay.String())
	assert.Equal(t, "3037", b.NetSalary.String())
}

func TestCalculateAbsenceOnly(t *testing.T) {
	// dailyRate = 3000/30 = 100, deduction = floor(100*2) = 200
	b := Calculate(dec("3000"), 2, decimal.Zero, decimal.Zero)

	assert.Equal(t, "200", b.AbsenceDeduction.String())
	assert.True(t, b.OvertimePay.IsZero())
	assert.Equal(t, "2800", b.NetSalary.String())
}

func TestCalculateCombined(t *testing.T) {
	b := Calculate(dec("3000"), 2, dec("2"), decimal.Zero)

	assert.Equal(t, "200", b.AbsenceDeduction.String())
	assert.Equal(t, "37", b.OvertimePay.String())
	assert.Equal(t, "2837", b.NetSalary.String())
}

func TestCalculateBonusesAddIn(t *testing.T) {
	b := Calculate(dec("3000"), 2, dec("2"), dec("150"))

	assert.Equal(t, "2987", b.NetSalary.String())
}

func TestCalculateTruncatesTowardZero(t *testing.T) {
	// dailyRate = 1000/30 = 33.33..., 1 absence day floors to 33
	b := Calculate(dec("1000"), 1, decimal.Zero, decimal.Zero)

	assert.Equal(t, "33", b.AbsenceDeduction.String())
	assert.Equal(t, "967", b.NetSalary.String())
}

func TestCalculateNetCanGoNegative(t *testing.T) {
	// No floor at zero: 40 absence days of a flat-30 divisor overshoot
	// the salary
	b := Calculate(dec("3000"), 40, decimal.Zero, decimal.Zero)

	assert.Equal(t, "4000", b.AbsenceDeduction.String())
	assert.Equal(t, "-1000", b.NetSalary.String())
}

func TestSummarizeAttendance(t *testing.T) {
	wh := func(s string) *decimal.Decimal {
		d := dec(s)
		return &d
	}

	rows := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkedHours: wh("10")},   // 2h overtime
		{Status: attendance.StatusLate, WorkedHours: wh("9.5")},     // 1.5h overtime
		{Status: attendance.StatusPresent, WorkedHours: wh("7.25")}, // under 8h, ignored
		{Status: attendance.StatusPresent},                          // still checked in, ignored
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusOnLeave}, // leave is neither absence nor overtime
	}

	absenceDays, overtimeHours := SummarizeAttendance(rows)

	assert.Equal(t, 2, absenceDays)
	assert.Equal(t, "3.5", overtimeHours.String())
}

func TestSummarizeAttendanceNegativeHoursIgnoredForOvertime(t *testing.T) {
	// An overnight row carries negative worked hours; it contributes no
	// overtime but is not an absence either.
	neg := dec("-16")
	rows := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkedHours: &neg},
	}

	absenceDays, overtimeHours := SummarizeAttendance(rows)

	assert.Equal(t, 0, absenceDays)
	assert.True(t, overtimeHours.IsZero())
}
