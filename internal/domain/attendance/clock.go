package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const clockLayout = "15:04"

// FormatClock renders t as a wall-clock time of day ("HH:MM").
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// MinutesOfDay converts an "HH:MM" wall-clock string to minutes since
// midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid wall-clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WorkedHours computes the checkout-minus-checkin duration in hours,
// rounded to two decimal places. The subtraction is plain
// minutes-since-midnight arithmetic: a checkout wall-clock earlier than
// the check-in (overnight shift, clock skew) yields a negative value,
// which is returned as-is rather than corrected.
func WorkedHours(checkIn, checkOut string) (decimal.Decimal, error) {
	in, err := MinutesOfDay(checkIn)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := MinutesOfDay(checkOut)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(out - in)).Div(decimal.NewFromInt(60)).Round(2), nil
}

// IsLate reports whether a check-in at clock is strictly later than the
// workStart threshold. Both are "HH:MM" strings.
func IsLate(clock, workStart string) (bool, error) {
	in, err := MinutesOfDay(clock)
	if err != nil {
		return false, err
	}
	start, err := MinutesOfDay(workStart)
	if err != nil {
		return false, err
	}
	return in > start, nil
}
