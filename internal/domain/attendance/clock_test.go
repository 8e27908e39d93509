package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"08:30", 510},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := MinutesOfDay(c.clock)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "MinutesOfDay(%q)", c.clock)
	}

	_, err := MinutesOfDay("25:00")
	assert.Error(t, err)
	_, err = MinutesOfDay("nine")
	assert.Error(t, err)
}

func TestWorkedHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    string
	}{
		{"08:30", "17:00", "8.5"},
		{"09:00", "17:00", "8"},
		{"09:00", "19:00", "10"},
		{"09:07", "09:08", "0.02"}, // 1 minute rounds to 0.02
		{"09:00", "09:00", "0"},
	}
	for _, c := range cases {
		got, err := WorkedHours(c.in, c.out)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "WorkedHours(%q, %q)", c.in, c.out)
	}
}

func TestWorkedHoursOvernightIsNegative(t *testing.T) {
	// A checkout wall-clock earlier than the check-in is stored as a
	// negative duration, not clamped.
	got, err := WorkedHours("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, "-16", got.String())
}

func TestIsLate(t *testing.T) {
	cases := []struct {
		clock string
		want  bool
	}{
		{"09:01", true},
		{"09:00", false},
		{"08:59", false},
		{"13:45", true},
	}
	for _, c := range cases {
		got, err := IsLate(c.clock, "09:00")
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "IsLate(%q)", c.clock)
	}
}

func TestDayState(t *testing.T) {
	in := "08:55"
	out := "17:10"

	assert.Equal(t, DayStateNoRecord, Attendance{}.State())
	assert.Equal(t, DayStateCheckedIn, Attendance{CheckInTime: &in}.State())
	assert.Equal(t, DayStateCheckedOut, Attendance{CheckInTime: &in, CheckOutTime: &out}.State())
}
