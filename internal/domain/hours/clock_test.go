package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"1:05 AM", 65},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"1:00 PM", 780},
		{"11:59 PM", 1439},
		{"09:00 AM", 540},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		reason string
	}{
		{"missing meridiem", "9:00", "missing AM/PM"},
		{"lowercase meridiem", "9:00 am", "missing AM/PM"},
		{"missing colon", "900 AM", "missing ':'"},
		{"hour zero", "0:30 AM", "hour"},
		{"hour thirteen", "13:00 PM", "hour"},
		{"non numeric hour", "x:00 AM", "hour"},
		{"minute out of range", "9:60 AM", "minute"},
		{"single digit minute", "9:5 AM", "minute"},
		{"signed hour", "+9:00 AM", "hour"},
		{"signed minute", "9:+5 AM", "minute"},
		{"negative minute", "9:-0 AM", "minute"},
		{"empty", "", "missing AM/PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClock(tt.in)
			require.Error(t, err)
			assert.True(t, IsMalformed(err))

			var me *MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.in, me.Value)
			assert.Contains(t, me.Reason, tt.reason)
		})
	}
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "12:00 AM", Clock(0).String())
	assert.Equal(t, "9:05 AM", Clock(545).String())
	assert.Equal(t, "12:00 PM", Clock(720).String())
	assert.Equal(t, "11:59 PM", Clock(1439).String())
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("9:00 AM - 5:00 PM")
	require.NoError(t, err)
	assert.Equal(t, Range{Open: 540, Close: 1020}, r)
	assert.Equal(t, "9:00 AM - 5:00 PM", r.String())
}

func TestParseRange_Malformed(t *testing.T) {
	tests := []string{
		"9:00 AM-5:00 PM",
		"9:00 AM to 5:00 PM",
		"9:00 AM - ",
		"9:00 - 5:00 PM",
		"Open all day",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRange(in)
			require.Error(t, err)

			var me *MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, in, me.Value)
		})
	}
}

func TestRange_ContainsIsInclusiveAndNeverWraps(t *testing.T) {
	day, err := ParseRange("9:00 AM - 5:00 PM")
	require.NoError(t, err)

	assert.True(t, day.Contains(540))
	assert.True(t, day.Contains(1020))
	assert.False(t, day.Contains(539))
	assert.False(t, day.Contains(1021))

	overnight, err := ParseRange("10:00 PM - 2:00 AM")
	require.NoError(t, err)
	for _, m := range []Clock{0, 60, 120, 1320, 1439} {
		assert.False(t, overnight.Contains(m), "minute %d", m)
	}
}

func TestFromTwentyFourHour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"08:30", "8:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromTwentyFourHour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"24:00", "+8:30", "08:+5"} {
		_, err := FromTwentyFourHour(in)
		assert.True(t, IsMalformed(err), in)
	}
}

func TestFormatRange(t *testing.T) {
	got, err := FormatRange("07:00", "18:30")
	require.NoError(t, err)
	assert.Equal(t, "7:00 AM - 6:30 PM", got)

	_, err = FormatRange("7", "18:30")
	assert.Error(t, err)
}
