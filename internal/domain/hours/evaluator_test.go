package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-12 is a Monday.
func monday(hour, minute int, loc *time.Location) time.Time {
	return time.Date(2026, time.October, 12, hour, minute, 0, 0, loc)
}

func TestEvaluator_ClosedOrMissingDayIsAlwaysClosed(t *testing.T) {
	e := NewEvaluator(time.UTC)

	schedules := map[string]Schedule{
		"closed":       {"Lunes": "Closed"},
		"lower closed": {"Monday": "closed"},
		"missing day":  {"Martes": "9:00 AM - 5:00 PM"},
		"empty":        {},
	}

	for name, s := range schedules {
		t.Run(name, func(t *testing.T) {
			for _, at := range []time.Time{monday(0, 0, time.UTC), monday(12, 0, time.UTC), monday(23, 59, time.UTC)} {
				open, err := e.IsOpenAt(s, at)
				require.NoError(t, err)
				assert.False(t, open)
			}
		})
	}
}

func TestEvaluator_InclusiveBoundaries(t *testing.T) {
	e := NewEvaluator(time.UTC)
	s := Schedule{"Lunes": "9:00 AM - 5:00 PM"}

	tests := []struct {
		name         string
		hour, minute int
		want         bool
	}{
		{"at opening", 9, 0, true},
		{"at closing", 17, 0, true},
		{"minute before opening", 8, 59, false},
		{"minute after closing", 17, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, err := e.IsOpenAt(s, monday(tt.hour, tt.minute, time.UTC))
			require.NoError(t, err)
			assert.Equal(t, tt.want, open)
		})
	}
}

func TestEvaluator_WholeDay(t *testing.T) {
	e := NewEvaluator(time.UTC)
	s := Schedule{"Monday": "12:00 AM - 11:30 PM"}

	open, err := e.IsOpenAt(s, monday(0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, open)

	open, err = e.IsOpenAt(s, monday(23, 59, time.UTC))
	require.NoError(t, err)
	assert.False(t, open, "23:59 is after the 11:30 PM close")

	s = Schedule{"Monday": "12:00 AM - 11:59 PM"}
	open, err = e.IsOpenAt(s, monday(23, 59, time.UTC))
	require.NoError(t, err)
	assert.True(t, open)
}

func TestEvaluator_UsesConfiguredTimeZone(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	e := NewEvaluator(bogota)
	s := Schedule{"Lunes": "9:00 AM - 5:00 PM"}

	// 14:00 UTC is 9:00 in Bogotá.
	open, err := e.IsOpenAt(s, monday(14, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, open)

	// 23:00 UTC is 18:00 in Bogotá.
	open, err = e.IsOpenAt(s, monday(23, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestEvaluator_MalformedDescriptorFails(t *testing.T) {
	e := NewEvaluator(time.UTC)

	_, err := e.IsOpenAt(Schedule{"Lunes": "9am-5pm"}, monday(10, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestEvaluator_IsOpenUsesInjectedClock(t *testing.T) {
	e := NewEvaluator(time.UTC, WithClock(func() time.Time { return monday(10, 0, time.UTC) }))

	open, err := e.IsOpen(Schedule{"Monday": "9:00 AM - 5:00 PM"})
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, time.UTC, e.Location())
}
