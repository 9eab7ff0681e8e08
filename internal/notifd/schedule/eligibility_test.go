package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

func TestWindowActive(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	window := types.TimeWindow{
		StartTime: base,
		EndTime:   base.Add(2 * time.Hour),
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before window", base.Add(-time.Minute), false},
		{"at start", base, true},
		{"inside", base.Add(time.Hour), true},
		{"at end", base.Add(2 * time.Hour), true},
		{"after window", base.Add(2*time.Hour + time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WindowActive([]types.TimeWindow{window}, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowActive_MultipleWindows(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	windows := []types.TimeWindow{
		{StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour)},
		{StartTime: day.Add(14 * time.Hour), EndTime: day.Add(15 * time.Hour)},
	}

	assert.True(t, WindowActive(windows, day.Add(9*time.Hour+30*time.Minute)))
	assert.True(t, WindowActive(windows, day.Add(14*time.Hour+30*time.Minute)))
	assert.False(t, WindowActive(windows, day.Add(12*time.Hour)))
	assert.False(t, WindowActive(nil, day))
}

func TestDailyActive(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end string
		now        time.Time
		want       bool
	}{
		{"inside plain interval", "09:00", "17:00", at(12, 0), true},
		{"at start", "09:00", "17:00", at(9, 0), true},
		{"at end", "09:00", "17:00", at(17, 0), true},
		{"before start", "09:00", "17:00", at(8, 59), false},
		{"after end", "09:00", "17:00", at(17, 1), false},
		{"wrap evening side", "22:00", "06:00", at(23, 30), true},
		{"wrap morning side", "22:00", "06:00", at(5, 59), true},
		{"wrap midnight itself", "22:00", "06:00", at(0, 0), true},
		{"wrap gap", "22:00", "06:00", at(12, 0), false},
		{"malformed start", "24:00", "06:00", at(1, 0), false},
		{"malformed end", "22:00", "zz:00", at(23, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyActive(tt.start, tt.end, tt.now))
		})
	}
}

func TestEligibleAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	t.Run("inactive never eligible", func(t *testing.T) {
		s := &types.ContentSchedule{Active: false}
		assert.False(t, EligibleAt(s, now))
	})

	t.Run("immediate always eligible", func(t *testing.T) {
		s := &types.ContentSchedule{Active: true}
		assert.True(t, EligibleAt(s, now))
	})

	t.Run("windowed inside window", func(t *testing.T) {
		s := &types.ContentSchedule{
			Active:        true,
			TimeSchedules: []types.TimeWindow{{StartTime: past, EndTime: future}},
		}
		assert.True(t, EligibleAt(s, now))
	})

	t.Run("windowed outside window", func(t *testing.T) {
		s := &types.ContentSchedule{
			Active:        true,
			TimeSchedules: []types.TimeWindow{{StartTime: future, EndTime: future.Add(time.Hour)}},
		}
		assert.False(t, EligibleAt(s, now))
	})

	t.Run("legacy start and end folded into a window", func(t *testing.T) {
		s := &types.ContentSchedule{
			Active:    true,
			StartTime: &past,
			EndTime:   &future,
		}
		assert.False(t, s.Immediate())
		assert.True(t, EligibleAt(s, now))

		s.StartTime = &future
		gone := future.Add(time.Hour)
		s.EndTime = &gone
		assert.False(t, EligibleAt(s, now))
	})

	t.Run("daily interval", func(t *testing.T) {
		s := &types.ContentSchedule{
			Active:         true,
			DailySchedule:  true,
			DailyStartTime: "09:00",
			DailyEndTime:   "17:00",
		}
		assert.True(t, EligibleAt(s, now))

		night := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
		assert.False(t, EligibleAt(s, night))
	})
}
