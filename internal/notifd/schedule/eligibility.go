package schedule

import (
	"fmt"
	"time"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// WindowActive reports whether now falls inside any of the given absolute
// windows. Both endpoints are inclusive.
func WindowActive(windows []types.TimeWindow, now time.Time) bool {
	for _, w := range windows {
		if !now.Before(w.StartTime) && !now.After(w.EndTime) {
			return true
		}
	}
	return false
}

// DailyActive reports whether the wall-clock time of now falls inside the
// recurring daily interval. An interval whose end precedes its start wraps
// past midnight (22:00-06:00 covers late evening and early morning).
func DailyActive(startTime, endTime string, now time.Time) bool {
	start, err := parseDailyTime(startTime)
	if err != nil {
		return false
	}
	end, err := parseDailyTime(endTime)
	if err != nil {
		return false
	}

	minute := now.Hour()*60 + now.Minute()
	if start <= end {
		return minute >= start && minute <= end
	}
	return minute >= start || minute <= end
}

// parseDailyTime converts an HH:MM string to minutes since midnight.
func parseDailyTime(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid daily time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("daily time %q out of range", s)
	}
	return h*60 + m, nil
}

// legacyWindow folds the deprecated single start/end pair into the window
// list so schedules created before multi-window support still apply.
func effectiveWindows(s *types.ContentSchedule) []types.TimeWindow {
	windows := s.TimeSchedules
	if len(windows) == 0 && s.StartTime != nil && s.EndTime != nil {
		windows = []types.TimeWindow{{StartTime: *s.StartTime, EndTime: *s.EndTime}}
	}
	return windows
}

// WindowedActiveAt reports whether the schedule is inside one of its
// absolute windows at now. False for schedules without windows.
func WindowedActiveAt(s *types.ContentSchedule, now time.Time) bool {
	return WindowActive(effectiveWindows(s), now)
}

// DailyActiveAt reports whether the schedule's recurring daily interval
// covers now. False for schedules without a daily interval.
func DailyActiveAt(s *types.ContentSchedule, now time.Time) bool {
	if !s.DailySchedule {
		return false
	}
	return DailyActive(s.DailyStartTime, s.DailyEndTime, now)
}

// EligibleAt reports whether the schedule may be shown at now, ignoring
// relative priority between schedules. Immediate schedules are always
// eligible while active.
func EligibleAt(s *types.ContentSchedule, now time.Time) bool {
	if !s.Active {
		return false
	}
	if s.Immediate() {
		return true
	}
	if s.DailySchedule {
		return DailyActiveAt(s, now)
	}
	return WindowedActiveAt(s, now)
}
