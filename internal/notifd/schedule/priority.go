package schedule

import (
	"sort"
	"time"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Priority bands for active schedules. Scheduled content always beats
// immediate content; a window pinned to a clock time reflects stronger
// intent than an open-ended posting.
const (
	bandWindowed = iota
	bandDaily
	bandImmediate
)

func band(s *types.ContentSchedule, now time.Time) int {
	switch {
	case !s.Immediate() && !s.DailySchedule && WindowedActiveAt(s, now):
		return bandWindowed
	case s.DailySchedule && DailyActiveAt(s, now):
		return bandDaily
	default:
		return bandImmediate
	}
}

// ActiveForTV filters the given schedules down to those eligible at now
// and orders them so displays can simply play the first entry:
//
//  1. schedules inside an absolute time window
//  2. schedules inside their recurring daily interval
//  3. immediate schedules, but only when nothing scheduled is active
//
// Within a band, newer schedules come first.
func ActiveForTV(schedules []types.ContentSchedule, now time.Time) []types.ContentSchedule {
	var active []types.ContentSchedule
	scheduledActive := false

	for i := range schedules {
		s := &schedules[i]
		if !EligibleAt(s, now) {
			continue
		}
		if !s.Immediate() {
			scheduledActive = true
		}
		active = append(active, *s)
	}

	if scheduledActive {
		filtered := active[:0]
		for _, s := range active {
			if !s.Immediate() {
				filtered = append(filtered, s)
			}
		}
		active = filtered
	}

	sort.SliceStable(active, func(i, j int) bool {
		bi, bj := band(&active[i], now), band(&active[j], now)
		if bi != bj {
			return bi < bj
		}
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	return active
}
