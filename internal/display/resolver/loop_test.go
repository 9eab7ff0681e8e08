package resolver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

func newTestLoop(onChange func(*content.Resolved)) *Loop {
	return NewLoop(nil, "TV1", 0, onChange, zerolog.Nop())
}

func TestApply_ChangeInvokesCallback(t *testing.T) {
	var changes []*content.Resolved
	l := newTestLoop(func(r *content.Resolved) { changes = append(changes, r) })

	resolved := content.FromSchedule(&types.ContentSchedule{Title: "meeting"})
	l.apply(1, resolved)

	require.Len(t, changes, 1)
	assert.Equal(t, resolved, l.Current())
}

func TestApply_IdenticalContentIsQuiet(t *testing.T) {
	var calls int
	l := newTestLoop(func(*content.Resolved) { calls++ })

	l.apply(1, content.FromSchedule(&types.ContentSchedule{Title: "meeting"}))
	l.apply(2, content.FromSchedule(&types.ContentSchedule{Title: "meeting"}))

	assert.Equal(t, 1, calls)
}

func TestApply_StaleResponseDiscarded(t *testing.T) {
	var calls int
	l := newTestLoop(func(*content.Resolved) { calls++ })

	// The response for seq 2 lands first; the slower seq 1 response must
	// not overwrite it.
	l.apply(2, content.FromSchedule(&types.ContentSchedule{Title: "fresh"}))
	l.apply(1, content.FromSchedule(&types.ContentSchedule{Title: "stale"}))

	assert.Equal(t, 1, calls)
	require.NotNil(t, l.Current())
	assert.Equal(t, "fresh", l.Current().Schedule.Title)
}

func TestApply_NilClearsContent(t *testing.T) {
	var last *content.Resolved
	var calls int
	l := newTestLoop(func(r *content.Resolved) {
		last = r
		calls++
	})

	l.apply(1, content.FromSchedule(&types.ContentSchedule{Title: "meeting"}))
	l.apply(2, nil)

	assert.Equal(t, 2, calls)
	assert.Nil(t, last)
	assert.Nil(t, l.Current())
}

func TestSetInterval(t *testing.T) {
	l := newTestLoop(nil)
	assert.Equal(t, PollInterval, l.interval)

	l.SetInterval(PollInterval * 2)
	assert.Equal(t, PollInterval*2, l.interval)

	l.SetInterval(-1)
	assert.Equal(t, PollInterval*2, l.interval)

	l.started = true
	l.SetInterval(PollInterval)
	assert.Equal(t, PollInterval*2, l.interval)
}
