package rotation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

func scheduleContent() *content.Resolved {
	return content.FromSchedule(&types.ContentSchedule{
		Title:       "Welcome",
		ContentType: types.ContentTypeText,
		Content:     "Hello",
	})
}

func profileContent(slides int) *content.Resolved {
	p := &types.Profile{Title: "Lobby"}
	for i := 0; i < slides; i++ {
		p.Slides = append(p.Slides, types.Slide{
			ContentType:     types.ContentTypeText,
			Content:         "slide",
			DurationSeconds: 10,
		})
	}
	return content.FromAssignment(&types.ProfileAssignment{Profile: p})
}

func TestDefaultRotation(t *testing.T) {
	e := New(zerolog.Nop())

	assert.Equal(t, ModeDefault, e.Mode())
	assert.Equal(t, 2, e.SlideCount())

	assert.Equal(t, SlideMessage, e.Tick())
	assert.Equal(t, SlideInfo, e.Tick())
}

func TestApply_CustomAddsThirdSlide(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())

	assert.Equal(t, ModeCustom, e.Mode())
	assert.Equal(t, 3, e.SlideCount())

	assert.Equal(t, SlideMessage, e.Tick())
	assert.Equal(t, SlideCustom, e.Tick())
	assert.Equal(t, SlideInfo, e.Tick())
}

func TestApply_ResetsOnKindChange(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())
	e.Tick()
	e.Tick()
	assert.Equal(t, SlideCustom, e.Index())

	// Content goes away mid-rotation; the index snaps back immediately.
	e.Apply(nil)
	assert.Equal(t, SlideInfo, e.Index())
	assert.Equal(t, 2, e.SlideCount())
}

func TestApply_SameKindKeepsIndex(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())
	e.Tick()

	e.Apply(scheduleContent())
	assert.Equal(t, SlideMessage, e.Index())
}

func TestApply_ProfileMode(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(profileContent(3))

	assert.Equal(t, ModeProfile, e.Mode())
	assert.Equal(t, 3, e.SlideCount())

	// Shrinking the profile resets the rotation.
	e.Tick()
	e.Tick()
	e.Apply(profileContent(2))
	assert.Equal(t, 0, e.Index())
	assert.Equal(t, 2, e.SlideCount())
}

func TestApply_EmptyProfileFallsBackToDefault(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(profileContent(0))

	assert.Equal(t, ModeDefault, e.Mode())
	assert.Equal(t, 2, e.SlideCount())
}

func TestTick_PausedWhileVideoPlays(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())

	e.SetVideoPlaying(true)
	before := e.Index()
	assert.Equal(t, before, e.Tick())
	assert.Equal(t, before, e.Tick())

	e.SetVideoPlaying(false)
	assert.NotEqual(t, before, e.Tick())
}

func TestTick_HoldsCustomSlideWithSetsRemaining(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())

	remaining := true
	e.SetHoldOnCustom(func() bool { return remaining })

	e.Tick() // message
	e.Tick() // custom
	assert.Equal(t, SlideCustom, e.Tick())
	assert.Equal(t, SlideCustom, e.Tick())

	remaining = false
	assert.Equal(t, SlideInfo, e.Tick())
}

func TestJumpToInfo(t *testing.T) {
	e := New(zerolog.Nop())
	e.Apply(scheduleContent())
	e.Tick()
	e.SetVideoPlaying(true)

	e.JumpToInfo()
	assert.Equal(t, SlideInfo, e.Index())
	assert.Equal(t, SlideMessage, e.Tick())
}
