// Package rotation implements the slide rotation state machine for a TV.
package rotation

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

// Well-known slide positions in non-profile mode. In profile mode every
// index maps directly to the profile slide with that index.
const (
	SlideInfo    = 0
	SlideMessage = 1
	SlideCustom  = 2
)

// Mode describes which rotation layout is in effect.
type Mode int

const (
	// ModeDefault rotates info and message slides only.
	ModeDefault Mode = iota
	// ModeCustom adds the resolved custom content as a third slide.
	ModeCustom
	// ModeProfile rotates directly through the profile's slides.
	ModeProfile
)

// Period is the wall-clock interval between slide advances; the owning
// daemon drives Tick from a ticker with this period.
const Period = 5 * time.Second

// Engine advances a rotating slide index and resets it whenever the kind of
// resolved content changes, so a shorter rotation is never indexed past its
// end. Safe for concurrent use by the tick and resolution goroutines.
type Engine struct {
	mu           sync.Mutex
	mode         Mode
	slideCount   int
	index        int
	videoPlaying bool

	// holdOnCustom, when set, keeps the custom slide on screen while its
	// image sets have not all been shown yet.
	holdOnCustom func() bool

	logger zerolog.Logger
}

// New returns an engine in default mode (info + message).
func New(logger zerolog.Logger) *Engine {
	return &Engine{
		mode:       ModeDefault,
		slideCount: 2,
		logger:     logger.With().Str("component", "rotation").Logger(),
	}
}

// SetHoldOnCustom registers the callback consulted before leaving the
// custom slide; it reports whether more image sets remain to be shown.
func (e *Engine) SetHoldOnCustom(fn func() bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.holdOnCustom = fn
}

// Apply updates the engine for newly resolved content. When the content
// kind (or the profile slide count) changes, the index is forced back to 0
// immediately, not on the next tick boundary.
func (e *Engine) Apply(resolved *content.Resolved) {
	mode := ModeDefault
	count := 2
	switch {
	case resolved == nil:
	case resolved.Kind == content.KindProfile:
		mode = ModeProfile
		count = len(resolved.Profile.Slides)
		if count == 0 {
			mode = ModeDefault
			count = 2
		}
	default:
		mode = ModeCustom
		count = 3
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if mode == e.mode && count == e.slideCount {
		return
	}
	e.logger.Info().
		Int("slides", count).
		Int("prevIndex", e.index).
		Msg("content kind changed, rotation reset")
	e.mode = mode
	e.slideCount = count
	e.index = 0
	e.videoPlaying = false
}

// Tick advances the rotation by one slide and returns the new index. The
// rotation is paused while a video is playing, and the custom slide is held
// while it still has image sets left to show.
func (e *Engine) Tick() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.videoPlaying {
		return e.index
	}
	if e.mode == ModeCustom && e.index == SlideCustom && e.holdOnCustom != nil && e.holdOnCustom() {
		return e.index
	}
	e.index = (e.index + 1) % e.slideCount
	return e.index
}

// Index returns the slide to render right now. An index that would land on
// a slide that no longer exists is remapped to the info slide rather than
// rendering nothing.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index >= e.slideCount {
		return SlideInfo
	}
	return e.index
}

// Mode returns the current rotation mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SlideCount returns the number of slides in the current rotation.
func (e *Engine) SlideCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slideCount
}

// SetVideoPlaying pauses or resumes rotation around video playback; slides
// never advance mid-video.
func (e *Engine) SetVideoPlaying(playing bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.videoPlaying = playing
}

// JumpToInfo forces the rotation back to the info slide. Used after a video
// playlist finishes its final entry.
func (e *Engine) JumpToInfo() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.index = SlideInfo
	e.videoPlaying = false
}
