// Package screen runs one TV: it owns the timers, wires the resolver loop,
// rotation engine, media-set cursors and environmental simulator together,
// and exposes the current frame to the screen front-end.
package screen

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/envsim"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/mediaset"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/poller"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/render"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/resolver"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/rotation"
)

// Controller coordinates all per-TV state. All timer callbacks replace
// state atomically through the owned components; nothing is mutated
// mid-tick from the outside.
type Controller struct {
	tvName string
	engine *rotation.Engine
	sim    *envsim.Simulator
	loop   *resolver.Loop
	poller *poller.Poller
	logger zerolog.Logger

	mu          sync.Mutex
	imageCursor *mediaset.Cursor
	videoCursor *mediaset.Cursor
}

// New wires a controller for tvName. The poller may be nil when the
// telemetry endpoint is not configured.
func New(tvName string, res *resolver.Resolver, p *poller.Poller, logger zerolog.Logger) *Controller {
	c := &Controller{
		tvName:      tvName,
		engine:      rotation.New(logger),
		sim:         envsim.New(envsim.DefaultTemperature, envsim.DefaultPressure),
		poller:      p,
		logger:      logger.With().Str("component", "screen").Str("tv", tvName).Logger(),
		imageCursor: mediaset.NewCursor(0),
		videoCursor: mediaset.NewCursor(0),
	}
	c.engine.SetHoldOnCustom(c.moreImageSets)
	c.loop = resolver.NewLoop(res, tvName, resolver.PollInterval, c.onContentChange, logger)
	return c
}

// SetPollInterval overrides the content poll interval. Call before Run.
func (c *Controller) SetPollInterval(d time.Duration) {
	c.loop.SetInterval(d)
}

// Run starts every timer and blocks until ctx is cancelled. All intervals
// are torn down on return.
func (c *Controller) Run(ctx context.Context) {
	if c.poller != nil {
		remove := c.poller.AddListener(func(d types.DeviceData) {
			if d.Success {
				c.sim.SetObserved(d)
			}
		})
		defer remove()
		c.poller.StartPolling(poller.DefaultInterval)
		defer c.poller.StopPolling()
	}

	go c.loop.Run(ctx)

	simTicker := time.NewTicker(envsim.StepInterval)
	defer simTicker.Stop()
	rotTicker := time.NewTicker(rotation.Period)
	defer rotTicker.Stop()
	imgTicker := time.NewTicker(rotation.Period)
	defer imgTicker.Stop()
	msgTicker := time.NewTicker(envsim.MessageInterval)
	defer msgTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-simTicker.C:
			c.sim.Step()
		case <-msgTicker.C:
			c.sim.RotateMessage()
		case <-imgTicker.C:
			c.tickImageSets()
		case <-rotTicker.C:
			c.tickRotation()
		}
	}
}

// Frame renders the current state. Called by the local HTTP surface on
// every front-end refresh.
func (c *Controller) Frame() render.Frame {
	reading := c.sim.Reading()
	state := render.State{
		SlideIndex:    c.engine.Index(),
		ImageSetIndex: c.imageCursor.Index(),
		VideoSetIndex: c.videoCursor.Index(),
	}
	return render.Render(c.loop.Current(), state, render.Env{
		Temperature: reading.Temperature,
		Pressure:    reading.Pressure,
		Humidity:    reading.Humidity,
		Now:         time.Now(),
		Message:     c.sim.Message(),
	})
}

// VideoStarted pauses slide rotation for the duration of playback.
func (c *Controller) VideoStarted() {
	c.engine.SetVideoPlaying(true)
}

// VideoEnded advances the video playlist. Playback errors are reported
// through the same path as natural completion so a broken video can never
// stall the display.
func (c *Controller) VideoEnded() {
	c.engine.SetVideoPlaying(false)

	cursor := c.videoCursor
	if cursor.Count() <= 1 {
		c.engine.JumpToInfo()
		return
	}
	if cursor.AtLast() {
		// Playlist finished; show the info slide and rewind for the next
		// pass through the rotation.
		cursor.Reset(cursor.Count())
		c.engine.JumpToInfo()
		return
	}
	cursor.Advance()
}

// onContentChange reacts to a new resolved value from the poll loop:
// rotation resets on kind change and both media cursors rewind so the new
// content starts from its first set.
func (c *Controller) onContentChange(resolved *content.Resolved) {
	c.engine.Apply(resolved)

	imageSets, videoSets := mediaCounts(resolved)
	c.mu.Lock()
	c.imageCursor.Reset(imageSets)
	c.videoCursor.Reset(videoSets)
	c.mu.Unlock()
}

func (c *Controller) tickRotation() {
	prev := c.engine.Index()
	next := c.engine.Tick()
	if prev == rotation.SlideCustom && next != rotation.SlideCustom {
		// All image sets were shown; rewind for the next pass.
		c.imageCursor.Reset(c.imageCursor.Count())
	}
}

// tickImageSets advances the image-set cursor on its own timer, independent
// of the slide rotation, so one custom slide can cycle through several sets
// while staying the same slide.
func (c *Controller) tickImageSets() {
	if c.imageCursor.Count() > 1 && !c.imageCursor.AtLast() {
		c.imageCursor.Advance()
	}
}

func (c *Controller) moreImageSets() bool {
	return c.imageCursor.Count() > 1 && !c.imageCursor.AtLast()
}

// mediaCounts derives the set counts for the resolved value's media lists.
func mediaCounts(resolved *content.Resolved) (imageSets, videoSets int) {
	if resolved == nil {
		return 0, 0
	}
	switch resolved.Kind {
	case content.KindSchedule:
		s := resolved.Schedule
		imageSets = len(mediaset.ImageSets(s.ImageURLs, s.ContentType))
		videoSets = len(mediaset.VideoSets(s.VideoURLs))
	case content.KindProfile:
		// Cursors track the currently shown slide's media; profile slides
		// share one cursor pair and rewind when the slide changes.
		for _, slide := range resolved.Profile.Slides {
			if n := len(mediaset.ImageSets(slide.ImageURLs, slide.ContentType)); n > imageSets {
				imageSets = n
			}
			if n := len(mediaset.VideoSets(slide.VideoURLs)); n > videoSets {
				videoSets = n
			}
		}
	case content.KindLegacyFile:
		imageSets = 1
	}
	return imageSets, videoSets
}
