package resolver

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/display/content"
)

// PollInterval is how often a display re-resolves its content.
const PollInterval = 5 * time.Second

// Loop drives periodic resolution for one TV and invokes onChange only when
// the resolved value actually differs from the previous one, keeping the
// rotation index stable across identical polls.
//
// Polls run concurrently with the ticker, so a slow response for an earlier
// tick can arrive after a fresher one. Every poll is tagged with a
// monotonically increasing sequence number and a response is discarded when
// a later-issued poll has already been applied.
type Loop struct {
	resolver *Resolver
	tvName   string
	interval time.Duration
	onChange func(*content.Resolved)
	logger   zerolog.Logger

	mu      sync.Mutex
	prev    *content.Resolved
	issued  uint64
	applied uint64
	started bool
}

// NewLoop returns a loop resolving tvName every interval. onChange is
// invoked from the polling goroutine whenever the resolved content changes;
// a zero interval means PollInterval.
func NewLoop(r *Resolver, tvName string, interval time.Duration, onChange func(*content.Resolved), logger zerolog.Logger) *Loop {
	if interval <= 0 {
		interval = PollInterval
	}
	return &Loop{
		resolver: r,
		tvName:   tvName,
		interval: interval,
		onChange: onChange,
		logger:   logger.With().Str("component", "resolver-loop").Str("tv", tvName).Logger(),
	}
}

// SetInterval overrides the poll interval. It has no effect once Run has
// started; non-positive values are ignored.
func (l *Loop) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.started {
		l.interval = interval
	}
}

// Run polls until ctx is cancelled. The first resolution happens
// immediately rather than one interval in.
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	var wg sync.WaitGroup
	poll := func() {
		seq := l.nextSeq()
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.pollOnce(ctx, seq)
		}()
	}

	poll()
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			l.mu.Lock()
			l.started = false
			l.mu.Unlock()
			return
		case <-ticker.C:
			poll()
		}
	}
}

// Current returns the most recently applied resolved content.
func (l *Loop) Current() *content.Resolved {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prev
}

func (l *Loop) nextSeq() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

func (l *Loop) pollOnce(ctx context.Context, seq uint64) {
	resolved := l.resolver.Resolve(ctx, l.tvName)
	l.apply(seq, resolved)
}

// apply installs a poll result unless it is stale or identical to the
// current value. Content-kind transitions are logged; that log line is how
// schedule/profile discrepancies get diagnosed in the field.
func (l *Loop) apply(seq uint64, resolved *content.Resolved) {
	l.mu.Lock()
	if seq <= l.applied {
		l.mu.Unlock()
		l.logger.Debug().Uint64("seq", seq).Msg("discarding stale poll response")
		return
	}
	l.applied = seq

	if resolved.Equal(l.prev) {
		l.mu.Unlock()
		return
	}
	prevKind := content.KindOf(l.prev)
	newKind := content.KindOf(resolved)
	l.prev = resolved
	onChange := l.onChange
	l.mu.Unlock()

	if prevKind != newKind {
		l.logger.Info().
			Str("from", string(prevKind)).
			Str("to", string(newKind)).
			Msg("content kind transition")
	}
	if onChange != nil {
		onChange(resolved)
	}
}
