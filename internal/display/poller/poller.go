// Package poller implements the resilient fetch/poll/cache/retry utility
// shared by the telemetry dashboard and the TV info slide. One poller
// instance makes one network request per interval no matter how many
// consumers listen to it.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

const (
	maxRetries      = 3
	retryDelay      = 5 * time.Second
	cacheTTL        = time.Minute
	DefaultInterval = 30 * time.Second
)

// Fetcher retrieves one device data sample from the server.
type Fetcher func(ctx context.Context) (types.DeviceData, error)

// Listener observes device data updates.
type Listener func(types.DeviceData)

type cacheEntry struct {
	data  types.DeviceData
	stamp time.Time
}

// Poller polls device data on an interval, caches the latest sample, and
// fans updates out to registered listeners. Construct one per process and
// inject it; its lifecycle is explicit (StartPolling/StopPolling).
type Poller struct {
	fetch  Fetcher
	logger zerolog.Logger

	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
	cache     map[string]cacheEntry
	cancel    context.CancelFunc
	done      chan struct{}
}

// New returns a stopped poller around fetch.
func New(fetch Fetcher, logger zerolog.Logger) *Poller {
	return &Poller{
		fetch:     fetch,
		logger:    logger.With().Str("component", "device-poller").Logger(),
		listeners: map[int]Listener{},
		cache:     map[string]cacheEntry{},
	}
}

// FetchOnce fetches a sample, retrying up to the bounded retry count with a
// fixed delay. A cached sample younger than a minute short-circuits the
// retries. On success the sample is cached and fanned out to listeners.
func (p *Poller) FetchOnce(ctx context.Context) (types.DeviceData, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return types.DeviceData{}, ctx.Err()
			}
		}

		data, err := p.fetch(ctx)
		if err == nil {
			p.store("deviceData", data)
			p.notify(data)
			return data, nil
		}
		lastErr = err
		p.logger.Warn().Err(err).Int("attempt", attempt+1).Msg("device data fetch failed")

		if cached, ok := p.fresh("deviceData"); ok {
			p.logger.Debug().Msg("serving cached device data")
			return cached, nil
		}
	}
	return types.DeviceData{}, lastErr
}

// StartPolling begins the poll loop. Calling it while a loop is already
// running is a no-op, so any number of consumers can share one poller.
func (p *Poller) StartPolling(interval time.Duration) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		// Immediate fetch so consumers do not wait a full interval.
		if _, err := p.FetchOnce(ctx); err != nil {
			p.logger.Warn().Err(err).Msg("initial device data fetch failed")
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := p.FetchOnce(ctx); err != nil {
					p.logger.Warn().Err(err).Msg("device data poll failed")
				}
			}
		}
	}()
	p.logger.Info().Dur("interval", interval).Msg("device data polling started")
}

// StopPolling halts the loop and waits for it to exit.
func (p *Poller) StopPolling() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
		p.logger.Info().Msg("device data polling stopped")
	}
}

// AddListener registers cb and returns its removal function.
func (p *Poller) AddListener(cb Listener) (remove func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = cb
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

// CachedData returns the cached sample for key regardless of age.
func (p *Poller) CachedData(key string) (types.DeviceData, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.cache[key]
	return entry.data, ok
}

func (p *Poller) store(key string, data types.DeviceData) {
	p.mu.Lock()
	p.cache[key] = cacheEntry{data: data, stamp: time.Now()}
	p.mu.Unlock()
}

func (p *Poller) fresh(key string) (types.DeviceData, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	entry, ok := p.cache[key]
	if !ok || time.Since(entry.stamp) >= cacheTTL {
		return types.DeviceData{}, false
	}
	return entry.data, true
}

// notify invokes each listener best-effort; one listener panicking must not
// prevent the others from being notified.
func (p *Poller) notify(data types.DeviceData) {
	p.mu.Lock()
	listeners := make([]Listener, 0, len(p.listeners))
	for _, cb := range p.listeners {
		listeners = append(listeners, cb)
	}
	p.mu.Unlock()

	for _, cb := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error().Interface("panic", r).Msg("device data listener panicked")
				}
			}()
			cb(data)
		}()
	}
}
