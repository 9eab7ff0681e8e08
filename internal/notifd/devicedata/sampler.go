// Package devicedata produces the environmental telemetry displays show
// on their info slide, caches the latest sample, and streams updates to
// dashboard clients.
package devicedata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Sampling characteristics of the simulated sensor gateway.
const (
	DefaultInterval = 30 * time.Second

	baseTemperature = 23.8
	basePressure    = 1010.75
	baseHumidity    = 50.0
)

// Sampler produces a slowly drifting stream of sensor readings. Real
// hardware integrations replace the step function, not the plumbing.
type Sampler struct {
	mu      sync.Mutex
	current types.DeviceData
	rng     *rand.Rand
	logger  zerolog.Logger

	onSample func(types.DeviceData)
}

// NewSampler creates a sampler seeded at the base readings.
func NewSampler(logger zerolog.Logger, onSample func(types.DeviceData)) *Sampler {
	return &Sampler{
		current: types.DeviceData{
			Temperature: baseTemperature,
			Pressure:    basePressure,
			Humidity:    baseHumidity,
			Timestamp:   time.Now(),
			Success:     true,
		},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger.With().Str("component", "devicedata").Logger(),
		onSample: onSample,
	}
}

// Current returns the most recent sample.
func (s *Sampler) Current() types.DeviceData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// step advances the random walk by one tick.
func (s *Sampler) step(now time.Time) types.DeviceData {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Temperature = round1(s.current.Temperature + (s.rng.Float64()-0.5)*2.0)
	s.current.Pressure = round2(s.current.Pressure + (s.rng.Float64()-0.5)*5.0)
	s.current.Humidity = clamp(round1(s.current.Humidity+(s.rng.Float64()-0.5)*1.0), 0, 100)
	s.current.Timestamp = now
	s.current.Success = true
	return s.current
}

// Run emits a sample every interval until ctx is done.
func (s *Sampler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sample := s.step(now)
			if s.onSample != nil {
				s.onSample(sample)
			}
		}
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+sign(v)*0.5)) / 10
}

func round2(v float64) float64 {
	return float64(int(v*100+sign(v)*0.5)) / 100
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
