// Package envsim produces the simulated environmental readings and rotating
// informational text shown on the built-in info and message slides.
package envsim

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

// Default seed values used when a TV has no configured baseline.
const (
	DefaultTemperature = 23.8
	DefaultPressure    = 1010.75
	DefaultHumidity    = 50.0
)

// Interval between simulation steps; the daemon drives Step from a 1s tick.
const StepInterval = time.Second

// MessageInterval is how often the rotating message text changes.
const MessageInterval = 30 * time.Second

var messages = []string{
	"Welcome to our company! We're glad you're here.",
	"Did you know? Taking regular breaks increases productivity.",
	"Today's focus: Quality and customer satisfaction.",
	"Remember to hydrate throughout the day!",
	"Our quarterly goals are on track - great teamwork everyone!",
	"Innovation is the key to our success.",
	"Safety first! Remember our workplace guidelines.",
	"Thank you for your continued dedication to excellence.",
}

// Reading is one snapshot of the simulated conditions.
type Reading struct {
	Temperature float64
	Pressure    float64
	Humidity    float64
}

// Simulator random-walks temperature, pressure and humidity, and rotates an
// informational message. Observed telemetry from the device-data poller
// overrides the walk when available. Safe for concurrent use.
type Simulator struct {
	mu      sync.Mutex
	reading Reading
	message string
	rng     *rand.Rand
}

// New returns a simulator seeded with the given baseline reading.
func New(temperature, pressure float64) *Simulator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Simulator{
		reading: Reading{
			Temperature: temperature,
			Pressure:    pressure,
			Humidity:    DefaultHumidity,
		},
		message: messages[rng.Intn(len(messages))],
		rng:     rng,
	}
}

// Step advances the random walk one tick and returns the new reading.
// Temperature drifts within ±1.0 °C, pressure within ±2.5 hPa, humidity
// within ±0.5 %, rounded to 1, 2 and 1 decimals respectively.
func (s *Simulator) Step() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading.Temperature = round(s.reading.Temperature+s.rng.Float64()*2-1, 1)
	s.reading.Pressure = round(s.reading.Pressure+s.rng.Float64()*5-2.5, 2)
	s.reading.Humidity = round(s.reading.Humidity+s.rng.Float64()-0.5, 1)
	return s.reading
}

// Reading returns the current snapshot without advancing the walk.
func (s *Simulator) Reading() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading
}

// SetObserved replaces the walk state with real telemetry.
func (s *Simulator) SetObserved(d types.DeviceData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading = Reading{
		Temperature: d.Temperature,
		Pressure:    d.Pressure,
		Humidity:    d.Humidity,
	}
}

// RotateMessage picks a new informational text and returns it.
func (s *Simulator) RotateMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = messages[s.rng.Intn(len(messages))]
	return s.message
}

// Message returns the current informational text.
func (s *Simulator) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
