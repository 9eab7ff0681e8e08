package envsim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
)

func TestStep_BoundedDrift(t *testing.T) {
	s := New(DefaultTemperature, DefaultPressure)

	prev := s.Reading()
	for i := 0; i < 200; i++ {
		r := s.Step()
		assert.LessOrEqual(t, math.Abs(r.Temperature-prev.Temperature), 1.0+1e-9)
		assert.LessOrEqual(t, math.Abs(r.Pressure-prev.Pressure), 2.5+1e-9)
		assert.LessOrEqual(t, math.Abs(r.Humidity-prev.Humidity), 0.5+1e-9)
		prev = r
	}
}

func TestStep_Rounding(t *testing.T) {
	s := New(DefaultTemperature, DefaultPressure)

	for i := 0; i < 50; i++ {
		r := s.Step()
		assert.Equal(t, round(r.Temperature, 1), r.Temperature)
		assert.Equal(t, round(r.Pressure, 2), r.Pressure)
		assert.Equal(t, round(r.Humidity, 1), r.Humidity)
	}
}

func TestSetObserved(t *testing.T) {
	s := New(DefaultTemperature, DefaultPressure)

	s.SetObserved(types.DeviceData{Temperature: 19.2, Pressure: 998.4, Humidity: 61.5})
	r := s.Reading()
	assert.Equal(t, 19.2, r.Temperature)
	assert.Equal(t, 998.4, r.Pressure)
	assert.Equal(t, 61.5, r.Humidity)
}

func TestMessages(t *testing.T) {
	s := New(DefaultTemperature, DefaultPressure)

	assert.NotEmpty(t, s.Message())
	rotated := s.RotateMessage()
	assert.Contains(t, messages, rotated)
	assert.Equal(t, rotated, s.Message())
}
