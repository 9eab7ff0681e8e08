package types

import "time"

// DeviceData is one environmental telemetry sample served to dashboards and
// display info slides.
type DeviceData struct {
	Temperature float64   `json:"temperature"`
	Pressure    float64   `json:"pressure"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`
	Success     bool      `json:"success"`
}
